// Package check runs declarative request scenarios against a running
// server and validates the responses.
package check

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var ErrEmptySuite = errors.New("suite has no scenarios")

// Suite is the top-level scenarios file.
type Suite struct {
	Validation ValidationRules      `yaml:"validation_rules"`
	Scenarios  map[string]*Scenario `yaml:"scenarios"`
}

// ValidationRules apply to every successful response.
type ValidationRules struct {
	RequiredFields []string `yaml:"required_fields"`
}

// Scenario groups related test cases.
type Scenario struct {
	Description string `yaml:"description"`
	Tests       []Case `yaml:"tests"`
}

// Case is a single request and its expectations.
type Case struct {
	Name       string   `yaml:"name"`
	Data       []string `yaml:"data"`
	RawBody    string   `yaml:"raw_body"` // sent verbatim instead of Data when set
	StatusCode int      `yaml:"status_code"`
	Expected   Expected `yaml:"expected"`
}

// Expected lists the response fields to compare. Nil fields are not checked.
type Expected struct {
	IsSuccess         *bool     `yaml:"is_success"`
	OddNumbers        *[]string `yaml:"odd_numbers"`
	EvenNumbers       *[]string `yaml:"even_numbers"`
	Alphabets         *[]string `yaml:"alphabets"`
	SpecialCharacters *[]string `yaml:"special_characters"`
	Sum               *string   `yaml:"sum"`
	ConcatString      *string   `yaml:"concat_string"`
}

// LoadSuite reads a scenarios file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios file: %w", err)
	}
	return ParseSuite(data)
}

// ParseSuite decodes YAML scenarios.
func ParseSuite(data []byte) (*Suite, error) {
	var suite Suite
	if err := yaml.UnmarshalStrict(data, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios file: %w", err)
	}
	if len(suite.Scenarios) == 0 {
		return nil, ErrEmptySuite
	}
	for name, sc := range suite.Scenarios {
		if sc == nil || len(sc.Tests) == 0 {
			return nil, fmt.Errorf("scenario %q has no tests", name)
		}
		for i := range sc.Tests {
			if sc.Tests[i].StatusCode == 0 {
				sc.Tests[i].StatusCode = 200
			}
			if sc.Tests[i].Name == "" {
				sc.Tests[i].Name = fmt.Sprintf("%s_%d", name, i+1)
			}
		}
	}
	return &suite, nil
}
