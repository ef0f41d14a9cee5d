package check

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/vietddude/bfhl/internal/core/classifier"
)

var bucketFields = []string{"odd_numbers", "even_numbers", "alphabets", "special_characters"}

// Result is the outcome of a single case.
type Result struct {
	Scenario   string        `json:"scenario"`
	Name       string        `json:"name"`
	Passed     bool          `json:"passed"`
	StatusCode int           `json:"status_code"`
	Duration   time.Duration `json:"duration_ns"`
	Errors     []string      `json:"errors,omitempty"`
	Warnings   []string      `json:"warnings,omitempty"`
}

// Report summarizes a suite run.
type Report struct {
	StartedAt time.Time `json:"started_at"`
	Total     int       `json:"total"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
	Results   []Result  `json:"results"`
}

// Runner sends suite cases to a server.
type Runner struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

// NewRunner creates a runner targeting baseURL. A nil client uses a 10s timeout.
func NewRunner(baseURL string, client *http.Client) *Runner {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Runner{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     slog.Default().With("component", "check"),
	}
}

// Run executes every case in scenario-name order.
func (r *Runner) Run(ctx context.Context, suite *Suite) (*Report, error) {
	report := &Report{StartedAt: time.Now()}

	names := make([]string, 0, len(suite.Scenarios))
	for name := range suite.Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sc := suite.Scenarios[name]
		r.log.Info("Running scenario", "scenario", name, "description", sc.Description)

		for _, c := range sc.Tests {
			if err := ctx.Err(); err != nil {
				return report, err
			}

			res := r.runCase(ctx, c, suite.Validation)
			res.Scenario = name
			report.Results = append(report.Results, res)
			report.Total++
			if res.Passed {
				report.Passed++
			} else {
				report.Failed++
				r.log.Warn("Test failed", "scenario", name, "test", c.Name, "errors", res.Errors)
			}
		}
	}
	return report, nil
}

func (r *Runner) runCase(ctx context.Context, c Case, rules ValidationRules) (res Result) {
	res.Name = c.Name
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	body := []byte(c.RawBody)
	if c.RawBody == "" {
		data := c.Data
		if data == nil {
			data = []string{}
		}
		body, _ = json.Marshal(map[string][]string{"data": data})
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/bfhl", bytes.NewReader(body))
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("build request: %v", err))
		return res
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("request failed: %v", err))
		return res
	}
	defer resp.Body.Close()
	res.StatusCode = resp.StatusCode

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("read body: %v", err))
		return res
	}

	if resp.StatusCode != c.StatusCode {
		res.Errors = append(res.Errors, fmt.Sprintf("status: expected %d, got %d", c.StatusCode, resp.StatusCode))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("response is not a JSON object: %v", err))
		return res
	}

	res.Errors = append(res.Errors, validate(fields, c, rules, &res.Warnings)...)
	res.Passed = len(res.Errors) == 0
	return res
}

// validate compares a decoded response against the case expectations.
func validate(fields map[string]json.RawMessage, c Case, rules ValidationRules, warnings *[]string) []string {
	var errs []string

	if c.StatusCode == http.StatusOK {
		for _, f := range rules.RequiredFields {
			if _, ok := fields[f]; !ok {
				errs = append(errs, "missing required field: "+f)
			}
		}
	}

	if raw, ok := fields["sum"]; ok {
		var sum string
		if err := json.Unmarshal(raw, &sum); err != nil {
			errs = append(errs, "sum field is not a string")
		} else if !classifier.IsInteger(sum) {
			errs = append(errs, "sum field is not a valid number string")
		}
	}

	for _, f := range bucketFields {
		if raw, ok := fields[f]; ok {
			var arr []string
			if err := json.Unmarshal(raw, &arr); err != nil || arr == nil {
				errs = append(errs, fmt.Sprintf("field '%s' is not an array", f))
			}
		}
	}

	exp := c.Expected
	if exp.IsSuccess != nil {
		errs = append(errs, compareField(fields, "is_success", *exp.IsSuccess, warnings)...)
	}
	for name, want := range map[string]*[]string{
		"odd_numbers":        exp.OddNumbers,
		"even_numbers":       exp.EvenNumbers,
		"alphabets":          exp.Alphabets,
		"special_characters": exp.SpecialCharacters,
	} {
		if want != nil {
			errs = append(errs, compareField(fields, name, *want, warnings)...)
		}
	}
	if exp.Sum != nil {
		errs = append(errs, compareField(fields, "sum", *exp.Sum, warnings)...)
	}
	if exp.ConcatString != nil {
		errs = append(errs, compareField(fields, "concat_string", *exp.ConcatString, warnings)...)
	}

	sort.Strings(errs)
	return errs
}

func compareField[T any](fields map[string]json.RawMessage, name string, want T, warnings *[]string) []string {
	raw, ok := fields[name]
	if !ok {
		*warnings = append(*warnings, fmt.Sprintf("expected field '%s' not found in response", name))
		return nil
	}

	var got T
	if err := json.Unmarshal(raw, &got); err != nil {
		return []string{fmt.Sprintf("field '%s': cannot decode %s", name, raw)}
	}
	if !equal(want, got) {
		return []string{fmt.Sprintf("field '%s': expected %v, got %v", name, want, got)}
	}
	return nil
}

func equal(a, b any) bool {
	as, aok := a.([]string)
	bs, bok := b.([]string)
	if aok && bok {
		return slices.Equal(as, bs)
	}
	return a == b
}
