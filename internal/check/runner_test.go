package check

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vietddude/bfhl/internal/api"
	"github.com/vietddude/bfhl/internal/core/domain"
	"github.com/vietddude/bfhl/internal/core/generator"
	"github.com/vietddude/bfhl/internal/core/service"
	"github.com/vietddude/bfhl/internal/health"
)

const suiteYAML = `
validation_rules:
  required_fields: [is_success, user_id, email, roll_number, odd_numbers, even_numbers, alphabets, special_characters, sum, concat_string]
scenarios:
  basic:
    description: Examples from the problem statement
    tests:
      - name: example_a
        data: ["a", "1", "334", "4", "R", "$"]
        expected:
          is_success: true
          odd_numbers: ["1"]
          even_numbers: ["334", "4"]
          alphabets: ["A", "R"]
          special_characters: ["$"]
          sum: "339"
          concat_string: "Ra"
      - name: negative
        data: ["-4", "-3"]
        expected:
          even_numbers: ["-4"]
          odd_numbers: ["-3"]
          sum: "-7"
      - data: []
        expected:
          sum: "0"
          concat_string: ""
  errors:
    description: Malformed requests
    tests:
      - name: missing_data
        raw_body: '{"items": []}'
        status_code: 400
        expected:
          is_success: false
`

func newTarget(t *testing.T) *httptest.Server {
	t.Helper()
	identity := domain.Identity{FullName: "john_doe", Email: "john@xyz.com", RollNumber: "ABCD123"}
	svc := service.New(identity, generator.NewSeeded(0, 1))
	monitor := health.NewMonitor(0)
	ts := httptest.NewServer(api.NewServer(api.Config{}, svc, monitor).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestParseSuite(t *testing.T) {
	suite, err := ParseSuite([]byte(suiteYAML))
	if err != nil {
		t.Fatalf("ParseSuite failed: %v", err)
	}
	if len(suite.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(suite.Scenarios))
	}

	basic := suite.Scenarios["basic"]
	if basic.Tests[0].StatusCode != 200 {
		t.Errorf("expected default status 200, got %d", basic.Tests[0].StatusCode)
	}
	if basic.Tests[2].Name != "basic_3" {
		t.Errorf("expected generated name basic_3, got %q", basic.Tests[2].Name)
	}
	if basic.Tests[0].Expected.Sum == nil || *basic.Tests[0].Expected.Sum != "339" {
		t.Error("expected sum expectation to be parsed")
	}
	if basic.Tests[1].Expected.Alphabets != nil {
		t.Error("expected unset expectation to stay nil")
	}
}

func TestParseSuite_Invalid(t *testing.T) {
	if _, err := ParseSuite([]byte("scenarios: {}\n")); !errors.Is(err, ErrEmptySuite) {
		t.Errorf("expected ErrEmptySuite, got %v", err)
	}
	if _, err := ParseSuite([]byte("scenarios:\n  a:\n    tests: []\n")); err == nil {
		t.Error("expected error for scenario without tests")
	}
	if _, err := ParseSuite([]byte("unknown_key: 1\n")); err == nil {
		t.Error("expected strict decoding to reject unknown keys")
	}
}

func TestRunner_AllPass(t *testing.T) {
	ts := newTarget(t)
	suite, err := ParseSuite([]byte(suiteYAML))
	if err != nil {
		t.Fatalf("ParseSuite failed: %v", err)
	}

	report, err := NewRunner(ts.URL, nil).Run(context.Background(), suite)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.Total != 4 || report.Passed != 4 {
		for _, r := range report.Results {
			if !r.Passed {
				t.Logf("%s/%s: %v", r.Scenario, r.Name, r.Errors)
			}
		}
		t.Fatalf("expected 4/4 passed, got %s", report.Summary())
	}
	if report.Results[0].Scenario != "basic" {
		t.Errorf("expected scenarios in name order, first was %s", report.Results[0].Scenario)
	}
}

func TestRunner_ReportsMismatches(t *testing.T) {
	ts := newTarget(t)
	suite, err := ParseSuite([]byte(`
validation_rules:
  required_fields: [is_success, missing_field]
scenarios:
  wrong:
    tests:
      - name: bad_sum
        data: ["1", "2"]
        expected:
          sum: "4"
          odd_numbers: ["2"]
`))
	if err != nil {
		t.Fatalf("ParseSuite failed: %v", err)
	}

	report, err := NewRunner(ts.URL+"/", nil).Run(context.Background(), suite)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Failed != 1 {
		t.Fatalf("expected 1 failure, got %s", report.Summary())
	}

	errs := strings.Join(report.Results[0].Errors, "\n")
	for _, want := range []string{"missing required field: missing_field", "field 'sum'", "field 'odd_numbers'"} {
		if !strings.Contains(errs, want) {
			t.Errorf("expected error containing %q, got:\n%s", want, errs)
		}
	}
}

func TestRunner_UnreachableServer(t *testing.T) {
	ts := newTarget(t)
	url := ts.URL
	ts.Close()

	suite, _ := ParseSuite([]byte(suiteYAML))
	report, err := NewRunner(url, nil).Run(context.Background(), suite)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.Passed != 0 || report.Failed != report.Total {
		t.Errorf("expected every case to fail, got %s", report.Summary())
	}
}

func TestValidate_TypeChecks(t *testing.T) {
	fields := map[string]json.RawMessage{
		"sum":         json.RawMessage(`"12a"`),
		"odd_numbers": json.RawMessage(`"1"`),
	}
	var warnings []string
	errs := validate(fields, Case{StatusCode: http.StatusOK}, ValidationRules{}, &warnings)

	joined := strings.Join(errs, "\n")
	if !strings.Contains(joined, "sum field is not a valid number string") {
		t.Errorf("expected sum error, got %v", errs)
	}
	if !strings.Contains(joined, "field 'odd_numbers' is not an array") {
		t.Errorf("expected array error, got %v", errs)
	}
}

func TestReport_WriteFile(t *testing.T) {
	report := &Report{Total: 2, Passed: 1, Failed: 1, Results: []Result{{Name: "a", Passed: true}, {Name: "b"}}}
	if report.SuccessRate() != 50 {
		t.Errorf("expected 50%%, got %v", report.SuccessRate())
	}

	path := filepath.Join(t.TempDir(), "report.json")
	if err := report.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if decoded.Total != 2 || len(decoded.Results) != 2 {
		t.Errorf("unexpected decoded report: %+v", decoded)
	}
}

func TestRunner_RecordsDuration(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"is_success": true, "sum": "0"}`))
	}))
	t.Cleanup(slow.Close)

	suite, err := ParseSuite([]byte("scenarios:\n  slow:\n    tests:\n      - data: []\n"))
	if err != nil {
		t.Fatalf("ParseSuite failed: %v", err)
	}

	report, err := NewRunner(slow.URL, nil).Run(context.Background(), suite)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(report.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(report.Results))
	}
	if got := report.Results[0].Duration; got < 20*time.Millisecond {
		t.Errorf("expected duration of at least 20ms, got %v", got)
	}
}

func TestValidate_SumUsesIntegerRule(t *testing.T) {
	tests := map[string]bool{
		`"0"`:                     true,
		`"-7"`:                    true,
		`"100000000000000000000"`: true,
		`"-"`:                     false,
		`"+5"`:                    false,
		`"1.5"`:                   false,
		`""`:                      false,
	}

	for raw, valid := range tests {
		var warnings []string
		errs := validate(map[string]json.RawMessage{"sum": json.RawMessage(raw)}, Case{StatusCode: http.StatusOK}, ValidationRules{}, &warnings)
		if valid && len(errs) != 0 {
			t.Errorf("sum %s: unexpected errors %v", raw, errs)
		}
		if !valid && len(errs) == 0 {
			t.Errorf("sum %s: expected a validation error", raw)
		}
	}
}
