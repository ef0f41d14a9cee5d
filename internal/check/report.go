package check

import (
	"encoding/json"
	"fmt"
	"os"
)

// SuccessRate returns the share of passed cases in percent.
func (r *Report) SuccessRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Passed) / float64(r.Total) * 100
}

// Summary renders a one-line summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d/%d passed (%.1f%%), %d failed", r.Passed, r.Total, r.SuccessRate(), r.Failed)
}

// WriteFile stores the report as indented JSON.
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
