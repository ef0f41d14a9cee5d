package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vietddude/bfhl/internal/core/domain"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassifyCommand_Args(t *testing.T) {
	out, err := execute(t, "", "classify", "--", "-4", "-3", "a")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	var resp domain.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("failed to decode output %q: %v", out, err)
	}
	if resp.Sum != "-7" || resp.ConcatString != "A" || !resp.IsSuccess {
		t.Errorf("unexpected response: %+v", resp)
	}
	if !strings.HasPrefix(resp.UserID, "john_doe_") {
		t.Errorf("expected default identity, got %s", resp.UserID)
	}
}

func TestClassifyCommand_Stdin(t *testing.T) {
	out, err := execute(t, `["A", "ABcD", "DOE"]`, "classify")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	var resp domain.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if len(resp.Alphabets) != 3 || resp.Sum != "0" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestClassifyCommand_BadStdin(t *testing.T) {
	if _, err := execute(t, `{"data": 1}`, "classify"); err == nil {
		t.Error("expected error for non-array stdin")
	}
}

func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, "", "generate", "--type", "numbers", "--count", "4", "--seed", "7")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	var data []string
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("failed to decode output: %v", err)
	}
	if len(data) != 4 {
		t.Errorf("expected 4 tokens, got %d", len(data))
	}

	again, err := execute(t, "", "generate", "--type", "numbers", "--count", "4", "--seed", "7")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if again != out {
		t.Errorf("expected same seed to reproduce output:\n%s\nvs\n%s", out, again)
	}
}

func TestGenerateCommand_UnknownType(t *testing.T) {
	if _, err := execute(t, "", "generate", "--type", "bogus", "--seed", "1"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("debug").String() != "DEBUG" || parseLevel("nonsense").String() != "INFO" {
		t.Error("unexpected level mapping")
	}
}
