package classifier

import (
	"math/big"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vietddude/bfhl/internal/core/domain"
)

func TestProcess_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  domain.ClassificationResult
	}{
		{
			name:  "basic",
			input: []string{"a", "1", "334", "4", "R", "$"},
			want: domain.ClassificationResult{
				OddNumbers:        []string{"1"},
				EvenNumbers:       []string{"334", "4"},
				Alphabets:         []string{"A", "R"},
				SpecialCharacters: []string{"$"},
				Sum:               "339",
				ConcatString:      "Ra",
			},
		},
		{
			name:  "mixed",
			input: []string{"2", "a", "y", "4", "&", "-", "*", "5", "92", "b"},
			want: domain.ClassificationResult{
				OddNumbers:        []string{"5"},
				EvenNumbers:       []string{"2", "4", "92"},
				Alphabets:         []string{"A", "Y", "B"},
				SpecialCharacters: []string{"&", "-", "*"},
				Sum:               "103",
				ConcatString:      "ByA",
			},
		},
		{
			name:  "alphabets only",
			input: []string{"A", "ABcD", "DOE"},
			want: domain.ClassificationResult{
				OddNumbers:        []string{},
				EvenNumbers:       []string{},
				Alphabets:         []string{"A", "ABCD", "DOE"},
				SpecialCharacters: []string{},
				Sum:               "0",
				ConcatString:      "EoDdCbAa",
			},
		},
		{
			name:  "empty",
			input: []string{},
			want: domain.ClassificationResult{
				OddNumbers:        []string{},
				EvenNumbers:       []string{},
				Alphabets:         []string{},
				SpecialCharacters: []string{},
				Sum:               "0",
				ConcatString:      "",
			},
		},
		{
			name:  "negative numbers",
			input: []string{"-4", "-3"},
			want: domain.ClassificationResult{
				OddNumbers:        []string{"-3"},
				EvenNumbers:       []string{"-4"},
				Alphabets:         []string{},
				SpecialCharacters: []string{},
				Sum:               "-7",
				ConcatString:      "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Process(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Process(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestProcess_NilInput(t *testing.T) {
	got := Process(nil)
	if got.Sum != "0" || got.ConcatString != "" || got.Len() != 0 {
		t.Errorf("unexpected result for nil input: %+v", got)
	}
	if got.OddNumbers == nil || got.EvenNumbers == nil || got.Alphabets == nil || got.SpecialCharacters == nil {
		t.Error("expected non-nil buckets")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		token string
		want  domain.Category
	}{
		{"0", domain.CategoryEven},
		{"-0", domain.CategoryEven},
		{"7", domain.CategoryOdd},
		{"-3", domain.CategoryOdd},
		{"-4", domain.CategoryEven},
		{"007", domain.CategoryOdd},
		{"abCD", domain.CategoryAlphabet},
		{"Z", domain.CategoryAlphabet},
		{"", domain.CategorySpecial},
		{"-", domain.CategorySpecial},
		{"--5", domain.CategorySpecial},
		{"+5", domain.CategorySpecial},
		{"334a", domain.CategorySpecial},
		{"1.5", domain.CategorySpecial},
		{"a b", domain.CategorySpecial},
		{" ", domain.CategorySpecial},
		{"ñ", domain.CategorySpecial},
		{"$", domain.CategorySpecial},
	}

	for _, tt := range tests {
		if got := Classify(tt.token); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.token, got, tt.want)
		}
	}
}

func TestIsInteger(t *testing.T) {
	tests := map[string]bool{
		"0":   true,
		"-12": true,
		"007": true,
		"":    false,
		"-":   false,
		"--1": false,
		"+1":  false,
		"1.0": false,
		"1e3": false,
		" 1":  false,
	}
	for in, want := range tests {
		if got := IsInteger(in); got != want {
			t.Errorf("IsInteger(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestProcess_CaseInsensitiveAlphabets(t *testing.T) {
	got := Process([]string{"abCD", "ABCD"})
	want := []string{"ABCD", "ABCD"}
	if diff := cmp.Diff(want, got.Alphabets); diff != "" {
		t.Errorf("alphabets mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess_Partition(t *testing.T) {
	input := []string{"a", "", "12", "-9", "x1", "%", "Hello", "99999999999999999999999", " "}
	got := Process(input)
	if got.Len() != len(input) {
		t.Fatalf("expected %d tokens across buckets, got %d", len(input), got.Len())
	}

	seen := make(map[string]int)
	for _, bucket := range [][]string{got.OddNumbers, got.EvenNumbers, got.SpecialCharacters} {
		for _, tok := range bucket {
			seen[tok]++
		}
	}
	for _, tok := range got.Alphabets {
		seen[tok]++
	}
	for _, tok := range []string{"", "12", "-9", "x1", "%", "99999999999999999999999", " ", "A", "HELLO"} {
		if seen[tok] != 1 {
			t.Errorf("token %q appears %d times, want 1", tok, seen[tok])
		}
	}
}

func TestProcess_LargeNumbersSum(t *testing.T) {
	got := Process([]string{"99999999999999999999", "1", "-5"})

	want := new(big.Int)
	want.SetString("99999999999999999995", 10)
	if got.Sum != want.String() {
		t.Errorf("expected sum %s, got %s", want, got.Sum)
	}
	if diff := cmp.Diff([]string{"99999999999999999999", "1", "-5"}, got.OddNumbers); diff != "" {
		t.Errorf("odd numbers mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess_KeepsOriginalNumericText(t *testing.T) {
	got := Process([]string{"007", "-0010"})
	if diff := cmp.Diff([]string{"007"}, got.OddNumbers); diff != "" {
		t.Errorf("odd numbers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"-0010"}, got.EvenNumbers); diff != "" {
		t.Errorf("even numbers mismatch (-want +got):\n%s", diff)
	}
	if got.Sum != "-3" {
		t.Errorf("expected sum -3, got %s", got.Sum)
	}
}

func TestProcess_Idempotent(t *testing.T) {
	input := []string{"2", "a", "y", "4", "&", "-", "*", "5", "92", "b"}
	first := Process(input)
	second := Process(input)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second call differs (-first +second):\n%s", diff)
	}
}

func TestProcess_Concurrent(t *testing.T) {
	input := []string{"a", "1", "334", "4", "R", "$"}
	want := Process(input)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if diff := cmp.Diff(want, Process(input)); diff != "" {
				t.Errorf("concurrent result mismatch:\n%s", diff)
			}
		}()
	}
	wg.Wait()
}

func TestAlternatingReverse(t *testing.T) {
	tests := map[string]string{
		"":      "",
		"a":     "A",
		"aR":    "Ra",
		"abc":   "CbA",
		"HELLO": "OlLeH",
	}
	for in, want := range tests {
		if got := AlternatingReverse(in); got != want {
			t.Errorf("AlternatingReverse(%q) = %q, want %q", in, got, want)
		}
	}
}
