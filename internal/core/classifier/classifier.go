// Package classifier partitions string tokens into numeric, alphabetic and
// special buckets and derives the aggregate fields of a ClassificationResult.
package classifier

import (
	"math/big"
	"strings"

	"github.com/vietddude/bfhl/internal/core/domain"
)

// Process classifies every token and builds the result. It never fails:
// an empty or nil input yields empty buckets, sum "0" and an empty concat string.
func Process(tokens []string) domain.ClassificationResult {
	result := domain.ClassificationResult{
		OddNumbers:        []string{},
		EvenNumbers:       []string{},
		Alphabets:         []string{},
		SpecialCharacters: []string{},
	}

	sum := new(big.Int)
	value := new(big.Int)
	var letters strings.Builder

	for _, token := range tokens {
		switch Classify(token) {
		case domain.CategoryOdd:
			result.OddNumbers = append(result.OddNumbers, token)
			value.SetString(token, 10)
			sum.Add(sum, value)
		case domain.CategoryEven:
			result.EvenNumbers = append(result.EvenNumbers, token)
			value.SetString(token, 10)
			sum.Add(sum, value)
		case domain.CategoryAlphabet:
			result.Alphabets = append(result.Alphabets, strings.ToUpper(token))
			letters.WriteString(token)
		default:
			result.SpecialCharacters = append(result.SpecialCharacters, token)
		}
	}

	result.Sum = sum.String()
	result.ConcatString = AlternatingReverse(letters.String())
	return result
}

// Classify returns the bucket a single token belongs to.
func Classify(token string) domain.Category {
	if IsInteger(token) {
		// Parity of a base-10 integer is the parity of its last digit, sign included.
		if (token[len(token)-1]-'0')%2 == 0 {
			return domain.CategoryEven
		}
		return domain.CategoryOdd
	}
	if isAlphabetic(token) {
		return domain.CategoryAlphabet
	}
	return domain.CategorySpecial
}

// AlternatingReverse reverses s and upper-cases characters at even positions
// of the reversed string, lower-casing the rest. s is expected to be ASCII letters.
func AlternatingReverse(s string) string {
	if s == "" {
		return ""
	}
	out := make([]byte, len(s))
	for i := range len(s) {
		c := s[len(s)-1-i]
		if i%2 == 0 {
			out[i] = toUpper(c)
		} else {
			out[i] = toLower(c)
		}
	}
	return string(out)
}

// IsInteger reports whether s is an optional '-' followed by one or more ASCII digits.
func IsInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
