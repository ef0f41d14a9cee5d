// Package generator produces sample token lists for exercising the classifier.
package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Kind selects the shape of generated data.
type Kind string

const (
	KindRandom    Kind = "random"
	KindMixed     Kind = "mixed"
	KindNumbers   Kind = "numbers"
	KindAlphabets Kind = "alphabets"
	KindSpecial   Kind = "special"
	KindPattern   Kind = "pattern"

	// Edge cases return fixed-shape data and ignore Count.
	KindEmpty           Kind = "empty"
	KindSingle          Kind = "single"
	KindLargeNumbers    Kind = "large_numbers"
	KindVeryLongStrings Kind = "very_long_strings"
	KindMixedCase       Kind = "mixed_case"
	KindUnicode         Kind = "unicode"
	KindSpaces          Kind = "spaces"
	KindNewlines        Kind = "newlines"
)

const (
	DefaultCount     = 10
	DefaultMinLength = 1
	DefaultMaxLength = 5
	DefaultMaxCount  = 50

	// MaxWordLength bounds MinLength and MaxLength.
	MaxWordLength = 100
)

var ErrUnknownKind = errors.New("unknown data type")

var (
	specialChars = []string{"@", "#", "$", "%", "&", "*", "-", "+", "=", "!", "?", "^", "~"}
	patternChars = []string{"@", "#", "$", "%", "&"}
	letters      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Kinds lists every supported kind.
func Kinds() []Kind {
	return []Kind{
		KindRandom, KindMixed, KindNumbers, KindAlphabets, KindSpecial, KindPattern,
		KindEmpty, KindSingle, KindLargeNumbers, KindVeryLongStrings,
		KindMixedCase, KindUnicode, KindSpaces, KindNewlines,
	}
}

// Params controls a single generation.
type Params struct {
	Kind      Kind `json:"type"`
	Count     int  `json:"count"`
	MinLength int  `json:"min_length"`
	MaxLength int  `json:"max_length"`
}

// DefaultParams returns the parameters used when a caller supplies none.
func DefaultParams() Params {
	return Params{
		Kind:      KindRandom,
		Count:     DefaultCount,
		MinLength: DefaultMinLength,
		MaxLength: DefaultMaxLength,
	}
}

// Normalize clamps p into a usable range. maxCount <= 0 disables the count
// cap; word lengths are always capped at MaxWordLength.
func (p Params) Normalize(maxCount int) Params {
	if p.Kind == "" {
		p.Kind = KindRandom
	}
	if p.Count < 0 {
		p.Count = 0
	}
	if maxCount > 0 && p.Count > maxCount {
		p.Count = maxCount
	}
	if p.MinLength < 1 {
		p.MinLength = 1
	}
	if p.MinLength > MaxWordLength {
		p.MinLength = MaxWordLength
	}
	if p.MaxLength > MaxWordLength {
		p.MaxLength = MaxWordLength
	}
	if p.MaxLength < p.MinLength {
		p.MaxLength = p.MinLength
	}
	return p
}

// Generator creates token lists. It is safe for concurrent use.
type Generator struct {
	mu       sync.Mutex
	rng      *rand.Rand
	maxCount int
}

// New creates a generator seeded from the clock.
func New(maxCount int) *Generator {
	seed := uint64(time.Now().UnixNano())
	return NewSeeded(maxCount, seed)
}

// NewSeeded creates a deterministic generator.
func NewSeeded(maxCount int, seed uint64) *Generator {
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}
	return &Generator{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		maxCount: maxCount,
	}
}

// MaxCount returns the cap applied to Params.Count.
func (g *Generator) MaxCount() int {
	return g.maxCount
}

// Generate returns data for p after normalization, together with the
// normalized parameters actually used.
func (g *Generator) Generate(p Params) ([]string, Params, error) {
	p = p.Normalize(g.maxCount)

	g.mu.Lock()
	defer g.mu.Unlock()

	var data []string
	switch p.Kind {
	case KindRandom:
		data = make([]string, 0, p.Count)
		for range p.Count {
			switch g.rng.IntN(3) {
			case 0:
				data = append(data, g.number(-100, 100))
			case 1:
				data = append(data, g.word(p.MinLength, p.MaxLength))
			default:
				data = append(data, g.special())
			}
		}
	case KindMixed:
		numCount := p.Count / 3
		alphaCount := p.Count / 3
		data = make([]string, 0, p.Count)
		for range numCount {
			data = append(data, g.number(-50, 50))
		}
		for range alphaCount {
			data = append(data, g.word(p.MinLength, p.MaxLength))
		}
		for range p.Count - numCount - alphaCount {
			data = append(data, g.special())
		}
	case KindNumbers:
		data = make([]string, 0, p.Count)
		for range p.Count {
			data = append(data, g.number(-100, 100))
		}
	case KindAlphabets:
		data = make([]string, 0, p.Count)
		for range p.Count {
			data = append(data, g.word(p.MinLength, p.MaxLength))
		}
	case KindSpecial:
		data = make([]string, 0, p.Count)
		for range p.Count {
			data = append(data, g.special())
		}
	case KindPattern:
		data = make([]string, 0, p.Count)
		for i := range p.Count {
			switch i % 3 {
			case 0:
				data = append(data, strconv.Itoa(i))
			case 1:
				data = append(data, string(rune('a'+i%26)))
			default:
				data = append(data, patternChars[i%len(patternChars)])
			}
		}
	default:
		edge, err := g.edgeCase(p.Kind)
		if err != nil {
			return nil, p, err
		}
		return edge, p, nil
	}

	g.rng.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })
	return data, p, nil
}

func (g *Generator) edgeCase(kind Kind) ([]string, error) {
	switch kind {
	case KindEmpty:
		return []string{}, nil
	case KindSingle:
		return []string{"a"}, nil
	case KindLargeNumbers:
		data := make([]string, 0, 5)
		for range 5 {
			data = append(data, g.number(1000000, 9999999))
		}
		return data, nil
	case KindVeryLongStrings:
		return []string{g.word(50, 50), g.word(50, 50), g.word(50, 50)}, nil
	case KindMixedCase:
		return []string{"a", "B", "c", "D", "e", "F"}, nil
	case KindUnicode:
		return []string{"ñ", "é", "ü", "ß", "å", "ø"}, nil
	case KindSpaces:
		return []string{" ", "  ", "   ", "    ", "     "}, nil
	case KindNewlines:
		return []string{"\n", "\r", "\t", "\f", "\v"}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// number returns a decimal integer in [lo, hi].
func (g *Generator) number(lo, hi int) string {
	return strconv.Itoa(lo + g.rng.IntN(hi-lo+1))
}

func (g *Generator) word(minLen, maxLen int) string {
	n := minLen + g.rng.IntN(maxLen-minLen+1)
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(letters[g.rng.IntN(len(letters))])
	}
	return b.String()
}

func (g *Generator) special() string {
	return specialChars[g.rng.IntN(len(specialChars))]
}
