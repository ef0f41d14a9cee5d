// Package service binds the classifier and generator to the configured
// identity and records metrics for every call. Transports share one Service.
package service

import (
	"time"

	"github.com/vietddude/bfhl/internal/core/classifier"
	"github.com/vietddude/bfhl/internal/core/domain"
	"github.com/vietddude/bfhl/internal/core/generator"
	"github.com/vietddude/bfhl/internal/metrics"
)

// Service answers classification and generation requests.
type Service struct {
	identity  domain.Identity
	generator *generator.Generator
	now       func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock overrides the clock used to stamp user IDs.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a new Service.
func New(identity domain.Identity, gen *generator.Generator, opts ...Option) *Service {
	s := &Service{
		identity:  identity,
		generator: gen,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Identity returns the identity stamped on responses.
func (s *Service) Identity() domain.Identity {
	return s.identity
}

// Classify runs the classifier and wraps the result in a successful response.
func (s *Service) Classify(tokens []string) domain.Response {
	result := classifier.Process(tokens)
	recordClassified(result)

	return domain.Response{
		IsSuccess:            true,
		UserID:               s.identity.UserID(s.now()),
		Email:                s.identity.Email,
		RollNumber:           s.identity.RollNumber,
		ClassificationResult: result,
	}
}

// Generate produces sample data. The returned params are the normalized ones.
func (s *Service) Generate(p generator.Params) ([]string, generator.Params, error) {
	data, used, err := s.generator.Generate(p)
	if err != nil {
		return nil, used, err
	}
	metrics.TokensGenerated.WithLabelValues(string(used.Kind)).Add(float64(len(data)))
	return data, used, nil
}

// MaxCount returns the generator's count cap.
func (s *Service) MaxCount() int {
	return s.generator.MaxCount()
}

func recordClassified(r domain.ClassificationResult) {
	counts := map[domain.Category]int{
		domain.CategoryOdd:      len(r.OddNumbers),
		domain.CategoryEven:     len(r.EvenNumbers),
		domain.CategoryAlphabet: len(r.Alphabets),
		domain.CategorySpecial:  len(r.SpecialCharacters),
	}
	for category, n := range counts {
		if n > 0 {
			metrics.TokensClassified.WithLabelValues(string(category)).Add(float64(n))
		}
	}
}
