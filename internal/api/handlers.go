package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vietddude/bfhl/internal/core/generator"
	"github.com/vietddude/bfhl/internal/health"
)

// sampleInputs are the example payloads advertised by GET /bfhl.
var sampleInputs = map[string][]string{
	"basic":            {"a", "1", "334", "4", "R", "$"},
	"mixed":            {"2", "a", "y", "4", "&", "-", "*", "5", "92", "b"},
	"alphabets_only":   {"A", "ABcD", "DOE"},
	"numbers_only":     {"1", "2", "3", "4", "5"},
	"special_chars":    {"@", "#", "$", "%", "&"},
	"negative_numbers": {"-1", "2", "a", "B", "&"},
	"empty":            {},
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if s.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	}

	tokens, err := decodeProcessRequest(r.Body)
	if err != nil {
		s.log.Debug("Rejected request", "error", err, "request_id", RequestID(r.Context()))
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, s.svc.Classify(tokens))
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, InfoResponse{
		Message:        "BFHL API",
		Usage:          "Send POST request with JSON body containing 'data' array",
		Examples:       sampleInputs,
		Endpoint:       "/bfhl",
		Method:         http.MethodPost,
		GenerateData:   "/bfhl/generate",
		MethodGenerate: http.MethodGet,
		DataTypes:      generator.Kinds(),
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	params, err := parseGenerateParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	data, used, err := s.svc.Generate(params)
	if err != nil {
		if errors.Is(err, generator.ErrUnknownKind) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		s.log.Error("Failed to generate data", "error", err)
		writeError(w, http.StatusInternalServerError, ErrInternal)
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		IsSuccess:      true,
		GeneratedData:  data,
		Parameters:     used,
		Usage:          "Use this data in POST /bfhl endpoint",
		ExampleRequest: ProcessRequest{Data: data},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.monitor.CheckHealth(r.Context())

	status := http.StatusOK
	if report.SystemStatus == health.StatusCritical {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:   string(report.SystemStatus),
		Message:  "BFHL API is running",
		Endpoint: "/bfhl",
		Method:   http.MethodPost,
	})
}

func (s *Server) handleDetailed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.monitor.CheckHealth(r.Context()))
}

func parseGenerateParams(q url.Values) (generator.Params, error) {
	p := generator.DefaultParams()
	if v := q.Get("type"); v != "" {
		p.Kind = generator.Kind(v)
	}

	var err error
	if p.Count, err = intParam(q, "count", p.Count); err != nil {
		return p, err
	}
	if p.MinLength, err = intParam(q, "min_length", p.MinLength); err != nil {
		return p, err
	}
	if p.MaxLength, err = intParam(q, "max_length", p.MaxLength); err != nil {
		return p, err
	}
	return p, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidParam, name)
	}
	return n, nil
}
