package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vietddude/bfhl/internal/core/generator"
)

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	IsSuccess bool   `json:"is_success"`
	Error     string `json:"error"`
}

// ProcessRequest is the body accepted by POST /bfhl.
type ProcessRequest struct {
	Data []string `json:"data"`
}

// GenerateResponse is returned by GET /bfhl/generate.
type GenerateResponse struct {
	IsSuccess      bool             `json:"is_success"`
	GeneratedData  []string         `json:"generated_data"`
	Parameters     generator.Params `json:"parameters"`
	Usage          string           `json:"usage"`
	ExampleRequest ProcessRequest   `json:"example_request"`
}

// InfoResponse is returned by GET /bfhl.
type InfoResponse struct {
	Message        string              `json:"message"`
	Usage          string              `json:"usage"`
	Examples       map[string][]string `json:"examples"`
	Endpoint       string              `json:"endpoint"`
	Method         string              `json:"method"`
	GenerateData   string              `json:"generate_data"`
	MethodGenerate string              `json:"method_generate"`
	DataTypes      []generator.Kind    `json:"data_types"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Endpoint string `json:"endpoint"`
	Method   string `json:"method"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{IsSuccess: false, Error: err.Error()})
}
