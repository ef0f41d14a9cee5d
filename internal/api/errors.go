package api

import "errors"

// Request validation errors. Their text is returned to clients.
var (
	ErrInvalidBody    = errors.New("invalid JSON body")
	ErrBodyTooLarge   = errors.New("request body too large")
	ErrMissingData    = errors.New("missing 'data' field in request")
	ErrDataNotArray   = errors.New("'data' must be an array")
	ErrInvalidElement = errors.New("'data' elements must be strings or numbers")
	ErrInvalidParam   = errors.New("invalid query parameter")
	ErrRateLimited    = errors.New("rate limit exceeded")
	ErrInternal       = errors.New("internal server error")
)
