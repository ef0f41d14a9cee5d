package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// decodeProcessRequest reads a {"data": [...]} body and coerces every
// element to a token. Strings are used verbatim and numbers keep their
// literal JSON text; any other element is rejected.
func decodeProcessRequest(body io.Reader) ([]string, error) {
	dec := json.NewDecoder(body)

	var req map[string]json.RawMessage
	if err := dec.Decode(&req); err != nil {
		return nil, bodyError(err)
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, ErrInvalidBody
		}
		return nil, bodyError(err)
	}

	raw, ok := req["data"]
	if !ok {
		return nil, ErrMissingData
	}
	return decodeTokens(raw)
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return ErrBodyTooLarge
	}
	return ErrInvalidBody
}

func decodeTokens(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrDataNotArray
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, ErrDataNotArray
	}

	tokens := make([]string, 0, len(elems))
	for i, elem := range elems {
		dec := json.NewDecoder(bytes.NewReader(elem))
		dec.UseNumber()

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: index %d", ErrInvalidElement, i)
		}
		switch tv := v.(type) {
		case string:
			tokens = append(tokens, tv)
		case json.Number:
			tokens = append(tokens, tv.String())
		default:
			return nil, fmt.Errorf("%w: index %d", ErrInvalidElement, i)
		}
	}
	return tokens, nil
}
