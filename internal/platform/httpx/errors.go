// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the domain layer.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// UpstreamError is implemented by failures normalized at an upstream API
// boundary. UpstreamStatus returns the HTTP status the upstream replied
// with, zero when no response was received.
type UpstreamError interface {
	error
	UpstreamStatus() int
}

// RespondError maps domain and upstream errors to RFC7807 responses.
//
// Upstream failures keep their normalized message. A confirmed upstream 404
// is terminal (retryable=false); every other upstream failure is surfaced as
// a bad gateway with retryable=true so consumers can offer a retry action.
func RespondError(w http.ResponseWriter, err error) {
	var upstream UpstreamError
	switch {
	case errors.Is(err, ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error(), false)
	case errors.Is(err, ErrValidation):
		Problem(w, http.StatusBadRequest, "Validation Failed", err.Error(), false)
	case errors.Is(err, ErrUnauthorized):
		Problem(w, http.StatusUnauthorized, "Unauthorized", err.Error(), false)
	case errors.As(err, &upstream):
		if upstream.UpstreamStatus() == http.StatusNotFound {
			Problem(w, http.StatusNotFound, "Not Found", upstream.Error(), false)
			return
		}
		Problem(w, http.StatusBadGateway, "Upstream Error", upstream.Error(), true)
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "", false)
	}
}
