package catalog

import (
	"errors"
	"net/http"

	"github.com/bosta-shop/bosta/internal/platform/httpx"
)

// APIError is the single normalized failure shape produced at the network
// boundary. Status is zero when no HTTP response was received (timeouts,
// connection resets).
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// UpstreamStatus satisfies httpx.UpstreamError so the response layer can
// classify upstream failures without importing this package.
func (e *APIError) UpstreamStatus() int {
	return e.Status
}

var _ httpx.UpstreamError = (*APIError)(nil)

// IsNotFound reports whether err is a confirmed upstream 404. Callers use
// this to distinguish terminal absence from retryable failure.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Retryable reports whether a failed fetch is worth retrying. Everything
// except a confirmed 404 counts as transient.
func Retryable(err error) bool {
	return err != nil && !IsNotFound(err)
}
