package news

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCountry  = errors.New("country is required")
	ErrUpstream        = errors.New("upstream error")
	ErrUnexpectedShape = errors.New("unexpected response shape")
	ErrNetwork         = errors.New("network error")
)

// UpstreamError is a non-2xx answer from the search provider. Body is kept
// for server-side diagnostics only.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// Kind names the failure class of err for logging.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCountry):
		return "missing_parameter"
	case errors.Is(err, ErrUpstream):
		return "upstream_error"
	case errors.Is(err, ErrUnexpectedShape):
		return "unexpected_response_shape"
	case errors.Is(err, ErrNetwork):
		return "network_error"
	default:
		return "unknown"
	}
}
