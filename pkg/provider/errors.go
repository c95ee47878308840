package provider

import (
	"errors"
	"net/http"
)

// Stable application-level error codes for provider failures.
const (
	CodeRateLimited      = "RATE_LIMITED"
	CodeCreditsExhausted = "CREDITS_EXHAUSTED"
	CodeUpstreamError    = "UPSTREAM_ERROR"
	CodeConfigError      = "CONFIG_ERROR"
)

// StatusError is a normalized provider failure carrying a stable code, the
// HTTP status to surface, and the user-facing message.
type StatusError struct {
	Code    string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// Normalized provider errors.
var (
	ErrRateLimited = &StatusError{
		Code:    CodeRateLimited,
		Status:  http.StatusTooManyRequests,
		Message: "Rate limit exceeded. Please try again shortly.",
	}
	ErrCreditsExhausted = &StatusError{
		Code:    CodeCreditsExhausted,
		Status:  http.StatusPaymentRequired,
		Message: "AI credits exhausted. Please add credits in Settings.",
	}
	ErrNotConfigured = &StatusError{
		Code:    CodeConfigError,
		Status:  http.StatusInternalServerError,
		Message: "model provider token not configured; set the agent token environment variable",
	}
)

// ErrUpstream marks any other non-success upstream status or transport failure.
// It is surfaced generically; the raw status and body are logged, not returned.
var ErrUpstream = errors.New("upstream model request failed")

// MapStatus translates a known upstream HTTP status into its normalized error.
// Returns nil for any status outside the known set; callers proceed with
// normal response handling and treat remaining non-success statuses as
// ErrUpstream. This runs identically before every mode's result parsing.
func MapStatus(status int) error {
	switch status {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusPaymentRequired:
		return ErrCreditsExhausted
	default:
		return nil
	}
}

// MapHTTPStatus maps provider errors to the HTTP status to respond with.
func MapHTTPStatus(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return http.StatusInternalServerError
}
