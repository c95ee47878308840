package intent

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/flux/pkg/provider"
)

// ErrInvalidEnvelope marks a request body that does not decode as an Envelope.
var ErrInvalidEnvelope = errors.New("invalid request envelope")

// MapHTTPStatus maps dispatcher errors to appropriate HTTP status codes.
// Provider errors carry their own status; everything else is a generic 500.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidEnvelope) {
		return http.StatusBadRequest
	}
	return provider.MapHTTPStatus(err)
}
