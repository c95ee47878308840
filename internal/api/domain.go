package api

import (
	"github.com/JaimeStill/flux/internal/intent"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Intent intent.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	intentSystem := intent.New(
		runtime.Agent,
		runtime.Logger,
		runtime.Metrics,
	)

	return &Domain{
		Intent: intentSystem,
	}
}
