package api

import (
	"github.com/JaimeStill/flux/internal/config"
	"github.com/JaimeStill/flux/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	API config.APIConfig
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Metrics:   infra.Metrics,
			Agent:     infra.Agent,
		},
		API: cfg.API,
	}
}
