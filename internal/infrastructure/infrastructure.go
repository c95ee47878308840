// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, metrics, the provider client) that
// domain systems require.
package infrastructure

import (
	"log/slog"
	"os"

	"github.com/JaimeStill/flux/internal/config"
	"github.com/JaimeStill/flux/pkg/lifecycle"
	"github.com/JaimeStill/flux/pkg/metrics"
	"github.com/JaimeStill/flux/pkg/provider"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, metrics, and upstream model access.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *metrics.System
	Agent     *provider.Client
}

// New creates an Infrastructure from the application configuration. The
// provider client is constructed even when no credential is present; every
// upstream call reports the missing configuration itself.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	m := metrics.New(&cfg.Metrics)
	agent := provider.New(&cfg.Agent, logger)

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Metrics:   m,
		Agent:     agent,
	}, nil
}
