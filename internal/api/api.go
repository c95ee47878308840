// Package api assembles the API module with the intent domain system, route
// registration, and middleware.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/flux/internal/config"
	"github.com/JaimeStill/flux/internal/infrastructure"
	"github.com/JaimeStill/flux/pkg/middleware"
	"github.com/JaimeStill/flux/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// Middleware order matters: Recover wraps everything, CORS must short-circuit
// preflight before logging, and Metrics observes what Logger records.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	doc, err := specDocument(cfg)
	if err != nil {
		return nil, fmt.Errorf("openapi document: %w", err)
	}
	registerSpec(mux, doc)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.Recover(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.Metrics(runtime.Metrics))

	return m, nil
}
