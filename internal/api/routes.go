package api

import (
	"net/http"

	"github.com/JaimeStill/flux/internal/config"
	"github.com/JaimeStill/flux/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Intent.Handler(cfg.API.MaxRequestSizeBytes()).Routes(),
	)
}
