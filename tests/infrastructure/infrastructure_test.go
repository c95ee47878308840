package infrastructure_test

import (
	"testing"

	"github.com/JaimeStill/flux/internal/config"
	"github.com/JaimeStill/flux/internal/infrastructure"
	"github.com/JaimeStill/flux/pkg/metrics"
	"github.com/JaimeStill/flux/pkg/provider"
)

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     "1m",
			WriteTimeout:    "15m",
			ShutdownTimeout: "30s",
		},
		Agent: provider.Config{
			BaseURL:         "http://localhost:11434",
			CompletionsPath: "/v1/chat/completions",
			Token:           "sk-test",
			Model:           "gpt-4o-mini",
			RequestTimeout:  "2m",
		},
		API: config.APIConfig{
			BasePath:       "/api",
			MaxRequestSize: "1MB",
		},
		Metrics:         metrics.Config{Namespace: "flux"},
		ShutdownTimeout: "30s",
		Version:         "0.1.0",
	}
}

func TestNew(t *testing.T) {
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("infrastructure.New() error = %v", err)
	}

	if infra.Lifecycle == nil {
		t.Error("lifecycle is nil")
	}
	if infra.Logger == nil {
		t.Error("logger is nil")
	}
	if infra.Metrics == nil {
		t.Error("metrics is nil")
	}
	if infra.Agent == nil {
		t.Error("agent is nil")
	}
}

func TestNewWithoutToken(t *testing.T) {
	cfg := validConfig()
	cfg.Agent.Token = ""

	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("infrastructure.New() should succeed without a token: %v", err)
	}
	if infra.Agent.Configured() {
		t.Error("agent should not report configured without a token")
	}
}
