package provider_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/flux/pkg/provider"
)

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := provider.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.BaseURL != "https://api.openai.com" {
		t.Errorf("base_url: got %s", cfg.BaseURL)
	}
	if cfg.CompletionsPath != "/v1/chat/completions" {
		t.Errorf("completions_path: got %s", cfg.CompletionsPath)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model: got %s", cfg.Model)
	}
	if cfg.RequestTimeout != "2m" {
		t.Errorf("request_timeout: got %s", cfg.RequestTimeout)
	}
}

func TestConfigMissingTokenValid(t *testing.T) {
	cfg := provider.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize should succeed without a token: %v", err)
	}
	if cfg.Configured() {
		t.Error("should not report configured without a token")
	}
}

func TestConfigFinalizeEnv(t *testing.T) {
	t.Setenv("TEST_AGENT_BASE_URL", "http://localhost:11434")
	t.Setenv("TEST_AGENT_TOKEN", "sk-test")
	t.Setenv("TEST_AGENT_MODEL", "llama3.1:8b")

	env := &provider.Env{
		BaseURL: "TEST_AGENT_BASE_URL",
		Token:   "TEST_AGENT_TOKEN",
		Model:   "TEST_AGENT_MODEL",
	}

	cfg := provider.Config{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.BaseURL != "http://localhost:11434" {
		t.Errorf("base_url: got %s", cfg.BaseURL)
	}
	if !cfg.Configured() {
		t.Error("should report configured with env token")
	}
	if cfg.Model != "llama3.1:8b" {
		t.Errorf("model: got %s", cfg.Model)
	}
}

func TestConfigEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		path    string
		want    string
	}{
		{"plain", "https://api.openai.com", "/v1/chat/completions", "https://api.openai.com/v1/chat/completions"},
		{"trailing slash", "https://api.openai.com/", "/v1/chat/completions", "https://api.openai.com/v1/chat/completions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := provider.Config{BaseURL: tt.baseURL, CompletionsPath: tt.path}
			if got := cfg.Endpoint(); got != tt.want {
				t.Errorf("endpoint: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*provider.Config)
		wantErr bool
	}{
		{"valid defaults", func(c *provider.Config) {}, false},
		{"bad completions path", func(c *provider.Config) { c.CompletionsPath = "chat" }, true},
		{"bad request timeout", func(c *provider.Config) { c.RequestTimeout = "whenever" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := provider.Config{}
			if err := cfg.Finalize(nil); err != nil {
				t.Fatalf("finalize failed: %v", err)
			}
			tt.mutate(&cfg)

			err := cfg.Finalize(nil)
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := provider.Config{
		BaseURL: "https://api.openai.com",
		Model:   "gpt-4o-mini",
	}
	overlay := provider.Config{
		Token: "sk-overlay",
		Model: "gpt-4o",
	}

	base.Merge(&overlay)

	if base.BaseURL != "https://api.openai.com" {
		t.Errorf("base_url: got %s", base.BaseURL)
	}
	if base.Token != "sk-overlay" {
		t.Errorf("token: got %s", base.Token)
	}
	if base.Model != "gpt-4o" {
		t.Errorf("model: got %s", base.Model)
	}
}

func TestRequestTimeoutDuration(t *testing.T) {
	cfg := provider.Config{RequestTimeout: "2m"}
	if cfg.RequestTimeoutDuration() != 2*time.Minute {
		t.Errorf("request timeout: got %v", cfg.RequestTimeoutDuration())
	}
}
