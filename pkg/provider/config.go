package provider

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds model provider connection parameters. A missing token is not a
// validation failure; it is surfaced per request as a configuration error so
// the service can start without credentials and report them cleanly.
type Config struct {
	BaseURL         string `toml:"base_url"`
	CompletionsPath string `toml:"completions_path"`
	Token           string `toml:"token"`
	Model           string `toml:"model"`
	RequestTimeout  string `toml:"request_timeout"`
}

// Env maps provider config fields to environment variable names for override injection.
type Env struct {
	BaseURL         string
	CompletionsPath string
	Token           string
	Model           string
	RequestTimeout  string
}

// Endpoint returns the full chat-completions URL.
func (c *Config) Endpoint() string {
	return strings.TrimSuffix(c.BaseURL, "/") + c.CompletionsPath
}

// Configured reports whether an upstream credential is present.
func (c *Config) Configured() bool {
	return c.Token != ""
}

// RequestTimeoutDuration returns RequestTimeout as a time.Duration.
func (c *Config) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.CompletionsPath != "" {
		c.CompletionsPath = overlay.CompletionsPath
	}
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com"
	}
	if c.CompletionsPath == "" {
		c.CompletionsPath = "/v1/chat/completions"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "2m"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.BaseURL != "" {
		if v := os.Getenv(env.BaseURL); v != "" {
			c.BaseURL = v
		}
	}
	if env.CompletionsPath != "" {
		if v := os.Getenv(env.CompletionsPath); v != "" {
			c.CompletionsPath = v
		}
	}
	if env.Token != "" {
		if v := os.Getenv(env.Token); v != "" {
			c.Token = v
		}
	}
	if env.Model != "" {
		if v := os.Getenv(env.Model); v != "" {
			c.Model = v
		}
	}
	if env.RequestTimeout != "" {
		if v := os.Getenv(env.RequestTimeout); v != "" {
			c.RequestTimeout = v
		}
	}
}

func (c *Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url required")
	}
	if !strings.HasPrefix(c.CompletionsPath, "/") {
		return fmt.Errorf("invalid completions_path: %s", c.CompletionsPath)
	}
	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	return nil
}
