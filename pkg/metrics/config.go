package metrics

import "os"

// Config holds metrics system settings.
type Config struct {
	Namespace string `toml:"namespace"`
}

// ConfigEnv maps config fields to environment variable names for override injection.
type ConfigEnv struct {
	Namespace string
}

// Finalize applies defaults and environment variable overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Namespace != "" {
		c.Namespace = overlay.Namespace
	}
}

func (c *Config) loadDefaults() {
	if c.Namespace == "" {
		c.Namespace = "flux"
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.Namespace != "" {
		if v := os.Getenv(env.Namespace); v != "" {
			c.Namespace = v
		}
	}
}
