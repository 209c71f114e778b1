package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Read builds the configuration from the environment. Deployments inject
// everything through env vars; there is no config file.
func Read() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Audit.Backend {
	case BackendDynamo:
	case BackendPostgres:
		if c.Database.DSN == "" {
			return errors.New("DATABASE_DSN is required for the postgres audit backend")
		}
	default:
		return fmt.Errorf("unknown audit backend %q", c.Audit.Backend)
	}

	switch c.Pipeline.FailurePolicy {
	case PolicyHalt, PolicyContinue:
	default:
		return fmt.Errorf("unknown failure policy %q", c.Pipeline.FailurePolicy)
	}

	return nil
}
