package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"campaign-vault/internal/config/configs"
	"campaign-vault/internal/core/domain"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Storage  configs.Storage  `envPrefix:"STORAGE_"`
	Campaign configs.Campaign `envPrefix:"CAMPAIGN_"`
	Metrics  configs.Metrics  `envPrefix:"METRICS_"`
	Seed     configs.Seed     `envPrefix:"SEED_"`
}

// Load reads configuration from environment variables into a Config and
// validates it. All fields are loaded with their specified defaults when no
// environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case configs.StorageDriverPostgres, configs.StorageDriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Campaign.FeeBps > domain.MaxFeeBps {
		return fmt.Errorf("campaign fee %d bps exceeds %d", c.Campaign.FeeBps, domain.MaxFeeBps)
	}
	if c.Campaign.TTL <= 0 {
		return fmt.Errorf("campaign ttl must be positive, got %s", c.Campaign.TTL)
	}
	if c.Campaign.Controller == "" {
		return errors.New("campaign controller identity is required")
	}
	return nil
}
