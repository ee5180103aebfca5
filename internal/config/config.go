package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Engine selection values for Config.SearchEngine.
const (
	EngineElasticsearch = "elasticsearch"
	EngineMemory        = "memory"
)

// Config holds all configuration for the catalog search service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Elasticsearch
	ElasticsearchURL   string `env:"ELASTICSEARCH_URL" envDefault:"http://localhost:9200"`
	ElasticsearchIndex string `env:"ELASTICSEARCH_INDEX" envDefault:"catalog_products"`

	// Primary search path selection (elasticsearch or memory). The
	// in-memory path always remains available as the fallback.
	SearchEngine string `env:"SEARCH_ENGINE" envDefault:"elasticsearch"`

	// SearchTimeout bounds a single Elasticsearch request; once it
	// elapses the request falls back to the in-memory path.
	SearchTimeout time.Duration `env:"SEARCH_TIMEOUT" envDefault:"2s"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.SearchTimeout <= 0 {
		return fmt.Errorf("search timeout must be positive, got %s", c.SearchTimeout)
	}
	switch c.SearchEngine {
	case EngineElasticsearch, EngineMemory:
	default:
		return fmt.Errorf("unknown search engine %q", c.SearchEngine)
	}
	return nil
}
