// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"github.com/caarlos0/env/v11"
	"time"
)

// Config runtime settings
type Config struct {
	// Addr the local session server listens on
	Addr string `env:"CIVIC_SYNC_ADDR" envDefault:":8080"`

	// BackendURL base url of the project backend
	BackendURL string `env:"CIVIC_SYNC_BACKEND_URL" envDefault:"http://localhost:8000"`

	// CoinbaseURL base url of the exchange rate API
	CoinbaseURL string `env:"CIVIC_SYNC_COINBASE_URL" envDefault:"https://api.coinbase.com/v2"`

	// RateRefresh how often cached exchange rates are refreshed
	RateRefresh time.Duration `env:"CIVIC_SYNC_RATE_REFRESH" envDefault:"1m"`

	ConvertDelay  time.Duration `env:"CIVIC_SYNC_CONVERT_DELAY" envDefault:"500ms"`
	SearchDelay   time.Duration `env:"CIVIC_SYNC_SEARCH_DELAY" envDefault:"300ms"`
	SearchLatency time.Duration `env:"CIVIC_SYNC_SEARCH_LATENCY" envDefault:"300ms"`

	// Seed for synthesized locations and title suggestions; 0 picks a random seed
	Seed int64 `env:"CIVIC_SYNC_SEED"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
