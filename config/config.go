package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full process configuration, parsed from the environment at
// startup. A .env file, when present, is loaded into the environment first.
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL,required,notEmpty"`
	Port           int    `env:"PORT" envDefault:"3000"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	AllowedMethods string `env:"ALLOWED_METHODS" envDefault:"GET,POST,OPTIONS,DELETE"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	Environment    string `env:"ENVIRONMENT" envDefault:"development"`

	// BattleTTLMinutes enables the stale-battle sweeper when > 0. Waiting
	// battles older than the TTL are deleted once a minute. 0 disables it.
	BattleTTLMinutes int `env:"BATTLE_TTL_MINUTES" envDefault:"0"`
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
