package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the CODEBREAKER_* environment variables.
// Numeric and boolean fields are nil when the variable is unset.
type Env struct {
	Colors      *int   `env:"CODEBREAKER_COLORS"`
	Guesses     *int   `env:"CODEBREAKER_GUESSES"`
	Holes       *int   `env:"CODEBREAKER_HOLES"`
	NoDuplicate *bool  `env:"CODEBREAKER_NO_DUPLICATE"`
	Preset      string `env:"CODEBREAKER_PRESET"`
	LogLevel    string `env:"CODEBREAKER_LOG_LEVEL"`
}

// LoadEnv reads the environment overlay.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}

// Overrides returns the game settings carried by the environment.
func (e Env) Overrides() Overrides {
	return Overrides{
		Colors:      e.Colors,
		Guesses:     e.Guesses,
		Holes:       e.Holes,
		NoDuplicate: e.NoDuplicate,
	}
}
