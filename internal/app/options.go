package app

import (
	"log/slog"
	"math/rand/v2"

	"github.com/thenoetrevino/leadboard/internal/config"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	cfg    *config.Config
	logger *slog.Logger
	rand   *rand.Rand
}

// WithConfig sets the loaded user configuration
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.cfg = cfg
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}

// WithRand fixes the mock API's random source
func WithRand(r *rand.Rand) Option {
	return func(c *appConfig) {
		c.rand = r
	}
}
