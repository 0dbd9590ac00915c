package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/focup/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger       *slog.Logger
	onError      func(error)
	gracePeriod  time.Duration
	pollInterval time.Duration
}

func defaultConfig() appConfig {
	return appConfig{
		logger:       slog.Default(),
		gracePeriod:  events.DefaultGracePeriod,
		pollInterval: events.DefaultPollInterval,
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithErrorHandler receives errors from background mutations
func WithErrorHandler(fn func(error)) Option {
	return func(cfg *appConfig) {
		cfg.onError = fn
	}
}

// WithGracePeriod sets how long the change feed stays warm without subscribers
func WithGracePeriod(d time.Duration) Option {
	return func(cfg *appConfig) {
		cfg.gracePeriod = d
	}
}

// WithPollInterval sets how often the change feed checks for commits made by
// other processes
func WithPollInterval(d time.Duration) Option {
	return func(cfg *appConfig) {
		cfg.pollInterval = d
	}
}
