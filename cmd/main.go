package main

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/trunov/resizehub/internal/app"
	"github.com/trunov/resizehub/internal/config"
	"github.com/trunov/resizehub/internal/logging"
)

func initSentry(cfg *config.SentryConfig, version string) error {
	return sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     version,
	})
}

func main() {
	cfg, err := config.Read()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to read configuration")
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	if err := initSentry(&cfg.Sentry, "v1"); err != nil {
		logging.Fatal().Err(err).Msg("sentry.Init failed")
	}

	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	app, err := app.New(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to build application")
	}

	if err := app.Run(); err != nil {
		logging.Fatal().Err(err).Msg("server stopped")
	}
}
