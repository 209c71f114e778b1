package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trunov/resizehub/cmd/migrate"
	"github.com/trunov/resizehub/internal/audit"
	"github.com/trunov/resizehub/internal/config"
	"github.com/trunov/resizehub/internal/logging"
	"github.com/trunov/resizehub/internal/pipeline"
	"github.com/trunov/resizehub/internal/s3"
	"github.com/trunov/resizehub/internal/transport/handler"
	"github.com/trunov/resizehub/internal/transport/router"
)

type App struct {
	HttpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	store, err := s3.NewStorage(&cfg.S3)
	if err != nil {
		return nil, err
	}

	auditStore, err := newAuditStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	proc := pipeline.NewProcessor(store, auditStore, cfg.S3.DestBucket, cfg.Pipeline.TmpDir)
	coord := pipeline.NewCoordinator(proc, failurePolicy(cfg.Pipeline.FailurePolicy))

	h := handler.New(coord)
	r := router.NewRouter(h)

	srv := &http.Server{
		Handler:      r,
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{
		HttpServer: srv,
	}, nil
}

func newAuditStore(ctx context.Context, cfg *config.Config) (pipeline.AuditStore, error) {
	switch cfg.Audit.Backend {
	case config.BackendPostgres:
		if err := migrate.Migrate(cfg.Database.DSN, migrate.Migrations); err != nil {
			return nil, err
		}
		return audit.NewPostgresStore(ctx, cfg.Database.DSN)
	default:
		return audit.NewDynamoStore(&cfg.Audit)
	}
}

func failurePolicy(name string) pipeline.FailurePolicy {
	if name == config.PolicyContinue {
		return pipeline.ContinueOnFailure
	}
	return pipeline.HaltOnFirstFailure
}

func (a *App) Run() error {
	logging.Info().Str("addr", a.HttpServer.Addr).Msg("starting server")
	return a.HttpServer.ListenAndServe()
}
