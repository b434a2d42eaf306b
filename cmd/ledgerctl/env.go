package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/tt99_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/tt99_ledger/internal/core/ports/services"
	"github.com/SscSPs/tt99_ledger/internal/core/services"
	"github.com/SscSPs/tt99_ledger/internal/platform/config"
	"github.com/SscSPs/tt99_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/tt99_ledger/pkg/database"
)

// env is what the subcommands share: where to write and how to reach the ledger.
type env struct {
	out    io.Writer
	errOut io.Writer

	// open returns the services and a func releasing their resources.
	open func(ctx context.Context) (*portssvc.ServiceContainer, func(), error)
	// migrate applies the schema migrations.
	migrate func() error
}

func newPostgresEnv() *env {
	return &env{
		out:    os.Stdout,
		errOut: os.Stderr,
		open: func(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
			cfg, err := loadPostgresConfig()
			if err != nil {
				return nil, nil, err
			}
			pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
			if err != nil {
				return nil, nil, err
			}
			container, err := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool), nil)
			if err != nil {
				pool.Close()
				return nil, nil, err
			}
			return container, pool.Close, nil
		},
		migrate: func() error {
			cfg, err := loadPostgresConfig()
			if err != nil {
				return err
			}
			return database.RunMigrations(cfg.DatabaseURL, slog.Default())
		},
	}
}

func loadPostgresConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.StorageDriver != config.StoragePostgres {
		return nil, fmt.Errorf("ledgerctl needs STORAGE_DRIVER=%s, got %q", config.StoragePostgres, cfg.StorageDriver)
	}
	return cfg, nil
}

// fail reports err on errOut, tagged with its error kind.
func (e *env) fail(msg string, err error) {
	fmt.Fprintf(e.errOut, "%s [%s]: %v\n", msg, apperrors.Kind(err), err)
}
