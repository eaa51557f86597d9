package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/bankaccount/infra"
	infra_provider "github.com/amirasaad/bankaccount/infra/provider"
	infra_repository "github.com/amirasaad/bankaccount/infra/repository"
	"github.com/amirasaad/bankaccount/infra/repository/memory"
	"github.com/amirasaad/bankaccount/pkg/app"
	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/amirasaad/bankaccount/pkg/repository"
)

type uowFactory func(cfg *config.App, logger *slog.Logger) (repository.UnitOfWork, error)

var uowFactories = map[string]uowFactory{
	config.DriverPostgres: newPostgresUoW,
	config.DriverMemory: func(_ *config.App, logger *slog.Logger) (repository.UnitOfWork, error) {
		logger.Warn("Using in-memory store; data is lost on exit")
		return memory.NewUoW(), nil
	},
}

func newPostgresUoW(cfg *config.App, logger *slog.Logger) (repository.UnitOfWork, error) {
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.DB.MigrationsPath != "" {
		if err := infra.RunMigrations(db, cfg.DB.MigrationsPath, logger); err != nil {
			return nil, err
		}
	}
	return infra_repository.NewUoW(db), nil
}

// InitializeDependencies wires the store, rate table and external system
// client selected by cfg.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)

	factory, ok := uowFactories[cfg.DB.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
	uow, err := factory(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize store", "driver", cfg.DB.Driver, "error", err)
		return nil, err
	}

	rates := currency.DefaultRates()
	logger.Info("Dependencies initialized",
		"driver", cfg.DB.Driver,
		"currencies", rates.Supported(),
		"external_system_url", cfg.ExternalSystem.URL,
	)

	return &app.Deps{
		Uow:            uow,
		Rates:          rates,
		ExternalSystem: infra_provider.NewExternalSystemClient(cfg.ExternalSystem, logger),
		Logger:         logger,
	}, nil
}
