package app

import (
	"log/slog"

	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/amirasaad/bankaccount/pkg/currency"
	"github.com/amirasaad/bankaccount/pkg/provider"
	"github.com/amirasaad/bankaccount/pkg/repository"
	"github.com/amirasaad/bankaccount/pkg/service/account"
)

// Deps holds the infrastructure the services are built from.
type Deps struct {
	Uow            repository.UnitOfWork
	Rates          currency.RateTable
	ExternalSystem provider.ExternalSystem
	Logger         *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AccountService *account.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:   deps,
		Config: cfg,
		AccountService: account.New(
			deps.Uow,
			deps.Rates,
			deps.ExternalSystem,
			deps.Logger,
		),
	}
}
