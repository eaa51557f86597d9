package main

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/bankaccount/infra/initializer"
	"github.com/amirasaad/bankaccount/pkg/app"
	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/amirasaad/bankaccount/webapi"
	log "github.com/charmbracelet/log"
)

// @title Bank Account API
// @version 1.0.0
// @description Multi-currency bank account ledger
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Default().Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"driver", cfg.DB.Driver,
	)
	return fiberApp.Listen(addr)
}
