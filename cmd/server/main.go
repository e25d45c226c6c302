package main

import (
	"context"
	"fmt"

	log "github.com/charmbracelet/log"

	"github.com/amirasaad/bank/config"
	"github.com/amirasaad/bank/infra/notifier"
	"github.com/amirasaad/bank/infra/repository/gormrepo"
	mongorepo "github.com/amirasaad/bank/infra/repository/mongo"
	"github.com/amirasaad/bank/infra/whitelist"
	"github.com/amirasaad/bank/pkg/domain/account"
	"github.com/amirasaad/bank/pkg/registry"
	"github.com/amirasaad/bank/pkg/repository"
	"github.com/amirasaad/bank/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := config.SetupLogger(cfg.Log)

	policy, err := account.ParsePromoPolicy(cfg.Promo.Policy)
	if err != nil {
		return err
	}

	var repo repository.AccountsRepository
	switch cfg.Persistence.Driver {
	case "postgres":
		repo, err = gormrepo.New(cfg.Persistence.Postgres, logger)
	default:
		repo, err = mongorepo.New(context.Background(), cfg.Persistence.Mongo, logger)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}

	deps := &webapi.Deps{
		Registry:    registry.New(),
		Repo:        repo,
		Whitelist:   whitelist.New(cfg.Whitelist, logger),
		Notifier:    notifier.New(cfg.SMTP, logger),
		PromoPolicy: policy,
		Logger:      logger,
		Config:      cfg,
	}

	app := webapi.NewApp(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"persistence_driver", cfg.Persistence.Driver,
		"promo_policy", policy,
	)
	return app.Listen(addr)
}
