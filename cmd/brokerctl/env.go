package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"vas-broker/internal/infra/db"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/infra/uow"
	"vas-broker/internal/pkg/catalog"
	"vas-broker/internal/pkg/clock"
	"vas-broker/internal/pkg/config"
	"vas-broker/internal/pkg/jwt"
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/dispatch"
)

// env holds the use cases a command may call. Everything is built eagerly; the set is small.
type env struct {
	cfg        config.Config
	logger     *slog.Logger
	lifecycle  commands.LifecycleCommands
	wallet     commands.WalletCommands
	agents     commands.AgentAdminCommands
	inventory  commands.InventoryAdminCommands
	dispatcher *dispatch.Dispatcher
	jwt        *jwt.Service
}

func newEnv(ctx context.Context, cfg config.Config) (*env, func(), error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, nil, err
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}

	u := uow.NewPostgresUoW(pool, sqlc.New())
	clk := clock.NewRealClock()
	lifecycle := commands.NewLifecycleCommands(u, clk, logger)

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		duration = time.Hour
	}

	return &env{
		cfg:       cfg,
		logger:    logger,
		lifecycle: lifecycle,
		wallet:    commands.NewWalletCommands(u, clk, logger),
		agents:    commands.NewAgentAdminCommands(u, clk, logger),
		inventory: commands.NewInventoryAdminCommands(u, cat, clk, logger),
		dispatcher: dispatch.NewDispatcher(u, lifecycle, clk, logger, dispatch.Config{
			BatchSize:               cfg.Dispatcher.BatchSize,
			AutoCompleteAllocations: cfg.Dispatcher.AutoCompleteAllocations,
		}),
		jwt: jwt.NewService(cfg.JWT.Secret, duration),
	}, cleanup, nil
}
