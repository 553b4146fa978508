package components

import (
	"context"
	"log/slog"
	"sync"

	"vas-broker/internal/pkg/clock"
	"vas-broker/internal/pkg/config"
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/dispatch"
	"vas-broker/internal/usecase/outbox"
	"vas-broker/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewDispatcher,
		NewRelay,
	),
	fx.Invoke(
		SeedPricing,
		StartWorkers,
	),
)

func NewDispatcher(uow shared.UnitOfWork, lifecycle commands.LifecycleCommands, clk clock.Clock, logger *slog.Logger, cfg config.Config) *dispatch.Dispatcher {
	return dispatch.NewDispatcher(uow, lifecycle, clk, logger, dispatch.Config{
		Interval:                cfg.Dispatcher.Interval,
		BatchSize:               cfg.Dispatcher.BatchSize,
		AutoCompleteAllocations: cfg.Dispatcher.AutoCompleteAllocations,
	})
}

func NewRelay(uow shared.UnitOfWork, publisher outbox.Publisher, clk clock.Clock, logger *slog.Logger, cfg config.Config) *outbox.Relay {
	return outbox.NewRelay(uow, publisher, clk, logger, outbox.Config{
		Interval:  cfg.Outbox.Interval,
		BatchSize: cfg.Outbox.BatchSize,
	})
}

// SeedPricing fills in catalog default fees for categories an operator has not priced yet.
func SeedPricing(lc fx.Lifecycle, inventory commands.InventoryAdminCommands, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			n, err := inventory.SeedDefaultPricing(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.Info("seeded default pricing", "count", n)
			}
			return nil
		},
	})
}

func StartWorkers(lc fx.Lifecycle, cfg config.Config, d *dispatch.Dispatcher, r *outbox.Relay, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if cfg.Dispatcher.Enabled {
				wg.Add(1)
				go func() {
					defer wg.Done()
					d.Run(ctx)
				}()
			} else {
				logger.Info("dispatcher loop disabled, sweeps run on demand only")
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				r.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
