package bootstrap

import (
	"context"
	"log/slog"

	"vas-broker/internal/infra/eventbus"
	"vas-broker/internal/pkg/config"
	"vas-broker/internal/usecase/outbox"

	"go.uber.org/fx"
)

var EventBusModule = fx.Module("eventbus",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher connects to NATS when NATS_URL is set and otherwise logs events.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (outbox.Publisher, error) {
	if cfg.NATS.URL == "" {
		logger.Warn("NATS_URL not set, lifecycle events go to the log only")
		return eventbus.NewLogPublisher(logger), nil
	}

	conn, err := eventbus.Connect(cfg.NATS.URL, "vas-broker", logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Drain()
		},
	})

	return eventbus.NewNATSPublisher(conn, cfg.NATS.SubjectPrefix), nil
}
