package outbox

import (
	"context"
	"log/slog"
	"time"

	"vas-broker/internal/pkg/clock"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/metrics"
	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

// Publisher delivers one lifecycle event to the event bus.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type Config struct {
	Interval  time.Duration
	BatchSize int
}

// Relay moves committed outbox rows to the event bus. Delivery is at least once:
// a crash between publish and mark sends the event again.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	logger    *slog.Logger
	cfg       Config
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, logger *slog.Logger, cfg Config) *Relay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Second
	}
	return &Relay{uow: uow, publisher: publisher, clock: clk, logger: logger, cfg: cfg}
}

func (r *Relay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		if _, err := r.Flush(ctx); err != nil && ctx.Err() == nil {
			r.logger.Warn("outbox flush failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Flush publishes one batch of pending events in order and returns how many were sent.
// Events after the first publish failure stay pending for the next flush.
// No transaction is open while the bus is called; concurrent relays may send
// the same event twice.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	var events []shared.OutboxEvent
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		events, err = tx.Outbox().Pending(ctx, r.cfg.BatchSize)
		return err
	})
	if err != nil {
		return 0, err
	}

	var publishErr error
	sent := make([]shared.OutboxEvent, 0, len(events))
	for _, ev := range events {
		if err := r.publisher.Publish(ctx, ev.Topic, ev.Payload); err != nil {
			publishErr = errs.Wrapf(err, "publish %s event %s", ev.Topic, ev.ID)
			break
		}
		sent = append(sent, ev)
	}
	if len(sent) == 0 {
		return 0, publishErr
	}

	ids := make([]uuid.UUID, len(sent))
	for i, ev := range sent {
		ids[i] = ev.ID
	}
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Outbox().MarkPublished(ctx, ids, r.clock.Now())
	})
	if err != nil {
		return 0, errs.Wrapf(err, "mark %d published events", len(ids))
	}
	for _, ev := range sent {
		metrics.OutboxPublished.WithLabelValues(ev.Topic).Inc()
	}
	return len(sent), publishErr
}
