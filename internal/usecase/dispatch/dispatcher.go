package dispatch

import (
	"context"
	"log/slog"
	"time"

	"vas-broker/internal/domain/request"
	"vas-broker/internal/pkg/clock"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/metrics"
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	kindAgent     = "agent"
	kindInventory = "inventory"

	reasonNoAgent = "no_agent"
	reasonNoStock = "no_stock"
)

type Config struct {
	Interval  time.Duration
	BatchSize int
	// AutoCompleteAllocations completes allocated PIN orders with the reserved code
	// instead of waiting for an operator.
	AutoCompleteAllocations bool
}

// SweepReport counts what one sweep did.
type SweepReport struct {
	Queued        int
	Assigned      int
	Allocated     int
	AutoCompleted int
	Refunded      int
	Stale         int
	Failed        int
	// Backpressure lists the categories (or PIN pools) that ran out of agents or stock.
	Backpressure []string
}

type Dispatcher struct {
	uow       shared.UnitOfWork
	lifecycle commands.LifecycleCommands
	clock     clock.Clock
	logger    *slog.Logger
	cfg       Config
}

func NewDispatcher(uow shared.UnitOfWork, lifecycle commands.LifecycleCommands, clk clock.Clock, logger *slog.Logger, cfg Config) *Dispatcher {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	return &Dispatcher{uow: uow, lifecycle: lifecycle, clock: clk, logger: logger, cfg: cfg}
}

// Run sweeps every interval until ctx ends.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.Interval)
	defer ticker.Stop()

	d.logger.Info("dispatcher started", "interval", d.cfg.Interval.String(), "batch_size", d.cfg.BatchSize)
	for {
		if _, err := d.Sweep(ctx); err != nil && ctx.Err() == nil {
			d.logger.Error("dispatch sweep failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			d.logger.Info("dispatcher stopped")
			return
		case <-ticker.C:
		}
	}
}

// Sweep queues paid requests, hands queued ones to agents or PIN stock, auto-completes
// allocations when configured and finishes refunds left behind by a crash.
func (d *Dispatcher) Sweep(ctx context.Context) (SweepReport, error) {
	start := time.Now()
	var report SweepReport
	defer func() {
		metrics.DispatchSweeps.Inc()
		metrics.DispatchSweepDuration.Observe(time.Since(start).Seconds())
	}()

	if err := d.queuePaid(ctx, &report); err != nil {
		return report, err
	}
	if err := d.assignQueued(ctx, &report); err != nil {
		return report, err
	}
	if d.cfg.AutoCompleteAllocations {
		if err := d.completeAllocated(ctx, &report); err != nil {
			return report, err
		}
	}
	if err := d.finishRefunds(ctx, &report); err != nil {
		return report, err
	}

	if report.touched() {
		d.logger.Debug("dispatch sweep finished",
			"queued", report.Queued,
			"assigned", report.Assigned,
			"allocated", report.Allocated,
			"auto_completed", report.AutoCompleted,
			"refunded", report.Refunded,
			"stale", report.Stale,
			"failed", report.Failed,
			"backpressure", report.Backpressure)
	}
	return report, nil
}

func (d *Dispatcher) list(ctx context.Context, status request.Status) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reqs, err := tx.Requests().ListByStatus(ctx, status, d.cfg.BatchSize)
		if err != nil {
			return err
		}
		ids = make([]uuid.UUID, 0, len(reqs))
		for _, r := range reqs {
			ids = append(ids, r.ID())
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrapf(err, "list %s requests", status)
	}
	return ids, nil
}

func (d *Dispatcher) queuePaid(ctx context.Context, report *SweepReport) error {
	ids, err := d.list(ctx, request.StatusPaid)
	if err != nil {
		return err
	}
	for _, id := range ids {
		err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			now := d.clock.Now()
			req, err := tx.Requests().FindByID(ctx, id)
			if err != nil {
				return err
			}
			expected, err := req.MarkQueued(now)
			if err != nil {
				return err
			}
			return shared.SaveTransition(ctx, tx, req, expected, false, now)
		})
		if d.settle(id, err, report) {
			report.Queued++
			metrics.RequestTransitions.WithLabelValues(string(request.StatusQueued)).Inc()
		}
	}
	return nil
}

// assignQueued works each (category, pool) bucket on its own batch, so a bucket
// without agents or stock never holds back the others.
func (d *Dispatcher) assignQueued(ctx context.Context, report *SweepReport) error {
	var buckets []shared.Bucket
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		buckets, err = tx.Requests().Buckets(ctx, request.StatusQueued)
		return err
	})
	if err != nil {
		return errs.Wrap(err, "list queued buckets")
	}

	for _, b := range buckets {
		if err := d.assignBucket(ctx, b, report); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) assignBucket(ctx context.Context, b shared.Bucket, report *SweepReport) error {
	var ids []uuid.UUID
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reqs, err := tx.Requests().ListInBucket(ctx, request.StatusQueued, b, d.cfg.BatchSize)
		if err != nil {
			return err
		}
		ids = make([]uuid.UUID, 0, len(reqs))
		for _, r := range reqs {
			ids = append(ids, r.ID())
		}
		return nil
	})
	if err != nil {
		return errs.Wrapf(err, "list queued requests in %s", b.Key())
	}

	label := b.Category.String()
	kind := kindInventory
	if b.Category.IsAgentServiced() {
		kind = kindAgent
	}

	for _, id := range ids {
		err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			now := d.clock.Now()
			req, err := tx.Requests().FindByID(ctx, id)
			if err != nil {
				return err
			}

			var expected request.Status
			if kind == kindAgent {
				a, err := tx.Agents().SelectAgent(ctx, req.Category(), now)
				if err != nil {
					return err
				}
				expected, err = req.MarkAssigned(a.ID(), now)
				if err != nil {
					return err
				}
			} else {
				code, err := tx.Inventory().Claim(ctx, req.InventoryPool(), req.ID(), now)
				if err != nil {
					return err
				}
				expected, err = req.MarkAllocated(code.ID(), now)
				if err != nil {
					return err
				}
			}
			return shared.SaveTransition(ctx, tx, req, expected, false, now)
		})

		switch {
		case errs.Is(err, errs.ErrNoAgentAvailable):
			report.Backpressure = append(report.Backpressure, b.Key())
			metrics.DispatchBackpressure.WithLabelValues(label, reasonNoAgent).Inc()
			return nil
		case errs.Is(err, errs.ErrNoStockAvailable):
			report.Backpressure = append(report.Backpressure, b.Key())
			metrics.DispatchBackpressure.WithLabelValues(label, reasonNoStock).Inc()
			d.logger.Warn("inventory pool exhausted", "pool", b.Pool)
			return nil
		}
		if !d.settle(id, err, report) {
			continue
		}
		metrics.DispatchAssignments.WithLabelValues(label, kind).Inc()
		if kind == kindAgent {
			report.Assigned++
			metrics.RequestTransitions.WithLabelValues(string(request.StatusAssigned)).Inc()
		} else {
			report.Allocated++
			metrics.RequestTransitions.WithLabelValues(string(request.StatusAllocated)).Inc()
		}
	}
	return nil
}

func (d *Dispatcher) completeAllocated(ctx context.Context, report *SweepReport) error {
	ids, err := d.list(ctx, request.StatusAllocated)
	if err != nil {
		return err
	}
	for _, id := range ids {
		res, err := d.lifecycle.Complete(ctx, id, commands.SystemActor(), nil)
		if d.settle(id, err, report) && !res.Replayed {
			report.AutoCompleted++
		}
	}
	return nil
}

func (d *Dispatcher) finishRefunds(ctx context.Context, report *SweepReport) error {
	ids, err := d.list(ctx, request.StatusFailed)
	if err != nil {
		return err
	}
	for _, id := range ids {
		res, err := d.lifecycle.RetryRefund(ctx, id)
		if d.settle(id, err, report) && !res.Replayed {
			report.Refunded++
		}
	}
	return nil
}

func (r SweepReport) touched() bool {
	return r.Queued+r.Assigned+r.Allocated+r.AutoCompleted+r.Refunded+r.Stale+r.Failed > 0 || len(r.Backpressure) > 0
}

// settle records the outcome of one request and reports whether it succeeded.
func (d *Dispatcher) settle(id uuid.UUID, err error, report *SweepReport) bool {
	switch {
	case err == nil:
		return true
	case errs.Is(err, errs.ErrStaleState), errs.Is(err, errs.ErrInvalidTransition):
		// Another worker or a user action moved the request first
		report.Stale++
		metrics.DispatchStale.Inc()
	default:
		report.Failed++
		d.logger.Error("dispatch step failed",
			"request_id", id.String(),
			"error", err.Error())
	}
	return false
}

