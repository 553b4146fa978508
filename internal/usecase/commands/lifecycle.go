package commands

import (
	"context"
	"log/slog"
	"maps"

	"vas-broker/internal/domain/ledger"
	"vas-broker/internal/domain/request"
	"vas-broker/internal/pkg/clock"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/metrics"
	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type LifecycleCommands interface {
	MarkInProgress(ctx context.Context, requestID uuid.UUID, actor Actor) (*TransitionResult, error)
	Complete(ctx context.Context, requestID uuid.UUID, actor Actor, result request.Payload) (*TransitionResult, error)
	Fail(ctx context.Context, requestID uuid.UUID, actor Actor, reason string, retryable bool) (*TransitionResult, error)
	Cancel(ctx context.Context, requestID uuid.UUID, actor Actor) (*TransitionResult, error)
	// RetryRefund refunds a failed request, including one whose refund was halted.
	RetryRefund(ctx context.Context, requestID uuid.UUID) (*TransitionResult, error)
}

type lifecycleImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewLifecycleCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) LifecycleCommands {
	return &lifecycleImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *lifecycleImpl) MarkInProgress(ctx context.Context, requestID uuid.UUID, actor Actor) (*TransitionResult, error) {
	var res *TransitionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status() == request.StatusInProgress && authorizeFulfiller(actor, req) == nil {
			res = resultOf(req, false, true)
			return nil
		}
		if err = authorizeFulfiller(actor, req); err != nil {
			return err
		}
		assignee := actor.ID
		if actor.IsAdmin() && req.AssignedAgentID() != nil {
			assignee = *req.AssignedAgentID()
		}
		expected, err := req.MarkInProgress(assignee, now)
		if err != nil {
			return err
		}
		if err = shared.SaveTransition(ctx, tx, req, expected, false, now); err != nil {
			return err
		}
		res = resultOf(req, false, false)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !res.Replayed {
		countTransition(request.StatusInProgress)
	}
	return res, nil
}

// Complete finishes a request. On the inventory path the PIN and serial of the reserved
// code are added to the result and the code is burned.
func (uc *lifecycleImpl) Complete(ctx context.Context, requestID uuid.UUID, actor Actor, result request.Payload) (*TransitionResult, error) {
	var res *TransitionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status() == request.StatusCompleted {
			res = resultOf(req, false, true)
			return nil
		}
		if err = authorizeFulfiller(actor, req); err != nil {
			return err
		}

		agentID := req.AssignedAgentID()
		codeID := req.AllocatedCodeID()
		out := maps.Clone(result)
		if codeID != nil {
			code, cerr := tx.Inventory().FindByID(ctx, *codeID)
			if cerr != nil {
				return cerr
			}
			if out == nil {
				out = request.Payload{}
			}
			out["pin"] = code.Value()
			if code.Serial() != "" {
				out["serial"] = code.Serial()
			}
		}

		expected, err := req.Complete(out, now)
		if err != nil {
			return err
		}
		if err = shared.SaveTransition(ctx, tx, req, expected, false, now); err != nil {
			return err
		}

		if agentID != nil {
			if err = tx.Agents().Release(ctx, *agentID, true, req.Fee(), now); err != nil {
				return err
			}
		}
		if codeID != nil {
			if err = uc.finalizeCode(ctx, tx, *codeID, req.ID()); err != nil {
				return err
			}
		}
		res = resultOf(req, false, false)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !res.Replayed {
		countTransition(request.StatusCompleted)
	}
	return res, nil
}

// Fail requeues or fails the request in one transaction, then refunds a failed request in a
// second one. A refund that cannot be applied halts the request and returns errs.ErrRefundFailed.
func (uc *lifecycleImpl) Fail(ctx context.Context, requestID uuid.UUID, actor Actor, reason string, retryable bool) (*TransitionResult, error) {
	var res *TransitionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status() == request.StatusFailed || req.Status() == request.StatusRefunded {
			res = resultOf(req, false, true)
			return nil
		}
		if err = authorizeFulfiller(actor, req); err != nil {
			return err
		}

		agentID := req.AssignedAgentID()
		codeID := req.AllocatedCodeID()
		expected, requeued, err := req.Fail(reason, retryable, now)
		if err != nil {
			return err
		}
		if err = shared.SaveTransition(ctx, tx, req, expected, requeued, now); err != nil {
			return err
		}

		if agentID != nil {
			if err = tx.Agents().Release(ctx, *agentID, false, req.Fee(), now); err != nil {
				return err
			}
		}
		// A code handed to a failed attempt is never returned to stock
		if codeID != nil {
			if err = uc.finalizeCode(ctx, tx, *codeID, req.ID()); err != nil {
				return err
			}
		}
		res = resultOf(req, requeued, false)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if res.Replayed {
		return res, nil
	}

	countTransition(res.Status)
	uc.logger.Info("service request failed",
		"request_id", requestID.String(),
		"reason", reason,
		"retryable", retryable,
		"requeued", res.Requeued,
		"retry_count", res.RetryCount)

	if res.Status != request.StatusFailed {
		return res, nil
	}
	return uc.refund(ctx, requestID)
}

func (uc *lifecycleImpl) Cancel(ctx context.Context, requestID uuid.UUID, actor Actor) (*TransitionResult, error) {
	var res *TransitionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			return err
		}
		if err = authorizeOwner(actor, req); err != nil {
			return err
		}
		if req.Status() == request.StatusCancelled {
			res = resultOf(req, false, true)
			return nil
		}

		wasPaid := req.Paid()
		expected, err := req.Cancel(now)
		if err != nil {
			return err
		}
		if err = shared.SaveTransition(ctx, tx, req, expected, false, now); err != nil {
			return err
		}
		if wasPaid {
			_, err = tx.Ledger().Apply(ctx, ledger.Refund(req.UserID(), req.ID(), req.Fee()), now)
			if err != nil && !errs.Is(err, errs.ErrDuplicateOperation) {
				return err
			}
		}
		res = resultOf(req, false, false)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !res.Replayed {
		countTransition(request.StatusCancelled)
	}
	return res, nil
}

func (uc *lifecycleImpl) RetryRefund(ctx context.Context, requestID uuid.UUID) (*TransitionResult, error) {
	return uc.refund(ctx, requestID)
}

func (uc *lifecycleImpl) refund(ctx context.Context, requestID uuid.UUID) (*TransitionResult, error) {
	var res *TransitionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status() == request.StatusRefunded {
			res = resultOf(req, false, true)
			return nil
		}
		if req.Status() != request.StatusFailed {
			return errs.Wrapf(errs.ErrInvalidTransition, "cannot refund a %s request", req.Status())
		}

		_, err = tx.Ledger().Apply(ctx, ledger.Refund(req.UserID(), req.ID(), req.Fee()), now)
		if err != nil && !errs.Is(err, errs.ErrDuplicateOperation) {
			return err
		}
		expected, err := req.MarkRefunded(now)
		if err != nil {
			return err
		}
		if err = shared.SaveTransition(ctx, tx, req, expected, false, now); err != nil {
			return err
		}
		res = resultOf(req, false, false)
		return nil
	})
	if err == nil {
		if !res.Replayed {
			countTransition(request.StatusRefunded)
		}
		return res, nil
	}
	if errs.Is(err, errs.ErrRequestNotFound) || errs.Is(err, errs.ErrInvalidTransition) {
		return nil, err
	}

	metrics.RefundFailures.Inc()
	uc.logger.Error("refund failed, request halted pending manual intervention",
		"request_id", requestID.String(),
		"error", err.Error())
	if herr := uc.haltRefund(ctx, requestID); herr != nil {
		uc.logger.Error("failed to flag halted refund",
			"request_id", requestID.String(),
			"error", herr.Error())
	}
	return nil, errs.Mark(err, errs.ErrRefundFailed)
}

func (uc *lifecycleImpl) haltRefund(ctx context.Context, requestID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		if err := tx.Requests().SetRefundHalted(ctx, requestID, true, now); err != nil {
			return err
		}
		req, err := tx.Requests().FindByID(ctx, requestID)
		if err != nil {
			return err
		}
		return tx.Outbox().Append(ctx, shared.NewRequestEvent(request.TopicRefundHalted, req, now))
	})
}

func (uc *lifecycleImpl) finalizeCode(ctx context.Context, tx shared.Tx, codeID, requestID uuid.UUID) error {
	err := tx.Inventory().Finalize(ctx, codeID, requestID, uc.clock.Now())
	if errs.Is(err, errs.ErrNotReservedByCaller) {
		uc.logger.Error("inventory code not reserved by caller",
			"code_id", codeID.String(),
			"request_id", requestID.String())
	}
	return err
}
