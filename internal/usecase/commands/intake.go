package commands

import (
	"context"
	"log/slog"
	"maps"
	"strings"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/ledger"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/domain/request"
	"vas-broker/internal/pkg/catalog"
	"vas-broker/internal/pkg/clock"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

// Request ids derive from (user, idempotency key) so a replayed submission maps to the same row.
var intakeNamespace = uuid.MustParse("6f1c2a0e-4b7d-5c3e-9a18-2d4f6b8e0c71")

var ErrIdempotencyKeyReused = errs.New("idempotency key reused with a different request")

const maxIdempotencyKeyLen = 128

type SubmitParams struct {
	UserID         uuid.UUID
	Category       category.Category
	Payload        request.Payload
	IdempotencyKey string
}

type SubmitResult struct {
	RequestID uuid.UUID
	Status    request.Status
	Fee       money.Money
	Replayed  bool
}

type IntakeCommands interface {
	Submit(ctx context.Context, p SubmitParams) (*SubmitResult, error)
}

type intakeImpl struct {
	uow     shared.UnitOfWork
	catalog *catalog.Catalog
	clock   clock.Clock
	logger  *slog.Logger
}

func NewIntakeCommands(uow shared.UnitOfWork, cat *catalog.Catalog, clk clock.Clock, logger *slog.Logger) IntakeCommands {
	return &intakeImpl{uow: uow, catalog: cat, clock: clk, logger: logger}
}

// RequestIDFor returns the deterministic request id for a user's idempotency key.
func RequestIDFor(userID uuid.UUID, idempotencyKey string) uuid.UUID {
	return uuid.NewSHA1(intakeNamespace, []byte(userID.String()+"|"+idempotencyKey))
}

func (uc *intakeImpl) Submit(ctx context.Context, p SubmitParams) (*SubmitResult, error) {
	key := strings.TrimSpace(p.IdempotencyKey)
	if len(key) > maxIdempotencyKeyLen {
		return nil, errs.Wrap(errs.ErrInvalidPayload, "idempotency key too long")
	}

	now := uc.clock.Now()
	payload, pool, err := request.ValidatePayload(p.Category, p.Payload, request.Rules{
		Now:         now,
		AllowedPool: uc.catalog.AllowedPool,
	})
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	if key != "" {
		id = RequestIDFor(p.UserID, key)
	}

	var result *SubmitResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, ferr := tx.Requests().FindByID(ctx, id)
		switch {
		case ferr == nil:
			result, ferr = replayOf(existing, p.Category, payload)
			return ferr
		case !errs.Is(ferr, errs.ErrRequestNotFound):
			return ferr
		}

		fee, ferr := tx.Pricing().Get(ctx, p.Category, pool)
		if errs.Is(ferr, errs.ErrPricingNotFound) {
			return errs.Mark(ferr, errs.ErrInvalidPayload)
		}
		if ferr != nil {
			return ferr
		}

		req, ferr := request.New(request.NewParams{
			ID:            id,
			UserID:        p.UserID,
			Category:      p.Category,
			Payload:       payload,
			InventoryPool: pool,
			Fee:           fee,
			MaxRetries:    uc.catalog.MaxRetries(p.Category),
		}, now)
		if ferr != nil {
			return errs.Mark(ferr, errs.ErrInvalidPayload)
		}
		if ferr = tx.Requests().Create(ctx, req); ferr != nil {
			return ferr
		}

		if _, ferr = tx.Ledger().Apply(ctx, ledger.Payment(p.UserID, id, fee), now); ferr != nil && !errs.Is(ferr, errs.ErrDuplicateOperation) {
			return ferr
		}

		expected, ferr := req.MarkPaid(now)
		if ferr != nil {
			return ferr
		}
		if ferr = shared.SaveTransition(ctx, tx, req, expected, false, now); ferr != nil {
			return ferr
		}

		result = &SubmitResult{RequestID: id, Status: req.Status(), Fee: fee}
		return nil
	})
	if err != nil {
		// A concurrent submission with the same key won the insert; return its row.
		if errs.Is(err, errs.ErrDuplicateOperation) {
			return uc.loadReplay(ctx, id, p.Category, payload)
		}
		return nil, err
	}

	if !result.Replayed {
		countTransition(request.StatusPaid)
		uc.logger.Info("service request submitted",
			"request_id", id.String(),
			"user_id", p.UserID.String(),
			"category", p.Category.String(),
			"fee", result.Fee.String())
	}
	return result, nil
}

func (uc *intakeImpl) loadReplay(ctx context.Context, id uuid.UUID, cat category.Category, payload request.Payload) (*SubmitResult, error) {
	var result *SubmitResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Requests().FindByID(ctx, id)
		if err != nil {
			return err
		}
		result, err = replayOf(existing, cat, payload)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func replayOf(existing *request.ServiceRequest, cat category.Category, payload request.Payload) (*SubmitResult, error) {
	if existing.Category() != cat || !maps.Equal(existing.Payload(), payload) {
		return nil, ErrIdempotencyKeyReused
	}
	return &SubmitResult{
		RequestID: existing.ID(),
		Status:    existing.Status(),
		Fee:       existing.Fee(),
		Replayed:  true,
	}, nil
}
