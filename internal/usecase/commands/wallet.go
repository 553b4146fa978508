package commands

import (
	"context"
	"log/slog"

	"vas-broker/internal/domain/ledger"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/clock"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type FundResult struct {
	Entry    ledger.Entry
	Replayed bool
}

type WalletCommands interface {
	// Fund credits a wallet from an external payment reference. Replaying a reference
	// returns the original entry.
	Fund(ctx context.Context, userID uuid.UUID, amount money.Money, reference string) (*FundResult, error)
}

type walletImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewWalletCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) WalletCommands {
	return &walletImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *walletImpl) Fund(ctx context.Context, userID uuid.UUID, amount money.Money, reference string) (*FundResult, error) {
	m, err := ledger.Funding(userID, amount, reference)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPayload)
	}

	var res *FundResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, err := tx.Ledger().Apply(ctx, m, uc.clock.Now())
		switch {
		case err == nil:
			res = &FundResult{Entry: entry}
		case errs.Is(err, errs.ErrDuplicateOperation):
			res = &FundResult{Entry: entry, Replayed: true}
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.Replayed {
		if res.Entry.UserID != userID || !res.Entry.Amount.Equal(amount) {
			return nil, errs.Wrap(ErrIdempotencyKeyReused, "funding reference already used")
		}
		return res, nil
	}
	uc.logger.Info("wallet funded",
		"user_id", userID.String(),
		"amount", amount.String(),
		"balance", res.Entry.BalanceAfter.String())
	return res, nil
}
