package repository

import (
	"context"
	"time"

	"vas-broker/internal/domain/ledger"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/infra"
	"vas-broker/internal/infra/repository/converter"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type LedgerWriteQueries interface {
	InsertLedgerEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertLedgerEntryParams) (sqlc.LedgerEntries, error)
	GetLedgerEntryByKey(ctx context.Context, db sqlc.DBTX, idempotencyKey string) (sqlc.LedgerEntries, error)
	DebitWallet(ctx context.Context, db sqlc.DBTX, arg sqlc.DebitWalletParams) (int64, error)
	CreditWallet(ctx context.Context, db sqlc.DBTX, arg sqlc.CreditWalletParams) (int64, error)
	SetLedgerBalanceAfter(ctx context.Context, db sqlc.DBTX, arg sqlc.SetLedgerBalanceAfterParams) error
	SumLedgerByRequest(ctx context.Context, db sqlc.DBTX, requestID pgtype.UUID) (int64, error)
}

type LedgerRepository struct {
	queries LedgerWriteQueries
	db      sqlc.DBTX
}

func NewLedgerRepository(queries LedgerWriteQueries, db sqlc.DBTX) *LedgerRepository {
	return &LedgerRepository{
		queries: queries,
		db:      db,
	}
}

// Apply inserts the entry first so the unique idempotency key decides replays before
// the wallet moves. A rejected debit aborts the caller's transaction, taking the entry with it.
func (r *LedgerRepository) Apply(ctx context.Context, m ledger.Mutation, now time.Time) (ledger.Entry, error) {
	row, err := r.queries.InsertLedgerEntry(ctx, r.db, sqlc.InsertLedgerEntryParams{
		ID:             uuid.New(),
		UserID:         m.UserID,
		AmountKobo:     m.Amount.Kobo(),
		IdempotencyKey: m.IdempotencyKey,
		Kind:           string(m.Kind),
		RequestID:      pgconv.UUIDPtrToPgtype(m.RequestID),
		CreatedAt:      pgconv.TimeToPgtype(now),
	})
	if pgconv.IsNoRows(err) {
		prior, err := r.queries.GetLedgerEntryByKey(ctx, r.db, m.IdempotencyKey)
		if err != nil {
			return ledger.Entry{}, infra.WrapRepoErr("failed to load applied ledger entry", err)
		}
		return converter.EntryFromRow(prior), errs.Wrapf(errs.ErrDuplicateOperation, "ledger key %s already applied", m.IdempotencyKey)
	}
	if err != nil {
		return ledger.Entry{}, infra.WrapRepoErr("failed to insert ledger entry", err)
	}

	balance, err := r.moveWallet(ctx, m, now)
	if err != nil {
		return ledger.Entry{}, err
	}

	if err := r.queries.SetLedgerBalanceAfter(ctx, r.db, sqlc.SetLedgerBalanceAfterParams{
		BalanceAfterKobo: balance,
		ID:               row.ID,
	}); err != nil {
		return ledger.Entry{}, infra.WrapRepoErr("failed to stamp ledger balance", err)
	}
	row.BalanceAfterKobo = balance
	return converter.EntryFromRow(row), nil
}

func (r *LedgerRepository) moveWallet(ctx context.Context, m ledger.Mutation, now time.Time) (int64, error) {
	if m.Amount.Kobo() >= 0 {
		balance, err := r.queries.CreditWallet(ctx, r.db, sqlc.CreditWalletParams{
			UserID:     m.UserID,
			AmountKobo: m.Amount.Kobo(),
			UpdatedAt:  pgconv.TimeToPgtype(now),
		})
		if err != nil {
			return 0, infra.WrapRepoErr("failed to credit wallet", err)
		}
		return balance, nil
	}

	balance, err := r.queries.DebitWallet(ctx, r.db, sqlc.DebitWalletParams{
		AmountKobo: m.Amount.Kobo(),
		UpdatedAt:  pgconv.TimeToPgtype(now),
		UserID:     m.UserID,
	})
	if pgconv.IsNoRows(err) {
		return 0, errs.Wrapf(errs.ErrInsufficientFunds, "wallet %s cannot cover %s", m.UserID, m.Amount.Neg())
	}
	if err != nil {
		return 0, infra.WrapRepoErr("failed to debit wallet", err)
	}
	return balance, nil
}

func (r *LedgerRepository) SumByRequest(ctx context.Context, requestID uuid.UUID) (money.Money, error) {
	total, err := r.queries.SumLedgerByRequest(ctx, r.db, pgconv.UUIDToPgtype(requestID))
	if err != nil {
		return money.Money{}, infra.WrapRepoErr("failed to sum ledger by request", err)
	}
	return money.FromKobo(total), nil
}
