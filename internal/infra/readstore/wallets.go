package readstore

import (
	"context"

	"vas-broker/internal/domain/money"
	"vas-broker/internal/infra"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/pgconv"
	"vas-broker/internal/usecase/queries"

	"github.com/google/uuid"
)

type WalletViewQueries interface {
	GetWallet(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Wallets, error)
	ListLedgerEntries(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLedgerEntriesParams) ([]sqlc.LedgerEntries, error)
}

type WalletReadStore struct {
	queries WalletViewQueries
	db      sqlc.DBTX
}

func NewWalletReadStore(queries WalletViewQueries, db sqlc.DBTX) *WalletReadStore {
	return &WalletReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WalletReadStore) FindWallet(ctx context.Context, userID uuid.UUID) (*queries.WalletView, error) {
	row, err := r.queries.GetWallet(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("wallet not found", err, infra.KindNotFound), errs.ErrWalletNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get wallet", err)
	}
	return &queries.WalletView{
		UserID:    row.UserID,
		Balance:   money.FromKobo(row.BalanceKobo),
		UpdatedAt: pgconv.TimePtrFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *WalletReadStore) ListEntries(ctx context.Context, userID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.LedgerEntryView, error) {
	params := sqlc.ListLedgerEntriesParams{
		UserID:   userID,
		RowLimit: limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListLedgerEntries(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger entries", err)
	}
	out := make([]*queries.LedgerEntryView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.LedgerEntryView{
			ID:             row.ID,
			Amount:         money.FromKobo(row.AmountKobo),
			Kind:           row.Kind,
			IdempotencyKey: row.IdempotencyKey,
			RequestID:      pgconv.UUIDPtrFromPgtype(row.RequestID),
			BalanceAfter:   money.FromKobo(row.BalanceAfterKobo),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
