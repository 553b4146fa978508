package queries

import (
	"context"
	"time"

	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

type WalletReadStore interface {
	// FindWallet returns errs.ErrWalletNotFound until the user's first ledger entry.
	FindWallet(ctx context.Context, userID uuid.UUID) (*WalletView, error)
	// ListEntries returns the user's entries newest first.
	ListEntries(ctx context.Context, userID uuid.UUID, after *Keyset, limit int32) ([]*LedgerEntryView, error)
}

type WalletQueries interface {
	// Wallet reports a zero balance for users who never had a ledger entry.
	Wallet(ctx context.Context, userID uuid.UUID) (*WalletView, error)
	LedgerEntries(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*LedgerEntryView, *Cursor, error)
}

type walletQueriesImpl struct {
	store WalletReadStore
}

func NewWalletQueries(store WalletReadStore) WalletQueries {
	return &walletQueriesImpl{store: store}
}

func (q *walletQueriesImpl) Wallet(ctx context.Context, userID uuid.UUID) (*WalletView, error) {
	w, err := q.store.FindWallet(ctx, userID)
	if errs.Is(err, errs.ErrWalletNotFound) {
		return &WalletView{UserID: userID, Balance: money.FromKobo(0)}, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (q *walletQueriesImpl) LedgerEntries(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*LedgerEntryView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetOf(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.ListEntries(ctx, userID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(v *LedgerEntryView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return rows, next, nil
}
