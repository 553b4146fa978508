package memstore

import (
	"context"
	"time"

	"vas-broker/internal/domain/ledger"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

type ledgerRepo struct {
	tx *memTx
}

func (r *ledgerRepo) Apply(_ context.Context, m ledger.Mutation, now time.Time) (ledger.Entry, error) {
	if err := r.tx.check(OpLedgerApply, m.IdempotencyKey); err != nil {
		return ledger.Entry{}, err
	}
	st := r.tx.st
	if i, ok := st.keys[m.IdempotencyKey]; ok {
		return st.entries[i], errs.Wrapf(errs.ErrDuplicateOperation, "ledger key %s already applied", m.IdempotencyKey)
	}

	w := st.wallets[m.UserID]
	next, err := ledger.NextBalance(w.Balance, m.Amount)
	if err != nil {
		return ledger.Entry{}, err
	}
	entry := ledger.Entry{
		ID:             uuid.New(),
		UserID:         m.UserID,
		Amount:         m.Amount,
		IdempotencyKey: m.IdempotencyKey,
		Kind:           m.Kind,
		RequestID:      m.RequestID,
		BalanceAfter:   next,
		CreatedAt:      now,
	}
	st.keys[m.IdempotencyKey] = len(st.entries)
	st.entries = append(st.entries, entry)
	st.wallets[m.UserID] = ledger.Wallet{UserID: m.UserID, Balance: next, UpdatedAt: now}
	return entry, nil
}

func (r *ledgerRepo) SumByRequest(_ context.Context, requestID uuid.UUID) (money.Money, error) {
	sum := money.FromKobo(0)
	for _, e := range r.tx.st.entries {
		if e.RequestID != nil && *e.RequestID == requestID {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}
