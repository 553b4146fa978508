package memstore

import (
	"context"
	"time"

	"vas-broker/internal/domain/inventory"
	"vas-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

type inventoryRepo struct {
	tx *memTx
}

// Claim hands out codes in import order.
func (r *inventoryRepo) Claim(_ context.Context, pool string, requestID uuid.UUID, now time.Time) (*inventory.Code, error) {
	if err := r.tx.check(OpInventoryClaim, pool); err != nil {
		return nil, err
	}
	for _, id := range r.tx.st.codeOrder {
		snap := r.tx.st.codes[id]
		if snap.Pool != pool || snap.Status != inventory.StatusUnused {
			continue
		}
		c := inventory.Reconstruct(snap)
		if err := c.Reserve(requestID, now); err != nil {
			return nil, err
		}
		r.tx.st.codes[id] = c.Snapshot()
		return c, nil
	}
	return nil, errs.Wrapf(errs.ErrNoStockAvailable, "pool %s is empty", pool)
}

func (r *inventoryRepo) Finalize(_ context.Context, codeID, requestID uuid.UUID, now time.Time) error {
	snap, ok := r.tx.st.codes[codeID]
	if !ok {
		return errs.ErrCodeNotFound
	}
	c := inventory.Reconstruct(snap)
	err := c.Finalize(requestID, now)
	switch {
	case errs.Is(err, inventory.ErrAlreadyUsed):
		return nil
	case err != nil:
		return err
	}
	r.tx.st.codes[codeID] = c.Snapshot()
	return nil
}

func (r *inventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*inventory.Code, error) {
	snap, ok := r.tx.st.codes[id]
	if !ok {
		return nil, errs.ErrCodeNotFound
	}
	return inventory.Reconstruct(snap), nil
}

func (r *inventoryRepo) BulkAdd(_ context.Context, pool string, entries []inventory.Entry, now time.Time) (int, []string, error) {
	added := 0
	duplicates := []string{}
	for _, e := range entries {
		key := codeKey{pool: pool, value: e.Code}
		if _, exists := r.tx.st.codeIndex[key]; exists {
			duplicates = append(duplicates, e.Code)
			continue
		}
		c := inventory.NewCode(pool, e, now)
		r.tx.st.codes[c.ID()] = c.Snapshot()
		r.tx.st.codeIndex[key] = c.ID()
		r.tx.st.codeOrder = append(r.tx.st.codeOrder, c.ID())
		added++
	}
	return added, duplicates, nil
}
