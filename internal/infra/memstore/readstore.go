package memstore

import (
	"bytes"
	"context"
	"maps"
	"sort"
	"time"

	"vas-broker/internal/domain/inventory"
	"vas-broker/internal/domain/request"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestReadStore struct {
	s *Store
}

func NewRequestReadStore(s *Store) *RequestReadStore {
	return &RequestReadStore{s: s}
}

func (r *RequestReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RequestView, error) {
	var (
		snap request.Snapshot
		ok   bool
	)
	r.s.read(func(st *state) {
		snap, ok = st.requests[id]
	})
	if !ok {
		return nil, errs.ErrRequestNotFound
	}
	return requestView(snap), nil
}

func (r *RequestReadStore) List(_ context.Context, filter queries.RequestFilter, after *queries.Keyset, limit int32) ([]*queries.RequestView, error) {
	var snaps []request.Snapshot
	r.s.read(func(st *state) {
		for _, s := range st.requests {
			if matches(s, filter) && (after == nil || before(s.CreatedAt, s.ID, after.CreatedAt, after.ID)) {
				snaps = append(snaps, s)
			}
		}
	})
	sort.Slice(snaps, func(i, j int) bool {
		return before(snaps[j].CreatedAt, snaps[j].ID, snaps[i].CreatedAt, snaps[i].ID)
	})
	if limit > 0 && len(snaps) > int(limit) {
		snaps = snaps[:limit]
	}
	out := make([]*queries.RequestView, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, requestView(s))
	}
	return out, nil
}

func matches(s request.Snapshot, f queries.RequestFilter) bool {
	if f.UserID != nil && s.UserID != *f.UserID {
		return false
	}
	if f.Category != nil && s.Category.String() != *f.Category {
		return false
	}
	if f.Status != nil && s.Status.String() != *f.Status {
		return false
	}
	return true
}

// before orders by (created_at, id) the way the keyset queries do. Timestamps are
// compared at microsecond precision so cursors round-trip.
func before(t1 time.Time, id1 uuid.UUID, t2 time.Time, id2 uuid.UUID) bool {
	m1, m2 := t1.UnixMicro(), t2.UnixMicro()
	if m1 != m2 {
		return m1 < m2
	}
	return bytes.Compare(id1[:], id2[:]) < 0
}

func requestView(s request.Snapshot) *queries.RequestView {
	return &queries.RequestView{
		ID:              s.ID,
		UserID:          s.UserID,
		Category:        s.Category.String(),
		Payload:         maps.Clone(s.Payload),
		InventoryPool:   s.InventoryPool,
		Fee:             s.Fee,
		Paid:            s.Paid,
		Status:          s.Status.String(),
		AssignedAgentID: s.AssignedAgentID,
		AllocatedCodeID: s.AllocatedCodeID,
		Result:          maps.Clone(s.Result),
		FailureReason:   s.FailureReason,
		RetryCount:      s.RetryCount,
		MaxRetries:      s.MaxRetries,
		RefundHalted:    s.RefundHalted,
		CreatedAt:       s.CreatedAt,
		AssignedAt:      s.AssignedAt,
		CompletedAt:     s.CompletedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

type AgentReadStore struct {
	s *Store
}

func NewAgentReadStore(s *Store) *AgentReadStore {
	return &AgentReadStore{s: s}
}

func (r *AgentReadStore) FindStats(_ context.Context, agentID uuid.UUID) (*queries.AgentStatsView, error) {
	var view *queries.AgentStatsView
	r.s.read(func(st *state) {
		a, ok := st.agents[agentID]
		if !ok {
			return
		}
		cats := make([]string, 0, len(a.Categories))
		for _, c := range a.Categories {
			cats = append(cats, c.String())
		}
		view = &queries.AgentStatsView{
			AgentID:        a.ID,
			DisplayName:    a.DisplayName,
			Categories:     cats,
			Available:      a.Available,
			MaxActive:      a.MaxActive,
			CurrentActive:  a.CurrentActive,
			HeldRequests:   countHeld(st, agentID),
			TotalCompleted: a.TotalCompleted,
			TotalProcessed: a.TotalProcessed,
			LastAssignedAt: a.LastAssignedAt,
			UpdatedAt:      a.UpdatedAt,
		}
	})
	if view == nil {
		return nil, errs.ErrAgentNotFound
	}
	return view, nil
}

type WalletReadStore struct {
	s *Store
}

func NewWalletReadStore(s *Store) *WalletReadStore {
	return &WalletReadStore{s: s}
}

func (r *WalletReadStore) FindWallet(_ context.Context, userID uuid.UUID) (*queries.WalletView, error) {
	var view *queries.WalletView
	r.s.read(func(st *state) {
		if w, ok := st.wallets[userID]; ok {
			t := w.UpdatedAt
			view = &queries.WalletView{UserID: userID, Balance: w.Balance, UpdatedAt: &t}
		}
	})
	if view == nil {
		return nil, errs.ErrWalletNotFound
	}
	return view, nil
}

func (r *WalletReadStore) ListEntries(_ context.Context, userID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.LedgerEntryView, error) {
	var out []*queries.LedgerEntryView
	r.s.read(func(st *state) {
		for i := len(st.entries) - 1; i >= 0; i-- {
			e := st.entries[i]
			if e.UserID != userID {
				continue
			}
			if after != nil && !before(e.CreatedAt, e.ID, after.CreatedAt, after.ID) {
				continue
			}
			out = append(out, &queries.LedgerEntryView{
				ID:             e.ID,
				Amount:         e.Amount,
				Kind:           string(e.Kind),
				IdempotencyKey: e.IdempotencyKey,
				RequestID:      e.RequestID,
				BalanceAfter:   e.BalanceAfter,
				CreatedAt:      e.CreatedAt,
			})
		}
	})
	sort.SliceStable(out, func(i, j int) bool {
		return before(out[j].CreatedAt, out[j].ID, out[i].CreatedAt, out[i].ID)
	})
	if limit > 0 && len(out) > int(limit) {
		out = out[:limit]
	}
	return out, nil
}

type InventoryReadStore struct {
	s *Store
}

func NewInventoryReadStore(s *Store) *InventoryReadStore {
	return &InventoryReadStore{s: s}
}

func (r *InventoryReadStore) Stock(_ context.Context, pool string) (*queries.StockView, error) {
	view := &queries.StockView{Pool: pool}
	r.s.read(func(st *state) {
		for _, c := range st.codes {
			if c.Pool != pool {
				continue
			}
			switch c.Status {
			case inventory.StatusUnused:
				view.Unused++
			case inventory.StatusReserved:
				view.Reserved++
			case inventory.StatusUsed:
				view.Used++
			}
		}
	})
	return view, nil
}

type PricingReadStore struct {
	s *Store
}

func NewPricingReadStore(s *Store) *PricingReadStore {
	return &PricingReadStore{s: s}
}

func (r *PricingReadStore) ListPricing(_ context.Context) ([]*queries.PricingView, error) {
	var out []*queries.PricingView
	r.s.read(func(st *state) {
		for k, p := range st.prices {
			out = append(out, &queries.PricingView{
				Category:  k.category,
				Variant:   k.variant,
				Fee:       p.fee,
				UpdatedAt: p.updatedAt,
			})
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Variant < out[j].Variant
	})
	return out, nil
}
