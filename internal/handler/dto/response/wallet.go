package response

import (
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/queries"
)

type WalletResponse struct {
	UserID    string `json:"user_id"`
	Balance   string `json:"balance"`
	UpdatedAt *int64 `json:"updated_at,omitempty"`
}

func FromWalletView(v *queries.WalletView) *WalletResponse {
	res := &WalletResponse{
		UserID:  v.UserID.String(),
		Balance: v.Balance.String(),
	}
	if v.UpdatedAt != nil {
		ts := v.UpdatedAt.Unix()
		res.UpdatedAt = &ts
	}
	return res
}

type LedgerEntryResponse struct {
	ID             string  `json:"id"`
	Amount         string  `json:"amount"`
	Kind           string  `json:"kind"`
	IdempotencyKey string  `json:"idempotency_key"`
	RequestID      *string `json:"request_id,omitempty"`
	BalanceAfter   string  `json:"balance_after"`
	CreatedAt      int64   `json:"created_at"`
}

type LedgerEntryListResponse struct {
	Items      []*LedgerEntryResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

func FromLedgerEntries(items []*queries.LedgerEntryView, next *queries.Cursor) *LedgerEntryListResponse {
	res := &LedgerEntryListResponse{Items: make([]*LedgerEntryResponse, len(items))}
	for i, e := range items {
		item := &LedgerEntryResponse{
			ID:             e.ID.String(),
			Amount:         e.Amount.String(),
			Kind:           e.Kind,
			IdempotencyKey: e.IdempotencyKey,
			BalanceAfter:   e.BalanceAfter.String(),
			CreatedAt:      e.CreatedAt.Unix(),
		}
		if e.RequestID != nil {
			id := e.RequestID.String()
			item.RequestID = &id
		}
		res.Items[i] = item
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type FundResponse struct {
	EntryID      string `json:"entry_id"`
	Amount       string `json:"amount"`
	BalanceAfter string `json:"balance_after"`
	Replayed     bool   `json:"replayed"`
}

func FromFundResult(r *commands.FundResult) *FundResponse {
	return &FundResponse{
		EntryID:      r.Entry.ID.String(),
		Amount:       r.Entry.Amount.String(),
		BalanceAfter: r.Entry.BalanceAfter.String(),
		Replayed:     r.Replayed,
	}
}
