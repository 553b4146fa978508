package response

import (
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/queries"
)

type RequestResponse struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	Category        string            `json:"category"`
	Payload         map[string]string `json:"payload"`
	InventoryPool   string            `json:"inventory_pool,omitempty"`
	Fee             string            `json:"fee"`
	Paid            bool              `json:"paid"`
	Status          string            `json:"status"`
	AssignedAgentID *string           `json:"assigned_agent_id,omitempty"`
	Result          map[string]string `json:"result,omitempty"`
	FailureReason   string            `json:"failure_reason,omitempty"`
	RetryCount      int               `json:"retry_count"`
	MaxRetries      int               `json:"max_retries"`
	RefundHalted    bool              `json:"refund_halted,omitempty"`
	CreatedAt       int64             `json:"created_at"`
	AssignedAt      *int64            `json:"assigned_at,omitempty"`
	CompletedAt     *int64            `json:"completed_at,omitempty"`
	UpdatedAt       int64             `json:"updated_at"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	res := &RequestResponse{
		ID:            v.ID.String(),
		UserID:        v.UserID.String(),
		Category:      v.Category,
		Payload:       v.Payload,
		InventoryPool: v.InventoryPool,
		Fee:           v.Fee.String(),
		Paid:          v.Paid,
		Status:        v.Status,
		Result:        v.Result,
		FailureReason: v.FailureReason,
		RetryCount:    v.RetryCount,
		MaxRetries:    v.MaxRetries,
		RefundHalted:  v.RefundHalted,
		CreatedAt:     v.CreatedAt.Unix(),
		UpdatedAt:     v.UpdatedAt.Unix(),
	}
	if v.AssignedAgentID != nil {
		id := v.AssignedAgentID.String()
		res.AssignedAgentID = &id
	}
	if v.AssignedAt != nil {
		ts := v.AssignedAt.Unix()
		res.AssignedAt = &ts
	}
	if v.CompletedAt != nil {
		ts := v.CompletedAt.Unix()
		res.CompletedAt = &ts
	}
	return res
}

type RequestListResponse struct {
	Items      []*RequestResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

func FromRequestList(items []*queries.RequestView, next *queries.Cursor) *RequestListResponse {
	res := &RequestListResponse{Items: make([]*RequestResponse, len(items))}
	for i, v := range items {
		res.Items[i] = FromRequestView(v)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

type SubmitResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Fee      string `json:"fee"`
	Replayed bool   `json:"replayed"`
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	return &SubmitResponse{
		ID:       r.RequestID.String(),
		Status:   r.Status.String(),
		Fee:      r.Fee.String(),
		Replayed: r.Replayed,
	}
}

type TransitionResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	RetryCount int    `json:"retry_count"`
	Requeued   bool   `json:"requeued"`
	Replayed   bool   `json:"replayed"`
}

func FromTransitionResult(r *commands.TransitionResult) *TransitionResponse {
	return &TransitionResponse{
		ID:         r.RequestID.String(),
		Status:     r.Status.String(),
		RetryCount: r.RetryCount,
		Requeued:   r.Requeued,
		Replayed:   r.Replayed,
	}
}
