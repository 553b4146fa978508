package shared

import (
	"encoding/json"
	"time"

	"vas-broker/internal/domain/request"

	"github.com/google/uuid"
)

type OutboxEvent struct {
	ID          uuid.UUID
	Topic       string
	AggregateID uuid.UUID
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// RequestEvent is the payload of every request lifecycle event.
type RequestEvent struct {
	RequestID     uuid.UUID  `json:"request_id"`
	UserID        uuid.UUID  `json:"user_id"`
	Category      string     `json:"category"`
	Status        string     `json:"status"`
	Fee           string     `json:"fee"`
	AgentID       *uuid.UUID `json:"agent_id,omitempty"`
	CodeID        *uuid.UUID `json:"code_id,omitempty"`
	RetryCount    int        `json:"retry_count"`
	FailureReason string     `json:"failure_reason,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

func NewRequestEvent(topic string, req *request.ServiceRequest, now time.Time) OutboxEvent {
	body := RequestEvent{
		RequestID:     req.ID(),
		UserID:        req.UserID(),
		Category:      req.Category().String(),
		Status:        req.Status().String(),
		Fee:           req.Fee().String(),
		AgentID:       req.AssignedAgentID(),
		CodeID:        req.AllocatedCodeID(),
		RetryCount:    req.RetryCount(),
		FailureReason: req.FailureReason(),
		OccurredAt:    now,
	}
	// Marshal cannot fail for this struct
	payload, _ := json.Marshal(body)
	return OutboxEvent{
		ID:          uuid.New(),
		Topic:       topic,
		AggregateID: req.ID(),
		Payload:     payload,
		CreatedAt:   now,
	}
}
