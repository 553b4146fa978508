package request

import (
	"strings"

	"vas-broker/internal/domain/category"
	domreq "vas-broker/internal/domain/request"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitRequest struct {
	Category string            `json:"category" binding:"required"`
	Payload  map[string]string `json:"payload" binding:"required"`
}

func (r SubmitRequest) ToParams(userID uuid.UUID, idempotencyKey string) (commands.SubmitParams, error) {
	cat, err := category.Parse(r.Category)
	if err != nil {
		return commands.SubmitParams{}, errs.Mark(err, errs.ErrInvalidPayload)
	}
	return commands.SubmitParams{
		UserID:         userID,
		Category:       cat,
		Payload:        domreq.Payload(r.Payload),
		IdempotencyKey: idempotencyKey,
	}, nil
}

type CompleteRequest struct {
	Result map[string]string `json:"result"`
}

type FailRequest struct {
	Reason    string `json:"reason" binding:"required,max=500"`
	Retryable bool   `json:"retryable"`
}

func (r FailRequest) TrimmedReason() string {
	return strings.TrimSpace(r.Reason)
}
