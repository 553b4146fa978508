//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/domain/request"
	reqdto "vas-broker/internal/handler/dto/request"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestBuilder struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Category      category.Category
	Payload       map[string]string
	InventoryPool string
	Fee           money.Money
	Status        request.Status
	MaxRetries    int
	CreatedAt     time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Category:   category.BVN,
		Payload:    map[string]string{"bvn": "22212345678"},
		Fee:        money.FromNaira(1500),
		Status:     request.StatusCreated,
		MaxRetries: 2,
		CreatedAt:  time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

// AsPinOrder switches the request to the inventory path for pool.
func (b *RequestBuilder) AsPinOrder(pool string) *RequestBuilder {
	b.Category = category.PinOrder
	b.Payload = map[string]string{"pin_type": pool}
	b.InventoryPool = pool
	return b
}

// Build methods
func (b *RequestBuilder) BuildDomain() (*request.ServiceRequest, error) {
	req, err := request.New(request.NewParams{
		ID:            b.ID,
		UserID:        b.UserID,
		Category:      b.Category,
		Payload:       b.Payload,
		InventoryPool: b.InventoryPool,
		Fee:           b.Fee,
		MaxRetries:    b.MaxRetries,
	}, b.CreatedAt)
	if err != nil {
		return nil, err
	}
	if b.Status == request.StatusCreated {
		return req, nil
	}
	s := req.Snapshot()
	s.Status = b.Status
	s.Paid = b.Status != request.StatusCancelled
	return request.Reconstruct(s), nil
}

func (b *RequestBuilder) BuildInfra() sqlc.ServiceRequests {
	payload, _ := json.Marshal(b.Payload)
	row := sqlc.ServiceRequests{
		ID:           b.ID,
		UserID:       b.UserID,
		Category:     b.Category.String(),
		Payload:      payload,
		FeeKobo:      b.Fee.Kobo(),
		Paid:         b.Status != request.StatusCreated && b.Status != request.StatusCancelled,
		Status:       b.Status.String(),
		MaxRetries:   int32(b.MaxRetries),
		RefundHalted: false,
		CreatedAt:    pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.InventoryPool != "" {
		row.InventoryPool = pgtype.Text{String: b.InventoryPool, Valid: true}
	}
	return row
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	return &queries.RequestView{
		ID:            b.ID,
		UserID:        b.UserID,
		Category:      b.Category.String(),
		Payload:       b.Payload,
		InventoryPool: b.InventoryPool,
		Fee:           b.Fee,
		Paid:          b.Status != request.StatusCreated && b.Status != request.StatusCancelled,
		Status:        b.Status.String(),
		MaxRetries:    b.MaxRetries,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *RequestBuilder) BuildSubmitRequestDTO() reqdto.SubmitRequest {
	return reqdto.SubmitRequest{
		Category: b.Category.String(),
		Payload:  b.Payload,
	}
}
