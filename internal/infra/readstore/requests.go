package readstore

import (
	"context"

	"vas-broker/internal/infra"
	"vas-broker/internal/infra/repository/converter"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/pgconv"
	"vas-broker/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestViewQueries interface {
	GetServiceRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ServiceRequests, error)
	ListServiceRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.ListServiceRequestsParams) ([]sqlc.ServiceRequests, error)
}

type RequestReadStore struct {
	queries RequestViewQueries
	db      sqlc.DBTX
}

func NewRequestReadStore(queries RequestViewQueries, db sqlc.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row, err := r.queries.GetServiceRequest(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("service request not found", err, infra.KindNotFound), errs.ErrRequestNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service request view", err)
	}
	return requestView(row)
}

func (r *RequestReadStore) List(ctx context.Context, filter queries.RequestFilter, after *queries.Keyset, limit int32) ([]*queries.RequestView, error) {
	params := sqlc.ListServiceRequestsParams{
		UserID:   pgconv.UUIDPtrToPgtype(filter.UserID),
		Category: pgconv.StringPtrToPgtype(filter.Category),
		Status:   pgconv.StringPtrToPgtype(filter.Status),
		RowLimit: limit,
	}
	if after != nil {
		params.AfterCreatedAt = pgconv.TimeToPgtype(after.CreatedAt)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}

	rows, err := r.queries.ListServiceRequests(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service requests", err)
	}
	out := make([]*queries.RequestView, 0, len(rows))
	for _, row := range rows {
		v, err := requestView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func requestView(row sqlc.ServiceRequests) (*queries.RequestView, error) {
	s, err := converter.RequestSnapshotFromRow(row)
	if err != nil {
		return nil, err
	}
	return &queries.RequestView{
		ID:              s.ID,
		UserID:          s.UserID,
		Category:        s.Category.String(),
		Payload:         s.Payload,
		InventoryPool:   s.InventoryPool,
		Fee:             s.Fee,
		Paid:            s.Paid,
		Status:          s.Status.String(),
		AssignedAgentID: s.AssignedAgentID,
		AllocatedCodeID: s.AllocatedCodeID,
		Result:          s.Result,
		FailureReason:   s.FailureReason,
		RetryCount:      s.RetryCount,
		MaxRetries:      s.MaxRetries,
		RefundHalted:    s.RefundHalted,
		CreatedAt:       s.CreatedAt,
		AssignedAt:      s.AssignedAt,
		CompletedAt:     s.CompletedAt,
		UpdatedAt:       s.UpdatedAt,
	}, nil
}
