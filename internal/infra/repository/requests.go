package repository

import (
	"context"
	"time"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/request"
	"vas-broker/internal/infra"
	"vas-broker/internal/infra/repository/converter"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/pgconv"
	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestWriteQueries interface {
	CreateServiceRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceRequestParams) error
	GetServiceRequestForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ServiceRequests, error)
	TransitionServiceRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionServiceRequestParams) (int64, error)
	SetServiceRequestRefundHalted(ctx context.Context, db sqlc.DBTX, arg sqlc.SetServiceRequestRefundHaltedParams) (int64, error)
	ListServiceRequestsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListServiceRequestsByStatusParams) ([]sqlc.ServiceRequests, error)
	ListServiceRequestBuckets(ctx context.Context, db sqlc.DBTX, status string) ([]sqlc.ListServiceRequestBucketsRow, error)
	ListServiceRequestsInBucket(ctx context.Context, db sqlc.DBTX, arg sqlc.ListServiceRequestsInBucketParams) ([]sqlc.ServiceRequests, error)
}

type RequestRepository struct {
	queries RequestWriteQueries
	db      sqlc.DBTX
}

func NewRequestRepository(queries RequestWriteQueries, db sqlc.DBTX) *RequestRepository {
	return &RequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.ServiceRequest) error {
	params, err := converter.RequestToCreateParams(req)
	if err != nil {
		return err
	}
	if err := r.queries.CreateServiceRequest(ctx, r.db, params); err != nil {
		wrapped := infra.WrapRepoErr("failed to create service request", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return errs.Mark(wrapped, errs.ErrDuplicateOperation)
		}
		return wrapped
	}
	return nil
}

// FindByID locks the row for the rest of the transaction.
func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*request.ServiceRequest, error) {
	row, err := r.queries.GetServiceRequestForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("service request not found", err, infra.KindNotFound), errs.ErrRequestNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service request", err)
	}
	return converter.RequestFromRow(row)
}

func (r *RequestRepository) Transition(ctx context.Context, req *request.ServiceRequest, expected request.Status) error {
	params, err := converter.RequestToTransitionParams(req, expected)
	if err != nil {
		return err
	}
	n, err := r.queries.TransitionServiceRequest(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to transition service request", err)
	}
	if n == 0 {
		return errs.Wrapf(errs.ErrStaleState, "request %s is no longer %s", req.ID(), expected)
	}
	return nil
}

func (r *RequestRepository) SetRefundHalted(ctx context.Context, id uuid.UUID, halted bool, now time.Time) error {
	n, err := r.queries.SetServiceRequestRefundHalted(ctx, r.db, sqlc.SetServiceRequestRefundHaltedParams{
		RefundHalted: halted,
		UpdatedAt:    pgconv.TimeToPgtype(now),
		ID:           id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set refund halted", err)
	}
	if n == 0 {
		return errs.Wrapf(errs.ErrRequestNotFound, "request %s", id)
	}
	return nil
}

func (r *RequestRepository) ListByStatus(ctx context.Context, status request.Status, limit int) ([]*request.ServiceRequest, error) {
	rows, err := r.queries.ListServiceRequestsByStatus(ctx, r.db, sqlc.ListServiceRequestsByStatusParams{
		Status:   status.String(),
		RowLimit: pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service requests by status", err)
	}
	return requestsFromRows(rows)
}

func (r *RequestRepository) Buckets(ctx context.Context, status request.Status) ([]shared.Bucket, error) {
	rows, err := r.queries.ListServiceRequestBuckets(ctx, r.db, status.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service request buckets", err)
	}
	out := make([]shared.Bucket, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.Bucket{Category: category.Category(row.Category), Pool: row.InventoryPool})
	}
	return out, nil
}

func (r *RequestRepository) ListInBucket(ctx context.Context, status request.Status, b shared.Bucket, limit int) ([]*request.ServiceRequest, error) {
	rows, err := r.queries.ListServiceRequestsInBucket(ctx, r.db, sqlc.ListServiceRequestsInBucketParams{
		Status:        status.String(),
		Category:      b.Category.String(),
		InventoryPool: b.Pool,
		RowLimit:      pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service requests in bucket", err)
	}
	return requestsFromRows(rows)
}

func requestsFromRows(rows []sqlc.ServiceRequests) ([]*request.ServiceRequest, error) {
	out := make([]*request.ServiceRequest, 0, len(rows))
	for _, row := range rows {
		req, err := converter.RequestFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}
