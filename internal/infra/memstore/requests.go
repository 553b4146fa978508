package memstore

import (
	"cmp"
	"context"
	"slices"
	"time"

	"vas-broker/internal/domain/request"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type requestRepo struct {
	tx *memTx
}

func (r *requestRepo) Create(_ context.Context, req *request.ServiceRequest) error {
	if _, ok := r.tx.st.requests[req.ID()]; ok {
		return errs.Wrapf(errs.ErrDuplicateOperation, "request %s already exists", req.ID())
	}
	r.tx.st.requests[req.ID()] = req.Snapshot()
	return nil
}

func (r *requestRepo) FindByID(_ context.Context, id uuid.UUID) (*request.ServiceRequest, error) {
	snap, ok := r.tx.st.requests[id]
	if !ok {
		return nil, errs.ErrRequestNotFound
	}
	return request.Reconstruct(snap), nil
}

func (r *requestRepo) Transition(_ context.Context, req *request.ServiceRequest, expected request.Status) error {
	if err := r.tx.check(OpRequestTransit, req.ID().String()); err != nil {
		return err
	}
	stored, ok := r.tx.st.requests[req.ID()]
	if !ok {
		return errs.ErrRequestNotFound
	}
	if stored.Status != expected {
		return errs.Wrapf(errs.ErrStaleState, "request %s is %s, expected %s", req.ID(), stored.Status, expected)
	}
	r.tx.st.requests[req.ID()] = req.Snapshot()
	return nil
}

func (r *requestRepo) SetRefundHalted(_ context.Context, id uuid.UUID, halted bool, now time.Time) error {
	stored, ok := r.tx.st.requests[id]
	if !ok {
		return errs.ErrRequestNotFound
	}
	stored.RefundHalted = halted
	stored.UpdatedAt = now
	r.tx.st.requests[id] = stored
	return nil
}

func (r *requestRepo) ListByStatus(_ context.Context, status request.Status, limit int) ([]*request.ServiceRequest, error) {
	return r.list(status, limit, func(request.Snapshot) bool { return true }), nil
}

func (r *requestRepo) Buckets(_ context.Context, status request.Status) ([]shared.Bucket, error) {
	seen := map[shared.Bucket]bool{}
	var out []shared.Bucket
	for _, s := range r.tx.st.requests {
		if s.Status != status || s.RefundHalted {
			continue
		}
		b := shared.Bucket{Category: s.Category, Pool: s.InventoryPool}
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	slices.SortFunc(out, func(a, b shared.Bucket) int {
		return cmp.Or(cmp.Compare(a.Category, b.Category), cmp.Compare(a.Pool, b.Pool))
	})
	return out, nil
}

func (r *requestRepo) ListInBucket(_ context.Context, status request.Status, b shared.Bucket, limit int) ([]*request.ServiceRequest, error) {
	return r.list(status, limit, func(s request.Snapshot) bool {
		return s.Category == b.Category && s.InventoryPool == b.Pool
	}), nil
}

func (r *requestRepo) list(status request.Status, limit int, keep func(request.Snapshot) bool) []*request.ServiceRequest {
	var snaps []request.Snapshot
	for _, s := range r.tx.st.requests {
		if s.Status == status && !s.RefundHalted && keep(s) {
			snaps = append(snaps, s)
		}
	}
	slices.SortFunc(snaps, func(a, b request.Snapshot) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID.String(), b.ID.String()))
	})
	if limit > 0 && len(snaps) > limit {
		snaps = snaps[:limit]
	}
	out := make([]*request.ServiceRequest, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, request.Reconstruct(s))
	}
	return out
}
