package queries

import (
	"context"
	"strings"
	"time"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/request"
	"vas-broker/internal/domain/user"
	"vas-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestReadStore interface {
	// FindByID returns errs.ErrRequestNotFound for an unknown id.
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	// List returns requests matching filter, newest first, strictly after the keyset when given.
	List(ctx context.Context, filter RequestFilter, after *Keyset, limit int32) ([]*RequestView, error)
}

type RequestQueries interface {
	// GetRequest lets customers read their own requests, agents the ones assigned to them
	// and admins every request.
	GetRequest(ctx context.Context, id uuid.UUID, viewer Viewer) (*RequestView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error)
	ListByStatus(ctx context.Context, cat, status string, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
}

func NewRequestQueries(store RequestReadStore) RequestQueries {
	return &requestQueriesImpl{store: store}
}

func (q *requestQueriesImpl) GetRequest(ctx context.Context, id uuid.UUID, viewer Viewer) (*RequestView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch viewer.Role {
	case user.RoleAdmin:
		return v, nil
	case user.RoleCustomer:
		if v.UserID == viewer.ID {
			return v, nil
		}
	case user.RoleAgent:
		if v.AssignedAgentID != nil && *v.AssignedAgentID == viewer.ID {
			return v, nil
		}
	}
	return nil, errs.ErrForbidden
}

func (q *requestQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error) {
	return q.list(ctx, RequestFilter{UserID: &userID}, cursor, limit)
}

func (q *requestQueriesImpl) ListByStatus(ctx context.Context, cat, status string, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error) {
	var filter RequestFilter
	if cat = strings.TrimSpace(cat); cat != "" {
		c, err := category.Parse(cat)
		if err != nil {
			return nil, nil, errs.Mark(err, errs.ErrInvalidPayload)
		}
		s := c.String()
		filter.Category = &s
	}
	if status = strings.TrimSpace(status); status != "" {
		st, err := request.ParseStatus(status)
		if err != nil {
			return nil, nil, errs.Mark(err, errs.ErrInvalidPayload)
		}
		s := st.String()
		filter.Status = &s
	}
	return q.list(ctx, filter, cursor, limit)
}

func (q *requestQueriesImpl) list(ctx context.Context, filter RequestFilter, cursor *Cursor, limit int) ([]*RequestView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetOf(cursor)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(v *RequestView) (time.Time, uuid.UUID) {
		return v.CreatedAt, v.ID
	})
	return rows, next, nil
}
