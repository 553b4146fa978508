package repository

import (
	"context"
	"time"

	"vas-broker/internal/infra"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/pgconv"
	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error
	ListPendingOutboxEvents(ctx context.Context, db sqlc.DBTX, rowLimit int32) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventsPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventsPublishedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Append(ctx context.Context, ev shared.OutboxEvent) error {
	err := r.queries.InsertOutboxEvent(ctx, r.db, sqlc.InsertOutboxEventParams{
		ID:          ev.ID,
		Topic:       ev.Topic,
		AggregateID: ev.AggregateID,
		Payload:     ev.Payload,
		CreatedAt:   pgconv.TimeToPgtype(ev.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}

func (r *OutboxRepository) Pending(ctx context.Context, limit int) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ListPendingOutboxEvents(ctx, r.db, pgconv.IntToInt32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending outbox events", err)
	}
	out := make([]shared.OutboxEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.OutboxEvent{
			ID:          row.ID,
			Topic:       row.Topic,
			AggregateID: row.AggregateID,
			Payload:     row.Payload,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			PublishedAt: pgconv.TimePtrFromPgtype(row.PublishedAt),
		})
	}
	return out, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, ids []uuid.UUID, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.queries.MarkOutboxEventsPublished(ctx, r.db, sqlc.MarkOutboxEventsPublishedParams{
		PublishedAt: pgconv.TimeToPgtype(now),
		Ids:         ids,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox events published", err)
	}
	return nil
}
