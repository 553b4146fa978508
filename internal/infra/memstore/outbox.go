package memstore

import (
	"context"
	"time"

	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type outboxRepo struct {
	tx *memTx
}

func (r *outboxRepo) Append(_ context.Context, ev shared.OutboxEvent) error {
	r.tx.st.outbox = append(r.tx.st.outbox, ev)
	return nil
}

func (r *outboxRepo) Pending(_ context.Context, limit int) ([]shared.OutboxEvent, error) {
	var out []shared.OutboxEvent
	for _, ev := range r.tx.st.outbox {
		if ev.PublishedAt != nil {
			continue
		}
		out = append(out, ev)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *outboxRepo) MarkPublished(_ context.Context, ids []uuid.UUID, now time.Time) error {
	if err := r.tx.check(OpOutboxPublished, ""); err != nil {
		return err
	}
	marked := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		marked[id] = struct{}{}
	}
	for i, ev := range r.tx.st.outbox {
		if _, ok := marked[ev.ID]; ok && ev.PublishedAt == nil {
			t := now
			r.tx.st.outbox[i].PublishedAt = &t
		}
	}
	return nil
}
