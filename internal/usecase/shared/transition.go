package shared

import (
	"context"
	"time"

	"vas-broker/internal/domain/request"
)

// SaveTransition persists req guarded on expected and appends the matching lifecycle event
// in the same transaction.
func SaveTransition(ctx context.Context, tx Tx, req *request.ServiceRequest, expected request.Status, requeued bool, now time.Time) error {
	if err := tx.Requests().Transition(ctx, req, expected); err != nil {
		return err
	}
	return tx.Outbox().Append(ctx, NewRequestEvent(request.EventTopic(req.Status(), requeued), req, now))
}
