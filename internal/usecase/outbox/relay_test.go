//go:build unit

package outbox_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"vas-broker/internal/infra/memstore"
	"vas-broker/internal/pkg/clock"
	"vas-broker/internal/usecase/outbox"
	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	topics []string
	failOn string
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, _ []byte) error {
	if topic == p.failOn {
		return errors.New("bus unavailable")
	}
	p.topics = append(p.topics, topic)
	return nil
}

func seed(t *testing.T, store *memstore.Store, topics ...string) {
	t.Helper()
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for _, topic := range topics {
			if err := tx.Outbox().Append(ctx, shared.OutboxEvent{ID: uuid.New(), Topic: topic, AggregateID: uuid.New(), Payload: []byte(`{}`)}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func pending(t *testing.T, store *memstore.Store) int {
	t.Helper()
	n := 0
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		events, err := tx.Outbox().Pending(ctx, 0)
		n = len(events)
		return err
	})
	require.NoError(t, err)
	return n
}

func newRelay(store *memstore.Store, pub outbox.Publisher, batch int) *outbox.Relay {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return outbox.NewRelay(store, pub, clock.NewMockClock(time.Now()), logger, outbox.Config{BatchSize: batch})
}

func TestRelay_Flush(t *testing.T) {
	ctx := context.Background()

	t.Run("success: publishes in order and marks events", func(t *testing.T) {
		store := memstore.New()
		seed(t, store, "request.paid", "request.queued", "request.assigned")
		pub := &recordingPublisher{}

		sent, err := newRelay(store, pub, 10).Flush(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, sent)
		assert.Equal(t, []string{"request.paid", "request.queued", "request.assigned"}, pub.topics)
		assert.Equal(t, 0, pending(t, store))

		sent, err = newRelay(store, pub, 10).Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("success: batch size bounds one flush", func(t *testing.T) {
		store := memstore.New()
		seed(t, store, "a", "b", "c")

		sent, err := newRelay(store, &recordingPublisher{}, 2).Flush(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Equal(t, 1, pending(t, store))
	})

	t.Run("error: stops at the first failed publish", func(t *testing.T) {
		store := memstore.New()
		seed(t, store, "request.paid", "request.failed", "request.refunded")
		pub := &recordingPublisher{failOn: "request.failed"}

		sent, err := newRelay(store, pub, 10).Flush(ctx)

		require.Error(t, err)
		assert.Equal(t, 1, sent)
		assert.Equal(t, 2, pending(t, store))

		pub.failOn = ""
		sent, err = newRelay(store, pub, 10).Flush(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Equal(t, []string{"request.paid", "request.failed", "request.refunded"}, pub.topics)
	})

	t.Run("error: marking fails and events stay pending", func(t *testing.T) {
		store := memstore.New()
		seed(t, store, "request.paid")
		store.SetFault(func(op, _ string) error {
			if op == memstore.OpOutboxPublished {
				return errors.New("db down")
			}
			return nil
		})

		sent, err := newRelay(store, &recordingPublisher{}, 10).Flush(ctx)

		require.Error(t, err)
		assert.Equal(t, 0, sent)
		store.SetFault(nil)
		assert.Equal(t, 1, pending(t, store))
	})

	t.Run("success: store stays writable while the bus is called", func(t *testing.T) {
		store := memstore.New()
		seed(t, store, "request.paid", "request.queued")
		pub := &storeTouchingPublisher{store: store}

		sent, err := newRelay(store, pub, 10).Flush(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		// one event appended per publish; both still pending
		assert.Equal(t, 2, pending(t, store))
	})
}

// storeTouchingPublisher writes to the store from inside Publish and gives up
// if the write cannot start promptly.
type storeTouchingPublisher struct {
	store *memstore.Store
}

func (p *storeTouchingPublisher) Publish(ctx context.Context, topic string, _ []byte) error {
	done := make(chan error, 1)
	go func() {
		done <- p.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Outbox().Append(ctx, shared.OutboxEvent{ID: uuid.New(), Topic: topic + ".echo", AggregateID: uuid.New(), Payload: []byte(`{}`)})
		})
	}()
	select {
	case err := <-done:
		return err
	case <-time.After(time.Second):
		return errors.New("store locked during publish")
	}
}
