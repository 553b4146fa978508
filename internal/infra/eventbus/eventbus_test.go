//go:build unit

package eventbus_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vas-broker/internal/infra/eventbus"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNATSPublisher_Subject(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"prefixed", "vas", "vas.request.completed"},
		{"dots trimmed", ".vas.", "vas.request.completed"},
		{"no prefix", "", "request.completed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := eventbus.NewNATSPublisher(nil, tt.prefix)
			assert.Equal(t, tt.want, p.Subject("request.completed"))
		})
	}
}

func TestNATSPublisher_Publish(t *testing.T) {
	t.Run("no connection", func(t *testing.T) {
		p := eventbus.NewNATSPublisher(nil, "vas")
		err := p.Publish(context.Background(), "request.paid", []byte(`{}`))
		require.ErrorIs(t, err, nats.ErrConnectionClosed)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := eventbus.NewNATSPublisher(nil, "vas")
		err := p.Publish(ctx, "request.paid", []byte(`{}`))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLogPublisher_Publish(t *testing.T) {
	p := eventbus.NewLogPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, p.Publish(context.Background(), "request.refunded", []byte(`{"id":"x"}`)))
}
