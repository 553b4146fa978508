package eventbus

import (
	"context"
	"log/slog"
)

// LogPublisher stands in for the event bus when no NATS server is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, topic string, payload []byte) error {
	p.logger.Debug("lifecycle event", "topic", topic, "payload", string(payload))
	return nil
}
