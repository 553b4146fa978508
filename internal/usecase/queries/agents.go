package queries

import (
	"context"

	"github.com/google/uuid"
)

type AgentReadStore interface {
	// FindStats returns errs.ErrAgentNotFound for an unknown agent.
	FindStats(ctx context.Context, agentID uuid.UUID) (*AgentStatsView, error)
}

type AgentQueries interface {
	AgentStats(ctx context.Context, agentID uuid.UUID) (*AgentStatsView, error)
}

type agentQueriesImpl struct {
	store AgentReadStore
}

func NewAgentQueries(store AgentReadStore) AgentQueries {
	return &agentQueriesImpl{store: store}
}

func (q *agentQueriesImpl) AgentStats(ctx context.Context, agentID uuid.UUID) (*AgentStatsView, error) {
	return q.store.FindStats(ctx, agentID)
}
