package readstore

import (
	"context"

	"vas-broker/internal/domain/money"
	"vas-broker/internal/infra"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/pgconv"
	"vas-broker/internal/usecase/queries"

	"github.com/google/uuid"
)

type AgentViewQueries interface {
	GetAgentStats(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetAgentStatsRow, error)
}

type AgentReadStore struct {
	queries AgentViewQueries
	db      sqlc.DBTX
}

func NewAgentReadStore(queries AgentViewQueries, db sqlc.DBTX) *AgentReadStore {
	return &AgentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AgentReadStore) FindStats(ctx context.Context, agentID uuid.UUID) (*queries.AgentStatsView, error) {
	row, err := r.queries.GetAgentStats(ctx, r.db, agentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("agent not found", err, infra.KindNotFound), errs.ErrAgentNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get agent stats", err)
	}
	return &queries.AgentStatsView{
		AgentID:        row.ID,
		DisplayName:    row.DisplayName,
		Categories:     row.Categories,
		Available:      row.IsAvailable,
		MaxActive:      int(row.MaxActive),
		CurrentActive:  int(row.CurrentActive),
		HeldRequests:   int(row.HeldRequests),
		TotalCompleted: row.TotalCompleted,
		TotalProcessed: money.FromKobo(row.TotalProcessedKobo),
		LastAssignedAt: pgconv.TimePtrFromPgtype(row.LastAssignedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
