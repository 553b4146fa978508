package repository

import (
	"context"
	"time"

	"vas-broker/internal/domain/agent"
	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/infra"
	"vas-broker/internal/infra/repository/converter"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AgentWriteQueries interface {
	CreateAgent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAgentParams) error
	GetAgent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Agents, error)
	UpdateAgentSettings(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAgentSettingsParams) (int64, error)
	SelectAgent(ctx context.Context, db sqlc.DBTX, arg sqlc.SelectAgentParams) (sqlc.Agents, error)
	ReleaseAgent(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseAgentParams) (int64, error)
	CountHeldRequests(ctx context.Context, db sqlc.DBTX, assignedAgentID pgtype.UUID) (int32, error)
}

type AgentRepository struct {
	queries AgentWriteQueries
	db      sqlc.DBTX
}

func NewAgentRepository(queries AgentWriteQueries, db sqlc.DBTX) *AgentRepository {
	return &AgentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AgentRepository) Create(ctx context.Context, a *agent.Agent) error {
	if err := r.queries.CreateAgent(ctx, r.db, converter.AgentToCreateParams(a)); err != nil {
		wrapped := infra.WrapRepoErr("failed to create agent", err)
		if infra.IsKind(wrapped, infra.KindDuplicateKey) {
			return errs.Mark(wrapped, errs.ErrDuplicateOperation)
		}
		return wrapped
	}
	return nil
}

func (r *AgentRepository) FindByID(ctx context.Context, id uuid.UUID) (*agent.Agent, error) {
	row, err := r.queries.GetAgent(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("agent not found", err, infra.KindNotFound), errs.ErrAgentNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get agent", err)
	}
	return converter.AgentFromRow(row), nil
}

// UpdateSettings never touches the load counters, which only SelectAgent and Release move.
func (r *AgentRepository) UpdateSettings(ctx context.Context, a *agent.Agent) error {
	n, err := r.queries.UpdateAgentSettings(ctx, r.db, converter.AgentToSettingsParams(a))
	if err != nil {
		return infra.WrapRepoErr("failed to update agent settings", err)
	}
	if n > 0 {
		return nil
	}
	if _, err := r.FindByID(ctx, a.ID()); err != nil {
		return err
	}
	return errs.Wrapf(errs.ErrCapacityBelowLoad, "agent %s holds more than %d requests", a.ID(), a.MaxActive())
}

func (r *AgentRepository) SelectAgent(ctx context.Context, cat category.Category, now time.Time) (*agent.Agent, error) {
	row, err := r.queries.SelectAgent(ctx, r.db, sqlc.SelectAgentParams{
		Now:      pgconv.TimeToPgtype(now),
		Category: cat.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Wrapf(errs.ErrNoAgentAvailable, "category %s", cat)
		}
		return nil, infra.WrapRepoErr("failed to select agent", err)
	}
	return converter.AgentFromRow(row), nil
}

func (r *AgentRepository) Release(ctx context.Context, agentID uuid.UUID, completed bool, amount money.Money, now time.Time) error {
	n, err := r.queries.ReleaseAgent(ctx, r.db, sqlc.ReleaseAgentParams{
		Completed:  completed,
		AmountKobo: amount.Kobo(),
		UpdatedAt:  pgconv.TimeToPgtype(now),
		ID:         agentID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release agent", err)
	}
	if n > 0 {
		return nil
	}
	if _, err := r.FindByID(ctx, agentID); err != nil {
		return err
	}
	return errs.Wrapf(agent.ErrNoActiveRequests, "agent %s", agentID)
}

func (r *AgentRepository) CountHeld(ctx context.Context, agentID uuid.UUID) (int, error) {
	n, err := r.queries.CountHeldRequests(ctx, r.db, pgconv.UUIDToPgtype(agentID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count held requests", err)
	}
	return int(n), nil
}
