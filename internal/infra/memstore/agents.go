package memstore

import (
	"context"
	"time"

	"vas-broker/internal/domain/agent"
	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

type agentRepo struct {
	tx *memTx
}

func (r *agentRepo) Create(_ context.Context, a *agent.Agent) error {
	if _, ok := r.tx.st.agents[a.ID()]; ok {
		return errs.Wrapf(errs.ErrDuplicateOperation, "agent %s already exists", a.ID())
	}
	r.tx.st.agents[a.ID()] = a.Snapshot()
	return nil
}

func (r *agentRepo) FindByID(_ context.Context, id uuid.UUID) (*agent.Agent, error) {
	snap, ok := r.tx.st.agents[id]
	if !ok {
		return nil, errs.ErrAgentNotFound
	}
	return agent.Reconstruct(snap), nil
}

// UpdateSettings never touches the load counters, which only SelectAgent and Release move.
func (r *agentRepo) UpdateSettings(_ context.Context, a *agent.Agent) error {
	stored, ok := r.tx.st.agents[a.ID()]
	if !ok {
		return errs.ErrAgentNotFound
	}
	if a.MaxActive() < stored.CurrentActive {
		return errs.ErrCapacityBelowLoad
	}
	next := a.Snapshot()
	stored.DisplayName = next.DisplayName
	stored.Categories = next.Categories
	stored.Available = next.Available
	stored.MaxActive = next.MaxActive
	stored.UpdatedAt = next.UpdatedAt
	r.tx.st.agents[a.ID()] = stored
	return nil
}

func (r *agentRepo) SelectAgent(_ context.Context, cat category.Category, now time.Time) (*agent.Agent, error) {
	if err := r.tx.check(OpAgentSelect, cat.String()); err != nil {
		return nil, err
	}
	agents := make([]*agent.Agent, 0, len(r.tx.st.agents))
	for _, s := range r.tx.st.agents {
		agents = append(agents, agent.Reconstruct(s))
	}
	picked := agent.PickLeastLoaded(agents, cat)
	if picked == nil {
		return nil, errs.Wrapf(errs.ErrNoAgentAvailable, "no eligible agent for %s", cat)
	}
	if err := picked.Assign(cat, now); err != nil {
		return nil, err
	}
	r.tx.st.agents[picked.ID()] = picked.Snapshot()
	return picked, nil
}

func (r *agentRepo) Release(_ context.Context, agentID uuid.UUID, completed bool, amount money.Money, now time.Time) error {
	snap, ok := r.tx.st.agents[agentID]
	if !ok {
		return errs.ErrAgentNotFound
	}
	a := agent.Reconstruct(snap)
	if err := a.Release(completed, amount, now); err != nil {
		return errs.Wrapf(err, "release agent %s", agentID)
	}
	r.tx.st.agents[agentID] = a.Snapshot()
	return nil
}

func (r *agentRepo) CountHeld(_ context.Context, agentID uuid.UUID) (int, error) {
	return countHeld(r.tx.st, agentID), nil
}

func countHeld(st *state, agentID uuid.UUID) int {
	n := 0
	for _, s := range st.requests {
		if s.Status.HoldsAgentSlot() && s.AssignedAgentID != nil && *s.AssignedAgentID == agentID {
			n++
		}
	}
	return n
}
