//go:build unit || e2e

package builder

import (
	"time"

	"vas-broker/internal/domain/agent"
	"vas-broker/internal/domain/category"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AgentBuilder struct {
	ID            uuid.UUID
	DisplayName   string
	Categories    []category.Category
	Available     bool
	MaxActive     int
	CurrentActive int
	CreatedAt     time.Time
}

func NewAgentBuilder() *AgentBuilder {
	return &AgentBuilder{
		ID:          uuid.New(),
		DisplayName: "Adaeze Okafor",
		Categories:  []category.Category{category.BVN, category.Identity},
		Available:   true,
		MaxActive:   3,
		CreatedAt:   time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *AgentBuilder) With(mutate func(*AgentBuilder)) *AgentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *AgentBuilder) BuildDomain() (*agent.Agent, error) {
	a, err := agent.New(b.ID, b.DisplayName, b.Categories, b.MaxActive, b.CreatedAt)
	if err != nil {
		return nil, err
	}
	s := a.Snapshot()
	s.Available = b.Available
	s.CurrentActive = b.CurrentActive
	return agent.Reconstruct(s), nil
}

func (b *AgentBuilder) BuildInfra() sqlc.Agents {
	cats := make([]string, 0, len(b.Categories))
	for _, c := range b.Categories {
		cats = append(cats, c.String())
	}
	return sqlc.Agents{
		ID:            b.ID,
		DisplayName:   b.DisplayName,
		Categories:    cats,
		IsAvailable:   b.Available,
		MaxActive:     int32(b.MaxActive),
		CurrentActive: int32(b.CurrentActive),
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *AgentBuilder) BuildStatsView() *queries.AgentStatsView {
	cats := make([]string, 0, len(b.Categories))
	for _, c := range b.Categories {
		cats = append(cats, c.String())
	}
	return &queries.AgentStatsView{
		AgentID:       b.ID,
		DisplayName:   b.DisplayName,
		Categories:    cats,
		Available:     b.Available,
		MaxActive:     b.MaxActive,
		CurrentActive: b.CurrentActive,
		HeldRequests:  b.CurrentActive,
		UpdatedAt:     b.CreatedAt,
	}
}
