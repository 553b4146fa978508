package converter

import (
	"vas-broker/internal/domain/agent"
	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/pgconv"
)

func AgentToCreateParams(a *agent.Agent) sqlc.CreateAgentParams {
	s := a.Snapshot()
	return sqlc.CreateAgentParams{
		ID:                 s.ID,
		DisplayName:        s.DisplayName,
		Categories:         CategoriesToStrings(s.Categories),
		IsAvailable:        s.Available,
		MaxActive:          pgconv.IntToInt32(s.MaxActive),
		CurrentActive:      pgconv.IntToInt32(s.CurrentActive),
		TotalCompleted:     s.TotalCompleted,
		TotalProcessedKobo: s.TotalProcessed.Kobo(),
		LastAssignedAt:     pgconv.TimePtrToPgtype(s.LastAssignedAt),
		CreatedAt:          pgconv.TimeToPgtype(s.CreatedAt),
		UpdatedAt:          pgconv.TimeToPgtype(s.UpdatedAt),
	}
}

func AgentToSettingsParams(a *agent.Agent) sqlc.UpdateAgentSettingsParams {
	s := a.Snapshot()
	return sqlc.UpdateAgentSettingsParams{
		DisplayName: s.DisplayName,
		Categories:  CategoriesToStrings(s.Categories),
		IsAvailable: s.Available,
		MaxActive:   pgconv.IntToInt32(s.MaxActive),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt),
		ID:          s.ID,
	}
}

func AgentFromRow(row sqlc.Agents) *agent.Agent {
	return agent.Reconstruct(agent.Snapshot{
		ID:             row.ID,
		DisplayName:    row.DisplayName,
		Categories:     categoriesFromStrings(row.Categories),
		Available:      row.IsAvailable,
		MaxActive:      int(row.MaxActive),
		CurrentActive:  int(row.CurrentActive),
		TotalCompleted: row.TotalCompleted,
		TotalProcessed: money.FromKobo(row.TotalProcessedKobo),
		LastAssignedAt: pgconv.TimePtrFromPgtype(row.LastAssignedAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func CategoriesToStrings(cats []category.Category) []string {
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.String())
	}
	return out
}

func categoriesFromStrings(values []string) []category.Category {
	out := make([]category.Category, 0, len(values))
	for _, v := range values {
		out = append(out, category.Category(v))
	}
	return out
}
