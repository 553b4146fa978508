package response

import (
	"vas-broker/internal/domain/agent"
	"vas-broker/internal/domain/inventory"
	"vas-broker/internal/usecase/dispatch"
	"vas-broker/internal/usecase/queries"
)

type AgentResponse struct {
	ID            string   `json:"id"`
	DisplayName   string   `json:"display_name"`
	Categories    []string `json:"categories"`
	Available     bool     `json:"available"`
	MaxActive     int      `json:"max_active"`
	CurrentActive int      `json:"current_active"`
}

func FromAgent(a *agent.Agent) *AgentResponse {
	cats := make([]string, 0, len(a.Categories()))
	for _, c := range a.Categories() {
		cats = append(cats, c.String())
	}
	return &AgentResponse{
		ID:            a.ID().String(),
		DisplayName:   a.DisplayName(),
		Categories:    cats,
		Available:     a.Available(),
		MaxActive:     a.MaxActive(),
		CurrentActive: a.CurrentActive(),
	}
}

type AgentStatsResponse struct {
	AgentID        string   `json:"agent_id"`
	DisplayName    string   `json:"display_name"`
	Categories     []string `json:"categories"`
	Available      bool     `json:"available"`
	MaxActive      int      `json:"max_active"`
	CurrentActive  int      `json:"current_active"`
	HeldRequests   int      `json:"held_requests"`
	TotalCompleted int64    `json:"total_completed"`
	TotalProcessed string   `json:"total_processed"`
	LastAssignedAt *int64   `json:"last_assigned_at,omitempty"`
	UpdatedAt      int64    `json:"updated_at"`
}

func FromAgentStats(v *queries.AgentStatsView) *AgentStatsResponse {
	res := &AgentStatsResponse{
		AgentID:        v.AgentID.String(),
		DisplayName:    v.DisplayName,
		Categories:     v.Categories,
		Available:      v.Available,
		MaxActive:      v.MaxActive,
		CurrentActive:  v.CurrentActive,
		HeldRequests:   v.HeldRequests,
		TotalCompleted: v.TotalCompleted,
		TotalProcessed: v.TotalProcessed.String(),
		UpdatedAt:      v.UpdatedAt.Unix(),
	}
	if v.LastAssignedAt != nil {
		ts := v.LastAssignedAt.Unix()
		res.LastAssignedAt = &ts
	}
	return res
}

type StockResponse struct {
	Pool     string `json:"pool"`
	Unused   int    `json:"unused"`
	Reserved int    `json:"reserved"`
	Used     int    `json:"used"`
}

func FromStock(v *queries.StockView) *StockResponse {
	return &StockResponse{Pool: v.Pool, Unused: v.Unused, Reserved: v.Reserved, Used: v.Used}
}

type ImportCodesResponse struct {
	Added      int                  `json:"added"`
	Duplicates []string             `json:"duplicates"`
	Invalid    []inventory.Rejected `json:"invalid"`
}

func FromBulkAddReport(r *inventory.BulkAddReport) *ImportCodesResponse {
	res := &ImportCodesResponse{Added: r.Added, Duplicates: r.Duplicates, Invalid: r.Invalid}
	if res.Duplicates == nil {
		res.Duplicates = []string{}
	}
	if res.Invalid == nil {
		res.Invalid = []inventory.Rejected{}
	}
	return res
}

type PricingResponse struct {
	Category  string `json:"category"`
	Variant   string `json:"variant,omitempty"`
	Fee       string `json:"fee"`
	UpdatedAt int64  `json:"updated_at"`
}

func FromPricing(items []*queries.PricingView) []*PricingResponse {
	res := make([]*PricingResponse, len(items))
	for i, p := range items {
		res[i] = &PricingResponse{
			Category:  p.Category,
			Variant:   p.Variant,
			Fee:       p.Fee.String(),
			UpdatedAt: p.UpdatedAt.Unix(),
		}
	}
	return res
}

type SweepResponse struct {
	Queued        int      `json:"queued"`
	Assigned      int      `json:"assigned"`
	Allocated     int      `json:"allocated"`
	AutoCompleted int      `json:"auto_completed"`
	Refunded      int      `json:"refunded"`
	Stale         int      `json:"stale"`
	Failed        int      `json:"failed"`
	Backpressure  []string `json:"backpressure"`
}

func FromSweepReport(r dispatch.SweepReport) *SweepResponse {
	res := &SweepResponse{
		Queued:        r.Queued,
		Assigned:      r.Assigned,
		Allocated:     r.Allocated,
		AutoCompleted: r.AutoCompleted,
		Refunded:      r.Refunded,
		Stale:         r.Stale,
		Failed:        r.Failed,
		Backpressure:  r.Backpressure,
	}
	if res.Backpressure == nil {
		res.Backpressure = []string{}
	}
	return res
}
