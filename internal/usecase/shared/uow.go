package shared

import (
	"context"
	"time"

	"vas-broker/internal/domain/agent"
	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/inventory"
	"vas-broker/internal/domain/ledger"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/domain/request"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction; every repository reached through tx is bound to it.
	// Serialization failures and deadlocks are retried, so fn must be safe to run again.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Requests() RequestRepository
	Agents() AgentRepository
	Inventory() InventoryRepository
	Ledger() LedgerRepository
	Pricing() PricingRepository
	Outbox() OutboxRepository
}

type RequestRepository interface {
	// Create inserts a new request; an existing id yields errs.ErrDuplicateOperation.
	Create(ctx context.Context, req *request.ServiceRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*request.ServiceRequest, error)
	// Transition persists req only if the stored status still equals expected,
	// otherwise it returns errs.ErrStaleState.
	Transition(ctx context.Context, req *request.ServiceRequest, expected request.Status) error
	SetRefundHalted(ctx context.Context, id uuid.UUID, halted bool, now time.Time) error
	// ListByStatus returns non-halted requests oldest first.
	ListByStatus(ctx context.Context, status request.Status, limit int) ([]*request.ServiceRequest, error)
	// Buckets lists the distinct (category, pool) pairs among non-halted requests in status.
	Buckets(ctx context.Context, status request.Status) ([]Bucket, error)
	// ListInBucket is ListByStatus restricted to one bucket.
	ListInBucket(ctx context.Context, status request.Status, b Bucket, limit int) ([]*request.ServiceRequest, error)
}

// Bucket is the unit the dispatcher exhausts independently: a category for agent
// work, a category plus PIN pool for inventory work.
type Bucket struct {
	Category category.Category
	Pool     string
}

// Key names the bucket in sweep reports and logs.
func (b Bucket) Key() string {
	if b.Pool != "" {
		return b.Pool
	}
	return b.Category.String()
}

type AgentRepository interface {
	Create(ctx context.Context, a *agent.Agent) error
	FindByID(ctx context.Context, id uuid.UUID) (*agent.Agent, error)
	// UpdateSettings stores name, categories, availability and capacity. A capacity
	// below the stored load yields errs.ErrCapacityBelowLoad.
	UpdateSettings(ctx context.Context, a *agent.Agent) error
	// SelectAgent picks the least-loaded eligible agent and takes one slot in a single step.
	SelectAgent(ctx context.Context, cat category.Category, now time.Time) (*agent.Agent, error)
	// Release frees one slot; completed requests add to the agent's totals.
	Release(ctx context.Context, agentID uuid.UUID, completed bool, amount money.Money, now time.Time) error
	// CountHeld counts requests in assigned/in_progress held by the agent.
	CountHeld(ctx context.Context, agentID uuid.UUID) (int, error)
}

type InventoryRepository interface {
	// Claim reserves one unused code of pool for requestID; errs.ErrNoStockAvailable when empty.
	Claim(ctx context.Context, pool string, requestID uuid.UUID, now time.Time) (*inventory.Code, error)
	// Finalize burns a code reserved for requestID. Repeating it for the same request is a no-op.
	Finalize(ctx context.Context, codeID, requestID uuid.UUID, now time.Time) error
	FindByID(ctx context.Context, id uuid.UUID) (*inventory.Code, error)
	// BulkAdd stores entries that are new to the pool and returns the codes that already existed.
	BulkAdd(ctx context.Context, pool string, entries []inventory.Entry, now time.Time) (added int, duplicates []string, err error)
}

type LedgerRepository interface {
	// Apply records m exactly once. A replayed key returns the original entry with
	// errs.ErrDuplicateOperation; an overdraft returns errs.ErrInsufficientFunds.
	Apply(ctx context.Context, m ledger.Mutation, now time.Time) (ledger.Entry, error)
	SumByRequest(ctx context.Context, requestID uuid.UUID) (money.Money, error)
}

type PricingRepository interface {
	Get(ctx context.Context, cat category.Category, variant string) (money.Money, error)
	Set(ctx context.Context, cat category.Category, variant string, fee money.Money, now time.Time) error
	// SetIfAbsent applies fee only when no price exists yet.
	SetIfAbsent(ctx context.Context, cat category.Category, variant string, fee money.Money, now time.Time) (bool, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, ev OutboxEvent) error
	// Pending lists up to limit unpublished events, oldest first.
	Pending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID, now time.Time) error
}
