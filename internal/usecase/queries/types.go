package queries

import (
	"time"

	"vas-broker/internal/domain/money"
	"vas-broker/internal/domain/user"

	"github.com/google/uuid"
)

// Viewer is the authenticated caller of a query.
type Viewer struct {
	ID   uuid.UUID
	Role user.Role
}

// RequestView is the read model of one service request.
type RequestView struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Category        string
	Payload         map[string]string
	InventoryPool   string
	Fee             money.Money
	Paid            bool
	Status          string
	AssignedAgentID *uuid.UUID
	AllocatedCodeID *uuid.UUID
	Result          map[string]string
	FailureReason   string
	RetryCount      int
	MaxRetries      int
	RefundHalted    bool
	CreatedAt       time.Time
	AssignedAt      *time.Time
	CompletedAt     *time.Time
	UpdatedAt       time.Time
}

type RequestFilter struct {
	UserID   *uuid.UUID
	Category *string
	Status   *string
}

// AgentStatsView pairs the agent's cached load with the load derived from its requests.
type AgentStatsView struct {
	AgentID        uuid.UUID
	DisplayName    string
	Categories     []string
	Available      bool
	MaxActive      int
	CurrentActive  int
	HeldRequests   int
	TotalCompleted int64
	TotalProcessed money.Money
	LastAssignedAt *time.Time
	UpdatedAt      time.Time
}

type WalletView struct {
	UserID    uuid.UUID
	Balance   money.Money
	UpdatedAt *time.Time
}

type LedgerEntryView struct {
	ID             uuid.UUID
	Amount         money.Money
	Kind           string
	IdempotencyKey string
	RequestID      *uuid.UUID
	BalanceAfter   money.Money
	CreatedAt      time.Time
}

type StockView struct {
	Pool     string
	Unused   int
	Reserved int
	Used     int
}

type PricingView struct {
	Category  string
	Variant   string
	Fee       money.Money
	UpdatedAt time.Time
}

// Keyset is the position after which a page starts.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}
