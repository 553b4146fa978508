//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/domain/request"
	"vas-broker/internal/domain/user"
	"vas-broker/internal/infra/memstore"
	"vas-broker/internal/pkg/catalog"
	"vas-broker/internal/pkg/clock"
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/dispatch"
	"vas-broker/internal/usecase/queries"
	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

type env struct {
	store      *memstore.Store
	clock      *clock.MockClock
	intake     commands.IntakeCommands
	lifecycle  commands.LifecycleCommands
	agents     commands.AgentAdminCommands
	inventory  commands.InventoryAdminCommands
	wallets    commands.WalletCommands
	dispatcher *dispatch.Dispatcher
	requests   queries.RequestQueries
	agentStats queries.AgentQueries
	walletView queries.WalletQueries
}

func newEnv(t *testing.T, autoComplete bool, opts ...func(*dispatch.Config)) *env {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.New()
	clk := clock.NewMockClock(t0)
	cat := catalog.Default()

	e := &env{
		store:      store,
		clock:      clk,
		intake:     commands.NewIntakeCommands(store, cat, clk, logger),
		lifecycle:  commands.NewLifecycleCommands(store, clk, logger),
		agents:     commands.NewAgentAdminCommands(store, clk, logger),
		inventory:  commands.NewInventoryAdminCommands(store, cat, clk, logger),
		wallets:    commands.NewWalletCommands(store, clk, logger),
		requests:   queries.NewRequestQueries(memstore.NewRequestReadStore(store)),
		agentStats: queries.NewAgentQueries(memstore.NewAgentReadStore(store)),
		walletView: queries.NewWalletQueries(memstore.NewWalletReadStore(store)),
	}
	cfg := dispatch.Config{
		BatchSize:               100,
		AutoCompleteAllocations: autoComplete,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	e.dispatcher = dispatch.NewDispatcher(store, e.lifecycle, clk, logger, cfg)

	_, err := e.inventory.SeedDefaultPricing(context.Background())
	require.NoError(t, err)
	return e
}

func (e *env) fund(t *testing.T, userID uuid.UUID, naira int64) {
	t.Helper()
	_, err := e.wallets.Fund(context.Background(), userID, money.FromNaira(naira), uuid.NewString())
	require.NoError(t, err)
}

func (e *env) submit(t *testing.T, userID uuid.UUID, cat category.Category, payload request.Payload) uuid.UUID {
	t.Helper()
	e.clock.Add(time.Second)
	res, err := e.intake.Submit(context.Background(), commands.SubmitParams{
		UserID:         userID,
		Category:       cat,
		Payload:        payload,
		IdempotencyKey: uuid.NewString(),
	})
	require.NoError(t, err)
	return res.RequestID
}

func (e *env) registerAgent(t *testing.T, maxActive int, cats ...category.Category) uuid.UUID {
	t.Helper()
	a, err := e.agents.Register(context.Background(), commands.RegisterAgentParams{
		UserID:      uuid.New(),
		DisplayName: "Agent " + uuid.NewString()[:8],
		Categories:  cats,
		MaxActive:   maxActive,
	})
	require.NoError(t, err)
	return a.ID()
}

func (e *env) sweep(t *testing.T) dispatch.SweepReport {
	t.Helper()
	report, err := e.dispatcher.Sweep(context.Background())
	require.NoError(t, err)
	return report
}

func (e *env) get(t *testing.T, id uuid.UUID) *queries.RequestView {
	t.Helper()
	v, err := e.requests.GetRequest(context.Background(), id, queries.Viewer{Role: user.RoleAdmin})
	require.NoError(t, err)
	return v
}

func (e *env) balance(t *testing.T, userID uuid.UUID) money.Money {
	t.Helper()
	w, err := e.walletView.Wallet(context.Background(), userID)
	require.NoError(t, err)
	return w.Balance
}

func (e *env) ledgerSum(t *testing.T, requestID uuid.UUID) money.Money {
	t.Helper()
	var sum money.Money
	err := e.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		sum, err = tx.Ledger().SumByRequest(ctx, requestID)
		return err
	})
	require.NoError(t, err)
	return sum
}

// requireLoadConsistent checks that every agent's cached load matches the requests it holds.
func (e *env) requireLoadConsistent(t *testing.T, agentIDs ...uuid.UUID) {
	t.Helper()
	for _, id := range agentIDs {
		stats, err := e.agentStats.AgentStats(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, stats.HeldRequests, stats.CurrentActive, "agent %s load drifted", id)
		require.LessOrEqual(t, stats.CurrentActive, stats.MaxActive)
	}
}

// requireWalletBalanced checks that a user's ledger entries sum to the wallet balance.
func (e *env) requireWalletBalanced(t *testing.T, userID uuid.UUID) {
	t.Helper()
	entries, _, err := e.walletView.LedgerEntries(context.Background(), userID, nil, queries.MaxListLimit)
	require.NoError(t, err)
	sum := money.FromKobo(0)
	for _, en := range entries {
		sum = sum.Add(en.Amount)
	}
	require.Equal(t, e.balance(t, userID).Kobo(), sum.Kobo())
}

func admin() commands.Actor {
	return commands.Actor{ID: uuid.New(), Role: user.RoleAdmin}
}

func agentActor(id uuid.UUID) commands.Actor {
	return commands.Actor{ID: id, Role: user.RoleAgent}
}

func customer(id uuid.UUID) commands.Actor {
	return commands.Actor{ID: id, Role: user.RoleCustomer}
}

func bvnPayload() request.Payload {
	return request.Payload{"bvn": "22123456789"}
}

func cacPayload() request.Payload {
	return request.Payload{"business_name": "Adebayo Ventures"}
}

func pinPayload(pool string) request.Payload {
	return request.Payload{"pin_type": pool}
}

func adminViewer() queries.Viewer {
	return queries.Viewer{Role: user.RoleAdmin}
}
