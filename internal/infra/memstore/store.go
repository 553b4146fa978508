// Package memstore keeps the whole broker state in memory. Every unit of work runs
// serially against a copy of the state that replaces the original only on success.
package memstore

import (
	"context"
	"sync"

	"vas-broker/internal/domain/agent"
	"vas-broker/internal/domain/inventory"
	"vas-broker/internal/domain/ledger"
	"vas-broker/internal/domain/request"
	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

// Fault lets tests fail a named operation. A nil return lets the operation proceed.
type Fault func(op, key string) error

const (
	OpLedgerApply     = "ledger.apply"
	OpInventoryClaim  = "inventory.claim"
	OpAgentSelect     = "agent.select"
	OpRequestTransit  = "request.transition"
	OpOutboxPublished = "outbox.mark_published"
)

type Store struct {
	mu    sync.Mutex
	state *state
	fault Fault
}

type priceKey struct {
	category string
	variant  string
}

type codeKey struct {
	pool  string
	value string
}

// Stored snapshots are never mutated in place, so a state copy only duplicates the containers.
type state struct {
	requests  map[uuid.UUID]request.Snapshot
	agents    map[uuid.UUID]agent.Snapshot
	codes     map[uuid.UUID]inventory.Snapshot
	codeOrder []uuid.UUID
	codeIndex map[codeKey]uuid.UUID
	entries   []ledger.Entry
	keys      map[string]int
	wallets   map[uuid.UUID]ledger.Wallet
	prices    map[priceKey]pricing
	outbox    []shared.OutboxEvent
}

func New() *Store {
	return &Store{state: &state{
		requests:  map[uuid.UUID]request.Snapshot{},
		agents:    map[uuid.UUID]agent.Snapshot{},
		codes:     map[uuid.UUID]inventory.Snapshot{},
		codeIndex: map[codeKey]uuid.UUID{},
		keys:      map[string]int{},
		wallets:   map[uuid.UUID]ledger.Wallet{},
		prices:    map[priceKey]pricing{},
	}}
}

// SetFault installs f for subsequent operations; nil removes it.
func (s *Store) SetFault(f Fault) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fault = f
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.clone()
	if err := fn(ctx, &memTx{st: working, fault: s.fault}); err != nil {
		return err
	}
	s.state = working
	return nil
}

// read runs fn against the committed state.
func (s *Store) read(fn func(st *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

func (st *state) clone() *state {
	c := &state{
		requests:  make(map[uuid.UUID]request.Snapshot, len(st.requests)),
		agents:    make(map[uuid.UUID]agent.Snapshot, len(st.agents)),
		codes:     make(map[uuid.UUID]inventory.Snapshot, len(st.codes)),
		codeOrder: append([]uuid.UUID(nil), st.codeOrder...),
		codeIndex: make(map[codeKey]uuid.UUID, len(st.codeIndex)),
		entries:   append([]ledger.Entry(nil), st.entries...),
		keys:      make(map[string]int, len(st.keys)),
		wallets:   make(map[uuid.UUID]ledger.Wallet, len(st.wallets)),
		prices:    make(map[priceKey]pricing, len(st.prices)),
		outbox:    append([]shared.OutboxEvent(nil), st.outbox...),
	}
	for k, v := range st.requests {
		c.requests[k] = v
	}
	for k, v := range st.agents {
		c.agents[k] = v
	}
	for k, v := range st.codes {
		c.codes[k] = v
	}
	for k, v := range st.codeIndex {
		c.codeIndex[k] = v
	}
	for k, v := range st.keys {
		c.keys[k] = v
	}
	for k, v := range st.wallets {
		c.wallets[k] = v
	}
	for k, v := range st.prices {
		c.prices[k] = v
	}
	return c
}

type memTx struct {
	st    *state
	fault Fault
}

func (t *memTx) check(op, key string) error {
	if t.fault == nil {
		return nil
	}
	return t.fault(op, key)
}

func (t *memTx) Requests() shared.RequestRepository {
	return &requestRepo{tx: t}
}

func (t *memTx) Agents() shared.AgentRepository {
	return &agentRepo{tx: t}
}

func (t *memTx) Inventory() shared.InventoryRepository {
	return &inventoryRepo{tx: t}
}

func (t *memTx) Ledger() shared.LedgerRepository {
	return &ledgerRepo{tx: t}
}

func (t *memTx) Pricing() shared.PricingRepository {
	return &pricingRepo{tx: t}
}

func (t *memTx) Outbox() shared.OutboxRepository {
	return &outboxRepo{tx: t}
}
