//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/inventory"
	"vas-broker/internal/domain/request"
	"vas-broker/internal/infra/memstore"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/dispatch"
	"vas-broker/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_AgentPath(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	userID := uuid.New()
	e.fund(t, userID, 1000)
	agentID := e.registerAgent(t, 2, category.BVN)

	id := e.submit(t, userID, category.BVN, bvnPayload())
	report := e.sweep(t)
	assert.Equal(t, 1, report.Queued)
	assert.Equal(t, 1, report.Assigned)

	v := e.get(t, id)
	require.Equal(t, string(request.StatusAssigned), v.Status)
	require.NotNil(t, v.AssignedAgentID)
	assert.Equal(t, agentID, *v.AssignedAgentID)
	assert.Nil(t, v.AllocatedCodeID)
	e.requireLoadConsistent(t, agentID)

	res, err := e.lifecycle.MarkInProgress(ctx, id, agentActor(agentID))
	require.NoError(t, err)
	assert.Equal(t, request.StatusInProgress, res.Status)

	res, err = e.lifecycle.Complete(ctx, id, agentActor(agentID), request.Payload{"full_name": "Ada Obi"})
	require.NoError(t, err)
	assert.Equal(t, request.StatusCompleted, res.Status)

	v = e.get(t, id)
	assert.Equal(t, "Ada Obi", v.Result["full_name"])
	assert.NotNil(t, v.CompletedAt)

	stats, err := e.agentStats.AgentStats(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.CurrentActive)
	assert.Equal(t, int64(1), stats.TotalCompleted)
	assert.Equal(t, "200.00", stats.TotalProcessed.String())
	assert.Equal(t, int64(-20000), e.ledgerSum(t, id).Kobo())
	e.requireWalletBalanced(t, userID)

	t.Run("completing again is a replay", func(t *testing.T) {
		res, err := e.lifecycle.Complete(ctx, id, agentActor(agentID), nil)
		require.NoError(t, err)
		assert.True(t, res.Replayed)

		stats, err := e.agentStats.AgentStats(ctx, agentID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.TotalCompleted)
	})
}

func TestLifecycle_OnlyAssigneeMayAct(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	userID := uuid.New()
	e.fund(t, userID, 1000)
	agentID := e.registerAgent(t, 1, category.BVN)
	id := e.submit(t, userID, category.BVN, bvnPayload())
	e.sweep(t)

	_, err := e.lifecycle.MarkInProgress(ctx, id, agentActor(uuid.New()))
	assert.True(t, errs.Is(err, errs.ErrForbidden))

	_, err = e.lifecycle.Complete(ctx, id, customer(userID), nil)
	assert.True(t, errs.Is(err, errs.ErrForbidden))

	_, err = e.lifecycle.Fail(ctx, id, agentActor(uuid.New()), "nope", false)
	assert.True(t, errs.Is(err, errs.ErrForbidden))

	assert.Equal(t, string(request.StatusAssigned), e.get(t, id).Status)
	e.requireLoadConsistent(t, agentID)
}

func TestLifecycle_RetryThenRefund(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	userID := uuid.New()
	e.fund(t, userID, 5000)
	agentID := e.registerAgent(t, 1, category.CAC)

	// cac allows two retries
	id := e.submit(t, userID, category.CAC, cacPayload())
	for attempt := 1; attempt <= 2; attempt++ {
		e.sweep(t)
		require.Equal(t, string(request.StatusAssigned), e.get(t, id).Status)

		res, err := e.lifecycle.Fail(ctx, id, agentActor(agentID), "portal timeout", true)
		require.NoError(t, err)
		assert.True(t, res.Requeued)
		assert.Equal(t, request.StatusQueued, res.Status)
		assert.Equal(t, attempt, res.RetryCount)

		v := e.get(t, id)
		assert.Nil(t, v.AssignedAgentID)
		assert.Nil(t, v.AssignedAt)
		e.requireLoadConsistent(t, agentID)
	}

	e.sweep(t)
	res, err := e.lifecycle.Fail(ctx, id, agentActor(agentID), "portal timeout", true)
	require.NoError(t, err)
	assert.False(t, res.Requeued)
	assert.Equal(t, request.StatusRefunded, res.Status)

	v := e.get(t, id)
	assert.Equal(t, "portal timeout", v.FailureReason)
	assert.Equal(t, 2, v.RetryCount)
	assert.True(t, e.ledgerSum(t, id).IsZero())
	assert.Equal(t, int64(500000), e.balance(t, userID).Kobo())
	e.requireWalletBalanced(t, userID)

	stats, err := e.agentStats.AgentStats(ctx, agentID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.CurrentActive)
	assert.Equal(t, int64(0), stats.TotalCompleted)
	assert.True(t, stats.TotalProcessed.IsZero())

	t.Run("failing a refunded request is a replay", func(t *testing.T) {
		res, err := e.lifecycle.Fail(ctx, id, admin(), "again", false)
		require.NoError(t, err)
		assert.True(t, res.Replayed)
		assert.True(t, e.ledgerSum(t, id).IsZero())
	})
}

func TestLifecycle_NonRetryableFailureRefundsImmediately(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	userID := uuid.New()
	e.fund(t, userID, 1000)
	agentID := e.registerAgent(t, 1, category.BVN)
	id := e.submit(t, userID, category.BVN, bvnPayload())
	e.sweep(t)

	res, err := e.lifecycle.Fail(ctx, id, agentActor(agentID), "record not found", false)

	require.NoError(t, err)
	assert.Equal(t, request.StatusRefunded, res.Status)
	assert.Equal(t, 0, res.RetryCount)
	assert.Equal(t, int64(100000), e.balance(t, userID).Kobo())
}

func TestLifecycle_RefundHaltAndRetry(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	userID := uuid.New()
	e.fund(t, userID, 1000)
	agentID := e.registerAgent(t, 1, category.BVN)
	id := e.submit(t, userID, category.BVN, bvnPayload())
	e.sweep(t)

	e.store.SetFault(func(op, key string) error {
		if op == memstore.OpLedgerApply && strings.HasPrefix(key, "refund:") {
			return errors.New("ledger unavailable")
		}
		return nil
	})

	_, err := e.lifecycle.Fail(ctx, id, agentActor(agentID), "record not found", false)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrRefundFailed))

	v := e.get(t, id)
	assert.Equal(t, string(request.StatusFailed), v.Status)
	assert.True(t, v.RefundHalted)
	assert.Equal(t, int64(-20000), e.ledgerSum(t, id).Kobo())
	// The slot was released in the first transaction
	e.requireLoadConsistent(t, agentID)

	e.store.SetFault(nil)
	report := e.sweep(t)
	assert.Equal(t, 0, report.Refunded, "halted refunds are left for an operator")
	assert.Equal(t, string(request.StatusFailed), e.get(t, id).Status)

	res, err := e.lifecycle.RetryRefund(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, request.StatusRefunded, res.Status)

	v = e.get(t, id)
	assert.False(t, v.RefundHalted)
	assert.True(t, e.ledgerSum(t, id).IsZero())
	e.requireWalletBalanced(t, userID)

	var topics []string
	err = e.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events, err := tx.Outbox().Pending(ctx, 0)
		for _, ev := range events {
			if ev.AggregateID == id {
				topics = append(topics, ev.Topic)
			}
		}
		return err
	})
	require.NoError(t, err)
	want := []string{"request.paid", "request.queued", "request.assigned", "request.failed", "request.refund_halted", "request.refunded"}
	if diff := cmp.Diff(want, topics); diff != "" {
		t.Errorf("event topics mismatch (-want +got):\n%s", diff)
	}
}

func TestLifecycle_RetryRefundRejectsLiveRequests(t *testing.T) {
	e := newEnv(t, true)
	userID := uuid.New()
	e.fund(t, userID, 1000)
	id := e.submit(t, userID, category.BVN, bvnPayload())

	_, err := e.lifecycle.RetryRefund(context.Background(), id)

	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
}

func TestLifecycle_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner cancels a paid request and is refunded", func(t *testing.T) {
		e := newEnv(t, true)
		userID := uuid.New()
		e.fund(t, userID, 1000)
		id := e.submit(t, userID, category.BVN, bvnPayload())

		res, err := e.lifecycle.Cancel(ctx, id, customer(userID))

		require.NoError(t, err)
		assert.Equal(t, request.StatusCancelled, res.Status)
		assert.Equal(t, int64(100000), e.balance(t, userID).Kobo())
		assert.True(t, e.ledgerSum(t, id).IsZero())

		again, err := e.lifecycle.Cancel(ctx, id, customer(userID))
		require.NoError(t, err)
		assert.True(t, again.Replayed)
		assert.Equal(t, int64(100000), e.balance(t, userID).Kobo())
	})

	t.Run("error: another customer", func(t *testing.T) {
		e := newEnv(t, true)
		userID := uuid.New()
		e.fund(t, userID, 1000)
		id := e.submit(t, userID, category.BVN, bvnPayload())

		_, err := e.lifecycle.Cancel(ctx, id, customer(uuid.New()))

		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("error: already assigned", func(t *testing.T) {
		e := newEnv(t, true)
		userID := uuid.New()
		e.fund(t, userID, 1000)
		e.registerAgent(t, 1, category.BVN)
		id := e.submit(t, userID, category.BVN, bvnPayload())
		e.sweep(t)

		_, err := e.lifecycle.Cancel(ctx, id, customer(userID))

		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
		assert.Equal(t, int64(80000), e.balance(t, userID).Kobo())
	})
}

func TestDispatch_AgentCapacityBackpressure(t *testing.T) {
	e := newEnv(t, true)
	userID := uuid.New()
	e.fund(t, userID, 10000)
	agents := []uuid.UUID{
		e.registerAgent(t, 2, category.BVN),
		e.registerAgent(t, 2, category.BVN, category.CAC),
		e.registerAgent(t, 2, category.BVN),
	}
	var ids []uuid.UUID
	for range 8 {
		ids = append(ids, e.submit(t, userID, category.BVN, bvnPayload()))
	}

	report := e.sweep(t)

	assert.Equal(t, 6, report.Assigned)
	assert.Equal(t, []string{"bvn"}, report.Backpressure)
	for _, id := range ids[:6] {
		assert.Equal(t, string(request.StatusAssigned), e.get(t, id).Status)
	}
	for _, id := range ids[6:] {
		assert.Equal(t, string(request.StatusQueued), e.get(t, id).Status)
	}
	e.requireLoadConsistent(t, agents...)

	// Freeing one slot lets the oldest queued request through
	first := e.get(t, ids[0])
	_, err := e.lifecycle.Complete(context.Background(), ids[0], agentActor(*first.AssignedAgentID), nil)
	require.NoError(t, err)
	report = e.sweep(t)
	assert.Equal(t, 1, report.Assigned)
	assert.Equal(t, string(request.StatusAssigned), e.get(t, ids[6]).Status)
	assert.Equal(t, string(request.StatusQueued), e.get(t, ids[7]).Status)
	e.requireLoadConsistent(t, agents...)
}

func TestDispatch_ConcurrentSweepsRespectCapacity(t *testing.T) {
	e := newEnv(t, true)
	userID := uuid.New()
	e.fund(t, userID, 10000)
	agents := []uuid.UUID{
		e.registerAgent(t, 2, category.BVN),
		e.registerAgent(t, 3, category.BVN),
	}
	for range 12 {
		e.submit(t, userID, category.BVN, bvnPayload())
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = e.dispatcher.Sweep(context.Background())
		}()
	}
	wg.Wait()

	assigned := 0
	for _, a := range agents {
		stats, err := e.agentStats.AgentStats(context.Background(), a)
		require.NoError(t, err)
		assigned += stats.CurrentActive
	}
	assert.Equal(t, 5, assigned)
	e.requireLoadConsistent(t, agents...)
}

func TestDispatch_PinStockBackpressure(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true)
	userID := uuid.New()
	e.fund(t, userID, 20000)
	_, err := e.inventory.BulkAdd(ctx, "waec", []inventory.Entry{
		{Code: "WAEC-0001", Serial: "SN1"},
		{Code: "WAEC-0002", Serial: "SN2"},
	})
	require.NoError(t, err)

	ids := []uuid.UUID{
		e.submit(t, userID, category.PinOrder, pinPayload("waec")),
		e.submit(t, userID, category.PinOrder, pinPayload("waec")),
		e.submit(t, userID, category.PinOrder, pinPayload("waec")),
	}

	report := e.sweep(t)

	assert.Equal(t, 2, report.Allocated)
	assert.Equal(t, 2, report.AutoCompleted)
	assert.Equal(t, []string{"waec"}, report.Backpressure)

	pins := map[string]bool{}
	for _, id := range ids[:2] {
		v := e.get(t, id)
		require.Equal(t, string(request.StatusCompleted), v.Status)
		assert.Nil(t, v.AssignedAgentID)
		require.NotNil(t, v.AllocatedCodeID)
		pins[v.Result["pin"]] = true
	}
	assert.Equal(t, map[string]bool{"WAEC-0001": true, "WAEC-0002": true}, pins)
	assert.Equal(t, string(request.StatusQueued), e.get(t, ids[2]).Status)

	_, err = e.inventory.BulkAdd(ctx, "waec", []inventory.Entry{{Code: "WAEC-0003"}})
	require.NoError(t, err)
	e.sweep(t)

	v := e.get(t, ids[2])
	assert.Equal(t, string(request.StatusCompleted), v.Status)
	assert.Equal(t, "WAEC-0003", v.Result["pin"])
	_, hasSerial := v.Result["serial"]
	assert.False(t, hasSerial)
}

func batchOf(n int) func(*dispatch.Config) {
	return func(c *dispatch.Config) { c.BatchSize = n }
}

func TestDispatch_ExhaustedCategoryDoesNotStarveOthers(t *testing.T) {
	e := newEnv(t, true, batchOf(2))
	userID := uuid.New()
	e.fund(t, userID, 10000)
	cacAgent := e.registerAgent(t, 5, category.CAC)

	bvn := []uuid.UUID{
		e.submit(t, userID, category.BVN, bvnPayload()),
		e.submit(t, userID, category.BVN, bvnPayload()),
	}
	cac := e.submit(t, userID, category.CAC, cacPayload())

	report := e.sweep(t)

	assert.Equal(t, 1, report.Assigned)
	assert.Equal(t, []string{"bvn"}, report.Backpressure)
	v := e.get(t, cac)
	require.Equal(t, string(request.StatusAssigned), v.Status)
	require.NotNil(t, v.AssignedAgentID)
	assert.Equal(t, cacAgent, *v.AssignedAgentID)
	for _, id := range bvn {
		assert.Equal(t, string(request.StatusQueued), e.get(t, id).Status)
	}
	e.requireLoadConsistent(t, cacAgent)
}

func TestDispatch_EmptyPoolDoesNotBlockOtherPools(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, true, batchOf(2))
	userID := uuid.New()
	e.fund(t, userID, 30000)
	_, err := e.inventory.BulkAdd(ctx, "neco", []inventory.Entry{{Code: "NECO-1", Serial: "S1"}})
	require.NoError(t, err)

	waec := []uuid.UUID{
		e.submit(t, userID, category.PinOrder, pinPayload("waec")),
		e.submit(t, userID, category.PinOrder, pinPayload("waec")),
		e.submit(t, userID, category.PinOrder, pinPayload("waec")),
	}
	neco := e.submit(t, userID, category.PinOrder, pinPayload("neco"))

	report := e.sweep(t)

	assert.Equal(t, 1, report.Allocated)
	assert.Equal(t, 1, report.AutoCompleted)
	assert.Equal(t, []string{"waec"}, report.Backpressure)
	v := e.get(t, neco)
	require.Equal(t, string(request.StatusCompleted), v.Status)
	assert.Equal(t, "NECO-1", v.Result["pin"])
	for _, id := range waec {
		assert.Equal(t, string(request.StatusQueued), e.get(t, id).Status)
	}
}

func TestDispatch_MixedBucketsEachReportBackpressure(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)
	userID := uuid.New()
	e.fund(t, userID, 50000)
	bvnAgent := e.registerAgent(t, 1, category.BVN)
	_, err := e.inventory.BulkAdd(ctx, "jamb", []inventory.Entry{{Code: "JAMB-1"}})
	require.NoError(t, err)

	for range 2 {
		e.submit(t, userID, category.BVN, bvnPayload())
		e.submit(t, userID, category.PinOrder, pinPayload("jamb"))
	}
	e.submit(t, userID, category.CAC, cacPayload())

	report := e.sweep(t)

	assert.Equal(t, 1, report.Assigned)
	assert.Equal(t, 1, report.Allocated)
	assert.ElementsMatch(t, []string{"bvn", "cac", "jamb"}, report.Backpressure)
	e.requireLoadConsistent(t, bvnAgent)
}

func TestDispatch_FailedAllocationBurnsCode(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, false)
	userID := uuid.New()
	e.fund(t, userID, 10000)
	_, err := e.inventory.BulkAdd(ctx, "neco", []inventory.Entry{{Code: "NECO-1"}, {Code: "NECO-2"}})
	require.NoError(t, err)
	id := e.submit(t, userID, category.PinOrder, pinPayload("neco"))

	e.sweep(t)
	first := e.get(t, id)
	require.Equal(t, string(request.StatusAllocated), first.Status)

	res, err := e.lifecycle.Fail(ctx, id, admin(), "code rejected by portal", true)
	require.NoError(t, err)
	require.True(t, res.Requeued)

	var burned *inventory.Code
	err = e.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		burned, err = tx.Inventory().FindByID(ctx, *first.AllocatedCodeID)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusUsed, burned.Status())

	e.sweep(t)
	second := e.get(t, id)
	require.Equal(t, string(request.StatusAllocated), second.Status)
	assert.NotEqual(t, *first.AllocatedCodeID, *second.AllocatedCodeID)

	_, err = e.lifecycle.Complete(ctx, id, admin(), nil)
	require.NoError(t, err)
	assert.Equal(t, "NECO-2", e.get(t, id).Result["pin"])
}

func TestDispatch_StaleRequestsAreSkipped(t *testing.T) {
	e := newEnv(t, true)
	userID := uuid.New()
	e.fund(t, userID, 1000)
	id := e.submit(t, userID, category.BVN, bvnPayload())

	e.store.SetFault(func(op, key string) error {
		if op == memstore.OpRequestTransit && key == id.String() {
			return errs.ErrStaleState
		}
		return nil
	})
	report := e.sweep(t)
	e.store.SetFault(nil)

	assert.Equal(t, 1, report.Stale)
	assert.Equal(t, 0, report.Queued)
	assert.Equal(t, string(request.StatusPaid), e.get(t, id).Status)

	report = e.sweep(t)
	assert.Equal(t, 1, report.Queued)
}
