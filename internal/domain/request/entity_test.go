//go:build unit

package request_test

import (
	"testing"
	"time"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/domain/request"
	"vas-broker/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newBVN(t *testing.T, maxRetries int) *request.ServiceRequest {
	t.Helper()
	req, err := request.New(request.NewParams{
		UserID:     uuid.New(),
		Category:   category.BVN,
		Payload:    request.Payload{"bvn": "22123456789"},
		Fee:        money.FromNaira(200),
		MaxRetries: maxRetries,
	}, baseTime)
	require.NoError(t, err)
	return req
}

func newPinOrder(t *testing.T) *request.ServiceRequest {
	t.Helper()
	req, err := request.New(request.NewParams{
		UserID:        uuid.New(),
		Category:      category.PinOrder,
		Payload:       request.Payload{"pin_type": "waec"},
		InventoryPool: "waec",
		Fee:           money.FromNaira(4000),
		MaxRetries:    2,
	}, baseTime)
	require.NoError(t, err)
	return req
}

func toQueued(t *testing.T, req *request.ServiceRequest) {
	t.Helper()
	_, err := req.MarkPaid(baseTime)
	require.NoError(t, err)
	_, err = req.MarkQueued(baseTime)
	require.NoError(t, err)
}

func TestNew(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *request.NewParams)
		errIs  error
	}{
		{name: "valid agent request", mutate: func(p *request.NewParams) {}},
		{name: "zero fee", mutate: func(p *request.NewParams) { p.Fee = money.FromKobo(0) }, errIs: request.ErrNonPositiveFee},
		{name: "unknown category", mutate: func(p *request.NewParams) { p.Category = "lottery" }, errIs: category.ErrUnknownCategory},
		{name: "pool on agent category", mutate: func(p *request.NewParams) { p.InventoryPool = "waec" }, errIs: request.ErrWrongFulfillment},
		{
			name: "pin order without pool",
			mutate: func(p *request.NewParams) {
				p.Category = category.PinOrder
				p.InventoryPool = ""
			},
			errIs: request.ErrWrongFulfillment,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := request.NewParams{
				UserID:     uuid.New(),
				Category:   category.BVN,
				Payload:    request.Payload{"bvn": "22123456789"},
				Fee:        money.FromNaira(200),
				MaxRetries: 3,
			}
			c.mutate(&p)
			req, err := request.New(p, baseTime)
			if c.errIs != nil {
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, request.StatusCreated, req.Status())
			assert.False(t, req.Paid())
			assert.NotEqual(t, uuid.Nil, req.ID())
		})
	}
}

func TestAgentPathToCompletion(t *testing.T) {
	req := newBVN(t, 3)
	agentID := uuid.New()

	prev, err := req.MarkPaid(baseTime)
	require.NoError(t, err)
	assert.Equal(t, request.StatusCreated, prev)
	assert.True(t, req.Paid())

	prev, err = req.MarkQueued(baseTime)
	require.NoError(t, err)
	assert.Equal(t, request.StatusPaid, prev)

	_, err = req.MarkAllocated(uuid.New(), baseTime)
	assert.ErrorIs(t, err, request.ErrWrongFulfillment)

	assignedAt := baseTime.Add(time.Minute)
	prev, err = req.MarkAssigned(agentID, assignedAt)
	require.NoError(t, err)
	assert.Equal(t, request.StatusQueued, prev)
	assert.True(t, req.IsAssignedTo(agentID))
	assert.Nil(t, req.AllocatedCodeID())
	assert.Equal(t, assignedAt, *req.AssignedAt())

	_, err = req.MarkInProgress(uuid.New(), baseTime)
	assert.True(t, errs.Is(err, errs.ErrForbidden))

	prev, err = req.MarkInProgress(agentID, baseTime)
	require.NoError(t, err)
	assert.Equal(t, request.StatusAssigned, prev)

	doneAt := baseTime.Add(time.Hour)
	prev, err = req.Complete(request.Payload{"name": "ADA OBI"}, doneAt)
	require.NoError(t, err)
	assert.Equal(t, request.StatusInProgress, prev)
	assert.Equal(t, request.StatusCompleted, req.Status())
	assert.Equal(t, doneAt, *req.CompletedAt())
	assert.Equal(t, request.Payload{"name": "ADA OBI"}, req.Result())

	_, err = req.Complete(nil, doneAt)
	assert.ErrorIs(t, err, request.ErrAlreadyCompleted)
}

func TestInventoryPath(t *testing.T) {
	req := newPinOrder(t)
	toQueued(t, req)

	_, err := req.MarkAssigned(uuid.New(), baseTime)
	assert.ErrorIs(t, err, request.ErrWrongFulfillment)

	codeID := uuid.New()
	prev, err := req.MarkAllocated(codeID, baseTime)
	require.NoError(t, err)
	assert.Equal(t, request.StatusQueued, prev)
	assert.Equal(t, codeID, *req.AllocatedCodeID())
	assert.Nil(t, req.AssignedAgentID())

	prev, err = req.Complete(request.Payload{"pin": "1234"}, baseTime)
	require.NoError(t, err)
	assert.Equal(t, request.StatusAllocated, prev)
}

func TestFailRetriesThenFails(t *testing.T) {
	req := newBVN(t, 3)
	toQueued(t, req)

	for i := 1; i <= 3; i++ {
		_, err := req.MarkAssigned(uuid.New(), baseTime)
		require.NoError(t, err)

		prev, requeued, err := req.Fail("portal timeout", true, baseTime)
		require.NoError(t, err)
		assert.Equal(t, request.StatusAssigned, prev)
		assert.True(t, requeued)
		assert.Equal(t, request.StatusQueued, req.Status())
		assert.Equal(t, i, req.RetryCount())
		assert.Nil(t, req.AssignedAgentID())
		assert.Nil(t, req.AssignedAt())
	}

	_, err := req.MarkAssigned(uuid.New(), baseTime)
	require.NoError(t, err)
	_, requeued, err := req.Fail("portal timeout", true, baseTime)
	require.NoError(t, err)
	assert.False(t, requeued)
	assert.Equal(t, request.StatusFailed, req.Status())
	assert.Equal(t, 3, req.RetryCount())
	assert.Equal(t, "portal timeout", req.FailureReason())

	_, _, err = req.Fail("again", false, baseTime)
	assert.ErrorIs(t, err, request.ErrAlreadyFailed)

	req.HaltRefund(baseTime)
	assert.True(t, req.RefundHalted())

	prev, err := req.MarkRefunded(baseTime)
	require.NoError(t, err)
	assert.Equal(t, request.StatusFailed, prev)
	assert.False(t, req.RefundHalted())
	assert.True(t, req.Status().IsTerminal())
}

func TestFailNonRetryable(t *testing.T) {
	req := newBVN(t, 3)
	toQueued(t, req)
	_, err := req.MarkAssigned(uuid.New(), baseTime)
	require.NoError(t, err)

	_, requeued, err := req.Fail("record not found on portal", false, baseTime)
	require.NoError(t, err)
	assert.False(t, requeued)
	assert.Equal(t, request.StatusFailed, req.Status())
	assert.Equal(t, 0, req.RetryCount())
}

func TestCancel(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(t *testing.T, req *request.ServiceRequest)
		wantErr bool
	}{
		{name: "from created", prepare: func(t *testing.T, req *request.ServiceRequest) {}},
		{name: "from paid", prepare: func(t *testing.T, req *request.ServiceRequest) {
			_, err := req.MarkPaid(baseTime)
			require.NoError(t, err)
		}},
		{name: "from queued", prepare: toQueued},
		{name: "from assigned", prepare: func(t *testing.T, req *request.ServiceRequest) {
			toQueued(t, req)
			_, err := req.MarkAssigned(uuid.New(), baseTime)
			require.NoError(t, err)
		}, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := newBVN(t, 3)
			c.prepare(t, req)
			before := req.Status()

			prev, err := req.Cancel(baseTime)
			if c.wantErr {
				assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
				assert.Equal(t, before, req.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, before, prev)
			assert.Equal(t, request.StatusCancelled, req.Status())
		})
	}
}

func TestInvalidTransitionsLeaveEntityUntouched(t *testing.T) {
	req := newBVN(t, 3)
	before := req.Snapshot()

	_, err := req.MarkQueued(baseTime.Add(time.Hour))
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	_, err = req.Complete(nil, baseTime.Add(time.Hour))
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	_, _, err = req.Fail("x", true, baseTime.Add(time.Hour))
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	_, err = req.MarkRefunded(baseTime.Add(time.Hour))
	assert.ErrorIs(t, err, request.ErrNotPaid)

	if diff := cmp.Diff(before, req.Snapshot()); diff != "" {
		t.Errorf("entity mutated by rejected transitions (-before +after):\n%s", diff)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	req := newPinOrder(t)
	toQueued(t, req)
	_, err := req.MarkAllocated(uuid.New(), baseTime)
	require.NoError(t, err)

	snap := req.Snapshot()
	back := request.Reconstruct(snap)
	if diff := cmp.Diff(snap, back.Snapshot()); diff != "" {
		t.Errorf("reconstruct mismatch (-want +got):\n%s", diff)
	}

	// Reconstructed entity does not alias the snapshot
	*snap.AllocatedCodeID = uuid.Nil
	assert.NotEqual(t, uuid.Nil, *back.AllocatedCodeID())
}

func TestEventTopic(t *testing.T) {
	assert.Equal(t, "request.paid", request.EventTopic(request.StatusPaid, false))
	assert.Equal(t, "request.requeued", request.EventTopic(request.StatusQueued, true))
	assert.Equal(t, "request.in_progress", request.EventTopic(request.StatusInProgress, false))
}
