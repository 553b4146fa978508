//go:build unit

package request_test

import (
	"testing"

	"vas-broker/internal/domain/request"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	terminal := []request.Status{request.StatusCompleted, request.StatusRefunded, request.StatusCancelled}
	all := []request.Status{
		request.StatusCreated, request.StatusPaid, request.StatusQueued, request.StatusAssigned, request.StatusAllocated,
		request.StatusInProgress, request.StatusCompleted, request.StatusFailed, request.StatusRefunded, request.StatusCancelled,
	}

	for _, from := range terminal {
		assert.True(t, from.IsTerminal())
		for _, to := range all {
			assert.False(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.True(t, request.StatusCreated.Cancellable())
	assert.True(t, request.StatusQueued.Cancellable())
	assert.False(t, request.StatusAssigned.Cancellable())
	assert.False(t, request.StatusFailed.IsTerminal())
	assert.True(t, request.StatusFailed.CanTransitionTo(request.StatusRefunded))
	assert.False(t, request.StatusQueued.CanTransitionTo(request.StatusFailed))

	assert.True(t, request.StatusAssigned.HoldsAgentSlot())
	assert.True(t, request.StatusInProgress.HoldsAgentSlot())
	assert.False(t, request.StatusAllocated.HoldsAgentSlot())

	_, err := request.ParseStatus("pending")
	assert.ErrorIs(t, err, request.ErrInvalidStatus)
	st, err := request.ParseStatus("in_progress")
	assert.NoError(t, err)
	assert.Equal(t, request.StatusInProgress, st)
}
