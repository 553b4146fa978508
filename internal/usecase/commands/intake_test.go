//go:build unit

package commands_test

import (
	"context"
	"testing"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/domain/request"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("success: debits the fee and marks the request paid", func(t *testing.T) {
		e := newEnv(t, true)
		userID := uuid.New()
		e.fund(t, userID, 1000)

		res, err := e.intake.Submit(ctx, commands.SubmitParams{
			UserID:         userID,
			Category:       category.BVN,
			Payload:        bvnPayload(),
			IdempotencyKey: "order-1",
		})

		require.NoError(t, err)
		assert.Equal(t, request.StatusPaid, res.Status)
		assert.Equal(t, "200.00", res.Fee.String())
		assert.False(t, res.Replayed)
		assert.Equal(t, commands.RequestIDFor(userID, "order-1"), res.RequestID)
		assert.Equal(t, money.FromNaira(800).Kobo(), e.balance(t, userID).Kobo())
		assert.Equal(t, int64(-20000), e.ledgerSum(t, res.RequestID).Kobo())

		v := e.get(t, res.RequestID)
		assert.True(t, v.Paid)
		assert.Equal(t, 3, v.MaxRetries)
		e.requireWalletBalanced(t, userID)
	})

	t.Run("success: pin order takes the pool price", func(t *testing.T) {
		e := newEnv(t, true)
		userID := uuid.New()
		e.fund(t, userID, 5000)

		id := e.submit(t, userID, category.PinOrder, pinPayload("WAEC"))

		v := e.get(t, id)
		assert.Equal(t, "waec", v.InventoryPool)
		assert.Equal(t, "4000.00", v.Fee.String())
		assert.Equal(t, 2, v.MaxRetries)
	})

	t.Run("success: replaying the key returns the stored request without a second debit", func(t *testing.T) {
		e := newEnv(t, true)
		userID := uuid.New()
		e.fund(t, userID, 1000)
		params := commands.SubmitParams{UserID: userID, Category: category.BVN, Payload: bvnPayload(), IdempotencyKey: "k"}

		first, err := e.intake.Submit(ctx, params)
		require.NoError(t, err)
		second, err := e.intake.Submit(ctx, params)
		require.NoError(t, err)

		assert.Equal(t, first.RequestID, second.RequestID)
		assert.True(t, second.Replayed)
		assert.Equal(t, money.FromNaira(800).Kobo(), e.balance(t, userID).Kobo())
	})

	t.Run("error: reusing a key for a different request", func(t *testing.T) {
		e := newEnv(t, true)
		userID := uuid.New()
		e.fund(t, userID, 1000)
		_, err := e.intake.Submit(ctx, commands.SubmitParams{UserID: userID, Category: category.BVN, Payload: bvnPayload(), IdempotencyKey: "k"})
		require.NoError(t, err)

		_, err = e.intake.Submit(ctx, commands.SubmitParams{
			UserID:         userID,
			Category:       category.BVN,
			Payload:        request.Payload{"bvn": "22999999999"},
			IdempotencyKey: "k",
		})

		assert.True(t, errs.Is(err, commands.ErrIdempotencyKeyReused))
	})

	t.Run("error: insufficient funds leaves no request behind", func(t *testing.T) {
		e := newEnv(t, true)
		userID := uuid.New()
		e.fund(t, userID, 100)

		res, err := e.intake.Submit(ctx, commands.SubmitParams{UserID: userID, Category: category.BVN, Payload: bvnPayload(), IdempotencyKey: "k"})

		assert.Nil(t, res)
		assert.True(t, errs.Is(err, errs.ErrInsufficientFunds))
		_, gerr := e.requests.GetRequest(ctx, commands.RequestIDFor(userID, "k"), adminViewer())
		assert.True(t, errs.Is(gerr, errs.ErrRequestNotFound))
		assert.Equal(t, money.FromNaira(100).Kobo(), e.balance(t, userID).Kobo())
	})

	t.Run("error: invalid payload", func(t *testing.T) {
		e := newEnv(t, true)
		userID := uuid.New()
		e.fund(t, userID, 1000)

		_, err := e.intake.Submit(ctx, commands.SubmitParams{UserID: userID, Category: category.BVN, Payload: request.Payload{"bvn": "123"}})

		assert.True(t, errs.Is(err, errs.ErrInvalidPayload))
		var verr *request.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "bvn", verr.Fields[0].Field)
	})

	t.Run("error: unknown pin pool", func(t *testing.T) {
		e := newEnv(t, true)
		userID := uuid.New()
		e.fund(t, userID, 10000)

		_, err := e.intake.Submit(ctx, commands.SubmitParams{UserID: userID, Category: category.PinOrder, Payload: pinPayload("gce")})

		assert.True(t, errs.Is(err, errs.ErrInvalidPayload))
	})
}
