//go:build unit

package commands_test

import (
	"context"
	"testing"

	"vas-broker/internal/domain/ledger"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallet_Fund(t *testing.T) {
	ctx := context.Background()

	t.Run("success: credits once per reference", func(t *testing.T) {
		e := newEnv(t, true)
		userID := uuid.New()

		first, err := e.wallets.Fund(ctx, userID, money.FromNaira(1500), "paystack-ref-1")
		require.NoError(t, err)
		second, err := e.wallets.Fund(ctx, userID, money.FromNaira(1500), "paystack-ref-1")
		require.NoError(t, err)

		assert.False(t, first.Replayed)
		assert.True(t, second.Replayed)
		assert.Equal(t, first.Entry.ID, second.Entry.ID)
		assert.Equal(t, ledger.KindFunding, first.Entry.Kind)
		assert.Equal(t, "fund:paystack-ref-1", first.Entry.IdempotencyKey)
		assert.Equal(t, int64(150000), e.balance(t, userID).Kobo())
		e.requireWalletBalanced(t, userID)
	})

	t.Run("error: reference reused with another amount", func(t *testing.T) {
		e := newEnv(t, true)
		userID := uuid.New()
		_, err := e.wallets.Fund(ctx, userID, money.FromNaira(1500), "ref")
		require.NoError(t, err)

		_, err = e.wallets.Fund(ctx, userID, money.FromNaira(10), "ref")

		assert.True(t, errs.Is(err, commands.ErrIdempotencyKeyReused))
		assert.Equal(t, int64(150000), e.balance(t, userID).Kobo())
	})

	t.Run("error: invalid funding", func(t *testing.T) {
		e := newEnv(t, true)

		_, err := e.wallets.Fund(ctx, uuid.New(), money.FromKobo(-5), "ref")
		assert.True(t, errs.Is(err, errs.ErrInvalidPayload))

		_, err = e.wallets.Fund(ctx, uuid.New(), money.FromNaira(5), " ")
		assert.True(t, errs.Is(err, errs.ErrInvalidPayload))
	})

	t.Run("success: unknown wallet reads as zero", func(t *testing.T) {
		e := newEnv(t, true)

		assert.True(t, e.balance(t, uuid.New()).IsZero())
	})
}
