//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"vas-broker/internal/infra"
	"vas-broker/internal/infra/readstore"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	readstoremock "vas-broker/tests/mock/readstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInventoryReadStore_Stock(t *testing.T) {
	ctx := context.Background()

	t.Run("success: counts per status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockInventoryViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewInventoryReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetInventoryStock(ctx, mockDB, "mtn_1000").
			Return(sqlc.GetInventoryStockRow{Unused: 7, Reserved: 1, Used: 12}, nil)

		stock, err := store.Stock(ctx, "mtn_1000")
		require.NoError(t, err)
		assert.Equal(t, "mtn_1000", stock.Pool)
		assert.Equal(t, 7, stock.Unused)
		assert.Equal(t, 1, stock.Reserved)
		assert.Equal(t, 12, stock.Used)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockInventoryViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewInventoryReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetInventoryStock(ctx, mockDB, "glo_500").
			Return(sqlc.GetInventoryStockRow{}, errors.New("connection refused"))

		_, err := store.Stock(ctx, "glo_500")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
