//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vas-broker/internal/domain/agent"
	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/infra"
	"vas-broker/internal/infra/repository"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/errs"
	"vas-broker/tests/common/builder"
	repositorymock "vas-broker/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAgentRepository_SelectAgent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockAgentWriteQueries, sqlc.DBTX)
		expectedError error
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: slot taken on the picked agent",
			setupMock: func(mock *repositorymock.MockAgentWriteQueries, db sqlc.DBTX) {
				row := builder.NewAgentBuilder().With(func(b *builder.AgentBuilder) { b.CurrentActive = 1 }).BuildInfra()
				mock.EXPECT().SelectAgent(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.SelectAgentParams) (sqlc.Agents, error) {
						assert.Equal(t, "bvn", arg.Category)
						assert.True(t, arg.Now.Time.Equal(now))
						return row, nil
					})
			},
		},
		{
			name: "error: nobody eligible",
			setupMock: func(mock *repositorymock.MockAgentWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().SelectAgent(ctx, db, gomock.Any()).Return(sqlc.Agents{}, pgx.ErrNoRows)
			},
			expectedError: errs.ErrNoAgentAvailable,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockAgentWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().SelectAgent(ctx, db, gomock.Any()).Return(sqlc.Agents{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAgentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAgentRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			got, err := repo.SelectAgent(ctx, category.BVN, now)

			switch {
			case tc.expectedError != nil:
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedError))
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			default:
				require.NoError(t, err)
				assert.Equal(t, 1, got.CurrentActive())
				assert.True(t, got.Serves(category.BVN))
			}
		})
	}
}

func TestAgentRepository_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	b := builder.NewAgentBuilder()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockAgentWriteQueries, sqlc.DBTX)
		expectedError error
	}{
		{
			name: "success: settings stored",
			setupMock: func(mock *repositorymock.MockAgentWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().UpdateAgentSettings(ctx, db, gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "error: capacity below stored load",
			setupMock: func(mock *repositorymock.MockAgentWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().UpdateAgentSettings(ctx, db, gomock.Any()).Return(int64(0), nil)
				mock.EXPECT().GetAgent(ctx, db, b.ID).Return(b.BuildInfra(), nil)
			},
			expectedError: errs.ErrCapacityBelowLoad,
		},
		{
			name: "error: agent does not exist",
			setupMock: func(mock *repositorymock.MockAgentWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().UpdateAgentSettings(ctx, db, gomock.Any()).Return(int64(0), nil)
				mock.EXPECT().GetAgent(ctx, db, b.ID).Return(sqlc.Agents{}, pgx.ErrNoRows)
			},
			expectedError: errs.ErrAgentNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAgentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAgentRepository(mockQueries, mockDB)

			a, err := b.BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			err = repo.UpdateSettings(ctx, a)
			if tc.expectedError == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.expectedError), "got %v", err)
		})
	}
}

func TestAgentRepository_Release(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)
	b := builder.NewAgentBuilder()

	t.Run("success: completion adds to totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockAgentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAgentRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ReleaseAgent(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ReleaseAgentParams) (int64, error) {
				assert.True(t, arg.Completed)
				assert.Equal(t, int64(150000), arg.AmountKobo)
				assert.Equal(t, b.ID, arg.ID)
				return 1, nil
			})

		require.NoError(t, repo.Release(ctx, b.ID, true, money.FromNaira(1500), now))
	})

	t.Run("error: nothing to release", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockAgentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAgentRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ReleaseAgent(ctx, mockDB, gomock.Any()).Return(int64(0), nil)
		mockQueries.EXPECT().GetAgent(ctx, mockDB, b.ID).Return(b.BuildInfra(), nil)

		err := repo.Release(ctx, b.ID, false, money.FromKobo(0), now)
		require.Error(t, err)
		assert.True(t, errs.Is(err, agent.ErrNoActiveRequests))
	})
}

func TestAgentRepository_CountHeld(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockAgentWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewAgentRepository(mockQueries, mockDB)
	b := builder.NewAgentBuilder()

	mockQueries.EXPECT().CountHeldRequests(gomock.Any(), mockDB, gomock.Any()).Return(int32(2), nil)

	n, err := repo.CountHeld(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
