//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/request"
	"vas-broker/internal/infra"
	"vas-broker/internal/infra/repository"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/shared"
	"vas-broker/tests/common/builder"
	repositorymock "vas-broker/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Request Tests
// =============================================================================

func TestRequestRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRequestWriteQueries, sqlc.DBTX)
		expectedError error
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: request inserted",
			setupMock: func(mock *repositorymock.MockRequestWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().CreateServiceRequest(ctx, db, gomock.Any()).Return(nil)
			},
		},
		{
			name: "error: existing id is a duplicate operation",
			setupMock: func(mock *repositorymock.MockRequestWriteQueries, db sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateServiceRequest(ctx, db, gomock.Any()).Return(dup)
			},
			expectedError: errs.ErrDuplicateOperation,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRequestWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().CreateServiceRequest(ctx, db, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRequestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRequestRepository(mockQueries, mockDB)

			req, err := builder.NewRequestBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Create(ctx, req)

			if tc.expectKind == "" {
				assert.NoError(t, actualError)
				return
			}
			require.Error(t, actualError)
			assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			if tc.expectedError != nil {
				assert.True(t, errs.Is(actualError, tc.expectedError))
			}
		})
	}
}

func TestRequestRepository_CreateParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockRequestWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewRequestRepository(mockQueries, mockDB)

	req, err := builder.NewRequestBuilder().AsPinOrder("mtn_1000").BuildDomain()
	require.NoError(t, err)

	mockQueries.EXPECT().CreateServiceRequest(gomock.Any(), mockDB, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateServiceRequestParams) error {
			assert.Equal(t, req.ID(), arg.ID)
			assert.Equal(t, "pin_order", arg.Category)
			assert.Equal(t, "mtn_1000", arg.InventoryPool.String)
			assert.True(t, arg.InventoryPool.Valid)
			assert.JSONEq(t, `{"pin_type":"mtn_1000"}`, string(arg.Payload))
			assert.Nil(t, arg.Result, "an absent result is stored as NULL")
			assert.False(t, arg.AssignedAgentID.Valid)
			assert.False(t, arg.FailureReason.Valid)
			return nil
		})

	require.NoError(t, repo.Create(context.Background(), req))
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestRequestRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewRequestBuilder().With(func(b *builder.RequestBuilder) {
		b.Status = request.StatusQueued
	})

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRequestWriteQueries, sqlc.DBTX)
		expectedError error
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row is reconstructed",
			setupMock: func(mock *repositorymock.MockRequestWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().GetServiceRequestForUpdate(ctx, db, b.ID).Return(b.BuildInfra(), nil)
			},
		},
		{
			name: "error: missing row",
			setupMock: func(mock *repositorymock.MockRequestWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().GetServiceRequestForUpdate(ctx, db, b.ID).Return(sqlc.ServiceRequests{}, pgx.ErrNoRows)
			},
			expectedError: errs.ErrRequestNotFound,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRequestWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().GetServiceRequestForUpdate(ctx, db, b.ID).Return(sqlc.ServiceRequests{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRequestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRequestRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			got, err := repo.FindByID(ctx, b.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				if tc.expectedError != nil {
					assert.True(t, errs.Is(err, tc.expectedError))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID, got.ID())
			assert.Equal(t, request.StatusQueued, got.Status())
			assert.True(t, got.Paid())
			assert.Equal(t, b.Fee, got.Fee())
			assert.Equal(t, "22212345678", got.Payload()["bvn"])
		})
	}
}

// =============================================================================
// Transition Tests
// =============================================================================

func TestRequestRepository_Transition(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		rows          int64
		dbErr         error
		expectedError error
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: guard matched", rows: 1},
		{name: "error: status moved underneath", rows: 0, expectedError: errs.ErrStaleState},
		{name: "error: database error occurs", dbErr: errors.New("connection reset"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRequestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRequestRepository(mockQueries, mockDB)

			req, err := builder.NewRequestBuilder().With(func(b *builder.RequestBuilder) {
				b.Status = request.StatusPaid
			}).BuildDomain()
			require.NoError(t, err)
			expected, err := req.MarkQueued(req.UpdatedAt())
			require.NoError(t, err)

			mockQueries.EXPECT().TransitionServiceRequest(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.TransitionServiceRequestParams) (int64, error) {
					assert.Equal(t, "paid", arg.ExpectedStatus)
					assert.Equal(t, "queued", arg.Status)
					assert.Equal(t, req.ID(), arg.ID)
					return tc.rows, tc.dbErr
				})

			actualError := repo.Transition(ctx, req, expected)

			switch {
			case tc.expectedError != nil:
				require.Error(t, actualError)
				assert.True(t, errs.Is(actualError, tc.expectedError))
			case tc.expectKind != "":
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind))
			default:
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestRequestRepository_SetRefundHalted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockRequestWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewRequestRepository(mockQueries, mockDB)
	b := builder.NewRequestBuilder()

	mockQueries.EXPECT().SetServiceRequestRefundHalted(gomock.Any(), mockDB, gomock.Any()).Return(int64(0), nil)

	err := repo.SetRefundHalted(context.Background(), b.ID, true, b.CreatedAt)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrRequestNotFound))
}

func TestRequestRepository_ListByStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockRequestWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewRequestRepository(mockQueries, mockDB)

	queued := func(b *builder.RequestBuilder) { b.Status = request.StatusQueued }
	rows := []sqlc.ServiceRequests{
		builder.NewRequestBuilder().With(queued).BuildInfra(),
		builder.NewRequestBuilder().With(queued).AsPinOrder("glo_500").BuildInfra(),
	}
	mockQueries.EXPECT().
		ListServiceRequestsByStatus(gomock.Any(), mockDB, sqlc.ListServiceRequestsByStatusParams{Status: "queued", RowLimit: 25}).
		Return(rows, nil)

	got, err := repo.ListByStatus(context.Background(), request.StatusQueued, 25)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, rows[0].ID, got[0].ID())
	assert.Equal(t, "glo_500", got[1].InventoryPool())
}

func TestRequestRepository_Buckets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockRequestWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewRequestRepository(mockQueries, mockDB)

	mockQueries.EXPECT().
		ListServiceRequestBuckets(gomock.Any(), mockDB, "queued").
		Return([]sqlc.ListServiceRequestBucketsRow{
			{Category: "bvn"},
			{Category: "pin_order", InventoryPool: "waec"},
		}, nil)

	got, err := repo.Buckets(context.Background(), request.StatusQueued)
	require.NoError(t, err)
	want := []shared.Bucket{
		{Category: category.BVN},
		{Category: category.PinOrder, Pool: "waec"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buckets mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "bvn", got[0].Key())
	assert.Equal(t, "waec", got[1].Key())
}

func TestRequestRepository_ListInBucket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockRequestWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewRequestRepository(mockQueries, mockDB)

	row := builder.NewRequestBuilder().With(func(b *builder.RequestBuilder) { b.Status = request.StatusQueued }).
		AsPinOrder("neco").BuildInfra()
	mockQueries.EXPECT().
		ListServiceRequestsInBucket(gomock.Any(), mockDB, sqlc.ListServiceRequestsInBucketParams{
			Status:        "queued",
			Category:      "pin_order",
			InventoryPool: "neco",
			RowLimit:      10,
		}).
		Return([]sqlc.ServiceRequests{row}, nil)

	got, err := repo.ListInBucket(context.Background(), request.StatusQueued,
		shared.Bucket{Category: category.PinOrder, Pool: "neco"}, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, row.ID, got[0].ID())
}

func TestRequestRepository_ListInBucket_DBFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockRequestWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewRequestRepository(mockQueries, mockDB)

	mockQueries.EXPECT().ListServiceRequestsInBucket(gomock.Any(), mockDB, gomock.Any()).
		Return(nil, errors.New("connection reset"))

	_, err := repo.ListInBucket(context.Background(), request.StatusQueued, shared.Bucket{Category: category.BVN}, 10)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

// =============================================================================
// Test Helper Types
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
