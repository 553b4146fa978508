//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	domreq "vas-broker/internal/domain/request"
	"vas-broker/internal/domain/user"
	"vas-broker/internal/handler/api"
	resdto "vas-broker/internal/handler/dto/response"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/queries"
	"vas-broker/tests/common/builder"
	"vas-broker/tests/common/httptest"
	"vas-broker/tests/common/testutil"
	commandsmock "vas-broker/tests/mock/commands"
	queriesmock "vas-broker/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RequestHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockIntake    *commandsmock.MockIntakeCommands
	mockLifecycle *commandsmock.MockLifecycleCommands
	mockQueries   *queriesmock.MockRequestQueries
	customerID    uuid.UUID
}

func (s *RequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockIntake = commandsmock.NewMockIntakeCommands(s.mockCtrl)
	s.mockLifecycle = commandsmock.NewMockLifecycleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRequestQueries(s.mockCtrl)
	handler := api.NewRequestHandler(s.mockIntake, s.mockLifecycle, s.mockQueries)

	s.customerID = uuid.New()
	auth := fakeAuth(s.customerID, user.RoleCustomer)

	s.router.POST("/api/requests", auth, handler.Submit)
	s.router.GET("/api/requests", auth, handler.ListMine)
	s.router.GET("/api/requests/:id", auth, handler.Get)
	s.router.POST("/api/requests/:id/cancel", auth, handler.Cancel)
}

func (s *RequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestHandlerTestSuite))
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *RequestHandlerTestSuite) TestSubmit() {
	url := "/api/requests"
	headers := map[string]string{"Idempotency-Key": "order-1"}
	reqBody := builder.NewRequestBuilder().BuildSubmitRequestDTO()
	requestID := uuid.New()

	s.Run("success: 201 Created for a new request", func() {
		s.mockIntake.EXPECT().Submit(gomock.Any(), commands.SubmitParams{
			UserID:         s.customerID,
			Category:       category.BVN,
			Payload:        domreq.Payload{"bvn": "22212345678"},
			IdempotencyKey: "order-1",
		}).Return(&commands.SubmitResult{
			RequestID: requestID,
			Status:    domreq.StatusPaid,
			Fee:       money.FromNaira(1500),
		}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "token", headers)

		var body resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(requestID.String(), body.ID)
		s.Equal("paid", body.Status)
		s.Equal("1500.00", body.Fee)
		s.False(body.Replayed)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/requests/" + requestID.String()})
	})

	s.Run("success: 200 OK for a replayed key", func() {
		s.mockIntake.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(&commands.SubmitResult{
			RequestID: requestID,
			Status:    domreq.StatusQueued,
			Fee:       money.FromNaira(1500),
			Replayed:  true,
		}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "token", headers)

		var body resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Replayed)
	})

	s.Run("error: 400 without Idempotency-Key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: 400 for an unknown category", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("category", "passport"))
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, "token", headers)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_PAYLOAD")
	})

	s.Run("error: 400 when payload is missing", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("payload", nil))
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, "token", headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "", headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	domainErrors := []struct {
		name       string
		err        error
		expectCode int
		errorCode  string
	}{
		{"validation failure", &domreq.ValidationError{Fields: []domreq.FieldError{{Field: "bvn", Message: "must be 11 digits"}}}, http.StatusBadRequest, "INVALID_PAYLOAD"},
		{"insufficient funds", errs.Wrap(errs.ErrInsufficientFunds, "wallet"), http.StatusPaymentRequired, "INSUFFICIENT_FUNDS"},
		{"key reused with another payload", commands.ErrIdempotencyKeyReused, http.StatusConflict, "IDEMPOTENCY_KEY_REUSED"},
		{"unexpected failure", errs.New("connection reset"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range domainErrors {
		s.Run("error: "+tc.name, func() {
			s.mockIntake.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "token", headers)
			httptest.AssertErrorCode(s.T(), rec, tc.expectCode, tc.errorCode)
		})
	}

	s.Run("error: validation detail lists fields", func() {
		s.mockIntake.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil,
			&domreq.ValidationError{Fields: []domreq.FieldError{{Field: "bvn", Message: "must be 11 digits"}}})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "token", headers)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), `"field":"bvn"`)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *RequestHandlerTestSuite) TestGet() {
	view := builder.NewRequestBuilder().With(func(b *builder.RequestBuilder) {
		b.Status = domreq.StatusQueued
	}).BuildView()

	s.Run("success: 200 with the request", func() {
		s.mockQueries.EXPECT().GetRequest(gomock.Any(), view.ID, queries.Viewer{ID: s.customerID, Role: user.RoleCustomer}).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/requests/"+view.ID.String(), nil, "token")

		var body resdto.RequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("queued", body.Status)
		s.Equal("1500.00", body.Fee)
		s.Nil(body.AssignedAgentID)
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/requests/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.ErrRequestNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/requests/"+uuid.NewString(), nil, "token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("error: 403 for someone else's request", func() {
		s.mockQueries.EXPECT().GetRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/requests/"+uuid.NewString(), nil, "token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *RequestHandlerTestSuite) TestListMine() {
	s.Run("success: passes cursor and limit through", func() {
		items := []*queries.RequestView{builder.NewRequestBuilder().BuildView()}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.customerID, &queries.Cursor{After: "abc"}, 5).
			Return(items, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/requests?limit=5&after=abc", nil, "token")

		var body resdto.RequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Equal("next", body.NextCursor)
	})

	s.Run("success: default limit without query", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.customerID, (*queries.Cursor)(nil), queries.DefaultListLimit).
			Return([]*queries.RequestView{}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/requests", nil, "token")

		var body resdto.RequestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Empty(body.NextCursor)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *RequestHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/api/requests/" + id.String() + "/cancel"
	actor := commands.Actor{ID: s.customerID, Role: user.RoleCustomer}

	s.Run("success: 200 with the cancelled status", func() {
		s.mockLifecycle.EXPECT().Cancel(gomock.Any(), id, actor).
			Return(&commands.TransitionResult{RequestID: id, Status: domreq.StatusCancelled}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 409 once fulfillment started", func() {
		s.mockLifecycle.EXPECT().Cancel(gomock.Any(), id, actor).
			Return(nil, errs.Wrap(errs.ErrInvalidTransition, "assigned -> cancelled"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "INVALID_TRANSITION")
	})

	s.Run("error: 409 on a concurrent change", func() {
		s.mockLifecycle.EXPECT().Cancel(gomock.Any(), id, actor).Return(nil, errs.ErrStaleState)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "STALE_STATE")
	})
}
