//go:build unit

package api_test

import (
	"net/http"
	"testing"

	domreq "vas-broker/internal/domain/request"
	"vas-broker/internal/domain/user"
	"vas-broker/internal/handler/api"
	reqdto "vas-broker/internal/handler/dto/request"
	resdto "vas-broker/internal/handler/dto/response"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/commands"
	"vas-broker/tests/common/builder"
	"vas-broker/tests/common/httptest"
	commandsmock "vas-broker/tests/mock/commands"
	queriesmock "vas-broker/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AgentHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockLifecycle *commandsmock.MockLifecycleCommands
	mockQueries   *queriesmock.MockAgentQueries
	agentID       uuid.UUID
	actor         commands.Actor
}

func (s *AgentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLifecycle = commandsmock.NewMockLifecycleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAgentQueries(s.mockCtrl)
	handler := api.NewAgentHandler(s.mockLifecycle, s.mockQueries)

	s.agentID = uuid.New()
	s.actor = commands.Actor{ID: s.agentID, Role: user.RoleAgent}
	auth := fakeAuth(s.agentID, user.RoleAgent)

	s.router.POST("/api/agent/requests/:id/start", auth, handler.Start)
	s.router.POST("/api/agent/requests/:id/complete", auth, handler.Complete)
	s.router.POST("/api/agent/requests/:id/fail", auth, handler.Fail)
	s.router.GET("/api/agent/stats", auth, handler.Stats)
}

func (s *AgentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAgentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AgentHandlerTestSuite))
}

func (s *AgentHandlerTestSuite) TestStart() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockLifecycle.EXPECT().MarkInProgress(gomock.Any(), id, s.actor).
			Return(&commands.TransitionResult{RequestID: id, Status: domreq.StatusInProgress}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/agent/requests/"+id.String()+"/start", nil, "token")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("in_progress", body.Status)
	})

	s.Run("error: 403 when assigned to another agent", func() {
		s.mockLifecycle.EXPECT().MarkInProgress(gomock.Any(), id, s.actor).Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/agent/requests/"+id.String()+"/start", nil, "token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, "FORBIDDEN")
	})
}

func (s *AgentHandlerTestSuite) TestComplete() {
	id := uuid.New()
	url := "/api/agent/requests/" + id.String() + "/complete"

	s.Run("success: result is forwarded", func() {
		s.mockLifecycle.EXPECT().Complete(gomock.Any(), id, s.actor, domreq.Payload{"nin": "12345678901"}).
			Return(&commands.TransitionResult{RequestID: id, Status: domreq.StatusCompleted}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.CompleteRequest{Result: map[string]string{"nin": "12345678901"}}, "token")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id.String(), body.ID)
		s.Equal("completed", body.Status)
	})

	s.Run("success: replayed completion", func() {
		s.mockLifecycle.EXPECT().Complete(gomock.Any(), id, s.actor, gomock.Any()).
			Return(&commands.TransitionResult{RequestID: id, Status: domreq.StatusCompleted, Replayed: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.CompleteRequest{}, "token")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Replayed)
	})

	s.Run("error: 409 from a terminal status", func() {
		s.mockLifecycle.EXPECT().Complete(gomock.Any(), id, s.actor, gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrInvalidTransition, "refunded -> completed"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.CompleteRequest{}, "token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "INVALID_TRANSITION")
	})
}

func (s *AgentHandlerTestSuite) TestFail() {
	id := uuid.New()
	url := "/api/agent/requests/" + id.String() + "/fail"

	s.Run("success: retryable failure requeues", func() {
		s.mockLifecycle.EXPECT().Fail(gomock.Any(), id, s.actor, "portal timeout", true).
			Return(&commands.TransitionResult{RequestID: id, Status: domreq.StatusQueued, RetryCount: 1, Requeued: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.FailRequest{Reason: "  portal timeout ", Retryable: true}, "token")

		var body resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Requeued)
		s.Equal(1, body.RetryCount)
		s.Equal("queued", body.Status)
	})

	s.Run("error: 400 without reason", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.FailRequest{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 500 with request id when refund fails", func() {
		s.mockLifecycle.EXPECT().Fail(gomock.Any(), id, s.actor, "bad record", false).
			Return(nil, errs.Wrap(errs.ErrRefundFailed, "credit wallet"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.FailRequest{Reason: "bad record"}, "token")

		var body struct {
			Detail struct {
				RequestID string `json:"request_id"`
			} `json:"detail"`
		}
		httptest.AssertErrorCode(s.T(), rec, http.StatusInternalServerError, "REFUND_FAILED")
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(id.String(), body.Detail.RequestID)
	})
}

func (s *AgentHandlerTestSuite) TestStats() {
	s.Run("success: stats of the caller", func() {
		view := builder.NewAgentBuilder().With(func(b *builder.AgentBuilder) {
			b.ID = s.agentID
			b.CurrentActive = 2
		}).BuildStatsView()
		s.mockQueries.EXPECT().AgentStats(gomock.Any(), s.agentID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/agent/stats", nil, "token")

		var body resdto.AgentStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.agentID.String(), body.AgentID)
		s.Equal(3, body.MaxActive)
		s.Equal(2, body.CurrentActive)
	})

	s.Run("error: 404 for an unregistered agent", func() {
		s.mockQueries.EXPECT().AgentStats(gomock.Any(), s.agentID).Return(nil, errs.ErrAgentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/agent/stats", nil, "token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}
