package api

import (
	"net/http"

	domreq "vas-broker/internal/domain/request"
	reqdto "vas-broker/internal/handler/dto/request"
	resdto "vas-broker/internal/handler/dto/response"
	"vas-broker/internal/handler/httperr"
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AgentHandler serves the fulfilling agent's work surface. The agent id is the caller's user id.
type AgentHandler struct {
	lifecycle commands.LifecycleCommands
	q         queries.AgentQueries
}

func NewAgentHandler(lifecycle commands.LifecycleCommands, q queries.AgentQueries) *AgentHandler {
	return &AgentHandler{lifecycle: lifecycle, q: q}
}

// @Summary Start work on an assigned request
// @Tags agent
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/agent/requests/{id}/start [post]
func (h *AgentHandler) Start(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	result, err := h.lifecycle.MarkInProgress(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err, id.String())
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}

// @Summary Complete a request
// @Tags agent
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.CompleteRequest true "Fulfillment result"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/agent/requests/{id}/complete [post]
func (h *AgentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.lifecycle.Complete(c.Request.Context(), id, actor, domreq.Payload(req.Result))
	if err != nil {
		httperr.AbortWithDomainError(c, err, id.String())
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}

// @Summary Fail a request
// @Description A retryable failure requeues the request while retries remain; otherwise it is refunded
// @Tags agent
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.FailRequest true "Failure"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response "Refund failed; the request is held"
// @Router /api/agent/requests/{id}/fail [post]
func (h *AgentHandler) Fail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.FailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.lifecycle.Fail(c.Request.Context(), id, actor, req.TrimmedReason(), req.Retryable)
	if err != nil {
		httperr.AbortWithDomainError(c, err, id.String())
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}

// @Summary Own agent stats
// @Tags agent
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AgentStatsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/agent/stats [get]
func (h *AgentHandler) Stats(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	view, err := h.q.AgentStats(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAgentStats(view))
}
