package api

import (
	"net/http"
	"strings"

	reqdto "vas-broker/internal/handler/dto/request"
	resdto "vas-broker/internal/handler/dto/response"
	"vas-broker/internal/handler/httperr"
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	intake    commands.IntakeCommands
	lifecycle commands.LifecycleCommands
	q         queries.RequestQueries
}

func NewRequestHandler(intake commands.IntakeCommands, lifecycle commands.LifecycleCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{intake: intake, lifecycle: lifecycle, q: q}
}

// @Summary Submit service request
// @Description Validate, price and pay for a service request from the caller's wallet
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Client key; resubmitting the same key returns the original request"
// @Param request body reqdto.SubmitRequest true "Service request"
// @Success 201 {object} resdto.SubmitResponse
// @Success 200 {object} resdto.SubmitResponse "Replayed submission"
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/requests [post]
func (h *RequestHandler) Submit(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	key := strings.TrimSpace(c.GetHeader(idempotencyKeyHeader))
	if key == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Idempotency-Key header is required", nil)
		return
	}

	var req reqdto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams(actor.ID, key)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}

	result, err := h.intake.Submit(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}

	c.Header("Location", "/api/requests/"+result.RequestID.String())
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromSubmitResult(result))
}

// @Summary Get service request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	viewer, ok := viewerFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	view, err := h.q.GetRequest(c.Request.Context(), id, viewer)
	if err != nil {
		httperr.AbortWithDomainError(c, err, id.String())
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary List own service requests
// @Description Newest first with keyset pagination
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.RequestListResponse
// @Router /api/requests [get]
func (h *RequestHandler) ListMine(c *gin.Context) {
	viewer, ok := viewerFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.ListByUser(c.Request.Context(), viewer.ID, cursor, limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestList(items, next))
}

// @Summary Cancel service request
// @Description Cancel a request that has not reached a fulfiller; a paid request is refunded
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/requests/{id}/cancel [post]
func (h *RequestHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	result, err := h.lifecycle.Cancel(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err, id.String())
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}
