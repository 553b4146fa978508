package api

import (
	"context"
	"net/http"

	reqdto "vas-broker/internal/handler/dto/request"
	resdto "vas-broker/internal/handler/dto/response"
	"vas-broker/internal/handler/httperr"
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/dispatch"
	"vas-broker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Sweeper runs one dispatcher pass on demand.
type Sweeper interface {
	Sweep(ctx context.Context) (dispatch.SweepReport, error)
}

type AdminHandler struct {
	requests  queries.RequestQueries
	lifecycle commands.LifecycleCommands
	agents    commands.AgentAdminCommands
	agentQ    queries.AgentQueries
	inventory commands.InventoryAdminCommands
	stockQ    queries.InventoryQueries
	sweeper   Sweeper
}

type AdminDeps struct {
	Requests  queries.RequestQueries
	Lifecycle commands.LifecycleCommands
	Agents    commands.AgentAdminCommands
	AgentQ    queries.AgentQueries
	Inventory commands.InventoryAdminCommands
	StockQ    queries.InventoryQueries
	Sweeper   Sweeper
}

func NewAdminHandler(d AdminDeps) *AdminHandler {
	return &AdminHandler{
		requests:  d.Requests,
		lifecycle: d.Lifecycle,
		agents:    d.Agents,
		agentQ:    d.AgentQ,
		inventory: d.Inventory,
		stockQ:    d.StockQ,
		sweeper:   d.Sweeper,
	}
}

// @Summary List requests by category and status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.RequestListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/requests [get]
func (h *AdminHandler) ListRequests(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.requests.ListByStatus(c.Request.Context(), c.Query("category"), c.Query("status"), cursor, limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestList(items, next))
}

// @Summary Retry a halted refund
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/admin/requests/{id}/retry-refund [post]
func (h *AdminHandler) RetryRefund(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := h.lifecycle.RetryRefund(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, id.String())
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}

// @Summary Register an agent
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterAgentRequest true "Agent"
// @Success 201 {object} resdto.AgentResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/agents [post]
func (h *AdminHandler) RegisterAgent(c *gin.Context) {
	var req reqdto.RegisterAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	a, err := h.agents.Register(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.Header("Location", "/api/admin/agents/"+a.ID().String()+"/stats")
	c.JSON(http.StatusCreated, resdto.FromAgent(a))
}

// @Summary Update agent settings
// @Description Partial update; lowering max_active below the current load is rejected
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agent ID"
// @Param request body reqdto.UpdateAgentRequest true "Settings"
// @Success 200 {object} resdto.AgentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/agents/{id} [patch]
func (h *AdminHandler) UpdateAgent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	a, err := h.agents.Update(c.Request.Context(), id, params)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAgent(a))
}

// @Summary Agent stats
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agent ID"
// @Success 200 {object} resdto.AgentStatsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/admin/agents/{id}/stats [get]
func (h *AdminHandler) AgentStats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.agentQ.AgentStats(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAgentStats(view))
}

// @Summary Import PIN codes
// @Description Partial import; duplicates and malformed codes are reported without failing the batch
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pool path string true "PIN pool"
// @Param request body reqdto.ImportCodesRequest true "Codes"
// @Success 200 {object} resdto.ImportCodesResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/inventory/{pool}/codes [post]
func (h *AdminHandler) ImportCodes(c *gin.Context) {
	var req reqdto.ImportCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	report, err := h.inventory.BulkAdd(c.Request.Context(), c.Param("pool"), req.Codes)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBulkAddReport(report))
}

// @Summary PIN pool stock
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param pool path string true "PIN pool"
// @Success 200 {object} resdto.StockResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/inventory/{pool} [get]
func (h *AdminHandler) Stock(c *gin.Context) {
	view, err := h.stockQ.Stock(c.Request.Context(), c.Param("pool"))
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromStock(view))
}

// @Summary Set a fee
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.SetPricingRequest true "Pricing"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /api/admin/pricing [put]
func (h *AdminHandler) SetPricing(c *gin.Context) {
	var req reqdto.SetPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cat, fee, err := req.Parse()
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	if err := h.inventory.SetPricing(c.Request.Context(), cat, req.Variant, fee); err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List fees
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PricingResponse
// @Router /api/admin/pricing [get]
func (h *AdminHandler) ListPricing(c *gin.Context) {
	items, err := h.stockQ.Pricing(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricing(items))
}

// @Summary Run one dispatcher sweep
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Router /api/admin/dispatch/sweep [post]
func (h *AdminHandler) Sweep(c *gin.Context) {
	report, err := h.sweeper.Sweep(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepReport(report))
}
