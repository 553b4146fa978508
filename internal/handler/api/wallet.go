package api

import (
	"net/http"

	reqdto "vas-broker/internal/handler/dto/request"
	resdto "vas-broker/internal/handler/dto/response"
	"vas-broker/internal/handler/httperr"
	"vas-broker/internal/usecase/commands"
	"vas-broker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	cmds commands.WalletCommands
	q    queries.WalletQueries
}

func NewWalletHandler(cmds commands.WalletCommands, q queries.WalletQueries) *WalletHandler {
	return &WalletHandler{cmds: cmds, q: q}
}

// @Summary Wallet balance
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WalletResponse
// @Router /api/wallet [get]
func (h *WalletHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	view, err := h.q.Wallet(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromWalletView(view))
}

// @Summary Wallet ledger entries
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.LedgerEntryListResponse
// @Router /api/wallet/entries [get]
func (h *WalletHandler) Entries(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.LedgerEntries(c.Request.Context(), actor.ID, cursor, limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLedgerEntries(items, next))
}

// @Summary Fund a wallet
// @Description Credit a user's wallet from an external payment reference; a repeated reference is a replay
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body reqdto.FundWalletRequest true "Funding"
// @Success 201 {object} resdto.FundResponse
// @Success 200 {object} resdto.FundResponse "Replayed reference"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/wallets/{userId}/fund [post]
func (h *WalletHandler) Fund(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req reqdto.FundWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	amount, err := req.ParseAmount()
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	result, err := h.cmds.Fund(c.Request.Context(), userID, amount, req.Reference)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "")
		return
	}
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromFundResult(result))
}
