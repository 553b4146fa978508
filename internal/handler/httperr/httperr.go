package httperr

import (
	"errors"
	"net/http"

	"vas-broker/internal/domain/request"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// mapping is checked in order; the first sentinel err matches decides the response.
var mapping = []struct {
	target error
	status int
	code   string
	msg    string
}{
	{commands.ErrIdempotencyKeyReused, http.StatusConflict, "IDEMPOTENCY_KEY_REUSED", "Idempotency key already used for a different request"},
	{errs.ErrInvalidPayload, http.StatusBadRequest, "INVALID_PAYLOAD", "Invalid payload"},
	{errs.ErrInsufficientFunds, http.StatusPaymentRequired, "INSUFFICIENT_FUNDS", "Insufficient wallet balance"},
	{errs.ErrStaleState, http.StatusConflict, "STALE_STATE", "Request was modified concurrently, retry"},
	{errs.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION", "Request cannot move to that status"},
	{errs.ErrCapacityBelowLoad, http.StatusConflict, "CAPACITY_BELOW_LOAD", "Capacity is below the agent's current load"},
	{errs.ErrDuplicateOperation, http.StatusConflict, "DUPLICATE_OPERATION", "Operation already applied"},
	{errs.ErrRequestNotFound, http.StatusNotFound, "NOT_FOUND", "Service request not found"},
	{errs.ErrAgentNotFound, http.StatusNotFound, "NOT_FOUND", "Agent not found"},
	{errs.ErrCodeNotFound, http.StatusNotFound, "NOT_FOUND", "Inventory code not found"},
	{errs.ErrWalletNotFound, http.StatusNotFound, "NOT_FOUND", "Wallet not found"},
	{errs.ErrPricingNotFound, http.StatusNotFound, "NOT_FOUND", "No price configured for category"},
	{errs.ErrForbidden, http.StatusForbidden, "FORBIDDEN", "Forbidden"},
	{errs.ErrRefundFailed, http.StatusInternalServerError, "REFUND_FAILED", "Refund failed, the request is held for manual intervention"},
	{errs.ErrRefundHalted, http.StatusInternalServerError, "REFUND_HALTED", "Refund halted pending manual intervention"},
}

// AbortWithDomainError translates the error taxonomy into an HTTP response.
func AbortWithDomainError(c *gin.Context, err error, requestID string) {
	for _, m := range mapping {
		if !errs.Is(err, m.target) {
			continue
		}
		var detail any
		switch m.target {
		case errs.ErrInvalidPayload:
			var verr *request.ValidationError
			if errs.As(err, &verr) {
				detail = gin.H{"fields": verr.Fields}
			}
		case errs.ErrRefundFailed, errs.ErrRefundHalted:
			if requestID != "" {
				detail = gin.H{"request_id": requestID}
			}
		}
		abort(c, m.status, err, m.code, m.msg, detail)
		return
	}
	abort(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error", nil)
}

func abort(c *gin.Context, status int, err error, code, msg string, detail any) {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
