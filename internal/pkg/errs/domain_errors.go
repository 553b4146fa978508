package errs

import "errors"

// Error taxonomy shared by the lifecycle engine and its callers
var (
	// Caller errors, surfaced verbatim and never retried
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Replay of an already applied operation; callers receive the prior result
	ErrDuplicateOperation = errors.New("duplicate operation")

	// Concurrency contention on the expected-status guard
	ErrStaleState = errors.New("stale state")

	// Expected backpressure, the request stays queued
	ErrNoAgentAvailable = errors.New("no agent available")
	ErrNoStockAvailable = errors.New("no stock available")

	// Fulfillment path programming error
	ErrNotReservedByCaller = errors.New("inventory code not reserved by caller")

	// Refund could not be applied; automatic processing of the request stops
	ErrRefundFailed = errors.New("refund failed")
	ErrRefundHalted = errors.New("refund halted pending manual intervention")

	// Lookup errors
	ErrRequestNotFound = errors.New("service request not found")
	ErrAgentNotFound   = errors.New("agent not found")
	ErrCodeNotFound    = errors.New("inventory code not found")
	ErrPricingNotFound = errors.New("pricing not found")
	ErrWalletNotFound  = errors.New("wallet not found")

	// Authorization and state errors
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCapacityBelowLoad = errors.New("capacity below current load")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
