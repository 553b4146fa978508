package commands

import (
	"vas-broker/internal/domain/request"
	"vas-broker/internal/domain/user"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/metrics"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a command.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

// SystemActor is used by the dispatcher for automatic transitions.
func SystemActor() Actor {
	return Actor{Role: user.RoleAdmin}
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

// authorizeFulfiller allows admins, and the assigned agent on the agent path.
func authorizeFulfiller(actor Actor, req *request.ServiceRequest) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role == user.RoleAgent && req.Category().IsAgentServiced() && req.IsAssignedTo(actor.ID) {
		return nil
	}
	return errs.ErrForbidden
}

func authorizeOwner(actor Actor, req *request.ServiceRequest) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role == user.RoleCustomer && req.IsOwnedBy(actor.ID) {
		return nil
	}
	return errs.ErrForbidden
}

func countTransition(to request.Status) {
	metrics.RequestTransitions.WithLabelValues(string(to)).Inc()
}

type TransitionResult struct {
	RequestID  uuid.UUID
	Status     request.Status
	RetryCount int
	Requeued   bool
	Replayed   bool
}

func resultOf(req *request.ServiceRequest, requeued, replayed bool) *TransitionResult {
	return &TransitionResult{
		RequestID:  req.ID(),
		Status:     req.Status(),
		RetryCount: req.RetryCount(),
		Requeued:   requeued,
		Replayed:   replayed,
	}
}
