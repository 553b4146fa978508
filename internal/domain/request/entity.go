package request

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveFee   = errors.New("fee must be positive")
	ErrWrongFulfillment = errors.New("category is not fulfilled this way")
	ErrAlreadyCompleted = errors.New("request already completed")
	ErrAlreadyFailed    = errors.New("request already failed")
	ErrNotPaid          = errors.New("request has not been paid")
)

// ServiceRequest is one customer ask moving through the fulfillment lifecycle.
type ServiceRequest struct {
	id              uuid.UUID
	userID          uuid.UUID
	category        category.Category
	payload         Payload
	inventoryPool   string
	fee             money.Money
	paid            bool
	status          Status
	assignedAgentID *uuid.UUID
	allocatedCodeID *uuid.UUID
	result          Payload
	failureReason   string
	retryCount      int
	maxRetries      int
	refundHalted    bool
	createdAt       time.Time
	assignedAt      *time.Time
	completedAt     *time.Time
	updatedAt       time.Time
}

// Snapshot is the flat, persistable form of a ServiceRequest.
type Snapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Category        category.Category
	Payload         Payload
	InventoryPool   string
	Fee             money.Money
	Paid            bool
	Status          Status
	AssignedAgentID *uuid.UUID
	AllocatedCodeID *uuid.UUID
	Result          Payload
	FailureReason   string
	RetryCount      int
	MaxRetries      int
	RefundHalted    bool
	CreatedAt       time.Time
	AssignedAt      *time.Time
	CompletedAt     *time.Time
	UpdatedAt       time.Time
}

type NewParams struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Category      category.Category
	Payload       Payload
	InventoryPool string
	Fee           money.Money
	MaxRetries    int
}

// New builds an unpaid request in status created. The payload must already be validated.
func New(p NewParams, now time.Time) (*ServiceRequest, error) {
	if !p.Category.IsValid() {
		return nil, category.ErrUnknownCategory
	}
	if !p.Fee.IsPositive() {
		return nil, ErrNonPositiveFee
	}
	if p.Category.IsAgentServiced() && p.InventoryPool != "" {
		return nil, ErrWrongFulfillment
	}
	if !p.Category.IsAgentServiced() && p.InventoryPool == "" {
		return nil, ErrWrongFulfillment
	}
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	maxRetries := p.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &ServiceRequest{
		id:            id,
		userID:        p.UserID,
		category:      p.Category,
		payload:       maps.Clone(p.Payload),
		inventoryPool: p.InventoryPool,
		fee:           p.Fee,
		status:        StatusCreated,
		maxRetries:    maxRetries,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(s Snapshot) *ServiceRequest {
	return &ServiceRequest{
		id:              s.ID,
		userID:          s.UserID,
		category:        s.Category,
		payload:         maps.Clone(s.Payload),
		inventoryPool:   s.InventoryPool,
		fee:             s.Fee,
		paid:            s.Paid,
		status:          s.Status,
		assignedAgentID: copyID(s.AssignedAgentID),
		allocatedCodeID: copyID(s.AllocatedCodeID),
		result:          maps.Clone(s.Result),
		failureReason:   s.FailureReason,
		retryCount:      s.RetryCount,
		maxRetries:      s.MaxRetries,
		refundHalted:    s.RefundHalted,
		createdAt:       s.CreatedAt,
		assignedAt:      copyTime(s.AssignedAt),
		completedAt:     copyTime(s.CompletedAt),
		updatedAt:       s.UpdatedAt,
	}
}

func (r *ServiceRequest) Snapshot() Snapshot {
	return Snapshot{
		ID:              r.id,
		UserID:          r.userID,
		Category:        r.category,
		Payload:         maps.Clone(r.payload),
		InventoryPool:   r.inventoryPool,
		Fee:             r.fee,
		Paid:            r.paid,
		Status:          r.status,
		AssignedAgentID: copyID(r.assignedAgentID),
		AllocatedCodeID: copyID(r.allocatedCodeID),
		Result:          maps.Clone(r.result),
		FailureReason:   r.failureReason,
		RetryCount:      r.retryCount,
		MaxRetries:      r.maxRetries,
		RefundHalted:    r.refundHalted,
		CreatedAt:       r.createdAt,
		AssignedAt:      copyTime(r.assignedAt),
		CompletedAt:     copyTime(r.completedAt),
		UpdatedAt:       r.updatedAt,
	}
}

func (r *ServiceRequest) ID() uuid.UUID {
	return r.id
}

func (r *ServiceRequest) UserID() uuid.UUID {
	return r.userID
}

func (r *ServiceRequest) Category() category.Category {
	return r.category
}

func (r *ServiceRequest) Payload() Payload {
	return maps.Clone(r.payload)
}

func (r *ServiceRequest) InventoryPool() string {
	return r.inventoryPool
}

func (r *ServiceRequest) Fee() money.Money {
	return r.fee
}

func (r *ServiceRequest) Paid() bool {
	return r.paid
}

func (r *ServiceRequest) Status() Status {
	return r.status
}

func (r *ServiceRequest) AssignedAgentID() *uuid.UUID {
	return copyID(r.assignedAgentID)
}

func (r *ServiceRequest) AllocatedCodeID() *uuid.UUID {
	return copyID(r.allocatedCodeID)
}

func (r *ServiceRequest) Result() Payload {
	return maps.Clone(r.result)
}

func (r *ServiceRequest) FailureReason() string {
	return r.failureReason
}

func (r *ServiceRequest) RetryCount() int {
	return r.retryCount
}

func (r *ServiceRequest) MaxRetries() int {
	return r.maxRetries
}

func (r *ServiceRequest) RefundHalted() bool {
	return r.refundHalted
}

func (r *ServiceRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *ServiceRequest) AssignedAt() *time.Time {
	return copyTime(r.assignedAt)
}

func (r *ServiceRequest) CompletedAt() *time.Time {
	return copyTime(r.completedAt)
}

func (r *ServiceRequest) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *ServiceRequest) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// Each transition below validates the move from the current status, applies it,
// and returns the prior status. The caller persists the change guarded on that status.

func (r *ServiceRequest) MarkPaid(now time.Time) (Status, error) {
	prev, err := r.move(StatusPaid, now)
	if err != nil {
		return "", err
	}
	r.paid = true
	return prev, nil
}

func (r *ServiceRequest) MarkQueued(now time.Time) (Status, error) {
	if r.status == StatusPaid && !r.paid {
		return "", ErrNotPaid
	}
	return r.move(StatusQueued, now)
}

func (r *ServiceRequest) MarkAssigned(agentID uuid.UUID, now time.Time) (Status, error) {
	if !r.category.IsAgentServiced() {
		return "", ErrWrongFulfillment
	}
	prev, err := r.move(StatusAssigned, now)
	if err != nil {
		return "", err
	}
	r.assignedAgentID = &agentID
	r.assignedAt = &now
	return prev, nil
}

func (r *ServiceRequest) MarkAllocated(codeID uuid.UUID, now time.Time) (Status, error) {
	if r.category.IsAgentServiced() {
		return "", ErrWrongFulfillment
	}
	prev, err := r.move(StatusAllocated, now)
	if err != nil {
		return "", err
	}
	r.allocatedCodeID = &codeID
	r.assignedAt = &now
	return prev, nil
}

// MarkInProgress records that the fulfiller started work. On the agent path only the
// assignee may start the request.
func (r *ServiceRequest) MarkInProgress(agentID uuid.UUID, now time.Time) (Status, error) {
	if r.status == StatusAssigned && !r.IsAssignedTo(agentID) {
		return "", errs.ErrForbidden
	}
	return r.move(StatusInProgress, now)
}

func (r *ServiceRequest) Complete(result Payload, now time.Time) (Status, error) {
	if r.status == StatusCompleted {
		return "", ErrAlreadyCompleted
	}
	prev, err := r.move(StatusCompleted, now)
	if err != nil {
		return "", err
	}
	r.result = maps.Clone(result)
	r.completedAt = &now
	return prev, nil
}

// Fail requeues a retryable failure while retries remain, otherwise it moves the
// request to failed. It reports whether the request was requeued.
func (r *ServiceRequest) Fail(reason string, retryable bool, now time.Time) (Status, bool, error) {
	if r.status == StatusFailed || r.status == StatusRefunded {
		return "", false, ErrAlreadyFailed
	}
	requeue := retryable && r.retryCount < r.maxRetries
	next := StatusFailed
	if requeue {
		next = StatusQueued
	}
	prev, err := r.move(next, now)
	if err != nil {
		return "", false, err
	}
	r.failureReason = reason
	if requeue {
		r.retryCount++
		r.assignedAgentID = nil
		r.allocatedCodeID = nil
		r.assignedAt = nil
	}
	return prev, requeue, nil
}

func (r *ServiceRequest) MarkRefunded(now time.Time) (Status, error) {
	if !r.paid {
		return "", ErrNotPaid
	}
	prev, err := r.move(StatusRefunded, now)
	if err != nil {
		return "", err
	}
	r.refundHalted = false
	return prev, nil
}

func (r *ServiceRequest) Cancel(now time.Time) (Status, error) {
	return r.move(StatusCancelled, now)
}

func (r *ServiceRequest) HaltRefund(now time.Time) {
	r.refundHalted = true
	r.updatedAt = now
}

func (r *ServiceRequest) IsAssignedTo(agentID uuid.UUID) bool {
	return r.assignedAgentID != nil && *r.assignedAgentID == agentID
}

func (r *ServiceRequest) move(next Status, now time.Time) (Status, error) {
	if !r.status.CanTransitionTo(next) {
		return "", fmt.Errorf("%w: %s -> %s", errs.ErrInvalidTransition, r.status, next)
	}
	prev := r.status
	r.status = next
	r.updatedAt = now
	return prev, nil
}

// EventTopic names the lifecycle event emitted after moving into to.
func EventTopic(to Status, requeued bool) string {
	if requeued {
		return "request.requeued"
	}
	return "request." + string(to)
}

const TopicRefundHalted = "request.refund_halted"

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
