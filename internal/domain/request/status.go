package request

import "errors"

var ErrInvalidStatus = errors.New("invalid request status")

type Status string

const (
	StatusCreated    Status = "created"
	StatusPaid       Status = "paid"
	StatusQueued     Status = "queued"
	StatusAssigned   Status = "assigned"
	StatusAllocated  Status = "allocated"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusRefunded   Status = "refunded"
	StatusCancelled  Status = "cancelled"
)

var transitions = map[Status][]Status{
	StatusCreated:    {StatusPaid, StatusCancelled},
	StatusPaid:       {StatusQueued, StatusCancelled},
	StatusQueued:     {StatusAssigned, StatusAllocated, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCompleted, StatusQueued, StatusFailed},
	StatusAllocated:  {StatusInProgress, StatusCompleted, StatusQueued, StatusFailed},
	StatusInProgress: {StatusCompleted, StatusQueued, StatusFailed},
	StatusFailed:     {StatusRefunded},
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPaid, StatusQueued, StatusAssigned, StatusAllocated,
		StatusInProgress, StatusCompleted, StatusFailed, StatusRefunded, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRefunded || s == StatusCancelled
}

// HoldsAgentSlot reports whether a request in this status counts toward its agent's load.
func (s Status) HoldsAgentSlot() bool {
	return s == StatusAssigned || s == StatusInProgress
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Cancellable reports whether the request has not been handed to a fulfiller yet.
func (s Status) Cancellable() bool {
	return s.CanTransitionTo(StatusCancelled)
}
