package inventory

import (
	"errors"
	"time"

	"vas-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotUnused   = errors.New("inventory code is not unused")
	ErrAlreadyUsed = errors.New("inventory code already used")
)

type Status string

const (
	StatusUnused   Status = "unused"
	StatusReserved Status = "reserved"
	StatusUsed     Status = "used"
)

// Code is one consumable PIN. It moves unused -> reserved -> used and never back.
type Code struct {
	id          uuid.UUID
	pool        string
	value       string
	serial      string
	status      Status
	reservedFor *uuid.UUID
	reservedAt  *time.Time
	usedAt      *time.Time
	createdAt   time.Time
}

type Snapshot struct {
	ID          uuid.UUID
	Pool        string
	Value       string
	Serial      string
	Status      Status
	ReservedFor *uuid.UUID
	ReservedAt  *time.Time
	UsedAt      *time.Time
	CreatedAt   time.Time
}

func NewCode(pool string, entry Entry, now time.Time) *Code {
	return &Code{
		id:        uuid.New(),
		pool:      pool,
		value:     entry.Code,
		serial:    entry.Serial,
		status:    StatusUnused,
		createdAt: now,
	}
}

func Reconstruct(s Snapshot) *Code {
	c := &Code{
		id:        s.ID,
		pool:      s.Pool,
		value:     s.Value,
		serial:    s.Serial,
		status:    s.Status,
		createdAt: s.CreatedAt,
	}
	c.reservedFor = copyID(s.ReservedFor)
	c.reservedAt = copyTime(s.ReservedAt)
	c.usedAt = copyTime(s.UsedAt)
	return c
}

// Snapshot returns a deep copy.
func (c *Code) Snapshot() Snapshot {
	return Snapshot{
		ID:          c.id,
		Pool:        c.pool,
		Value:       c.value,
		Serial:      c.serial,
		Status:      c.status,
		ReservedFor: copyID(c.reservedFor),
		ReservedAt:  copyTime(c.reservedAt),
		UsedAt:      copyTime(c.usedAt),
		CreatedAt:   c.createdAt,
	}
}

func (c *Code) ID() uuid.UUID {
	return c.id
}

func (c *Code) Pool() string {
	return c.pool
}

func (c *Code) Value() string {
	return c.value
}

func (c *Code) Serial() string {
	return c.serial
}

func (c *Code) Status() Status {
	return c.status
}

func (c *Code) ReservedFor() *uuid.UUID {
	return copyID(c.reservedFor)
}

func (c *Code) UsedAt() *time.Time {
	return copyTime(c.usedAt)
}

func (c *Code) Reserve(requestID uuid.UUID, now time.Time) error {
	if c.status != StatusUnused {
		return ErrNotUnused
	}
	c.status = StatusReserved
	c.reservedFor = &requestID
	c.reservedAt = &now
	return nil
}

// Finalize burns a code reserved for requestID. Finalizing again for the same request
// returns ErrAlreadyUsed so callers can treat it as a replay.
func (c *Code) Finalize(requestID uuid.UUID, now time.Time) error {
	if c.reservedFor == nil || *c.reservedFor != requestID {
		return errs.ErrNotReservedByCaller
	}
	switch c.status {
	case StatusUsed:
		return ErrAlreadyUsed
	case StatusReserved:
		c.status = StatusUsed
		c.usedAt = &now
		return nil
	default:
		return errs.ErrNotReservedByCaller
	}
}

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
