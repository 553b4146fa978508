package agent

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"time"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("agent display name is required")
	ErrNoCategories       = errors.New("agent needs at least one category")
	ErrInventoryCategory  = errors.New("inventory categories cannot be assigned to agents")
	ErrInvalidCapacity    = errors.New("max active requests must be at least 1")
	ErrNoCapacity         = errors.New("agent has no spare capacity")
	ErrNotAvailable       = errors.New("agent is not available")
	ErrCategoryNotCovered = errors.New("agent does not serve category")
	ErrNoActiveRequests   = errors.New("agent has no active requests to release")
)

const maxDisplayNameLen = 100

// Agent is a human worker fulfilling agent-serviced categories.
// currentActive is a cached count kept consistent only through Assign and Release.
type Agent struct {
	id             uuid.UUID
	displayName    string
	categories     []category.Category
	available      bool
	maxActive      int
	currentActive  int
	totalCompleted int64
	totalProcessed money.Money
	lastAssignedAt *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

type Snapshot struct {
	ID             uuid.UUID
	DisplayName    string
	Categories     []category.Category
	Available      bool
	MaxActive      int
	CurrentActive  int
	TotalCompleted int64
	TotalProcessed money.Money
	LastAssignedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// New registers an agent. The id is the agent's platform user id; uuid.Nil generates one.
func New(id uuid.UUID, displayName string, categories []category.Category, maxActive int, now time.Time) (*Agent, error) {
	name := strings.TrimSpace(displayName)
	if name == "" || len(name) > maxDisplayNameLen {
		return nil, ErrEmptyName
	}
	cats, err := normalizeCategories(categories)
	if err != nil {
		return nil, err
	}
	if maxActive < 1 {
		return nil, ErrInvalidCapacity
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Agent{
		id:          id,
		displayName: name,
		categories:  cats,
		available:   true,
		maxActive:   maxActive,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(s Snapshot) *Agent {
	a := &Agent{
		id:             s.ID,
		displayName:    s.DisplayName,
		categories:     slices.Clone(s.Categories),
		available:      s.Available,
		maxActive:      s.MaxActive,
		currentActive:  s.CurrentActive,
		totalCompleted: s.TotalCompleted,
		totalProcessed: s.TotalProcessed,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
	if s.LastAssignedAt != nil {
		t := *s.LastAssignedAt
		a.lastAssignedAt = &t
	}
	return a
}

func (a *Agent) Snapshot() Snapshot {
	s := Snapshot{
		ID:             a.id,
		DisplayName:    a.displayName,
		Categories:     slices.Clone(a.categories),
		Available:      a.available,
		MaxActive:      a.maxActive,
		CurrentActive:  a.currentActive,
		TotalCompleted: a.totalCompleted,
		TotalProcessed: a.totalProcessed,
		CreatedAt:      a.createdAt,
		UpdatedAt:      a.updatedAt,
	}
	if a.lastAssignedAt != nil {
		t := *a.lastAssignedAt
		s.LastAssignedAt = &t
	}
	return s
}

func (a *Agent) ID() uuid.UUID {
	return a.id
}

func (a *Agent) DisplayName() string {
	return a.displayName
}

func (a *Agent) Categories() []category.Category {
	return slices.Clone(a.categories)
}

func (a *Agent) Available() bool {
	return a.available
}

func (a *Agent) MaxActive() int {
	return a.maxActive
}

func (a *Agent) CurrentActive() int {
	return a.currentActive
}

func (a *Agent) TotalCompleted() int64 {
	return a.totalCompleted
}

func (a *Agent) TotalProcessed() money.Money {
	return a.totalProcessed
}

func (a *Agent) LastAssignedAt() *time.Time {
	if a.lastAssignedAt == nil {
		return nil
	}
	t := *a.lastAssignedAt
	return &t
}

func (a *Agent) Serves(cat category.Category) bool {
	return slices.Contains(a.categories, cat)
}

// Eligible reports whether the agent can take one more request of cat right now.
func (a *Agent) Eligible(cat category.Category) bool {
	return a.available && a.Serves(cat) && a.currentActive < a.maxActive
}

// Assign takes one slot. It is the only way currentActive grows.
func (a *Agent) Assign(cat category.Category, now time.Time) error {
	switch {
	case !a.available:
		return errs.Mark(ErrNotAvailable, errs.ErrNoAgentAvailable)
	case !a.Serves(cat):
		return errs.Mark(ErrCategoryNotCovered, errs.ErrNoAgentAvailable)
	case a.currentActive >= a.maxActive:
		return errs.Mark(ErrNoCapacity, errs.ErrNoAgentAvailable)
	}
	a.currentActive++
	a.lastAssignedAt = &now
	a.updatedAt = now
	return nil
}

// Release frees one slot; completed requests also count toward the agent's totals.
func (a *Agent) Release(completed bool, amount money.Money, now time.Time) error {
	if a.currentActive <= 0 {
		return ErrNoActiveRequests
	}
	a.currentActive--
	if completed {
		a.totalCompleted++
		a.totalProcessed = a.totalProcessed.Add(amount)
	}
	a.updatedAt = now
	return nil
}

func (a *Agent) Rename(displayName string, now time.Time) error {
	name := strings.TrimSpace(displayName)
	if name == "" || len(name) > maxDisplayNameLen {
		return ErrEmptyName
	}
	a.displayName = name
	a.updatedAt = now
	return nil
}

// SetAvailability only gates new assignments; in-flight requests stay with the agent.
func (a *Agent) SetAvailability(available bool, now time.Time) {
	a.available = available
	a.updatedAt = now
}

func (a *Agent) SetCapacity(maxActive int, now time.Time) error {
	if maxActive < 1 {
		return ErrInvalidCapacity
	}
	if maxActive < a.currentActive {
		return errs.ErrCapacityBelowLoad
	}
	a.maxActive = maxActive
	a.updatedAt = now
	return nil
}

func (a *Agent) SetCategories(categories []category.Category, now time.Time) error {
	cats, err := normalizeCategories(categories)
	if err != nil {
		return err
	}
	a.categories = cats
	a.updatedAt = now
	return nil
}

// PickLeastLoaded applies the longest-idle-first policy: lowest current load, then the
// oldest last assignment (never assigned first), then id for a stable order.
func PickLeastLoaded(agents []*Agent, cat category.Category) *Agent {
	var eligible []*Agent
	for _, a := range agents {
		if a.Eligible(cat) {
			eligible = append(eligible, a)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	return slices.MinFunc(eligible, compareLoad)
}

func compareLoad(a, b *Agent) int {
	return cmp.Or(
		cmp.Compare(a.currentActive, b.currentActive),
		compareLastAssigned(a.lastAssignedAt, b.lastAssignedAt),
		strings.Compare(a.id.String(), b.id.String()),
	)
}

// never-assigned sorts first
func compareLastAssigned(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

func normalizeCategories(categories []category.Category) ([]category.Category, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	out := make([]category.Category, 0, len(categories))
	for _, c := range categories {
		if !c.IsValid() {
			return nil, category.ErrUnknownCategory
		}
		if !c.IsAgentServiced() {
			return nil, ErrInventoryCategory
		}
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	slices.Sort(out)
	return out, nil
}
