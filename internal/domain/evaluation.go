package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recommendation is the reorder decision for a single entity.
// Needed == false always comes with ReasonNone.
type Recommendation struct {
	Needed bool
	Reason Reason
}

// Evaluation is the classified state of one tracked entity at a point in time.
type Evaluation struct {
	EntityID uuid.UUID
	Kind     EntityKind
	Name     string
	Needed   bool
	Reason   Reason
	Status   DueStatus
	NextDue  *time.Time
}

// ShouldNotify reports whether the evaluation is in a state that warrants a
// user-facing notification.
func (e Evaluation) ShouldNotify() bool {
	return e.Needed || e.Status.IsUpcoming()
}

// RecentEvent is one row of a summary's recent-events list.
type RecentEvent struct {
	ID   uuid.UUID
	Name string
	Date time.Time
}

// Summary aggregates evaluations of every entity of one kind for one owner.
type Summary struct {
	Kind        EntityKind
	Total       int
	NeedsAction int
	DueSoon     int
	Overdue     int
	Skipped     int
	TotalValue  decimal.Decimal
	Recent      []RecentEvent
	GeneratedAt time.Time
}

// Dashboard bundles the per-kind summaries of one owner.
type Dashboard struct {
	StockItems  Summary
	Warranties  Summary
	Maintenance Summary
}
