package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrackedEntity is any stock item, warranty or maintenance schedule subject
// to threshold or due-date evaluation. Only the fields relevant to Kind are
// populated; Metadata carries free-form extension fields.
type TrackedEntity struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Kind    EntityKind
	Name    string

	// Stock items.
	Quantity  *int
	Threshold int
	Interval  *time.Duration
	UnitPrice decimal.Decimal

	// Maintenance schedules.
	Frequency string

	// LastEventAt is the last restock, the last service, or the warranty
	// purchase date. Nil means the event never happened.
	LastEventAt *time.Time

	// BreachedAt is when a stock item last fell to or below its threshold.
	// It is nil while the quantity is above the threshold.
	BreachedAt *time.Time

	// Warranties.
	EndsAt *time.Time

	Metadata  map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MaxPriceScale is the number of decimal places a unit price may carry.
const MaxPriceScale = 2

// Validate checks the structural invariants of a tracked entity.
func (e *TrackedEntity) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(e.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if !e.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "must be stock_item, warranty or maintenance"})
	}
	if e.Quantity != nil && *e.Quantity < 0 {
		errs = append(errs, FieldError{Field: "quantity", Message: "must not be negative"})
	}
	if e.Threshold < 0 {
		errs = append(errs, FieldError{Field: "threshold", Message: "must not be negative"})
	}
	if e.Interval != nil && *e.Interval <= 0 {
		errs = append(errs, FieldError{Field: "interval", Message: "must be positive"})
	}
	if e.UnitPrice.IsNegative() {
		errs = append(errs, FieldError{Field: "unit_price", Message: "must not be negative"})
	}
	if !e.UnitPrice.Equal(e.UnitPrice.Truncate(MaxPriceScale)) {
		errs = append(errs, FieldError{Field: "unit_price", Message: "at most 2 decimal places"})
	}

	switch e.Kind {
	case EntityKindStockItem:
		if e.Quantity == nil {
			errs = append(errs, FieldError{Field: "quantity", Message: "required for stock items"})
		}
	case EntityKindWarranty:
		if e.EndsAt == nil {
			errs = append(errs, FieldError{Field: "ends_at", Message: "required for warranties"})
		}
	case EntityKindMaintenance:
		if strings.TrimSpace(e.Frequency) == "" {
			errs = append(errs, FieldError{Field: "frequency", Message: "required for maintenance schedules"})
		}
	}

	for k := range e.Metadata {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, FieldError{Field: "metadata", Message: "keys must not be empty"})
			break
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Snapshot returns a JSON-encodable copy of the entity used as the old/new
// value of audit entries.
func (e *TrackedEntity) Snapshot() map[string]any {
	s := map[string]any{
		"id":        e.ID.String(),
		"owner_id":  e.OwnerID.String(),
		"kind":      string(e.Kind),
		"name":      e.Name,
		"threshold": e.Threshold,
	}
	if e.Quantity != nil {
		s["quantity"] = *e.Quantity
	}
	if e.Interval != nil {
		s["interval_seconds"] = int64(e.Interval.Seconds())
	}
	if !e.UnitPrice.IsZero() {
		s["unit_price"] = e.UnitPrice.String()
	}
	if e.Frequency != "" {
		s["frequency"] = e.Frequency
	}
	if e.LastEventAt != nil {
		s["last_event_at"] = e.LastEventAt.UTC().Format(time.RFC3339)
	}
	if e.EndsAt != nil {
		s["ends_at"] = e.EndsAt.UTC().Format(time.RFC3339)
	}
	if e.BreachedAt != nil {
		s["breached_at"] = e.BreachedAt.UTC().Format(time.RFC3339)
	}
	if len(e.Metadata) > 0 {
		md := make(map[string]any, len(e.Metadata))
		for k, v := range e.Metadata {
			md[k] = v
		}
		s["metadata"] = md
	}
	return s
}

// BelowThreshold reports whether a stock item is at or below its threshold.
func (e *TrackedEntity) BelowThreshold() bool {
	return e.Kind == EntityKindStockItem && e.Quantity != nil && *e.Quantity <= e.Threshold
}

// Value returns quantity times unit price, zero for non-stock entities.
func (e *TrackedEntity) Value() decimal.Decimal {
	if e.Kind != EntityKindStockItem || e.Quantity == nil {
		return decimal.Zero
	}
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(*e.Quantity)))
}

// EntityFilter narrows an owner's entity listing. A zero Kind lists every
// kind.
type EntityFilter struct {
	Kind   EntityKind
	Limit  int
	Offset int
}
