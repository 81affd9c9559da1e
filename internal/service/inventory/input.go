package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/homestock-backend/internal/domain"
)

// CreateInput holds the fields of a new tracked entity.
type CreateInput struct {
	Kind        domain.EntityKind
	Name        string
	Quantity    *int
	Threshold   int
	Interval    *time.Duration
	UnitPrice   decimal.Decimal
	Frequency   string
	LastEventAt *time.Time
	EndsAt      *time.Time
	Metadata    map[string]string
}

func (i CreateInput) entity() domain.TrackedEntity {
	return domain.TrackedEntity{
		Kind:        i.Kind,
		Name:        strings.TrimSpace(i.Name),
		Quantity:    i.Quantity,
		Threshold:   i.Threshold,
		Interval:    i.Interval,
		UnitPrice:   i.UnitPrice,
		Frequency:   strings.TrimSpace(i.Frequency),
		LastEventAt: i.LastEventAt,
		EndsAt:      i.EndsAt,
		Metadata:    i.Metadata,
	}
}

// UpdateInput holds a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	ID            uuid.UUID
	Name          *string
	Quantity      *int
	Threshold     *int
	Interval      *time.Duration
	ClearInterval bool
	UnitPrice     *decimal.Decimal
	Frequency     *string
	EndsAt        *time.Time
	Metadata      map[string]string
}

// Validate checks all fields and collects all errors. Field values are
// checked again against the merged entity.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Interval != nil && i.ClearInterval {
		errs = append(errs, domain.FieldError{Field: "interval", Message: "cannot set and clear at once"})
	}
	if i.Name == nil && i.Quantity == nil && i.Threshold == nil && i.Interval == nil && !i.ClearInterval &&
		i.UnitPrice == nil && i.Frequency == nil && i.EndsAt == nil && i.Metadata == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be set"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) apply(e domain.TrackedEntity) domain.TrackedEntity {
	if i.Name != nil {
		e.Name = strings.TrimSpace(*i.Name)
	}
	if i.Quantity != nil {
		e.Quantity = i.Quantity
	}
	if i.Threshold != nil {
		e.Threshold = *i.Threshold
	}
	switch {
	case i.ClearInterval:
		e.Interval = nil
	case i.Interval != nil:
		e.Interval = i.Interval
	}
	if i.UnitPrice != nil {
		e.UnitPrice = *i.UnitPrice
	}
	if i.Frequency != nil {
		e.Frequency = strings.TrimSpace(*i.Frequency)
	}
	if i.EndsAt != nil {
		e.EndsAt = i.EndsAt
	}
	if i.Metadata != nil {
		e.Metadata = i.Metadata
	}
	return e
}

// RecordEventInput records a restock, a performed service or a warranty
// registration. At defaults to now. Quantity is the stock level after a
// restock and is only accepted for stock items.
type RecordEventInput struct {
	ID       uuid.UUID
	At       *time.Time
	Quantity *int
}

// Validate checks all fields and collects all errors.
func (i RecordEventInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Quantity != nil && *i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AdjustQuantityInput changes a stock level by Delta. Consumption beyond
// the current level stops at zero.
type AdjustQuantityInput struct {
	ID    uuid.UUID
	Delta int
}

// Validate checks all fields and collects all errors.
func (i AdjustQuantityInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Delta == 0 {
		errs = append(errs, domain.FieldError{Field: "delta", Message: "must not be zero"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput filters an owner's entity listing.
type ListInput struct {
	Kind   domain.EntityKind
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Kind != "" && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be stock_item, warranty or maintenance"})
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
