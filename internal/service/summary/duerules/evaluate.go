package duerules

import (
	"fmt"
	"time"

	"github.com/heartmarshall/homestock-backend/internal/domain"
)

// Evaluate decides whether a reorder is needed, in priority order:
//
//  1. qty <= threshold                         -> quantity
//  2. interval and lastEvent set, elapsed >= it -> interval
//  3. otherwise                                 -> none
//
// An unknown lastEvent disables the interval branch.
func Evaluate(qty, threshold int, interval *time.Duration, lastEvent *time.Time, now time.Time) domain.Recommendation {
	if qty <= threshold {
		return domain.Recommendation{Needed: true, Reason: domain.ReasonQuantity}
	}
	if interval != nil && lastEvent != nil && !now.Before(lastEvent.Add(*interval)) {
		return domain.Recommendation{Needed: true, Reason: domain.ReasonInterval}
	}
	return domain.Recommendation{Needed: false, Reason: domain.ReasonNone}
}

// Windows are the lookahead durations used to flag upcoming due dates.
type Windows struct {
	Maintenance time.Duration
	Warranty    time.Duration
}

// Evaluator classifies whole entities.
type Evaluator struct {
	Calculator Calculator
	Windows    Windows
}

// Outcome is an Evaluation plus whether the tolerant frequency default was
// applied while computing it.
type Outcome struct {
	domain.Evaluation
	FellBack bool
}

// EvaluateEntity produces the per-entity output for any kind of entity.
func (ev Evaluator) EvaluateEntity(e domain.TrackedEntity, now time.Time) (Outcome, error) {
	out := Outcome{Evaluation: domain.Evaluation{
		EntityID: e.ID,
		Kind:     e.Kind,
		Name:     e.Name,
		Reason:   domain.ReasonNone,
	}}

	switch e.Kind {
	case domain.EntityKindStockItem:
		if e.Quantity == nil {
			return Outcome{}, fmt.Errorf("stock item %s: %w", e.ID, domain.NewValidationError("quantity", "required for stock items"))
		}
		rec := Evaluate(*e.Quantity, e.Threshold, e.Interval, e.LastEventAt, now)
		out.Needed, out.Reason = rec.Needed, rec.Reason
		out.Status = domain.DueStatusActive
		if e.Interval != nil && e.LastEventAt != nil {
			next := e.LastEventAt.Add(*e.Interval)
			out.NextDue = &next
			out.Status = Classify(ScaleSchedule, next, now, ev.Windows.Maintenance)
		}

	case domain.EntityKindMaintenance:
		next, fellBack, err := ev.Calculator.NextDue(e.Frequency, e.LastEventAt, now)
		if err != nil {
			return Outcome{}, fmt.Errorf("maintenance %s: %w", e.ID, err)
		}
		out.FellBack = fellBack
		out.NextDue = &next
		out.Status = Classify(ScaleSchedule, next, now, ev.Windows.Maintenance)
		if out.Status == domain.DueStatusOverdue {
			out.Needed, out.Reason = true, domain.ReasonInterval
		}

	case domain.EntityKindWarranty:
		if e.EndsAt == nil {
			return Outcome{}, fmt.Errorf("warranty %s: %w", e.ID, domain.NewValidationError("ends_at", "required for warranties"))
		}
		end := *e.EndsAt
		out.NextDue = &end
		out.Status = Classify(ScaleExpiry, end, now, ev.Windows.Warranty)
		if out.Status == domain.DueStatusExpired {
			out.Needed, out.Reason = true, domain.ReasonInterval
		}

	default:
		return Outcome{}, fmt.Errorf("entity %s: %w", e.ID, domain.NewValidationError("kind", "unknown kind"))
	}

	return out, nil
}
