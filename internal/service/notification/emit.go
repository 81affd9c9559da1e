package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/homestock-backend/internal/domain"
)

const (
	noAnchor = "never"

	classLow      = "low"
	classUpcoming = "upcoming"
	classLapsed   = "lapsed"

	breachLayout = "2006-01-02T15:04:05.000000Z"
)

// OnThresholdCrossed stores a notification for e when ev is in a notify
// state. At most one notification exists per DedupKey, so calling it again
// for an unchanged state is harmless. It returns the notification only when
// a new one was created.
func (s *Service) OnThresholdCrossed(ctx context.Context, e domain.TrackedEntity, ev domain.Evaluation) (*domain.Notification, error) {
	if !ev.ShouldNotify() {
		return nil, nil
	}

	typ := domain.NotificationTypeFor(e.Kind)
	title, message := compose(e, ev)
	entityID := e.ID

	md := map[string]any{
		"status": ev.Status.String(),
		"reason": ev.Reason.String(),
	}
	if ev.NextDue != nil {
		md["next_due"] = ev.NextDue.UTC().Format(time.RFC3339)
	}
	if e.Quantity != nil {
		md["quantity"] = *e.Quantity
		md["threshold"] = e.Threshold
	}

	n := domain.Notification{
		ID:          uuid.New(),
		RecipientID: e.OwnerID,
		EntityID:    &entityID,
		Type:        typ,
		Title:       title,
		Message:     message,
		DedupKey:    DedupKey(e, ev),
		Metadata:    md,
		CreatedAt:   s.clock.Now().UTC(),
	}

	stored, created, err := s.repo.InsertOnce(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("store notification for %s: %w", e.ID, err)
	}
	if !created {
		return nil, nil
	}

	s.log.InfoContext(ctx, "notification created",
		slog.String("recipient_id", stored.RecipientID.String()),
		slog.String("entity_id", e.ID.String()),
		slog.String("type", typ.String()),
		slog.String("dedup_key", stored.DedupKey),
	)
	return &stored, nil
}

// DedupKey identifies one reminder: entity, notification type, reminder
// class and the point in time the reminder is about.
//
// The class separates a low-stock alert from an upcoming reminder and from
// a lapsed one, so moving from due soon to overdue notifies again. The
// anchor is the warranty end, the start of the current breach for low
// stock, or the computed next due date for scheduled items. Items that were
// never serviced or restocked use a fixed "never" anchor so that a due date
// recomputed from "now" does not produce a fresh reminder on every pass.
func DedupKey(e domain.TrackedEntity, ev domain.Evaluation) string {
	anchor := noAnchor
	switch {
	case e.Kind == domain.EntityKindWarranty && e.EndsAt != nil:
		anchor = dateOnly(*e.EndsAt)
	case e.Kind == domain.EntityKindStockItem && ev.Reason == domain.ReasonQuantity:
		switch {
		case e.BreachedAt != nil:
			anchor = e.BreachedAt.UTC().Truncate(time.Microsecond).Format(breachLayout)
		case e.LastEventAt != nil:
			anchor = dateOnly(*e.LastEventAt)
		}
	case e.LastEventAt != nil && ev.NextDue != nil:
		anchor = dateOnly(*ev.NextDue)
	}
	return fmt.Sprintf("%s:%s:%s:%s", e.ID, domain.NotificationTypeFor(e.Kind), reminderClass(ev), anchor)
}

func reminderClass(ev domain.Evaluation) string {
	switch {
	case ev.Reason == domain.ReasonQuantity:
		return classLow
	case ev.Needed || ev.Status.IsLapsed():
		return classLapsed
	default:
		return classUpcoming
	}
}

func compose(e domain.TrackedEntity, ev domain.Evaluation) (title, message string) {
	due := ""
	if ev.NextDue != nil {
		due = dateOnly(*ev.NextDue)
	}

	switch e.Kind {
	case domain.EntityKindWarranty:
		if ev.Status == domain.DueStatusExpired {
			return e.Name + " warranty has expired", "The warranty ended on " + due + "."
		}
		return e.Name + " warranty expires soon", "The warranty ends on " + due + "."

	case domain.EntityKindMaintenance:
		if ev.Status == domain.DueStatusOverdue {
			return e.Name + " maintenance is overdue", "It was due on " + due + "."
		}
		return e.Name + " maintenance is due soon", "It is due on " + due + "."

	default:
		switch {
		case ev.Reason == domain.ReasonQuantity && e.Quantity != nil:
			return e.Name + " needs restocking",
				fmt.Sprintf("Only %d left (threshold %d).", *e.Quantity, e.Threshold)
		case ev.Reason == domain.ReasonInterval:
			return e.Name + " needs restocking", "The reorder interval elapsed on " + due + "."
		default:
			return e.Name + " restock coming up", "The next reorder is due on " + due + "."
		}
	}
}

func dateOnly(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
