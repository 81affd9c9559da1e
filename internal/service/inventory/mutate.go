package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/internal/service/audit"
	"github.com/heartmarshall/homestock-backend/pkg/ctxutil"
)

// Create stores a new tracked entity owned by the caller.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.TrackedEntity, error) {
	owner, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.TrackedEntity{}, domain.ErrUnauthorized
	}

	now := s.clock.Now().UTC()
	e := in.entity()
	e.ID = uuid.New()
	e.OwnerID = owner
	e.CreatedAt = now
	e.UpdatedAt = now
	markBreach(&e, now)

	if err := s.validate(e); err != nil {
		return domain.TrackedEntity{}, err
	}

	var created domain.TrackedEntity
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.entities.Create(txCtx, e)
		if err != nil {
			return fmt.Errorf("create entity: %w", err)
		}
		if err := s.record(txCtx, owner, domain.AuditActionCreate, c, nil, c.Snapshot()); err != nil {
			return err
		}
		created = c
		return nil
	})
	if err != nil {
		return domain.TrackedEntity{}, err
	}

	s.afterWrite(ctx, created)

	s.log.InfoContext(ctx, "entity created",
		slog.String("owner_id", owner.String()),
		slog.String("entity_id", created.ID.String()),
		slog.String("kind", string(created.Kind)),
	)
	return created, nil
}

// Update applies a partial update to one of the caller's entities.
func (s *Service) Update(ctx context.Context, in UpdateInput) (domain.TrackedEntity, error) {
	if err := in.Validate(); err != nil {
		return domain.TrackedEntity{}, err
	}

	return s.mutate(ctx, in.ID, domain.AuditActionUpdate, func(cur domain.TrackedEntity) (domain.TrackedEntity, error) {
		return in.apply(cur), nil
	})
}

// RecordEvent marks a restock, a performed service or a warranty
// registration at in.At (now by default).
func (s *Service) RecordEvent(ctx context.Context, in RecordEventInput) (domain.TrackedEntity, error) {
	if err := in.Validate(); err != nil {
		return domain.TrackedEntity{}, err
	}

	now := s.clock.Now().UTC()
	at := now
	if in.At != nil {
		at = in.At.UTC()
	}
	if at.After(now) {
		return domain.TrackedEntity{}, domain.NewValidationError("at", "must not be in the future")
	}

	return s.mutate(ctx, in.ID, domain.AuditActionRecordEvent, func(cur domain.TrackedEntity) (domain.TrackedEntity, error) {
		if in.Quantity != nil {
			if cur.Kind != domain.EntityKindStockItem {
				return cur, domain.NewValidationError("quantity", "only stock items have a quantity")
			}
			q := *in.Quantity
			cur.Quantity = &q
		}
		cur.LastEventAt = &at
		return cur, nil
	})
}

// AdjustQuantity adds in.Delta to a stock item's quantity. The result never
// drops below zero.
func (s *Service) AdjustQuantity(ctx context.Context, in AdjustQuantityInput) (domain.TrackedEntity, error) {
	if err := in.Validate(); err != nil {
		return domain.TrackedEntity{}, err
	}

	return s.mutate(ctx, in.ID, domain.AuditActionUpdate, func(cur domain.TrackedEntity) (domain.TrackedEntity, error) {
		if cur.Kind != domain.EntityKindStockItem {
			return cur, domain.NewValidationError("id", "only stock items have a quantity")
		}
		q := 0
		if cur.Quantity != nil {
			q = *cur.Quantity
		}
		q = max(q+in.Delta, 0)
		cur.Quantity = &q
		return cur, nil
	})
}

// Delete removes one of the caller's entities.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	owner, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	var deleted domain.TrackedEntity
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.entities.GetForUpdate(txCtx, owner, id)
		if err != nil {
			return fmt.Errorf("get entity: %w", err)
		}
		if err := s.entities.Delete(txCtx, owner, id); err != nil {
			return fmt.Errorf("delete entity: %w", err)
		}
		if err := s.record(txCtx, owner, domain.AuditActionDelete, cur, cur.Snapshot(), nil); err != nil {
			return err
		}
		deleted = cur
		return nil
	})
	if err != nil {
		return err
	}

	s.summaries.InvalidateOwner(owner, deleted.Kind)

	s.log.InfoContext(ctx, "entity deleted",
		slog.String("owner_id", owner.String()),
		slog.String("entity_id", id.String()),
	)
	return nil
}

// mutate runs change against the locked current row and persists the
// result. The per-entity lock is held until the cache is invalidated so
// that old and new snapshots of consecutive writes chain up.
func (s *Service) mutate(
	ctx context.Context,
	id uuid.UUID,
	action domain.AuditAction,
	change func(cur domain.TrackedEntity) (domain.TrackedEntity, error),
) (domain.TrackedEntity, error) {
	owner, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.TrackedEntity{}, domain.ErrUnauthorized
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	var updated domain.TrackedEntity
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.entities.GetForUpdate(txCtx, owner, id)
		if err != nil {
			return fmt.Errorf("get entity: %w", err)
		}

		next, err := change(cur)
		if err != nil {
			return err
		}
		next.ID, next.OwnerID, next.Kind, next.CreatedAt = cur.ID, cur.OwnerID, cur.Kind, cur.CreatedAt
		next.UpdatedAt = s.clock.Now().UTC()
		markBreach(&next, next.UpdatedAt)
		if err := s.validate(next); err != nil {
			return err
		}

		saved, err := s.entities.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update entity: %w", err)
		}
		if err := s.record(txCtx, owner, action, saved, cur.Snapshot(), saved.Snapshot()); err != nil {
			return err
		}
		updated = saved
		return nil
	})
	if err != nil {
		return domain.TrackedEntity{}, err
	}

	s.afterWrite(ctx, updated)

	s.log.InfoContext(ctx, "entity updated",
		slog.String("owner_id", owner.String()),
		slog.String("entity_id", id.String()),
		slog.String("action", action.String()),
	)
	return updated, nil
}

// markBreach opens a new breach epoch when a stock item drops to its
// threshold and closes it once the quantity is back above. An ongoing
// breach keeps its original start.
func markBreach(e *domain.TrackedEntity, now time.Time) {
	switch {
	case !e.BelowThreshold():
		e.BreachedAt = nil
	case e.BreachedAt == nil:
		at := now.Truncate(time.Microsecond)
		e.BreachedAt = &at
	}
}

func (s *Service) validate(e domain.TrackedEntity) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.Kind == domain.EntityKindMaintenance {
		if _, _, err := s.rules.Calculator.Resolve(e.Frequency); err != nil {
			if errors.Is(err, domain.ErrInvalidFrequency) {
				return domain.NewValidationError("frequency", "unknown frequency label")
			}
			return err
		}
	}
	return nil
}

func (s *Service) record(ctx context.Context, actor uuid.UUID, action domain.AuditAction, e domain.TrackedEntity, oldValue, newValue map[string]any) error {
	_, err := s.audit.Record(ctx, audit.RecordInput{
		ActorID:    actor,
		Action:     action,
		EntityType: e.Kind,
		EntityID:   e.ID,
		OldValue:   oldValue,
		NewValue:   newValue,
	})
	if err != nil {
		return fmt.Errorf("audit %s: %w", action, err)
	}
	return nil
}

// afterWrite invalidates the owner's summary and emits a notification when
// the new state calls for one. Emission failures are logged only; the
// periodic refresh retries them.
func (s *Service) afterWrite(ctx context.Context, e domain.TrackedEntity) {
	s.summaries.InvalidateOwner(e.OwnerID, e.Kind)

	out, err := s.rules.EvaluateEntity(e, s.clock.Now())
	if err != nil {
		s.log.WarnContext(ctx, "evaluate after write",
			slog.String("entity_id", e.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	if !out.ShouldNotify() {
		return
	}
	if _, err := s.emitter.OnThresholdCrossed(ctx, e, out.Evaluation); err != nil {
		s.log.WarnContext(ctx, "notification emit failed",
			slog.String("entity_id", e.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
