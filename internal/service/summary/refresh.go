package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/homestock-backend/internal/domain"
)

// RefreshReport describes one Refresh run.
type RefreshReport struct {
	StartedAt    time.Time
	Duration     time.Duration
	Owners       int
	Summaries    int
	Entities     int
	Skipped      int
	Notified     int
	NotifyErrors int
	// Shared is true when the caller joined a run already in progress.
	Shared bool
}

type pendingNotification struct {
	entity domain.TrackedEntity
	eval   domain.Evaluation
}

// Refresh recomputes every cached summary and emits notifications for
// entities in a notify state. Concurrent calls share one run. A run that
// fails or hits its deadline stops where it is; summaries not yet refreshed
// keep their previous values.
func (s *Service) Refresh(ctx context.Context) (RefreshReport, error) {
	v, err, shared := s.flight.Do("refresh", func() (any, error) {
		return s.refresh(ctx)
	})
	report, _ := v.(RefreshReport)
	report.Shared = shared
	return report, err
}

func (s *Service) refresh(ctx context.Context) (RefreshReport, error) {
	if s.cfg.RefreshTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RefreshTimeout)
		defer cancel()
	}

	now := s.clock.Now()
	report := RefreshReport{StartedAt: now}

	err := s.refreshAll(ctx, now, &report)
	report.Duration = s.clock.Since(now)

	attrs := []any{
		slog.Int("owners", report.Owners),
		slog.Int("summaries", report.Summaries),
		slog.Int("entities", report.Entities),
		slog.Int("skipped", report.Skipped),
		slog.Int("notified", report.Notified),
		slog.Int("notify_errors", report.NotifyErrors),
		slog.Duration("duration", report.Duration),
	}
	if err != nil {
		s.log.ErrorContext(ctx, "summary refresh aborted", append(attrs, slog.String("error", err.Error()))...)
		return report, err
	}
	s.log.InfoContext(ctx, "summary refresh finished", attrs...)
	return report, nil
}

func (s *Service) refreshAll(ctx context.Context, now time.Time, report *RefreshReport) error {
	after := uuid.Nil
	for {
		owners, err := s.entities.ListOwners(ctx, after, s.cfg.BatchSize)
		if err != nil {
			return fmt.Errorf("list owners: %w", err)
		}

		for _, owner := range owners {
			for _, kind := range domain.EntityKinds {
				if err := s.refreshOne(ctx, owner, kind, now, report); err != nil {
					return err
				}
			}
			report.Owners++
		}

		if len(owners) < s.cfg.BatchSize {
			return nil
		}
		after = owners[len(owners)-1]
	}
}

func (s *Service) refreshOne(ctx context.Context, owner uuid.UUID, kind domain.EntityKind, now time.Time, report *RefreshReport) error {
	var pending []pendingNotification

	key := CacheKey(owner, kind)
	sum, err := s.cache.Refresh(ctx, key, func(ctx context.Context) (domain.Summary, error) {
		pending = pending[:0]
		return s.build(ctx, owner, kind, now, func(e domain.TrackedEntity, ev domain.Evaluation) {
			if ev.ShouldNotify() {
				pending = append(pending, pendingNotification{entity: e, eval: ev})
			}
		})
	})
	if err != nil {
		return fmt.Errorf("refresh %s: %w", key, err)
	}

	report.Summaries++
	report.Entities += sum.Total
	report.Skipped += sum.Skipped

	for _, p := range pending {
		n, err := s.emitter.OnThresholdCrossed(ctx, p.entity, p.eval)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("refresh %s: %w", key, ctxErr)
			}
			report.NotifyErrors++
			s.log.WarnContext(ctx, "notification emit failed",
				slog.String("entity_id", p.entity.ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if n != nil {
			report.Notified++
		}
	}
	return nil
}
