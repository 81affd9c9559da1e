package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/pkg/ctxutil"
)

// GetSummary returns the caller's summary for one kind, computing it on a
// cache miss.
func (s *Service) GetSummary(ctx context.Context, kind domain.EntityKind) (domain.Summary, error) {
	owner, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.Summary{}, domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return domain.Summary{}, domain.NewValidationError("kind", "must be stock_item, warranty or maintenance")
	}

	return s.summaryFor(ctx, owner, kind)
}

// GetDashboard returns the caller's summaries of every kind.
func (s *Service) GetDashboard(ctx context.Context) (domain.Dashboard, error) {
	owner, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.Dashboard{}, domain.ErrUnauthorized
	}

	var d domain.Dashboard
	g, gctx := errgroup.WithContext(ctx)
	for kind, dst := range map[domain.EntityKind]*domain.Summary{
		domain.EntityKindStockItem:   &d.StockItems,
		domain.EntityKindWarranty:    &d.Warranties,
		domain.EntityKindMaintenance: &d.Maintenance,
	} {
		g.Go(func() error {
			sum, err := s.summaryFor(gctx, owner, kind)
			if err != nil {
				return err
			}
			*dst = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, err
	}
	return d, nil
}

// EvaluateEntity returns the current evaluation of one of the caller's
// entities.
func (s *Service) EvaluateEntity(ctx context.Context, id uuid.UUID) (domain.Evaluation, error) {
	owner, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.Evaluation{}, domain.ErrUnauthorized
	}

	e, err := s.entities.Get(ctx, owner, id)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("get entity: %w", err)
	}

	out, err := s.cfg.Rules.EvaluateEntity(e, s.clock.Now())
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("evaluate entity: %w", err)
	}
	if out.FellBack {
		s.logFallback(ctx, e)
	}
	return out.Evaluation, nil
}

func (s *Service) summaryFor(ctx context.Context, owner uuid.UUID, kind domain.EntityKind) (domain.Summary, error) {
	sum, err := s.cache.GetOrCompute(ctx, CacheKey(owner, kind), func(ctx context.Context) (domain.Summary, error) {
		return s.build(ctx, owner, kind, s.clock.Now(), nil)
	})
	if err != nil {
		return domain.Summary{}, fmt.Errorf("%s summary: %w", kind, err)
	}
	return sum, nil
}

// build scans every entity of owner and kind in id order and folds them into
// a summary. visit, when set, sees each successfully evaluated entity.
func (s *Service) build(
	ctx context.Context,
	owner uuid.UUID,
	kind domain.EntityKind,
	now time.Time,
	visit func(domain.TrackedEntity, domain.Evaluation),
) (domain.Summary, error) {
	agg := NewAggregator(kind, s.cfg.Rules, s.aggregateOptions(), now)

	after := uuid.Nil
	for {
		batch, err := s.entities.ScanByOwnerKind(ctx, owner, kind, after, s.cfg.BatchSize)
		if err != nil {
			return domain.Summary{}, fmt.Errorf("scan %s entities: %w", kind, err)
		}

		for _, e := range batch {
			out, err := agg.Add(e)
			if err != nil {
				s.log.WarnContext(ctx, "entity skipped in summary",
					slog.String("entity_id", e.ID.String()),
					slog.String("kind", string(kind)),
					slog.String("error", err.Error()),
				)
				continue
			}
			if out.FellBack {
				s.logFallback(ctx, e)
			}
			if visit != nil {
				visit(e, out.Evaluation)
			}
		}

		if len(batch) < s.cfg.BatchSize {
			break
		}
		after = batch[len(batch)-1].ID
	}

	return agg.Summary(), nil
}

func (s *Service) logFallback(ctx context.Context, e domain.TrackedEntity) {
	s.log.WarnContext(ctx, "unknown frequency label, using default",
		slog.String("entity_id", e.ID.String()),
		slog.String("frequency", e.Frequency),
	)
}
