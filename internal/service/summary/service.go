// Package summary builds, caches and refreshes per-owner inventory
// summaries from tracked entities.
package summary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/homestock-backend/internal/cache"
	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/internal/service/summary/duerules"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entityRepo interface {
	Get(ctx context.Context, ownerID, id uuid.UUID) (domain.TrackedEntity, error)
	ScanByOwnerKind(ctx context.Context, ownerID uuid.UUID, kind domain.EntityKind, after uuid.UUID, limit int) ([]domain.TrackedEntity, error)
	ListOwners(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error)
}

type summaryCache interface {
	GetOrCompute(ctx context.Context, key string, fn cache.ComputeFunc[domain.Summary]) (domain.Summary, error)
	Refresh(ctx context.Context, key string, fn cache.ComputeFunc[domain.Summary]) (domain.Summary, error)
	Invalidate(key string)
}

type emitter interface {
	OnThresholdCrossed(ctx context.Context, e domain.TrackedEntity, ev domain.Evaluation) (*domain.Notification, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the rules and limits used when building summaries.
type Config struct {
	Rules        duerules.Evaluator
	RecentWindow time.Duration
	RecentMax    int

	// BatchSize bounds each owner and entity scan.
	BatchSize int
	// RefreshTimeout bounds a whole Refresh run. Zero disables the bound.
	RefreshTimeout time.Duration
}

const defaultBatchSize = 500

// Service serves cached summaries and runs the periodic refresh.
type Service struct {
	entities entityRepo
	cache    summaryCache
	emitter  emitter
	clock    clockwork.Clock
	cfg      Config
	flight   singleflight.Group
	log      *slog.Logger
}

// NewService creates a new summary Service.
func NewService(
	log *slog.Logger,
	entities entityRepo,
	cache summaryCache,
	emitter emitter,
	clock clockwork.Clock,
	cfg Config,
) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	return &Service{
		entities: entities,
		cache:    cache,
		emitter:  emitter,
		clock:    clock,
		cfg:      cfg,
		log:      log.With("service", "summary"),
	}
}

// CacheKey is the key a summary of one owner and kind is stored under.
func CacheKey(ownerID uuid.UUID, kind domain.EntityKind) string {
	return "summary:" + ownerID.String() + ":" + string(kind)
}

// OwnerPrefix matches every cached summary of ownerID.
func OwnerPrefix(ownerID uuid.UUID) string {
	return "summary:" + ownerID.String() + ":"
}

// InvalidateOwner drops the cached summary of one owner and kind so the next
// read recomputes it.
func (s *Service) InvalidateOwner(ownerID uuid.UUID, kind domain.EntityKind) {
	s.cache.Invalidate(CacheKey(ownerID, kind))
}

func (s *Service) aggregateOptions() AggregateOptions {
	return AggregateOptions{RecentWindow: s.cfg.RecentWindow, RecentMax: s.cfg.RecentMax}
}
