// Package inventory implements the tracked-entity mutations: every write is
// serialised per entity, audited, invalidates the owner's cached summary and
// may raise a notification.
package inventory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/internal/service/audit"
	"github.com/heartmarshall/homestock-backend/internal/service/summary/duerules"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entityRepo interface {
	Create(ctx context.Context, e domain.TrackedEntity) (domain.TrackedEntity, error)
	Update(ctx context.Context, e domain.TrackedEntity) (domain.TrackedEntity, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Get(ctx context.Context, ownerID, id uuid.UUID) (domain.TrackedEntity, error)
	GetForUpdate(ctx context.Context, ownerID, id uuid.UUID) (domain.TrackedEntity, error)
	List(ctx context.Context, ownerID uuid.UUID, f domain.EntityFilter) ([]domain.TrackedEntity, error)
}

type auditRecorder interface {
	Record(ctx context.Context, in audit.RecordInput) (uuid.UUID, error)
}

type summaryInvalidator interface {
	InvalidateOwner(ownerID uuid.UUID, kind domain.EntityKind)
}

type emitter interface {
	OnThresholdCrossed(ctx context.Context, e domain.TrackedEntity, ev domain.Evaluation) (*domain.Notification, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements tracked-entity operations.
type Service struct {
	entities  entityRepo
	audit     auditRecorder
	summaries summaryInvalidator
	emitter   emitter
	tx        txManager
	rules     duerules.Evaluator
	clock     clockwork.Clock
	locks     *keyedMutex
	log       *slog.Logger
}

// NewService creates a new inventory Service.
func NewService(
	log *slog.Logger,
	entities entityRepo,
	audit auditRecorder,
	summaries summaryInvalidator,
	emitter emitter,
	tx txManager,
	rules duerules.Evaluator,
	clock clockwork.Clock,
) *Service {
	return &Service{
		entities:  entities,
		audit:     audit,
		summaries: summaries,
		emitter:   emitter,
		tx:        tx,
		rules:     rules,
		clock:     clock,
		locks:     newKeyedMutex(),
		log:       log.With("service", "inventory"),
	}
}
