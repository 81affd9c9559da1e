// Package audit records and queries the append-only audit log of entity
// mutations.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/homestock-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type auditRepo interface {
	Insert(ctx context.Context, entry domain.AuditEntry) (bool, error)
	ByEntity(ctx context.Context, entityType domain.EntityKind, entityID uuid.UUID, limit int) ([]domain.AuditEntry, error)
	ByActor(ctx context.Context, actorID uuid.UUID, limit int) ([]domain.AuditEntry, error)
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config controls what happens when an audit write fails.
type Config struct {
	// Strict makes Record return ErrAuditWrite instead of queueing a retry.
	Strict         bool
	RetryAttempts  uint64
	RetryBaseDelay time.Duration
	QueueSize      int
}

// Service implements the audit log.
type Service struct {
	repo  auditRepo
	tx    txManager
	clock clockwork.Clock
	log   *slog.Logger
	cfg   Config
	queue chan domain.AuditEntry
}

// NewService creates a new audit Service.
func NewService(log *slog.Logger, repo auditRepo, tx txManager, clock clockwork.Clock, cfg Config) *Service {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 100 * time.Millisecond
	}
	return &Service{
		repo:  repo,
		tx:    tx,
		clock: clock,
		log:   log.With("service", "audit"),
		cfg:   cfg,
		queue: make(chan domain.AuditEntry, cfg.QueueSize),
	}
}

// Pending returns the number of entries waiting for a retried write.
func (s *Service) Pending() int {
	return len(s.queue)
}
