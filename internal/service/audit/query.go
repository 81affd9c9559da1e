package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/homestock-backend/internal/domain"
)

// Query limits.
const (
	DefaultLimit = 50
	MaxLimit     = 500
)

func normalizeLimit(limit int) (int, error) {
	if limit == 0 {
		return DefaultLimit, nil
	}
	if limit < 0 || limit > MaxLimit {
		return 0, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxLimit))
	}
	return limit, nil
}

// ByEntity returns the history of one entity, newest first.
func (s *Service) ByEntity(ctx context.Context, entityType domain.EntityKind, entityID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	if !entityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "unknown entity type")
	}
	limit, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ByEntity(ctx, entityType, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("audit by entity: %w", err)
	}
	return entries, nil
}

// ByActor returns entries written by one actor, newest first.
func (s *Service) ByActor(ctx context.Context, actorID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	limit, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ByActor(ctx, actorID, limit)
	if err != nil {
		return nil, fmt.Errorf("audit by actor: %w", err)
	}
	return entries, nil
}

// Recent returns the newest entries of the whole log.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	limit, err := normalizeLimit(limit)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("audit recent: %w", err)
	}
	return entries, nil
}

// Cleanup deletes entries older than olderThan and returns how many were
// removed. It is the only destructive operation on the log.
func (s *Service) Cleanup(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, domain.NewValidationError("older_than", "must be positive")
	}

	cutoff := s.clock.Now().Add(-olderThan)
	n, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("audit cleanup: %w", err)
	}

	s.log.InfoContext(ctx, "audit cleanup finished",
		slog.Int64("deleted", n),
		slog.Time("cutoff", cutoff),
	)
	return n, nil
}
