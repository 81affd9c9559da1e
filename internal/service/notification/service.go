// Package notification emits user-facing notifications when an entity
// enters a needed, due-soon or expiring-soon state, and serves the
// recipient's notification feed.
package notification

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

type notificationRepo interface {
	InsertOnce(ctx context.Context, n domain.Notification) (domain.Notification, bool, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error)
	List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, recipientID, id uuid.UUID, at time.Time) error
	MarkAllRead(ctx context.Context, recipientID uuid.UUID, at time.Time) (int64, error)
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements notification emission and the notification feed.
type Service struct {
	repo  notificationRepo
	clock clockwork.Clock
	log   *slog.Logger
}

// NewService creates a new notification Service.
func NewService(log *slog.Logger, repo notificationRepo, clock clockwork.Clock) *Service {
	return &Service{
		repo:  repo,
		clock: clock,
		log:   log.With("service", "notification"),
	}
}
