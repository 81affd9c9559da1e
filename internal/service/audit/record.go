package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/pkg/ctxutil"
)

const drainTimeout = 5 * time.Second

// RecordInput describes one mutation. ActorID falls back to the actor in
// the context. A nil OldValue means creation, a nil NewValue deletion.
type RecordInput struct {
	ActorID    uuid.UUID
	Action     domain.AuditAction
	EntityType domain.EntityKind
	EntityID   uuid.UUID
	OldValue   map[string]any
	NewValue   map[string]any
}

// Validate checks all fields and collects all errors.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "unknown action"})
	}
	if !i.EntityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "unknown entity type"})
	}
	if i.EntityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Record appends an audit entry and returns its id.
//
// The write joins the transaction carried by ctx inside its own savepoint.
// When it fails, strict mode returns an error wrapping ErrAuditWrite; the
// default mode hands the entry to the retry worker and reports success.
func (s *Service) Record(ctx context.Context, in RecordInput) (uuid.UUID, error) {
	if in.ActorID == uuid.Nil {
		actor, ok := ctxutil.ActorIDFromCtx(ctx)
		if !ok {
			return uuid.Nil, domain.ErrUnauthorized
		}
		in.ActorID = actor
	}
	if err := in.Validate(); err != nil {
		return uuid.Nil, err
	}

	client := ctxutil.ClientInfoFromCtx(ctx)
	entry := domain.AuditEntry{
		ID:         uuid.New(),
		ActorID:    in.ActorID,
		Action:     in.Action,
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		OldValue:   in.OldValue,
		NewValue:   in.NewValue,
		IP:         client.IP,
		UserAgent:  client.UserAgent,
		CreatedAt:  s.clock.Now().UTC(),
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := s.repo.Insert(ctx, entry)
		return err
	})
	if err == nil {
		return entry.ID, nil
	}

	if s.cfg.Strict {
		return uuid.Nil, fmt.Errorf("%w: %w", domain.ErrAuditWrite, err)
	}

	s.log.WarnContext(ctx, "audit write failed, queued for retry",
		slog.String("entry_id", entry.ID.String()),
		slog.String("error", err.Error()),
	)
	s.enqueue(ctx, entry)
	return entry.ID, nil
}

func (s *Service) enqueue(ctx context.Context, entry domain.AuditEntry) {
	select {
	case s.queue <- entry:
	default:
		s.log.ErrorContext(ctx, "audit retry queue full, entry dropped", entryAttrs(entry)...)
	}
}

// RunRetryWorker writes queued entries with exponential backoff until ctx is
// done, then makes one last attempt for whatever is still queued.
func (s *Service) RunRetryWorker(ctx context.Context) error {
	for {
		select {
		case entry := <-s.queue:
			s.writeWithRetry(ctx, entry)
		case <-ctx.Done():
			s.drain()
			return nil
		}
	}
}

func (s *Service) writeWithRetry(ctx context.Context, entry domain.AuditEntry) {
	backoff := retry.WithMaxRetries(s.cfg.RetryAttempts, retry.NewExponential(s.cfg.RetryBaseDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if _, err := s.repo.Insert(ctx, entry); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil && ctx.Err() != nil {
		s.finalAttempt(entry)
		return
	}
	if err != nil {
		s.log.ErrorContext(ctx, "audit entry lost after retries",
			append(entryAttrs(entry), slog.String("error", err.Error()))...)
		return
	}

	s.log.InfoContext(ctx, "audit entry written on retry", slog.String("entry_id", entry.ID.String()))
}

func (s *Service) drain() {
	for {
		select {
		case entry := <-s.queue:
			s.finalAttempt(entry)
		default:
			return
		}
	}
}

func (s *Service) finalAttempt(entry domain.AuditEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	if _, err := s.repo.Insert(ctx, entry); err != nil {
		s.log.Error("audit entry lost on shutdown",
			append(entryAttrs(entry), slog.String("error", err.Error()))...)
	}
}

func entryAttrs(e domain.AuditEntry) []any {
	return []any{
		slog.String("entry_id", e.ID.String()),
		slog.String("actor_id", e.ActorID.String()),
		slog.String("action", e.Action.String()),
		slog.String("entity_type", e.EntityType.String()),
		slog.String("entity_id", e.EntityID.String()),
		slog.Time("created_at", e.CreatedAt),
	}
}
