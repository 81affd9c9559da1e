package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/pkg/ctxutil"
)

// List limits.
const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// Get returns one of the caller's entities.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.TrackedEntity, error) {
	owner, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return domain.TrackedEntity{}, domain.ErrUnauthorized
	}

	e, err := s.entities.Get(ctx, owner, id)
	if err != nil {
		return domain.TrackedEntity{}, fmt.Errorf("get entity: %w", err)
	}
	return e, nil
}

// List returns the caller's entities ordered by name.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.TrackedEntity, error) {
	owner, ok := ctxutil.ActorIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	limit := in.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	items, err := s.entities.List(ctx, owner, domain.EntityFilter{Kind: in.Kind, Limit: limit, Offset: in.Offset})
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	return items, nil
}
