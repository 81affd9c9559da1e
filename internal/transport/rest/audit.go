package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/homestock-backend/internal/domain"
)

type auditService interface {
	ByEntity(ctx context.Context, entityType domain.EntityKind, entityID uuid.UUID, limit int) ([]domain.AuditEntry, error)
	ByActor(ctx context.Context, actorID uuid.UUID, limit int) ([]domain.AuditEntry, error)
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type entityLookup interface {
	Get(ctx context.Context, id uuid.UUID) (domain.TrackedEntity, error)
}

// AuditHandler serves audit log queries.
type AuditHandler struct {
	svc      auditService
	entities entityLookup
	log      *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, entities entityLookup, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, entities: entities, log: logger.With("handler", "audit")}
}

// List handles GET /audit?actor=&limit=. Without actor the newest entries
// of the whole log are returned.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	var (
		entries []domain.AuditEntry
		err     error
	)
	if v := r.URL.Query().Get("actor"); v != "" {
		actor, perr := uuid.Parse(v)
		if perr != nil {
			handleError(h.log, w, r, domain.NewValidationError("actor", "must be a UUID"))
			return
		}
		entries, err = h.svc.ByActor(r.Context(), actor, limit)
	} else {
		entries, err = h.svc.Recent(r.Context(), limit)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponses(entries))
}

// EntityHistory handles GET /entities/{id}/audit. The entity must belong to
// the caller.
func (h *AuditHandler) EntityHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	e, err := h.entities.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.ByEntity(r.Context(), e.Kind, e.ID, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponses(entries))
}
