package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/internal/service/inventory"
)

type inventoryService interface {
	Create(ctx context.Context, in inventory.CreateInput) (domain.TrackedEntity, error)
	Update(ctx context.Context, in inventory.UpdateInput) (domain.TrackedEntity, error)
	RecordEvent(ctx context.Context, in inventory.RecordEventInput) (domain.TrackedEntity, error)
	AdjustQuantity(ctx context.Context, in inventory.AdjustQuantityInput) (domain.TrackedEntity, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (domain.TrackedEntity, error)
	List(ctx context.Context, in inventory.ListInput) ([]domain.TrackedEntity, error)
}

// EntityHandler serves tracked-entity CRUD and events.
type EntityHandler struct {
	svc inventoryService
	log *slog.Logger
}

// NewEntityHandler creates an EntityHandler.
func NewEntityHandler(svc inventoryService, logger *slog.Logger) *EntityHandler {
	return &EntityHandler{svc: svc, log: logger.With("handler", "entity")}
}

// List handles GET /entities?kind=&limit=&offset=.
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	entities, err := h.svc.List(r.Context(), inventory.ListInput{
		Kind:   domain.EntityKind(r.URL.Query().Get("kind")),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntityResponses(entities))
}

// Create handles POST /entities.
func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.Create(r.Context(), inventory.CreateInput{
		Kind:        domain.EntityKind(req.Kind),
		Name:        req.Name,
		Quantity:    req.Quantity,
		Threshold:   req.Threshold,
		Interval:    seconds(req.IntervalSeconds),
		UnitPrice:   req.UnitPrice,
		Frequency:   req.Frequency,
		LastEventAt: req.LastEventAt,
		EndsAt:      req.EndsAt,
		Metadata:    req.Metadata,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntityResponse(e))
}

// Get handles GET /entities/{id}.
func (h *EntityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntityResponse(e))
}

// Update handles PUT /entities/{id}. Omitted fields stay unchanged.
func (h *EntityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateEntityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.Update(r.Context(), inventory.UpdateInput{
		ID:            id,
		Name:          req.Name,
		Quantity:      req.Quantity,
		Threshold:     req.Threshold,
		Interval:      seconds(req.IntervalSeconds),
		ClearInterval: req.ClearInterval,
		UnitPrice:     req.UnitPrice,
		Frequency:     req.Frequency,
		EndsAt:        req.EndsAt,
		Metadata:      req.Metadata,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntityResponse(e))
}

// Delete handles DELETE /entities/{id}.
func (h *EntityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RecordEvent handles POST /entities/{id}/events.
func (h *EntityHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req recordEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.RecordEvent(r.Context(), inventory.RecordEventInput{ID: id, At: req.At, Quantity: req.Quantity})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntityResponse(e))
}

// AdjustQuantity handles POST /entities/{id}/quantity.
func (h *EntityHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req adjustQuantityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	e, err := h.svc.AdjustQuantity(r.Context(), inventory.AdjustQuantityInput{ID: id, Delta: req.Delta})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntityResponse(e))
}
