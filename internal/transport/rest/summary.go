package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/homestock-backend/internal/domain"
	"github.com/heartmarshall/homestock-backend/internal/service/summary"
)

type summaryService interface {
	GetSummary(ctx context.Context, kind domain.EntityKind) (domain.Summary, error)
	GetDashboard(ctx context.Context) (domain.Dashboard, error)
	EvaluateEntity(ctx context.Context, id uuid.UUID) (domain.Evaluation, error)
	Refresh(ctx context.Context) (summary.RefreshReport, error)
}

// SummaryHandler serves summaries, evaluations and the on-demand refresh.
type SummaryHandler struct {
	svc summaryService
	log *slog.Logger
}

// NewSummaryHandler creates a SummaryHandler.
func NewSummaryHandler(svc summaryService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{svc: svc, log: logger.With("handler", "summary")}
}

// Summary handles GET /summary?kind=stock_item.
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	kind := domain.EntityKind(r.URL.Query().Get("kind"))

	s, err := h.svc.GetSummary(r.Context(), kind)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(s))
}

// Dashboard handles GET /dashboard.
func (h *SummaryHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboardResponse{
		StockItems:  toSummaryResponse(d.StockItems),
		Warranties:  toSummaryResponse(d.Warranties),
		Maintenance: toSummaryResponse(d.Maintenance),
	})
}

// Evaluate handles GET /entities/{id}/evaluation.
func (h *SummaryHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	ev, err := h.svc.EvaluateEntity(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEvaluationResponse(ev))
}

// Refresh handles POST /refresh. The run is detached from the request so a
// disconnecting client does not abort it for callers sharing the run.
func (h *SummaryHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Refresh(context.WithoutCancel(r.Context()))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "refresh triggered via api",
		slog.Int("summaries", report.Summaries),
		slog.Bool("shared", report.Shared),
	)
	writeJSON(w, http.StatusOK, toRefreshResponse(report))
}
