// Package rest exposes the inventory engine over HTTP.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/heartmarshall/homestock-backend/internal/config"
	"github.com/heartmarshall/homestock-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Summary      *SummaryHandler
	Entity       *EntityHandler
	Audit        *AuditHandler
	Notification *NotificationHandler
}

// NewRouter builds the HTTP handler. Probes are public; everything under
// /api/v1 requires an actor.
func NewRouter(h Handlers, corsCfg config.CORSConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.ClientInfo(),
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsCfg.Origins(),
		AllowedMethods:   corsCfg.Methods(),
		AllowedHeaders:   corsCfg.Headers(),
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: corsCfg.AllowCredentials,
		MaxAge:           corsCfg.MaxAge,
	}))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Actor())

		api.Get("/summary", h.Summary.Summary)
		api.Get("/dashboard", h.Summary.Dashboard)
		api.Post("/refresh", h.Summary.Refresh)

		api.Route("/entities", func(er chi.Router) {
			er.Get("/", h.Entity.List)
			er.Post("/", h.Entity.Create)
			er.Route("/{id}", func(one chi.Router) {
				one.Get("/", h.Entity.Get)
				one.Put("/", h.Entity.Update)
				one.Delete("/", h.Entity.Delete)
				one.Post("/events", h.Entity.RecordEvent)
				one.Post("/quantity", h.Entity.AdjustQuantity)
				one.Get("/evaluation", h.Summary.Evaluate)
				one.Get("/audit", h.Audit.EntityHistory)
			})
		})

		api.Get("/audit", h.Audit.List)

		api.Route("/notifications", func(nr chi.Router) {
			nr.Get("/", h.Notification.List)
			nr.Get("/unread-count", h.Notification.UnreadCount)
			nr.Post("/read-all", h.Notification.MarkAllRead)
			nr.Post("/{id}/read", h.Notification.MarkRead)
		})
	})

	return r
}
