package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/homestock-backend/pkg/ctxutil"
)

// Logger logs every request with method, path, status, duration and the
// request and actor ids. Server errors are logged at error level.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if actor, ok := sw.actor(); ok {
				attrs = append(attrs, slog.String("actor_id", actor))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter captures the response status. Actor is set further down the
// chain, so it is reported back through the writer.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	actorID     string
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func (w *statusWriter) actor() (string, bool) {
	return w.actorID, w.actorID != ""
}

// actorReporter is implemented by writers that want to learn the actor
// resolved by an inner middleware.
type actorReporter interface {
	reportActor(id string)
}

func (w *statusWriter) reportActor(id string) { w.actorID = id }
