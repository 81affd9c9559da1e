package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/homestock-backend/pkg/ctxutil"
)

// ActorHeader identifies the acting user. Authentication happens upstream;
// the gateway forwards the verified user id in this header.
const ActorHeader = "X-User-Id"

// Actor puts the user from ActorHeader into the context. Requests without a
// valid id are rejected with 401.
func Actor() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(r.Header.Get(ActorHeader))
			if err != nil || id == uuid.Nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			if rep, ok := w.(actorReporter); ok {
				rep.reportActor(id.String())
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithActorID(r.Context(), id)))
		})
	}
}
