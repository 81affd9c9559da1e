package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/homestock-backend/pkg/ctxutil"
)

const maxUserAgentLen = 512

// ClientInfo records the caller's address and user agent for the audit log.
// The first X-Forwarded-For hop wins over the socket address.
func ClientInfo() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua := r.UserAgent()
			if len(ua) > maxUserAgentLen {
				ua = ua[:maxUserAgentLen]
			}
			info := ctxutil.ClientInfo{IP: clientIP(r), UserAgent: ua}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientInfo(r.Context(), info)))
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
