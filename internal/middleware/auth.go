package middleware

import (
	"net/http"

	"github.com/shopnobd/backoffice/internal/upstream"
)

// Auth requires the raw `token` header on the request and stores it in the
// context so the upstream client forwards it. The credential is opaque to
// this service; the commerce API verifies it.
func Auth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("token")
			if token == "" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"success":false,"message":"not authorized"}`))
				return
			}
			next.ServeHTTP(w, r.WithContext(upstream.ContextWithToken(r.Context(), token)))
		})
	}
}
