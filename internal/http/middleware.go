package http

import (
	"net/http"
	"strings"

	"github.com/grocery-tracker/grocery-tracker/internal/auth"
)

// AuthMiddleware authenticates the bearer token through the guard and injects
// the resolved identity into the request context. Every guard failure maps to
// the same 401 so callers cannot tell which sub-check rejected them.
func AuthMiddleware(guard *auth.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			rawToken := ""
			if strings.HasPrefix(header, "Bearer ") {
				rawToken = strings.TrimPrefix(header, "Bearer ")
			}

			identity, err := guard.Authenticate(rawToken)
			if err != nil {
				http.Error(w, "not authenticated", http.StatusUnauthorized)
				return
			}

			ctx := auth.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
