package session

import (
	"context"
	"net/http"
	"strings"

	"Storefront/internal/store"
	"Storefront/pkg/kit"
)

type ctxKey string

const storeKey ctxKey = "session_store"

func StoreFromContext(ctx context.Context) (*store.Store, bool) {
	s, ok := ctx.Value(storeKey).(*store.Store)
	return s, ok
}

func WithStore(ctx context.Context, s *store.Store) context.Context {
	return context.WithValue(ctx, storeKey, s)
}

// RequireSession resolves the bearer session token to its store.
func RequireSession(tm *TokenMaker, reg *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing session token", nil)
				return
			}

			claims, err := tm.Parse(strings.TrimPrefix(authz, "Bearer "))
			if err != nil {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid session token", nil)
				return
			}

			st, err := reg.Get(claims.SessionID)
			if err != nil {
				kit.WriteError(w, r, http.StatusServiceUnavailable, "session capacity reached", nil)
				return
			}

			ctx := WithStore(r.Context(), st)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
