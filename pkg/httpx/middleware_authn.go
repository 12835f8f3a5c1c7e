package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/wramaba/felipe/pkg/jwtx"
	"github.com/wramaba/felipe/pkg/slogx"
)

// AuthnMiddleware requires a valid bearer token on the request. On success it
// injects the token subject as the request's authenticated identity; on
// failure it rejects before any handler logic runs. No server-side session
// state is consulted.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				if errors.Is(err, jwtx.ErrExpired) {
					WriteError(w, http.StatusUnauthorized, "token expired")
					return
				}
				log.Warn("jwt verify failed", "err", err)
				WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
