package authn

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
)

type contextKey struct{}

// AccessTokenCookie is the cookie carrying the access token for browser clients
const AccessTokenCookie = "access_token"

// FromContext returns the principal stashed by the auth middleware
func FromContext(ctx context.Context) (domain.Principal, bool) {
	principal, ok := ctx.Value(contextKey{}).(domain.Principal)
	return principal, ok
}

// tokenFromRequest reads the access token from the cookie or the
// Authorization bearer header, cookie first
func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if token, found := strings.CutPrefix(header, "Bearer "); found {
		return strings.TrimSpace(token)
	}
	return ""
}

// Required rejects requests without a valid access token
func Required(provider port.AuthProvider, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				http.Error(w, "missing credentials", http.StatusUnauthorized)
				return
			}
			principal, err := provider.Verify(token)
			if err != nil {
				logger.Debug("access token rejected", "error", err)
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, principal)))
		})
	}
}

// Optional attaches a principal when a valid token is present and lets the
// request through either way. Handlers serving mixed public/private content
// (unpublished videos) use this.
func Optional(provider port.AuthProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := tokenFromRequest(r); token != "" {
				if principal, err := provider.Verify(token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), contextKey{}, principal))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
