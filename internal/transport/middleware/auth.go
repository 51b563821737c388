package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/resale-backend/internal/auth"
	"github.com/heartmarshall/resale-backend/pkg/ctxutil"
)

type sessionVerifier interface {
	Verify(ctx context.Context, token string) (auth.Session, error)
}

// Auth resolves the session token into the request context. Requests
// without a bearer token pass through anonymously; services reject them
// where identity is required.
func Auth(verifier sessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			session, err := verifier.Verify(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			noteUser(r.Context(), session.UserID.String())
			ctx := ctxutil.WithUserID(r.Context(), session.UserID)
			ctx = ctxutil.WithUserRole(ctx, session.Role)
			ctx = ctxutil.WithAdmin(ctx, session.Admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SkipPaths applies mw to every request except those whose path starts
// with one of prefixes.
func SkipPaths(mw Middleware, prefixes ...string) Middleware {
	return func(next http.Handler) http.Handler {
		wrapped := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, p := range prefixes {
				if strings.HasPrefix(r.URL.Path, p) {
					next.ServeHTTP(w, r)
					return
				}
			}
			wrapped.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
