package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/heartmarshall/floodinsure-backend/internal/domain"
	"github.com/heartmarshall/floodinsure-backend/pkg/ctxutil"
)

// TokenValidator resolves a session token to its user.
type TokenValidator interface {
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
}

// Auth resolves a bearer token to the stored user and puts its id and role
// into the request context. Requests without a token pass through as
// anonymous. A rejected token gets 401; a lookup failure gets 503 so clients
// do not discard a valid session.
func Auth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			user, err := validator.VerifyToken(r.Context(), token)
			if errors.Is(err, domain.ErrUnauthorized) {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if err != nil {
				writeError(w, http.StatusServiceUnavailable, "authentication unavailable")
				return
			}
			if info := requestInfoFrom(r.Context()); info != nil {
				info.userID = user.ID
			}
			ctx := ctxutil.WithUserID(r.Context(), user.ID)
			ctx = ctxutil.WithUserRole(ctx, user.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401. Mount it after Auth.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
