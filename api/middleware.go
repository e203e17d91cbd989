package api

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/nyayconnect/nyayconnect-api/models"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "userRole"
)

// Middleware authenticates the bearer token on a route and injects the
// caller's identity and role into the request context before the handler
// runs. Missing, malformed or expired tokens short-circuit with a 401.
func Middleware(secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		token := bearerToken(r)
		if token == "" {
			zap.S().Errorw("token is missing", "url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success": false, "message": "Token is missing!"}`))
			return
		}

		userID, role, err := VerifyToken(token, secret)
		if err != nil {
			zap.S().With(err).Errorw("unauthorized", "url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success": false, "message": "Token is invalid or has expired!"}`))
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole wraps a handler that is reserved for one role. The identity
// must already have been injected by Middleware.
func RequireRole(role models.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got, ok := RoleFromContext(r.Context()); !ok || got != role {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"success": false, "message": "Access forbidden."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext returns the authenticated user id injected by Middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// RoleFromContext returns the authenticated role injected by Middleware
func RoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(roleKey).(models.Role)
	return role, ok
}

// ContextWithIdentity injects an identity the way Middleware does. Exported
// for the websocket handler, which authenticates outside the HTTP gate.
func ContextWithIdentity(ctx context.Context, userID int64, role models.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
