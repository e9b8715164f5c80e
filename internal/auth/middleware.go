package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"marblemanager/internal/auth/service"
)

type contextKeyUserID struct{}
type contextKeyEmail struct{}

// UserID returns the authenticated user's id from the request context,
// or "" when the request did not pass RequireAuth.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyUserID{}).(string)
	return id
}

func UserEmail(ctx context.Context) string {
	email, _ := ctx.Value(contextKeyEmail{}).(string)
	return email
}

type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

type Middleware struct {
	jwt    *service.JWTService
	admins AdminChecker
	logger *zap.Logger
}

func NewMiddleware(jwt *service.JWTService, admins AdminChecker, logger *zap.Logger) *Middleware {
	return &Middleware{
		jwt:    jwt,
		admins: admins,
		logger: logger,
	}
}

// RequireAuth gates a route on a valid Bearer session token and loads the
// caller's identity into the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			writeAuthError(w, http.StatusUnauthorized, "missing or invalid Authorization header")
			return
		}

		claims, err := m.jwt.Validate(tokenString)
		if err != nil {
			m.logger.Warn("rejected session token", zap.Error(err))
			writeAuthError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID{}, claims.UserID)
		ctx = context.WithValue(ctx, contextKeyEmail{}, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route on admin membership. Must run after
// RequireAuth.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := UserID(r.Context())
		if userID == "" {
			writeAuthError(w, http.StatusUnauthorized, "missing session")
			return
		}

		isAdmin, err := m.admins.IsAdmin(r.Context(), userID)
		if err != nil {
			m.logger.Error("admin membership check failed", zap.String("userId", userID), zap.Error(err))
			writeAuthError(w, http.StatusInternalServerError, "an unexpected error occurred")
			return
		}

		if !isAdmin {
			m.logger.Warn("non-admin attempted admin route", zap.String("userId", userID))
			writeAuthError(w, http.StatusForbidden, "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + http.StatusText(status) + `","message":"` + message + `"}`))
}
