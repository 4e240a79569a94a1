package middleware

import (
	"context"
	"net/http"
	"strings"

	"community-backend/internal/auth"
	"community-backend/internal/models"
	"community-backend/internal/repositories"
)

type contextKey string

const (
	userContextKey   contextKey = "user"
	userIDContextKey contextKey = "user_id"
	roleContextKey   contextKey = "role"
)

// AuthMiddleware validates bearer tokens and loads the user into context
type AuthMiddleware struct {
	jwtManager  *auth.JWTManager
	userRepo    *repositories.UserRepository
	revokedRepo *repositories.RevokedTokenRepository
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, userRepo *repositories.UserRepository, revokedRepo *repositories.RevokedTokenRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:  jwtManager,
		userRepo:    userRepo,
		revokedRepo: revokedRepo,
	}
}

// RequireAuth rejects requests without a valid, unrevoked bearer token
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := m.jwtManager.Validate(tokenString)
		if err != nil {
			http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
			return
		}

		revoked, err := m.revokedRepo.IsRevoked(r.Context(), claims.ID)
		if err == nil && revoked {
			http.Error(w, "Session has been logged out", http.StatusUnauthorized)
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "User not found", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	}
}

// ContextWithUser stores the authenticated user on the request context
func ContextWithUser(ctx context.Context, user *models.UserAccount) context.Context {
	ctx = context.WithValue(ctx, userContextKey, user)
	ctx = context.WithValue(ctx, userIDContextKey, user.ID)
	return context.WithValue(ctx, roleContextKey, user.UserType)
}

// RequireAdmin is RequireAuth plus an admin user-type check
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetRoleFromContext(r.Context())
		if !ok || role != models.UserTypeAdmin {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// TokenClaims re-parses the bearer token; used by logout to get the JTI
func (m *AuthMiddleware) TokenClaims(r *http.Request) (*auth.Claims, error) {
	tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return m.jwtManager.Validate(tokenString)
}

// GetUserFromContext returns the authenticated user set by RequireAuth
func GetUserFromContext(ctx context.Context) (*models.UserAccount, bool) {
	user, ok := ctx.Value(userContextKey).(*models.UserAccount)
	return user, ok
}

// GetUserIDFromContext returns the authenticated user ID
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDContextKey).(int)
	return id, ok
}

// GetRoleFromContext returns the authenticated user's type
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleContextKey).(string)
	return role, ok
}
