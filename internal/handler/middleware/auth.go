package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotelier-hub/internal/domain/user"
	"hotelier-hub/internal/infra"
	"hotelier-hub/internal/pkg/jwt"
	"hotelier-hub/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey   = "user_id"
	ctxHotelIDKey  = "hotel_id"
	ctxUserRoleKey = "user_role"
)

type AuthMiddleware struct {
	tokens *jwt.Service
	uow    shared.UnitOfWork
}

func NewAuthMiddleware(tokens *jwt.Service, uow shared.UnitOfWork) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, uow: uow}
}

// RequireAuth authenticates the bearer token, loads the user and stashes
// identity in the request context. Deactivated accounts get 403, anything
// else that fails gets 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}

		userID, err := m.tokens.ValidateToken(token, jwt.KindAccess)
		if err != nil {
			slog.Warn("token validation failed", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		u, err := m.uow.Repos().Users().FindByID(c.Request.Context(), userID)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				slog.Error("failed to load user in auth middleware", "error", err.Error())
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		if !u.IsActive() {
			c.JSON(http.StatusForbidden, gin.H{"error": "User is deactivated"})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, u.ID())
		c.Set(ctxUserRoleKey, u.Role())
		if u.HotelID() != nil {
			c.Set(ctxHotelIDKey, *u.HotelID())
		}
		c.Set("jwt_claims", map[string]any{
			"user_id": u.ID().String(),
			"role":    string(u.Role()),
		})
		c.Next()
	}
}

// RequireHotel ensures the authenticated user is attached to a hotel.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireHotel() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetHotelID(c); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "No hotel found for this user"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetHotelID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxHotelIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}
