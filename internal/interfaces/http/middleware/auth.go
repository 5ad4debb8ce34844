package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"alumni-connect.backend/internal/domain/entities"
	"alumni-connect.backend/internal/domain/repositories"
	"alumni-connect.backend/pkg/jwt"
	"alumni-connect.backend/pkg/redis"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// SessionHeader carries the opaque session id issued at login
	SessionHeader = "X-Session-ID"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// UserRoleKey is the context key for user role
	UserRoleKey = "userRole"
	// UserKey is the context key for the loaded profile
	UserKey = "user"
)

// AuthMiddleware authenticates via bearer token or server-side session.
// A session id resolves to the stored access token, which then goes
// through the same validation as a bearer token.
func AuthMiddleware(jwtService *jwt.JWTService, sessions *redis.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c, sessions)
		if !ok {
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == jwt.ErrExpiredToken {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Session expired, please sign in again",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid token",
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, claims.Role)

		c.Next()
	}
}

func extractToken(c *gin.Context, sessions *redis.SessionStore) (string, bool) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization format. Use: Bearer <token>",
			})
			return "", false
		}
		return strings.TrimPrefix(authHeader, BearerPrefix), true
	}

	if sessionID := c.GetHeader(SessionHeader); sessionID != "" && sessions != nil {
		data, err := sessions.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Session expired, please sign in again",
			})
			return "", false
		}
		return data.AccessToken, true
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Authorization header is required",
	})
	return "", false
}

// LoadProfile loads the authenticated member's profile into the gin
// context. Tokens of removed profiles stop working here.
func LoadProfile(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusGone, gin.H{
				"error": "Your account has been removed. You may request re-approval",
			})
			return
		}
		if user.Status != entities.UserStatusApproved {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Your account is awaiting admin approval",
			})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// GetUserEmail gets the user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetUserRole gets the user role from context
func GetUserRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	return role.(string), true
}

// GetUser gets the loaded profile from context
func GetUser(c *gin.Context) (*entities.User, bool) {
	user, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	return user.(*entities.User), true
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := GetUserRole(c)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "User role not found",
			})
			return
		}

		for _, role := range roles {
			if userRole == string(role) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	}
}

// RequireAdmin requires an administrative role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(entities.UserRoleAdmin, entities.UserRoleSuperAdmin)
}

// RequireSuperAdmin requires the super admin role
func RequireSuperAdmin() gin.HandlerFunc {
	return RequireRole(entities.UserRoleSuperAdmin)
}
