package auth

import (
	"net/http"
	"strings"

	"assignment-workflow-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	actorIDKey    = "actor_id"
	authClaimsKey = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and binds the actor to the request
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set(actorIDKey, claims.Subject)
		c.Set(authClaimsKey, claims)
		c.Request = c.Request.WithContext(logger.ContextWithActor(c.Request.Context(), claims.Subject))

		c.Next()
	}
}

// GetActorID is a helper function to extract the authenticated actor from context
func GetActorID(c *gin.Context) (string, bool) {
	actor, exists := c.Get(actorIDKey)
	if !exists {
		return "", false
	}

	id, ok := actor.(string)
	return id, ok && id != ""
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(authClaimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
