package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rohanvd/crease/pkg/token"
)

const (
	AuthScorerIDKey = "auth_scorer_id"
)

// AuthMiddleware validates the Bearer token and stashes the scorer ID
// in the Gin context for downstream handlers.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		c.Set(AuthScorerIDKey, claims.ScorerID)
		c.Next()
	}
}

// GetScorerIDFromContext extracts the authenticated scorer ID from the context.
func GetScorerIDFromContext(c *gin.Context) (uint, error) {
	scorerID, exists := c.Get(AuthScorerIDKey)
	if !exists {
		return 0, errors.New("scorer ID not found in context")
	}

	id, ok := scorerID.(uint)
	if !ok {
		return 0, fmt.Errorf("scorer ID has unexpected type: %T", scorerID)
	}

	return id, nil
}
