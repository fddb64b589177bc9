package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/anmol-virk/blitzgramm-backend/helper"
	"github.com/anmol-virk/blitzgramm-backend/logger"
)

// RequireAuth extracts a bearer token from the Authorization header and
// verifies it. A missing or malformed header is 401; a present but invalid or
// expired token is 403. On success the decoded claims are set on the context.
func RequireAuth(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: No token provided"})
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided."})
		return
	}

	claims, err := helper.ValidateToken(tokenString)
	if err != nil {
		logger.Log.Warn("invalid token", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token."})
		return
	}

	c.Set("userId", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("role", claims.Role)

	c.Next()
}
