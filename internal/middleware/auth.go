package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xjtang/lifelog-backend/internal/logger"
	"github.com/xjtang/lifelog-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLogger := log.With("Middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, authService: authService}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		if err := am.authService.ValidateToken(tokenString); err != nil {
			am.log.Debug("Token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	// Widget clients cannot set headers on shared URLs, so a query token is
	// accepted as a fallback.
	return c.Query("token")
}
