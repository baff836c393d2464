package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"peerskill/api/internal/config"
	"peerskill/api/internal/models"
	"peerskill/api/internal/repository"
	"peerskill/api/internal/security"
)

const (
	ContextUserKey   = "current_user"
	ContextClaimsKey = "token_claims"
)

// Auth verifies the bearer token and resolves the caller. The configured
// admin identity has no directory row, so an admin token is materialized
// from config; every other principal must still exist in the store.
func Auth(cfg *config.AppConfig, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseToken(tokenStr, cfg.Security.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		var principal models.User
		if claims.Role == string(models.UserRoleAdmin) {
			if !cfg.AdminEnabled() || !strings.EqualFold(claims.Email, cfg.Security.AdminEmail) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
				return
			}
			principal = models.User{
				Email: cfg.Security.AdminEmail,
				Name:  "Administrator",
				Role:  models.UserRoleAdmin,
			}
		} else {
			principal, err = users.FindByEmail(c.Request.Context(), claims.Email)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
				return
			}
		}

		c.Set(ContextClaimsKey, *claims)
		c.Set(ContextUserKey, principal)

		c.Next()
	}
}
