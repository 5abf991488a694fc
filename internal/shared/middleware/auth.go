package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"journal-backend/internal/shared/response"
	"journal-backend/pkg/jwt"
)

// Context keys set for downstream handlers.
const (
	CtxUserID     = "userID"
	CtxUserEmail  = "userEmail"
	CtxIsEditor   = "isEditor"
	CtxIsReviewer = "isReviewer"
)

// AuthMiddleware validates the bearer token and exposes the caller's
// identity on the gin context.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Missing authorization header", nil)
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "Invalid authorization header format", nil)
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxIsEditor, claims.IsEditor)
		c.Set(CtxIsReviewer, claims.IsReviewer)

		c.Next()
	}
}
