package server

import (
	"net/http"
	"strings"
	"time"

	auth "stakex/internal/authService"
	"stakex/services/marketplace/helpers"
	"stakex/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityVerifier turns a bearer token into claims.
type IdentityVerifier interface {
	Identify(token string) (*auth.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token and stores
// the caller's user id in the gin context.
func RequireAuth(verifier IdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			utils.JSONError(c, http.StatusUnauthorized, auth.ErrInvalidToken, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := verifier.Identify(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(helpers.ContextUserKey, claims.UserID)
		c.Next()
	}
}
