package middleware

import (
	"net/http"
	"strings"

	errs "github.com/amirhossein-jamali/bookkeeper/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bookkeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/bookkeeper/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UsernameKey is the gin context key holding the authenticated username
const UsernameKey = "username"

// TokenParser verifies a session token and returns the username it belongs to
type TokenParser interface {
	Parse(token string) (string, error)
}

// Auth rejects requests without a valid bearer token and stores the session username in the context
func Auth(tokens TokenParser, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortUnauthorized(c, "Missing or malformed authorization header")
			return
		}

		username, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			logger.Debug("Rejected session token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}

// UsernameFromContext returns the username stored by Auth
func UsernameFromContext(c *gin.Context) (string, bool) {
	username := c.GetString(UsernameKey)
	return username, username != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrAuthenticationFailure),
		Message: message,
	})
}
