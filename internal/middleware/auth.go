package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/auth"
	"github.com/yukikurage/todo-api/internal/constants"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
)

// TokenVerifier validates session tokens
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RequireAuth checks if the request carries a valid bearer token
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "No authorization header")
			return
		}

		scheme, token := splitAuthorization(header)
		if token == "" {
			apierrors.Unauthorized(c, "No token provided")
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil || !strings.EqualFold(scheme, constants.BearerScheme) {
			apierrors.Unauthorized(c, "Invalid token")
			return
		}

		// Store identity in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUsername, claims.Username)
		c.Next()
	}
}

// splitAuthorization splits "<scheme> <token>". A header without a second
// word yields an empty token.
func splitAuthorization(header string) (scheme, token string) {
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return "", ""
	}
	return fields[0], fields[1]
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(constants.ContextKeyUserID)
	return userID, userID != ""
}

// GetUsername retrieves the current username from context
func GetUsername(c *gin.Context) (string, bool) {
	username := c.GetString(constants.ContextKeyUsername)
	return username, username != ""
}
