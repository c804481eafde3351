package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/constants"
)

// ErrorDetail controls whether 500 responses include the internal cause.
// Enable it only in development.
func ErrorDetail(expose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyExposeErrors, expose)
		c.Next()
	}
}
