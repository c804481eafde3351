package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/logging"
	"github.com/yukikurage/todo-api/internal/services"
)

// respondError maps a service error onto an HTTP response.
// fallback is the client message for unexpected failures.
func respondError(c *gin.Context, logger logging.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		apierrors.AlreadyExists(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, err.Error())
	case errors.Is(err, services.ErrAuth):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		logger.Error(c.Request.Context(), fallback, "error", err, "path", c.Request.URL.Path)
		apierrors.InternalError(c, fallback, err)
	}
}
