package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-api/internal/constants"
	"github.com/yukikurage/todo-api/internal/dto"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/logging"
	"github.com/yukikurage/todo-api/internal/middleware"
	"github.com/yukikurage/todo-api/internal/services"
)

// TodoHandler serves the todo routes. All routes require RequireAuth.
type TodoHandler struct {
	todoService *services.TodoService
	logger      logging.Logger
}

func NewTodoHandler(todoService *services.TodoService, logger logging.Logger) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		logger:      logger,
	}
}

// ListTodos returns the current user's todos, newest first.
// Optional ?status=all|active|completed.
func (h *TodoHandler) ListTodos(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	todos, err := h.todoService.ListTodos(c.Request.Context(), userID, c.DefaultQuery("status", constants.TodoFilterAll))
	if err != nil {
		respondError(c, h.logger, err, "Failed to get todos")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTOs(todos))
}

// GetStats returns total, completed and active counts
func (h *TodoHandler) GetStats(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	stats, err := h.todoService.Stats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get todo stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoStatsDTO(stats))
}

// GetTodo returns a single todo
func (h *TodoHandler) GetTodo(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	todo, err := h.todoService.GetTodo(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to get todo")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

// CreateTodo creates a new todo
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), req.Title, userID)
	if err != nil {
		respondError(c, h.logger, err, "Failed to create todo")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTodoDTO(*todo))
}

// UpdateTodo partially updates a todo. Absent fields are left unchanged.
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req struct {
		Title     *string `json:"title"`
		Completed *bool   `json:"completed"`
	}
	// An empty body changes nothing
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), c.Param("id"), userID, services.UpdateTodoInput{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		respondError(c, h.logger, err, "Failed to update todo")
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoDTO(*todo))
}

// DeleteTodo permanently deletes a todo
func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, h.logger, err, "Failed to delete todo")
		return
	}

	c.Status(http.StatusNoContent)
}
