package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/todo-api/internal/constants"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/repository"
	"gorm.io/gorm"
)

// TodoService handles todo business logic. Every operation is scoped to the
// owning user; todos of other users are reported as not found.
type TodoService struct {
	todoRepo repository.TodoRepository
	now      func() time.Time
}

// NewTodoService creates a new TodoService
func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{
		todoRepo: todoRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the clock used for creation timestamps
func (s *TodoService) WithClock(now func() time.Time) *TodoService {
	s.now = now
	return s
}

// UpdateTodoInput represents a partial update. Nil fields are left unchanged.
type UpdateTodoInput struct {
	Title     *string
	Completed *bool
}

// TodoStats holds derived counts over a user's todos
type TodoStats struct {
	Total     int64
	Completed int64
	Active    int64
}

// ListTodos returns the user's todos, most recent first.
// status is one of the constants.TodoFilter* values; empty means all.
func (s *TodoService) ListTodos(ctx context.Context, userID, status string) ([]models.Todo, error) {
	filter := repository.TodoFilter{UserID: userID}

	switch status {
	case "", constants.TodoFilterAll:
	case constants.TodoFilterActive:
		completed := false
		filter.Completed = &completed
	case constants.TodoFilterCompleted:
		completed := true
		filter.Completed = &completed
	default:
		return nil, ErrInvalidFilter
	}

	todos, err := s.todoRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// GetTodo retrieves a single owned todo
func (s *TodoService) GetTodo(ctx context.Context, id, userID string) (*models.Todo, error) {
	if !isTodoID(id) {
		return nil, ErrTodoNotFound
	}

	todo, err := s.todoRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	return todo, nil
}

// CreateTodo creates an active todo for the user
func (s *TodoService) CreateTodo(ctx context.Context, title, userID string) (*models.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	todo := &models.Todo{
		Title:     title,
		Completed: false,
		UserID:    userID,
		CreatedAt: s.now(),
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

// UpdateTodo applies a partial update to an owned todo and returns the result
func (s *TodoService) UpdateTodo(ctx context.Context, id, userID string, input UpdateTodoInput) (*models.Todo, error) {
	changes := repository.TodoChanges{Completed: input.Completed}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleEmpty
		}
		changes.Title = &title
	}

	todo, err := s.GetTodo(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if changes.IsEmpty() {
		return todo, nil
	}

	if err := s.todoRepo.Update(ctx, id, userID, changes); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	if changes.Title != nil {
		todo.Title = *changes.Title
	}
	if changes.Completed != nil {
		todo.Completed = *changes.Completed
	}
	return todo, nil
}

// DeleteTodo permanently removes an owned todo
func (s *TodoService) DeleteTodo(ctx context.Context, id, userID string) error {
	if !isTodoID(id) {
		return ErrTodoNotFound
	}

	if err := s.todoRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTodoNotFound
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

// Stats counts the user's todos by state
func (s *TodoService) Stats(ctx context.Context, userID string) (*TodoStats, error) {
	total, completed, err := s.todoRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count todos: %w", err)
	}
	return &TodoStats{
		Total:     total,
		Completed: completed,
		Active:    total - completed,
	}, nil
}

func isTodoID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
