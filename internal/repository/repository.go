package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/todo-api/internal/models"
)

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("repository: duplicate key")

// TodoRepository defines the interface for todo data access.
// Every method is scoped by the owning user id.
type TodoRepository interface {
	// Create creates a new todo
	Create(ctx context.Context, todo *models.Todo) error

	// FindByID finds a todo by ID owned by userID
	FindByID(ctx context.Context, id, userID string) (*models.Todo, error)

	// List retrieves the todos matching filter, most recent first
	List(ctx context.Context, filter TodoFilter) ([]models.Todo, error)

	// Update applies changes to the todo with the given ID owned by userID
	Update(ctx context.Context, id, userID string, changes TodoChanges) error

	// Delete hard deletes the todo with the given ID owned by userID
	Delete(ctx context.Context, id, userID string) error

	// CountByUser counts all and completed todos owned by userID
	CountByUser(ctx context.Context, userID string) (total int64, completed int64, err error)
}

// TodoFilter holds filtering options for listing todos
type TodoFilter struct {
	UserID    string
	Completed *bool
}

// TodoChanges holds the fields to change on a todo. Nil fields are left as is.
type TodoChanges struct {
	Title     *string
	Completed *bool
}

// IsEmpty reports whether no field is set
func (c TodoChanges) IsEmpty() bool {
	return c.Title == nil && c.Completed == nil
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
