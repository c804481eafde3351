package repository

import (
	"context"

	"github.com/yukikurage/todo-api/internal/models"
	"gorm.io/gorm"
)

// GormTodoRepository is a GORM implementation of TodoRepository
type GormTodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new TodoRepository
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &GormTodoRepository{db: db}
}

// Create creates a new todo
func (r *GormTodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

// FindByID finds a todo by ID owned by userID.
// A todo owned by someone else is reported as gorm.ErrRecordNotFound.
func (r *GormTodoRepository) FindByID(ctx context.Context, id, userID string) (*models.Todo, error) {
	var todo models.Todo
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// List retrieves todos with filtering, most recent first
func (r *GormTodoRepository) List(ctx context.Context, filter TodoFilter) ([]models.Todo, error) {
	todos := []models.Todo{}

	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}

	if err := query.Order("created_at DESC").Find(&todos).Error; err != nil {
		return nil, err
	}

	return todos, nil
}

// Update applies the non-nil changes to an owned todo
func (r *GormTodoRepository) Update(ctx context.Context, id, userID string, changes TodoChanges) error {
	updates := map[string]interface{}{}
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Completed != nil {
		updates["completed"] = *changes.Completed
	}
	if len(updates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates).Error
}

// Delete hard deletes an owned todo.
// Returns gorm.ErrRecordNotFound when nothing was deleted.
func (r *GormTodoRepository) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Todo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByUser counts all and completed todos owned by userID
func (r *GormTodoRepository) CountByUser(ctx context.Context, userID string) (int64, int64, error) {
	var total, completed int64

	if err := r.db.WithContext(ctx).Model(&models.Todo{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	if err := r.db.WithContext(ctx).Model(&models.Todo{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}

	return total, completed, nil
}
