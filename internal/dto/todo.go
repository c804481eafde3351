package dto

import (
	"time"

	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/services"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// TodoDTO represents a todo in API responses
type TodoDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    string    `json:"userId"`
}

// TodoStatsDTO represents derived todo counts
type TodoStatsDTO struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Active    int64 `json:"active"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToAuthResponse converts an AuthResult to AuthResponse
func ToAuthResponse(result *services.AuthResult) AuthResponse {
	return AuthResponse{
		Token: result.Token,
		User:  ToUserDTO(*result.User),
	}
}

// ToTodoDTO converts a Todo model to TodoDTO
func ToTodoDTO(todo models.Todo) TodoDTO {
	return TodoDTO{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt,
		UserID:    todo.UserID,
	}
}

// ToTodoDTOs converts a slice of Todo models, never returning nil
func ToTodoDTOs(todos []models.Todo) []TodoDTO {
	dtos := make([]TodoDTO, 0, len(todos))
	for _, todo := range todos {
		dtos = append(dtos, ToTodoDTO(todo))
	}
	return dtos
}

// ToTodoStatsDTO converts TodoStats to TodoStatsDTO
func ToTodoStatsDTO(stats *services.TodoStats) TodoStatsDTO {
	return TodoStatsDTO{
		Total:     stats.Total,
		Completed: stats.Completed,
		Active:    stats.Active,
	}
}
