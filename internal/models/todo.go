package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Todo struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	UserID    string    `gorm:"type:varchar(36);not null;index:idx_todos_user_created,priority:1" json:"userId"`
	CreatedAt time.Time `gorm:"index:idx_todos_user_created,priority:2" json:"createdAt"`
}

// BeforeCreate assigns an opaque identifier to new todos
func (t *Todo) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
