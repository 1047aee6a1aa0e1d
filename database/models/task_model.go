package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Model
	Title       string     `json:"title" gorm:"type:text;not null;"`
	Description string     `json:"description" gorm:"type:text"`
	ProjectID   uuid.UUID  `json:"projectId" gorm:"not null;type:uuid;"`
	AssigneeID  *string    `json:"assigneeId" gorm:"type:text;"`
	DueDate     *time.Time `json:"dueDate" gorm:"type:timestamp with time zone;"`
}

func (m Task) TableName() string {
	return "tasks"
}
