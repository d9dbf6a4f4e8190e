// Package model provides domain models and DTOs for comment module.
package model

import (
	"time"

	taskModel "github.com/festy23/teamboard/internal/task/model"
	userModel "github.com/festy23/teamboard/internal/user/model"
)

// Comment represents a comment entity in the system.
// Matches the comments table schema.
type Comment struct {
	ID        string         `gorm:"primaryKey;column:id;type:varchar(36)"                      json:"id"`
	Content   string         `gorm:"column:content;type:text;not null"                          json:"content"`
	TaskID    string         `gorm:"column:task_id;type:varchar(36);not null;index"             json:"taskId"`
	Task      taskModel.Task `gorm:"foreignKey:TaskID"                                          json:"-"`
	AuthorID  string         `gorm:"column:author_id;type:varchar(36);not null"                 json:"authorId"`
	Author    userModel.User `gorm:"foreignKey:AuthorID"                                        json:"-"`
	CreatedAt time.Time      `gorm:"column:created_at;type:timestamptz;not null;default:now()"  json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Comment) TableName() string {
	return "comments"
}
