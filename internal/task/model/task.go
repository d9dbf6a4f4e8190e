// Package model provides domain models and DTOs for task module.
package model

import (
	"time"

	"gorm.io/gorm"

	projectModel "github.com/festy23/teamboard/internal/project/model"
	userModel "github.com/festy23/teamboard/internal/user/model"
)

// Task statuses form the board columns.
const (
	StatusTodo       = "TODO"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
)

// Task priorities form a closed set.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ValidStatus reports whether a status belongs to the closed set.
func ValidStatus(status string) bool {
	switch status {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// ValidPriority reports whether a priority belongs to the closed set.
func ValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Task represents a task entity in the system.
// Matches the tasks table schema.
type Task struct {
	ID          string               `gorm:"primaryKey;column:id;type:varchar(36)"                      json:"id"`
	Title       string               `gorm:"column:title;type:varchar(255);not null"                    json:"title"`
	Description *string              `gorm:"column:description;type:text"                               json:"description"`
	Status      string               `gorm:"column:status;type:varchar(16);not null;default:TODO"       json:"status"`
	Priority    string               `gorm:"column:priority;type:varchar(16);not null;default:medium"   json:"priority"`
	ProjectID   string               `gorm:"column:project_id;type:varchar(36);not null;index"          json:"projectId"`
	Project     projectModel.Project `gorm:"foreignKey:ProjectID"                                       json:"-"`
	AssigneeID  *string              `gorm:"column:assignee_id;type:varchar(36);index"                  json:"assigneeId"`
	Assignee    *userModel.User      `gorm:"foreignKey:AssigneeID"                                      json:"-"`
	DueDate     *time.Time           `gorm:"column:due_date;type:timestamptz"                           json:"dueDate"`
	CreatedAt   time.Time            `gorm:"column:created_at;type:timestamptz;not null;default:now()"  json:"createdAt"`
	UpdatedAt   time.Time            `gorm:"column:updated_at;type:timestamptz;not null;default:now()"  json:"-"`
}

// TableName specifies the table name for GORM.
func (Task) TableName() string {
	return "tasks"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Task) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
