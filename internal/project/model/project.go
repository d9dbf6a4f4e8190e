// Package model provides domain models and DTOs for project module.
package model

import (
	"time"

	"gorm.io/gorm"

	teamModel "github.com/festy23/teamboard/internal/team/model"
)

// Project statuses form a closed set; anything else is a validation error.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusArchived  = "archived"
)

// ValidStatus reports whether a status belongs to the closed set.
func ValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusCompleted, StatusArchived:
		return true
	default:
		return false
	}
}

// Project represents a project entity in the system.
// Matches the projects table schema.
type Project struct {
	ID          string         `gorm:"primaryKey;column:id;type:varchar(36)"                       json:"id"`
	Name        string         `gorm:"column:name;type:varchar(255);not null"                      json:"name"`
	Description *string        `gorm:"column:description;type:text"                                json:"description"`
	Status      string         `gorm:"column:status;type:varchar(16);not null;default:active"      json:"status"`
	TeamID      string         `gorm:"column:team_id;type:varchar(36);not null;index"              json:"teamId"`
	Team        teamModel.Team `gorm:"foreignKey:TeamID"                                           json:"-"`
	CreatedAt   time.Time      `gorm:"column:created_at;type:timestamptz;not null;default:now()"   json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;type:timestamptz;not null;default:now()"   json:"-"`
}

// TableName specifies the table name for GORM.
func (Project) TableName() string {
	return "projects"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Project) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
