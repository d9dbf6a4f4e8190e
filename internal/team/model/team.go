// Package model provides domain models and DTOs for team module.
package model

import (
	"time"

	"gorm.io/gorm"

	userModel "github.com/festy23/teamboard/internal/user/model"
)

// Team represents a team entity in the system.
// Matches the teams table schema.
type Team struct {
	ID          string         `gorm:"primaryKey;column:id;type:varchar(36)"                     json:"id"`
	Name        string         `gorm:"column:name;type:varchar(255);not null"                    json:"name"`
	Description *string        `gorm:"column:description;type:text"                              json:"description"`
	CreatorID   string         `gorm:"column:creator_id;type:varchar(36);not null;index"         json:"creatorId"`
	Creator     userModel.User `gorm:"foreignKey:CreatorID"                                      json:"-"`
	Members     []TeamMember   `gorm:"foreignKey:TeamID"                                         json:"-"`
	CreatedAt   time.Time      `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// TeamMember represents a user's membership in a team.
// A user appears at most once per team.
type TeamMember struct {
	ID        string         `gorm:"primaryKey;column:id;type:varchar(36)"                                   json:"id"`
	TeamID    string         `gorm:"column:team_id;type:varchar(36);not null;uniqueIndex:idx_member_per_team" json:"teamId"`
	UserID    string         `gorm:"column:user_id;type:varchar(36);not null;uniqueIndex:idx_member_per_team" json:"userId"`
	Role      string         `gorm:"column:role;type:varchar(16);not null"                                   json:"role"`
	User      userModel.User `gorm:"foreignKey:UserID"                                                       json:"-"`
	CreatedAt time.Time      `gorm:"column:created_at;type:timestamptz;not null;default:now()"               json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}
