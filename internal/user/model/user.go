// Package model provides domain models and DTOs for user module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a user entity in the system.
// Matches the users table schema.
type User struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(36)"                      json:"id"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"                     json:"name"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"        json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"            json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"  json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()"  json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

// Summary returns the denormalized view embedded in other entities.
func (u User) Summary() Summary {
	return Summary{ID: u.ID, Name: u.Name, Email: u.Email}
}
