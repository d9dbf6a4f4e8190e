// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "github.com/festy23/teamboard/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *userModel.User) error

	// GetByID finds a user by id.
	GetByID(ctx context.Context, id string) (*userModel.User, error)

	// GetByEmail finds a user by email.
	GetByEmail(ctx context.Context, email string) (*userModel.User, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new user repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new user.
func (r *repository) Create(ctx context.Context, user *userModel.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateError(err) {
			return userModel.ErrEmailTaken
		}
		return err
	}
	return nil
}

// isDuplicateError checks if error is a duplicate key error.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// GetByID finds a user by id.
func (r *repository) GetByID(ctx context.Context, id string) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetByEmail finds a user by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
