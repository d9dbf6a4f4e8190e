// Package repository provides data access layer for comment module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	commentModel "github.com/festy23/teamboard/internal/comment/model"
)

// Repository defines the interface for comment data access operations.
type Repository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *commentModel.Comment) error

	// GetByID finds a comment by id with author and owning task eagerly loaded.
	GetByID(ctx context.Context, id string) (*commentModel.Comment, error)

	// ListByTask returns a task's comments, oldest first.
	ListByTask(ctx context.Context, taskID string) ([]commentModel.Comment, error)

	// Delete removes a comment.
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new comment repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new comment.
func (r *repository) Create(ctx context.Context, comment *commentModel.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	comment.CreatedAt = time.Now()

	return r.db.WithContext(ctx).Create(comment).Error
}

// GetByID finds a comment by id with author and owning task eagerly
// loaded. The task's project is needed for team authorization.
func (r *repository) GetByID(ctx context.Context, id string) (*commentModel.Comment, error) {
	var comment commentModel.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Task.Project").
		Where("id = ?", id).
		First(&comment).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commentModel.ErrCommentNotFound
		}
		return nil, err
	}

	return &comment, nil
}

// ListByTask returns a task's comments, oldest first.
func (r *repository) ListByTask(ctx context.Context, taskID string) ([]commentModel.Comment, error) {
	var comments []commentModel.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&comments).Error

	if err != nil {
		return nil, err
	}

	if comments == nil {
		return []commentModel.Comment{}, nil
	}
	return comments, nil
}

// Delete removes a comment.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM comments WHERE id = ?", id).Error
}
