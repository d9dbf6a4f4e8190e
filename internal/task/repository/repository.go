// Package repository provides data access layer for task module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	taskModel "github.com/festy23/teamboard/internal/task/model"
)

// Repository defines the interface for task data access operations.
type Repository interface {
	// Create persists a new task.
	Create(ctx context.Context, task *taskModel.Task) error

	// GetByID finds a task by id with project and assignee eagerly loaded.
	GetByID(ctx context.Context, id string) (*taskModel.Task, error)

	// ListByProject returns a project's tasks matching the filter, newest first.
	ListByProject(ctx context.Context, projectID string, filter *taskModel.ListFilter) ([]taskModel.Task, error)

	// Update persists the full task row.
	Update(ctx context.Context, task *taskModel.Task) error

	// Delete removes the task together with its comments.
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new task repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new task.
func (r *repository) Create(ctx context.Context, task *taskModel.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = taskModel.StatusTodo
	}
	if task.Priority == "" {
		task.Priority = taskModel.PriorityMedium
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID finds a task by id with project and assignee eagerly loaded.
func (r *repository) GetByID(ctx context.Context, id string) (*taskModel.Task, error) {
	var task taskModel.Task
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Assignee").
		Where("id = ?", id).
		First(&task).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, taskModel.ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

// ListByProject returns a project's tasks matching the filter, newest first.
func (r *repository) ListByProject(ctx context.Context, projectID string, filter *taskModel.ListFilter) ([]taskModel.Task, error) {
	query := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Assignee").
		Where("project_id = ?", projectID)

	if filter != nil {
		if filter.Status != nil {
			query = query.Where("status = ?", *filter.Status)
		}
		if filter.AssigneeID != nil {
			query = query.Where("assignee_id = ?", *filter.AssigneeID)
		}
		if filter.Priority != nil {
			query = query.Where("priority = ?", *filter.Priority)
		}
	}

	var tasks []taskModel.Task
	if err := query.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	if tasks == nil {
		return []taskModel.Task{}, nil
	}
	return tasks, nil
}

// Update persists the full task row. Associations are loaded read-only
// and must not be written back.
func (r *repository) Update(ctx context.Context, task *taskModel.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error
}

// Delete removes the task together with its comments in a single
// transaction.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM comments WHERE task_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM tasks WHERE id = ?", id).Error
	})
}
