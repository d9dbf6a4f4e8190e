// Package repository provides data access layer for project module.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	projectModel "github.com/festy23/teamboard/internal/project/model"
)

// Repository defines the interface for project data access operations.
type Repository interface {
	// Create persists a new project.
	Create(ctx context.Context, project *projectModel.Project) error

	// GetByID finds a project by id with its team eagerly loaded.
	GetByID(ctx context.Context, id string) (*projectModel.Project, error)

	// ListByTeam returns all projects of a team, newest first.
	ListByTeam(ctx context.Context, teamID string) ([]projectModel.Project, error)

	// Update persists the full project row.
	Update(ctx context.Context, project *projectModel.Project) error

	// Delete removes the project together with its tasks and their comments.
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new project repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new project.
func (r *repository) Create(ctx context.Context, project *projectModel.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.Status == "" {
		project.Status = projectModel.StatusActive
	}
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	return r.db.WithContext(ctx).Create(project).Error
}

// GetByID finds a project by id with its team eagerly loaded.
func (r *repository) GetByID(ctx context.Context, id string) (*projectModel.Project, error) {
	var project projectModel.Project
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("id = ?", id).
		First(&project).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, projectModel.ErrProjectNotFound
		}
		return nil, err
	}

	return &project, nil
}

// ListByTeam returns all projects of a team, newest first.
func (r *repository) ListByTeam(ctx context.Context, teamID string) ([]projectModel.Project, error) {
	var projects []projectModel.Project
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("team_id = ?", teamID).
		Order("created_at DESC").
		Find(&projects).Error

	if err != nil {
		return nil, err
	}

	if projects == nil {
		return []projectModel.Project{}, nil
	}
	return projects, nil
}

// Update persists the full project row. Associations are loaded
// read-only and must not be written back.
func (r *repository) Update(ctx context.Context, project *projectModel.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(project).Error
}

// Delete removes the project together with its tasks and their comments
// in a single transaction.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM comments WHERE task_id IN (SELECT id FROM tasks WHERE project_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM tasks WHERE project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM projects WHERE id = ?", id).Error
	})
}
