// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	teamModel "github.com/festy23/teamboard/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create persists a new team.
	Create(ctx context.Context, team *teamModel.Team) error

	// AddMember persists a membership row.
	AddMember(ctx context.Context, member *teamModel.TeamMember) error

	// HasMember reports whether a user already belongs to a team.
	HasMember(ctx context.Context, teamID, userID string) (bool, error)

	// GetByID finds a team by id with creator and members eagerly loaded.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// ListForUser returns all teams the user is a member of, newest first.
	ListForUser(ctx context.Context, userID string) ([]teamModel.Team, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create persists a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	return r.db.WithContext(ctx).Create(team).Error
}

// AddMember persists a membership row.
func (r *repository) AddMember(ctx context.Context, member *teamModel.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	member.CreatedAt = time.Now()

	err := r.db.WithContext(ctx).Create(member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateError(err) {
			return teamModel.ErrMemberExists
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

// HasMember reports whether a user already belongs to a team.
func (r *repository) HasMember(ctx context.Context, teamID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByID finds a team by id with creator and members eagerly loaded.
func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Members.User").
		Where("id = ?", id).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// ListForUser returns all teams the user is a member of, newest first.
func (r *repository) ListForUser(ctx context.Context, userID string) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Members.User").
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Order("teams.created_at DESC").
		Find(&teams).Error

	if err != nil {
		return nil, err
	}

	if teams == nil {
		return []teamModel.Team{}, nil
	}
	return teams, nil
}
