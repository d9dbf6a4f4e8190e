// Package authz resolves team membership and role sufficiency.
//
// All checks are pure reads. A missing user, entity, or membership row
// resolves to RoleNone / false, never an error: callers translate absence
// into a permission or not-found error as appropriate for their surface.
package authz

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Role is a principal's role within a team.
type Role string

// Known roles, ordered by privilege.
const (
	RoleNone   Role = "none"
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// None reports whether the role grants no access.
func (r Role) None() bool {
	return r == RoleNone || r == ""
}

// Admin reports whether the role grants admin privileges.
func (r Role) Admin() bool {
	return r == RoleAdmin
}

// Resolver decides membership and role sufficiency for a principal
// against teams and the entities nested under them.
type Resolver interface {
	// RoleInTeam returns the principal's role in a team.
	RoleInTeam(ctx context.Context, userID, teamID string) (Role, error)

	// CanAccessTeam reports whether the principal has any role in the team.
	CanAccessTeam(ctx context.Context, userID, teamID string) (bool, error)

	// RoleForProject returns the principal's role in the project's team.
	RoleForProject(ctx context.Context, userID, projectID string) (Role, error)

	// CanAccessProject reports whether the principal has any role in the
	// project's team.
	CanAccessProject(ctx context.Context, userID, projectID string) (bool, error)

	// RoleForTask returns the principal's role in the team owning the
	// task's project.
	RoleForTask(ctx context.Context, userID, taskID string) (Role, error)

	// CanAccessTask reports whether the principal can access the task.
	CanAccessTask(ctx context.Context, userID, taskID string) (bool, error)
}

type resolver struct {
	db *gorm.DB
}

// New creates a resolver backed by the given database.
func New(db *gorm.DB) Resolver {
	return &resolver{db: db}
}

// RoleInTeam returns the principal's role in a team.
func (r *resolver) RoleInTeam(ctx context.Context, userID, teamID string) (Role, error) {
	if userID == "" || teamID == "" {
		return RoleNone, nil
	}

	var row struct {
		Role string
	}
	err := r.db.WithContext(ctx).
		Table("team_members").
		Select("role").
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Take(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleNone, nil
		}
		return RoleNone, err
	}

	switch Role(row.Role) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleMember:
		return RoleMember, nil
	default:
		return RoleNone, nil
	}
}

// CanAccessTeam reports whether the principal has any role in the team.
func (r *resolver) CanAccessTeam(ctx context.Context, userID, teamID string) (bool, error) {
	role, err := r.RoleInTeam(ctx, userID, teamID)
	if err != nil {
		return false, err
	}
	return !role.None(), nil
}

// RoleForProject returns the principal's role in the project's team.
// The traversal project -> team -> membership is the single source of
// truth for nested project authorization.
func (r *resolver) RoleForProject(ctx context.Context, userID, projectID string) (Role, error) {
	if projectID == "" {
		return RoleNone, nil
	}

	var row struct {
		TeamID string
	}
	err := r.db.WithContext(ctx).
		Table("projects").
		Select("team_id").
		Where("id = ?", projectID).
		Take(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleNone, nil
		}
		return RoleNone, err
	}

	return r.RoleInTeam(ctx, userID, row.TeamID)
}

// CanAccessProject reports whether the principal has any role in the
// project's team.
func (r *resolver) CanAccessProject(ctx context.Context, userID, projectID string) (bool, error) {
	role, err := r.RoleForProject(ctx, userID, projectID)
	if err != nil {
		return false, err
	}
	return !role.None(), nil
}

// RoleForTask returns the principal's role in the team owning the task's
// project, traversing task -> project -> team -> membership.
func (r *resolver) RoleForTask(ctx context.Context, userID, taskID string) (Role, error) {
	if taskID == "" {
		return RoleNone, nil
	}

	var row struct {
		ProjectID string
	}
	err := r.db.WithContext(ctx).
		Table("tasks").
		Select("project_id").
		Where("id = ?", taskID).
		Take(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleNone, nil
		}
		return RoleNone, err
	}

	return r.RoleForProject(ctx, userID, row.ProjectID)
}

// CanAccessTask reports whether the principal can access the task.
func (r *resolver) CanAccessTask(ctx context.Context, userID, taskID string) (bool, error) {
	role, err := r.RoleForTask(ctx, userID, taskID)
	if err != nil {
		return false, err
	}
	return !role.None(), nil
}
