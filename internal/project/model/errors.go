package model

import "github.com/festy23/teamboard/internal/apperrors"

var (
	// ErrProjectNotFound indicates that the requested project does not exist.
	ErrProjectNotFound = apperrors.NotFound("project not found")
	// ErrInvalidProjectName indicates a project name below the minimum length.
	ErrInvalidProjectName = apperrors.Validation("project name must be at least 3 characters")
	// ErrMissingTeamID indicates a create request without a team reference.
	ErrMissingTeamID = apperrors.Validation("team id is required")
	// ErrInvalidStatus indicates a status outside the closed set.
	ErrInvalidStatus = apperrors.Validation("invalid status, must be: active, completed, or archived")
	// ErrCreateMembersOnly indicates a non-member tried to create a project.
	ErrCreateMembersOnly = apperrors.Forbidden("you must be a team member to create projects")
	// ErrAccessDenied indicates the principal is not a member of the owning team.
	ErrAccessDenied = apperrors.Forbidden("you are not a member of this team")
	// ErrStatusAdminOnly indicates a non-admin tried to change project status.
	ErrStatusAdminOnly = apperrors.Forbidden("only team admins can change project status")
	// ErrDeleteAdminOnly indicates a non-admin tried to delete the project.
	ErrDeleteAdminOnly = apperrors.Forbidden("only team admins can delete projects")
)
