package model

import "github.com/festy23/teamboard/internal/apperrors"

var (
	// ErrTaskNotFound indicates that the requested task does not exist.
	ErrTaskNotFound = apperrors.NotFound("task not found")
	// ErrInvalidTitle indicates a task title below the minimum length.
	ErrInvalidTitle = apperrors.Validation("task title must be at least 3 characters")
	// ErrMissingProjectID indicates a create request without a project reference.
	ErrMissingProjectID = apperrors.Validation("project id is required")
	// ErrInvalidStatus indicates a status outside the closed set.
	ErrInvalidStatus = apperrors.Validation("invalid status, must be: TODO, IN_PROGRESS, or DONE")
	// ErrInvalidPriority indicates a priority outside the closed set.
	ErrInvalidPriority = apperrors.Validation("invalid priority, must be: low, medium, or high")
	// ErrAssigneeNotMember indicates the assignee does not belong to the team.
	ErrAssigneeNotMember = apperrors.Validation("assignee must be a member of the team")
	// ErrAccessDenied indicates the principal is not a member of the owning team.
	ErrAccessDenied = apperrors.Forbidden("you are not a member of this team")
	// ErrDeleteAdminOnly indicates a non-admin tried to delete the task.
	ErrDeleteAdminOnly = apperrors.Forbidden("only team admins can delete tasks")
)
