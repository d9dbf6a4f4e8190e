package model

import "github.com/festy23/teamboard/internal/apperrors"

var (
	// ErrTeamNotFound indicates that the requested team does not exist
	// or is not visible to the principal.
	ErrTeamNotFound = apperrors.NotFound("team not found")
	// ErrInvalidTeamName indicates a team name below the minimum length.
	ErrInvalidTeamName = apperrors.Validation("team name must be at least 3 characters")
	// ErrMemberExists indicates the user is already a member of the team.
	ErrMemberExists = apperrors.Conflict("user is already a member of this team")
	// ErrAddMemberAdminOnly indicates a non-admin tried to add a member.
	ErrAddMemberAdminOnly = apperrors.Forbidden("only team admins can add members")
)
