package model

import "github.com/festy23/teamboard/internal/apperrors"

var (
	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = apperrors.NotFound("comment not found")
	// ErrEmptyContent indicates a comment with no visible text.
	ErrEmptyContent = apperrors.Validation("comment content cannot be empty")
	// ErrAccessDenied indicates the principal is not a member of the owning team.
	ErrAccessDenied = apperrors.Forbidden("you are not a member of this team")
	// ErrDeleteAuthorOrAdmin indicates the principal may not delete the comment.
	ErrDeleteAuthorOrAdmin = apperrors.Forbidden("only the author or a team admin can delete comments")
)
