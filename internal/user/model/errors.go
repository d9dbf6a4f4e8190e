package model

import "github.com/festy23/teamboard/internal/apperrors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = apperrors.NotFound("user not found")
	// ErrEmailTaken indicates that the email is already registered.
	ErrEmailTaken = apperrors.Conflict("email is already registered")
	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = apperrors.Unauthorized("invalid email or password")
	// ErrInvalidName indicates an empty display name.
	ErrInvalidName = apperrors.Validation("name is required")
	// ErrInvalidEmail indicates a malformed email address.
	ErrInvalidEmail = apperrors.Validation("a valid email is required")
	// ErrInvalidPassword indicates a password below the minimum length.
	ErrInvalidPassword = apperrors.Validation("password must be at least 6 characters")
)
