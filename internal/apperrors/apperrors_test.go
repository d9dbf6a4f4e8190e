package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	t.Run("validation error matches kind", func(t *testing.T) {
		err := Validation("title must be at least %d characters", 3)

		assert.True(t, errors.Is(err, ErrValidation))
		assert.False(t, errors.Is(err, ErrNotFound))
		assert.Equal(t, "title must be at least 3 characters", err.Error())
	})

	t.Run("not found error matches kind", func(t *testing.T) {
		err := NotFound("task not found")

		assert.True(t, errors.Is(err, ErrNotFound))
		assert.False(t, errors.Is(err, ErrForbidden))
	})

	t.Run("wrapped error still matches kind", func(t *testing.T) {
		err := fmt.Errorf("delete task: %w", Forbidden("only team admins can delete tasks"))

		assert.True(t, errors.Is(err, ErrForbidden))
	})

	t.Run("conflict and unauthorized kinds are distinct", func(t *testing.T) {
		conflict := Conflict("user is already a member of this team")
		unauthorized := Unauthorized("authentication required")

		assert.True(t, errors.Is(conflict, ErrConflict))
		assert.True(t, errors.Is(unauthorized, ErrUnauthorized))
		assert.False(t, errors.Is(conflict, ErrUnauthorized))
		assert.False(t, errors.Is(unauthorized, ErrConflict))
	})
}
