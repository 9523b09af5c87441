package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "break slot"}
		assert.Equal(t, "break slot not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "break slot"}
		err2 := &NotFoundError{Entity: "break slot"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "break slot"}
		err2 := &NotFoundError{Entity: "roster entry"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrSlotNotFound, ErrSlotNotFound))
		assert.False(t, errors.Is(ErrSlotNotFound, ErrAssignmentNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrSlotNotFound))
		assert.False(t, IsNotFound(ErrLocationRequired))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "break slot", Context: "at this start time"}
		assert.Equal(t, "break slot already exists at this start time", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "break slot"}
		assert.Equal(t, "break slot already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "break slot", Context: "at this start time"}
		err2 := &AlreadyExistsError{Entity: "break slot", Context: "at this start time"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrSlotStartTimeTaken))
		assert.False(t, IsAlreadyExists(ErrSlotNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "location", Message: "must not be 'all'"}
		assert.Equal(t, "validation error: location - must not be 'all'", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "something is off"}
		assert.Equal(t, "validation error: something is off", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("location", "required")))
		assert.False(t, IsValidation(ErrSlotNotFound))
	})
}

func TestCommitError(t *testing.T) {
	t.Run("Error message names the failed step", func(t *testing.T) {
		err := NewCommitError("insert assignments", errors.New("connection reset"))
		assert.Equal(t, `commit failed at step "insert assignments": connection reset`, err.Error())
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewCommitError("delete assignments", cause)
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("IsCommit helper", func(t *testing.T) {
		assert.True(t, IsCommit(NewCommitError("insert slots", errors.New("x"))))
		assert.False(t, IsCommit(ErrLocationRequired))
	})

	t.Run("works through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("save failed: %w", NewCommitError("insert slots", errors.New("x")))
		assert.True(t, IsCommit(err))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrCannotRemoveOthersAssignment))
		assert.False(t, IsAuthorization(ErrSlotNotFound))
	})
}
