package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "at this start time"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// CommitError represents a reconciliation failure: Step names the write step
// that failed so partial-state messages can tell the user exactly how far the
// save got before stopping.
type CommitError struct {
	Step string
	Err  error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit failed at step %q: %v", e.Step, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrSlotNotFound            = &NotFoundError{Entity: "break slot"}
	ErrAssignmentNotFound      = &NotFoundError{Entity: "break assignment"}
	ErrRosterEntryNotFound     = &NotFoundError{Entity: "roster entry"}
	ErrStagingSnapshotNotFound = &NotFoundError{Entity: "staging snapshot"}
)

// Already Exists Errors
var (
	ErrSlotStartTimeTaken = &AlreadyExistsError{Entity: "break slot", Context: "at this start time"}
	ErrRosterEntryExists  = &AlreadyExistsError{Entity: "roster entry", Context: "for this staff member and shift"}
)

// Business Logic Errors
var (
	ErrLocationRequired      = errors.New("a concrete location must be selected")
	ErrInvalidShiftType      = errors.New("invalid shift type")
	ErrInvalidDateFormat     = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidStartTime      = errors.New("invalid start time, expected HH:MM")
	ErrAlreadyAssignedToSlot = errors.New("staff member is already assigned to this slot")
	ErrConfirmationRequired  = errors.New("deleting a saved slot requires confirmation")
	ErrNotEligible           = errors.New("staff member is not eligible for this slot")
)

// Authorization Errors
var (
	ErrCannotRemoveOthersAssignment = &AuthorizationError{Message: "only admins may remove another staff member's assignment"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsCommit checks if an error is a CommitError
func IsCommit(err error) bool {
	var commitErr *CommitError
	return errors.As(err, &commitErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewCommitError wraps a failed reconciliation step
func NewCommitError(step string, err error) error {
	return &CommitError{Step: step, Err: err}
}
