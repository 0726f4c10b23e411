package errors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
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
	Context string
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

// ValidationError represents a structural invariant violation. The enclosing
// transaction is rolled back; nothing is partially written.
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

// UnresolvedReferenceError marks an import row naming an entity that cannot
// be resolved. These are collected per batch, not fatal to the whole import.
type UnresolvedReferenceError struct {
	Entity string // entity kind being referenced (team, member, coach, event)
	Name   string // name as it appeared in the row
	Row    int    // zero-based row index within the batch
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("row %d: unresolved %s reference %q", e.Row, e.Entity, e.Name)
}

// AmbiguousAttendanceError marks a reconciliation input that cannot be
// applied safely: an aggregate count larger than the roster, or an override
// naming someone not on it. The (team, event) pair is skipped and reported.
type AmbiguousAttendanceError struct {
	TeamID  uuid.UUID
	EventID uuid.UUID
	Reason  string
}

func (e *AmbiguousAttendanceError) Error() string {
	return fmt.Sprintf("ambiguous attendance for team %s event %s: %s", e.TeamID, e.EventID, e.Reason)
}

// Entity Not Found Errors
var (
	ErrTeamNotFound   = &NotFoundError{Entity: "team"}
	ErrMemberNotFound = &NotFoundError{Entity: "member"}
	ErrCoachNotFound  = &NotFoundError{Entity: "coach"}
	ErrEventNotFound  = &NotFoundError{Entity: "event"}
	ErrBonusNotFound  = &NotFoundError{Entity: "bonus point"}
)

// Already Exists Errors
var (
	ErrTeamExists   = &AlreadyExistsError{Entity: "team", Context: "with this name among active teams"}
	ErrMemberExists = &AlreadyExistsError{Entity: "member", Context: "with this name on the team"}
	ErrCoachExists  = &AlreadyExistsError{Entity: "coach", Context: "with this name among active coaches"}
	ErrEventExists  = &AlreadyExistsError{Entity: "event", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrTeamInactive       = errors.New("team is not active")
	ErrLeaderAlreadySet   = errors.New("team already has an active leader")
	ErrEmptyRoster        = errors.New("team has no active members")
	ErrSelfMerge          = errors.New("cannot merge a team into itself")
	ErrScoreDrift         = errors.New("score snapshot mismatch after mutation")
	ErrAdminRequired      = errors.New("operation requires admin privileges")
	ErrInvalidBonusTarget = errors.New("bonus target could not be resolved")
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

// IsUnresolvedReference checks if an error is an UnresolvedReferenceError
func IsUnresolvedReference(err error) bool {
	var refErr *UnresolvedReferenceError
	return errors.As(err, &refErr)
}

// IsAmbiguousAttendance checks if an error is an AmbiguousAttendanceError
func IsAmbiguousAttendance(err error) bool {
	var ambErr *AmbiguousAttendanceError
	return errors.As(err, &ambErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewUnresolvedReferenceError creates a new UnresolvedReferenceError
func NewUnresolvedReferenceError(entity, name string, row int) error {
	return &UnresolvedReferenceError{Entity: entity, Name: name, Row: row}
}

// NewAmbiguousAttendanceError creates a new AmbiguousAttendanceError
func NewAmbiguousAttendanceError(teamID, eventID uuid.UUID, reason string) error {
	return &AmbiguousAttendanceError{TeamID: teamID, EventID: eventID, Reason: reason}
}
