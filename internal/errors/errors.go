package errors

import (
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

// ConfigurationError represents configuration-related errors.
// Raised once at construction time; always fatal.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// PreconditionError signals a caller contract violation, e.g. saving a
// post for a participant who has no team.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for PreconditionError
func (e *PreconditionError) Is(target error) bool {
	_, ok := target.(*PreconditionError)
	return ok
}

// StorageFault wraps a failed read or write against the file backend.
// Read paths catch it and degrade; write paths surface it to the caller.
type StorageFault struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageFault) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageFault) Unwrap() error {
	return e.Err
}

// DataFormatError represents a malformed value encountered during bulk
// import. Scoped to a single row; never aborts the batch.
type DataFormatError struct {
	Field string
	Value string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("malformed %s: %q", e.Field, e.Value)
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

// Entity Not Found Errors
var (
	ErrParticipantNotFound  = &NotFoundError{Entity: "participant"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrPostNotFound         = &NotFoundError{Entity: "post"}
	ErrActionNotFound       = &NotFoundError{Entity: "action"}
	ErrAccountNotFound      = &NotFoundError{Entity: "account"}
	ErrLocationNotFound     = &NotFoundError{Entity: "location"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
)

// Precondition Errors
var (
	ErrNoTeam = &PreconditionError{Message: "participant has no team"}
)
