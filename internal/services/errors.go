package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the requested resource does not exist or the
// caller is not allowed to see it. Both cases surface identically so a
// forbidden resource cannot be probed for existence.
var ErrNotFound = errors.New("not found")

// ValidationError carries per-field validation messages for a rejected request
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{
		Fields: make(map[string]string),
	}
}

// Add records a validation message for a field
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

// HasErrors reports whether any field was rejected
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, message := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// StateConflictError is returned when an operation is not allowed in the
// resource's current lifecycle state.
type StateConflictError struct {
	Message string
}

func (e *StateConflictError) Error() string {
	return e.Message
}

// NewStateConflictError creates a new state conflict error
func NewStateConflictError(message string) *StateConflictError {
	return &StateConflictError{Message: message}
}
