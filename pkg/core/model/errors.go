package model

import "errors"

var (
	// ErrValidation is matched by every ValidationError
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEntity is returned when an operation would leave two entities that are the same
	ErrDuplicateEntity = errors.New("operation would result in duplicate entities")

	// ErrEntityNotFound is returned when the target of an operation is not in the list
	ErrEntityNotFound = errors.New("entity not found")
)

// ValidationError reports a raw field value that does not satisfy its format rule
type ValidationError struct {
	Field      string
	Value      string
	Constraint string
}

// Error returns the constraint message, which is shown to the user as-is
func (e *ValidationError) Error() string {
	return e.Constraint
}

// Is makes errors.Is(err, ErrValidation) hold for any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, value, constraint string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Constraint: constraint}
}
