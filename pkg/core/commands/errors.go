package commands

import (
	"errors"

	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

var (
	// ErrInvalidIndex is returned when an index is outside the displayed list
	ErrInvalidIndex = errors.New("invalid displayed index")

	// ErrDuplicateEntity is returned when a create or edit would duplicate an existing record
	ErrDuplicateEntity = model.ErrDuplicateEntity
)

// Error is a failure while executing a command
// Message is shown to the user; Err classifies the failure for errors.Is
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func invalidIndex(message string) error {
	return &Error{Err: ErrInvalidIndex, Message: message}
}

func duplicate(message string) error {
	return &Error{Err: ErrDuplicateEntity, Message: message}
}
