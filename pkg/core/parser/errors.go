package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jakechorley/volunteer-manager/pkg/core/commands"
)

const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageUnknownCommand       = "Unknown command"
	MessageInvalidIndex         = "Index is not a non-zero unsigned integer."
	MessageDuplicateFields      = "Multiple values specified for the following single-valued field(s): "
)

var (
	// ErrInvalidFormat is returned when the command text does not have the expected shape
	ErrInvalidFormat = errors.New("invalid command format")

	// ErrUnknownCommand is returned when the command word is not recognised
	ErrUnknownCommand = errors.New("unknown command")
)

// Error is a failure to turn command text into a command
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

// invalidFormat reports a malformed command together with its usage
func invalidFormat(usage string) error {
	return &Error{Err: ErrInvalidFormat, Message: fmt.Sprintf(MessageInvalidCommandFormat, usage)}
}

func duplicatePrefixes(prefixes []commands.Prefix) error {
	names := make([]string, len(prefixes))
	for i, p := range prefixes {
		names[i] = p.String()
	}
	return &Error{Err: ErrInvalidFormat, Message: MessageDuplicateFields + strings.Join(names, " ")}
}
