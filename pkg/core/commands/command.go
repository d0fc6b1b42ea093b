package commands

import (
	"strings"

	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

// Result is the outcome of a successful command
type Result struct {
	// Feedback is the message shown to the user
	Feedback string
	// ShowHelp asks the front-end to show the usage summary
	ShowHelp bool
	// Exit asks the front-end to end the session
	Exit bool
}

// Command is a parsed, validated user command
// The set of commands is closed: every implementation lives in this package
type Command interface {
	// Execute applies the command to m
	// On error m is left exactly as it was
	Execute(m *model.Model) (Result, error)

	command()
}

// Mutates reports whether a successful run of c may have changed the stored records
// Only these commands need the model to be saved afterwards
func Mutates(c Command) bool {
	switch c.(type) {
	case VolunteerCreateCommand, VolunteerEditCommand, VolunteerDeleteCommand, VolunteerClearCommand,
		EventCreateCommand, EventEditCommand, EventDeleteCommand, EventClearCommand:
		return true
	default:
		return false
	}
}

// resolve returns the element at index in the displayed list
func resolve[T any](displayed []T, index model.Index, invalidMessage string) (T, error) {
	if index.ZeroBased() >= len(displayed) {
		var zero T
		return zero, invalidIndex(invalidMessage)
	}
	return displayed[index.ZeroBased()], nil
}

// HelpCommand shows the usage of every command
type HelpCommand struct{}

const HelpUsage = HelpWord + ": Shows program usage instructions.\n" +
	"Example: " + HelpWord

func (HelpCommand) Execute(*model.Model) (Result, error) {
	return Result{Feedback: HelpText(), ShowHelp: true}, nil
}

// HelpText lists the usage of every command
func HelpText() string {
	usages := []string{
		VolunteerCreateUsage, VolunteerEditUsage, VolunteerDeleteUsage,
		VolunteerListUsage, VolunteerFindUsage, VolunteerClearUsage,
		EventCreateUsage, EventEditUsage, EventDeleteUsage,
		EventListUsage, EventFindUsage, EventClearUsage,
		HelpUsage, ExitUsage,
	}
	return strings.Join(usages, "\n\n")
}

// ExitCommand ends the session
type ExitCommand struct{}

const (
	ExitUsage          = ExitWord + ": Exits the program.\nExample: " + ExitWord
	MessageExitSuccess = "Exiting as requested ..."
)

func (ExitCommand) Execute(*model.Model) (Result, error) {
	return Result{Feedback: MessageExitSuccess, Exit: true}, nil
}

func (HelpCommand) command() {}
func (ExitCommand) command() {}
