package parser

import (
	"strings"
	"unicode"

	"github.com/jakechorley/volunteer-manager/pkg/core/commands"
)

type subParser func(args string) (commands.Command, error)

var subParsers = map[string]subParser{
	commands.VolunteerCreateWord: parseVolunteerCreate,
	commands.VolunteerEditWord:   parseVolunteerEdit,
	commands.VolunteerDeleteWord: parseVolunteerDelete,
	commands.VolunteerFindWord:   parseVolunteerFind,
	commands.VolunteerListWord:   constant(commands.VolunteerListCommand{}),
	commands.VolunteerClearWord:  constant(commands.VolunteerClearCommand{}),

	commands.EventCreateWord: parseEventCreate,
	commands.EventEditWord:   parseEventEdit,
	commands.EventDeleteWord: parseEventDelete,
	commands.EventFindWord:   parseEventFind,
	commands.EventListWord:   constant(commands.EventListCommand{}),
	commands.EventClearWord:  constant(commands.EventClearCommand{}),

	commands.HelpWord: constant(commands.HelpCommand{}),
	commands.ExitWord: constant(commands.ExitCommand{}),
}

// constant ignores any arguments, so "vlist 3" still lists
func constant(c commands.Command) subParser {
	return func(string) (commands.Command, error) {
		return c, nil
	}
}

// Parse turns one line of user input into a command
func Parse(input string) (commands.Command, error) {
	word, args := splitCommandWord(strings.TrimSpace(input))
	if word == "" {
		return nil, invalidFormat(commands.HelpUsage)
	}

	parse, ok := subParsers[word]
	if !ok {
		return nil, &Error{Err: ErrUnknownCommand, Message: MessageUnknownCommand}
	}

	return parse(args)
}

// splitCommandWord separates the leading command word from the rest of the line
func splitCommandWord(input string) (word, args string) {
	end := strings.IndexFunc(input, unicode.IsSpace)
	if end == -1 {
		return input, ""
	}
	return input[:end], input[end:]
}
