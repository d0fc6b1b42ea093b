package parser

import (
	"strings"

	"github.com/jakechorley/volunteer-manager/pkg/core/commands"
	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

var eventPrefixes = []commands.Prefix{
	commands.PrefixName,
	commands.PrefixRole,
	commands.PrefixDateAndTime,
	commands.PrefixLocation,
	commands.PrefixDescription,
	commands.PrefixMaterial,
	commands.PrefixBudget,
	commands.PrefixRecurrence,
}

var eventMandatory = []commands.Prefix{
	commands.PrefixName,
	commands.PrefixRole,
	commands.PrefixDateAndTime,
	commands.PrefixLocation,
	commands.PrefixDescription,
}

var eventSingleValued = []commands.Prefix{
	commands.PrefixName,
	commands.PrefixDateAndTime,
	commands.PrefixLocation,
	commands.PrefixDescription,
	commands.PrefixBudget,
	commands.PrefixRecurrence,
}

func parseEventCreate(args string) (commands.Command, error) {
	argMap := Tokenize(args, eventPrefixes...)

	if !argMap.HasAll(eventMandatory...) || argMap.Preamble() != "" {
		return nil, invalidFormat(commands.EventCreateUsage)
	}

	if err := argMap.VerifyNoDuplicatePrefixesFor(eventSingleValued...); err != nil {
		return nil, err
	}

	rawName, _ := argMap.Value(commands.PrefixName)
	name, err := parseName(rawName)
	if err != nil {
		return nil, err
	}

	roles, err := model.NewRoles(trimAll(argMap.AllValues(commands.PrefixRole)))
	if err != nil {
		return nil, err
	}

	rawDateAndTime, _ := argMap.Value(commands.PrefixDateAndTime)
	dateAndTime, err := parseDateAndTime(rawDateAndTime)
	if err != nil {
		return nil, err
	}

	rawLocation, _ := argMap.Value(commands.PrefixLocation)
	location, err := parseLocation(rawLocation)
	if err != nil {
		return nil, err
	}

	rawDescription, _ := argMap.Value(commands.PrefixDescription)
	description, err := parseDescription(rawDescription)
	if err != nil {
		return nil, err
	}

	materials, err := model.NewMaterials(trimAll(argMap.AllValues(commands.PrefixMaterial)))
	if err != nil {
		return nil, err
	}

	var opts []model.EventOption

	if rawBudget, ok := argMap.Value(commands.PrefixBudget); ok {
		budget, err := parseBudget(rawBudget)
		if err != nil {
			return nil, err
		}
		opts = append(opts, model.WithBudget(budget))
	}

	if rawRecurrence, ok := argMap.Value(commands.PrefixRecurrence); ok {
		recurrence, err := parseRecurrence(rawRecurrence)
		if err != nil {
			return nil, err
		}
		opts = append(opts, model.WithRecurrence(recurrence))
	}

	event := model.NewEvent(name, roles, dateAndTime, location, description, materials, opts...)
	return commands.EventCreateCommand{Event: event}, nil
}

func parseEventEdit(args string) (commands.Command, error) {
	argMap := Tokenize(args, eventPrefixes...)

	index, err := ParseIndex(argMap.Preamble())
	if err != nil {
		return nil, invalidFormat(commands.EventEditUsage)
	}

	if err := argMap.VerifyNoDuplicatePrefixesFor(eventSingleValued...); err != nil {
		return nil, err
	}

	var descriptor model.EditEventDescriptor

	rawName, ok := argMap.Value(commands.PrefixName)
	if descriptor.Name, err = parseOptional(rawName, ok, parseName); err != nil {
		return nil, err
	}

	// Roles cannot be cleared, so an empty r: goes through validation and fails
	if raws := argMap.AllValues(commands.PrefixRole); len(raws) > 0 {
		roles, err := model.NewRoles(trimAll(raws))
		if err != nil {
			return nil, err
		}
		descriptor.Roles = &roles
	}

	rawDateAndTime, ok := argMap.Value(commands.PrefixDateAndTime)
	if descriptor.DateAndTime, err = parseOptional(rawDateAndTime, ok, parseDateAndTime); err != nil {
		return nil, err
	}
	rawLocation, ok := argMap.Value(commands.PrefixLocation)
	if descriptor.Location, err = parseOptional(rawLocation, ok, parseLocation); err != nil {
		return nil, err
	}
	rawDescription, ok := argMap.Value(commands.PrefixDescription)
	if descriptor.Description, err = parseOptional(rawDescription, ok, parseDescription); err != nil {
		return nil, err
	}
	if descriptor.Materials, err = parseSetForEdit(argMap.AllValues(commands.PrefixMaterial), model.NewMaterials); err != nil {
		return nil, err
	}
	rawBudget, ok := argMap.Value(commands.PrefixBudget)
	if descriptor.Budget, err = parseOptional(rawBudget, ok, parseBudget); err != nil {
		return nil, err
	}
	rawRecurrence, ok := argMap.Value(commands.PrefixRecurrence)
	if descriptor.Recurrence, err = parseOptional(rawRecurrence, ok, parseRecurrence); err != nil {
		return nil, err
	}

	if !descriptor.IsAnyFieldEdited() {
		return nil, &Error{Err: ErrInvalidFormat, Message: commands.MessageNotEdited}
	}

	return commands.EventEditCommand{Index: index, Descriptor: descriptor}, nil
}

func parseEventDelete(args string) (commands.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(commands.EventDeleteUsage)
	}
	return commands.EventDeleteCommand{Index: index}, nil
}

func parseEventFind(args string) (commands.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(commands.EventFindUsage)
	}
	return commands.EventFindCommand{Predicate: model.NameContainsKeywords{Keywords: keywords}}, nil
}
