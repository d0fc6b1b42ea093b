package parser

import (
	"strings"

	"github.com/jakechorley/volunteer-manager/pkg/core/commands"
	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

var volunteerPrefixes = []commands.Prefix{
	commands.PrefixName,
	commands.PrefixPhone,
	commands.PrefixEmail,
	commands.PrefixAddress,
	commands.PrefixSkill,
}

// single-valued volunteer fields; skills may repeat
var volunteerSingleValued = volunteerPrefixes[:4]

func parseVolunteerCreate(args string) (commands.Command, error) {
	argMap := Tokenize(args, volunteerPrefixes...)

	if !argMap.HasAll(volunteerSingleValued...) || argMap.Preamble() != "" {
		return nil, invalidFormat(commands.VolunteerCreateUsage)
	}

	if err := argMap.VerifyNoDuplicatePrefixesFor(volunteerSingleValued...); err != nil {
		return nil, err
	}

	rawName, _ := argMap.Value(commands.PrefixName)
	name, err := parseName(rawName)
	if err != nil {
		return nil, err
	}

	rawPhone, _ := argMap.Value(commands.PrefixPhone)
	phone, err := parsePhone(rawPhone)
	if err != nil {
		return nil, err
	}

	rawEmail, _ := argMap.Value(commands.PrefixEmail)
	email, err := parseEmail(rawEmail)
	if err != nil {
		return nil, err
	}

	rawAddress, _ := argMap.Value(commands.PrefixAddress)
	address, err := parseAddress(rawAddress)
	if err != nil {
		return nil, err
	}

	skills, err := model.NewSkills(trimAll(argMap.AllValues(commands.PrefixSkill)))
	if err != nil {
		return nil, err
	}

	volunteer := model.NewVolunteer(name, phone, email, address, skills)
	return commands.VolunteerCreateCommand{Volunteer: volunteer}, nil
}

func parseVolunteerEdit(args string) (commands.Command, error) {
	argMap := Tokenize(args, volunteerPrefixes...)

	index, err := ParseIndex(argMap.Preamble())
	if err != nil {
		return nil, invalidFormat(commands.VolunteerEditUsage)
	}

	if err := argMap.VerifyNoDuplicatePrefixesFor(volunteerSingleValued...); err != nil {
		return nil, err
	}

	var descriptor model.EditVolunteerDescriptor

	rawName, ok := argMap.Value(commands.PrefixName)
	if descriptor.Name, err = parseOptional(rawName, ok, parseName); err != nil {
		return nil, err
	}
	rawPhone, ok := argMap.Value(commands.PrefixPhone)
	if descriptor.Phone, err = parseOptional(rawPhone, ok, parsePhone); err != nil {
		return nil, err
	}
	rawEmail, ok := argMap.Value(commands.PrefixEmail)
	if descriptor.Email, err = parseOptional(rawEmail, ok, parseEmail); err != nil {
		return nil, err
	}
	rawAddress, ok := argMap.Value(commands.PrefixAddress)
	if descriptor.Address, err = parseOptional(rawAddress, ok, parseAddress); err != nil {
		return nil, err
	}
	if descriptor.Skills, err = parseSetForEdit(argMap.AllValues(commands.PrefixSkill), model.NewSkills); err != nil {
		return nil, err
	}

	if !descriptor.IsAnyFieldEdited() {
		return nil, &Error{Err: ErrInvalidFormat, Message: commands.MessageNotEdited}
	}

	return commands.VolunteerEditCommand{Index: index, Descriptor: descriptor}, nil
}

func parseVolunteerDelete(args string) (commands.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, invalidFormat(commands.VolunteerDeleteUsage)
	}
	return commands.VolunteerDeleteCommand{Index: index}, nil
}

func parseVolunteerFind(args string) (commands.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(commands.VolunteerFindUsage)
	}
	return commands.VolunteerFindCommand{Predicate: model.NameContainsKeywords{Keywords: keywords}}, nil
}
