package commands

import (
	"fmt"

	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

const (
	VolunteerCreateUsage = VolunteerCreateWord + ": Adds a volunteer to the volunteer list. " +
		"Parameters: " +
		string(PrefixName) + "NAME " +
		string(PrefixPhone) + "PHONE " +
		string(PrefixEmail) + "EMAIL " +
		string(PrefixAddress) + "ADDRESS " +
		"[" + string(PrefixSkill) + "SKILL]...\n" +
		"Example: " + VolunteerCreateWord + " " +
		string(PrefixName) + "John Doe " +
		string(PrefixPhone) + "98765432 " +
		string(PrefixEmail) + "johnd@example.com " +
		string(PrefixAddress) + "311, Clementi Ave 2, #02-25 " +
		string(PrefixSkill) + "firstaid " +
		string(PrefixSkill) + "driving"

	VolunteerEditUsage = VolunteerEditWord + ": Edits the details of the volunteer identified " +
		"by the index number used in the displayed volunteer list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) " +
		"[" + string(PrefixName) + "NAME] " +
		"[" + string(PrefixPhone) + "PHONE] " +
		"[" + string(PrefixEmail) + "EMAIL] " +
		"[" + string(PrefixAddress) + "ADDRESS] " +
		"[" + string(PrefixSkill) + "SKILL]...\n" +
		"Example: " + VolunteerEditWord + " 1 " +
		string(PrefixPhone) + "91234567 " +
		string(PrefixEmail) + "johndoe@example.com"

	VolunteerDeleteUsage = VolunteerDeleteWord + ": Deletes the volunteer identified " +
		"by the index number used in the displayed volunteer list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + VolunteerDeleteWord + " 1"

	VolunteerListUsage  = VolunteerListWord + ": Lists all volunteers.\nExample: " + VolunteerListWord
	VolunteerClearUsage = VolunteerClearWord + ": Removes every volunteer.\nExample: " + VolunteerClearWord

	VolunteerFindUsage = VolunteerFindWord + ": Finds all volunteers whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + VolunteerFindWord + " alice bob charlie"

	MessageVolunteerCreateSuccess = "New volunteer added: %s"
	MessageVolunteerEditSuccess   = "Edited volunteer: %s"
	MessageVolunteerDeleteSuccess = "Deleted volunteer: %s"
	MessageVolunteerListSuccess   = "Listed all volunteers"
	MessageVolunteerClearSuccess  = "Volunteer list has been cleared!"
	MessageDuplicateVolunteer     = "This volunteer already exists in the volunteer list"
	MessageNotEdited              = "At least one field to edit must be provided."
)

// VolunteerCreateCommand adds a volunteer
type VolunteerCreateCommand struct {
	Volunteer model.Volunteer
}

func (c VolunteerCreateCommand) Execute(m *model.Model) (Result, error) {
	if m.HasVolunteer(c.Volunteer) {
		return Result{}, duplicate(MessageDuplicateVolunteer)
	}

	if err := m.AddVolunteer(c.Volunteer); err != nil {
		return Result{}, duplicate(MessageDuplicateVolunteer)
	}

	return Result{Feedback: fmt.Sprintf(MessageVolunteerCreateSuccess, FormatVolunteer(c.Volunteer))}, nil
}

// VolunteerEditCommand changes the volunteer at Index in the displayed list
type VolunteerEditCommand struct {
	Index      model.Index
	Descriptor model.EditVolunteerDescriptor
}

func (c VolunteerEditCommand) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.FilteredVolunteers(), c.Index, MessageInvalidVolunteerDisplayedIndex)
	if err != nil {
		return Result{}, err
	}

	edited := c.Descriptor.Apply(target)

	// Renaming onto another volunteer's name is a duplicate; keeping the name is not
	if !target.IsSame(edited) && m.HasVolunteer(edited) {
		return Result{}, duplicate(MessageDuplicateVolunteer)
	}

	if err := m.SetVolunteer(target, edited); err != nil {
		return Result{}, fmt.Errorf("failed to replace volunteer: %w", err)
	}

	// The edited volunteer may no longer match the filter, so show everything
	m.UpdateFilteredVolunteers(model.ShowAll[model.Volunteer])

	return Result{Feedback: fmt.Sprintf(MessageVolunteerEditSuccess, FormatVolunteer(edited))}, nil
}

// VolunteerDeleteCommand removes the volunteer at Index in the displayed list
type VolunteerDeleteCommand struct {
	Index model.Index
}

func (c VolunteerDeleteCommand) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.FilteredVolunteers(), c.Index, MessageInvalidVolunteerDisplayedIndex)
	if err != nil {
		return Result{}, err
	}

	if err := m.DeleteVolunteer(target); err != nil {
		return Result{}, fmt.Errorf("failed to delete volunteer: %w", err)
	}

	return Result{Feedback: fmt.Sprintf(MessageVolunteerDeleteSuccess, FormatVolunteer(target))}, nil
}

// VolunteerListCommand clears the volunteer filter
type VolunteerListCommand struct{}

func (VolunteerListCommand) Execute(m *model.Model) (Result, error) {
	m.UpdateFilteredVolunteers(model.ShowAll[model.Volunteer])
	return Result{Feedback: MessageVolunteerListSuccess}, nil
}

// VolunteerFindCommand filters volunteers by name keywords
type VolunteerFindCommand struct {
	Predicate model.NameContainsKeywords
}

func (c VolunteerFindCommand) Execute(m *model.Model) (Result, error) {
	m.UpdateFilteredVolunteers(c.Predicate.Volunteer)
	return Result{Feedback: fmt.Sprintf(MessageVolunteersListedOverview, len(m.FilteredVolunteers()))}, nil
}

// VolunteerClearCommand removes every volunteer
type VolunteerClearCommand struct{}

func (VolunteerClearCommand) Execute(m *model.Model) (Result, error) {
	m.ClearVolunteers()
	return Result{Feedback: MessageVolunteerClearSuccess}, nil
}

func (VolunteerCreateCommand) command() {}
func (VolunteerEditCommand) command()   {}
func (VolunteerDeleteCommand) command() {}
func (VolunteerListCommand) command()   {}
func (VolunteerFindCommand) command()   {}
func (VolunteerClearCommand) command()  {}
