package commands

import (
	"fmt"

	"github.com/jakechorley/volunteer-manager/pkg/core/model"
)

const (
	EventCreateUsage = EventCreateWord + ": Adds an event to the event list. " +
		"Parameters: " +
		string(PrefixName) + "NAME " +
		string(PrefixRole) + "ROLE... " +
		string(PrefixDateAndTime) + "DATE AND TIME " +
		string(PrefixLocation) + "LOCATION " +
		string(PrefixDescription) + "DESCRIPTION " +
		"[" + string(PrefixMaterial) + "MATERIAL]... " +
		"[" + string(PrefixBudget) + "BUDGET] " +
		"[" + string(PrefixRecurrence) + "RRULE]\n" +
		"Example: " + EventCreateWord + " " +
		string(PrefixName) + "Clean up at Orchard " +
		string(PrefixRole) + "Cleaner " +
		string(PrefixRole) + "Manager " +
		string(PrefixDateAndTime) + "23/10/2023 1500 " +
		string(PrefixLocation) + "Orchard Road " +
		string(PrefixDescription) + "Cleaning up Orchard Road! " +
		string(PrefixMaterial) + "Trash bag " +
		string(PrefixMaterial) + "Tongs " +
		string(PrefixBudget) + "50.00"

	EventEditUsage = EventEditWord + ": Edits the details of the event identified " +
		"by the index number used in the displayed event list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) " +
		"[" + string(PrefixName) + "NAME] " +
		"[" + string(PrefixRole) + "ROLE]... " +
		"[" + string(PrefixDateAndTime) + "DATE AND TIME] " +
		"[" + string(PrefixLocation) + "LOCATION] " +
		"[" + string(PrefixDescription) + "DESCRIPTION] " +
		"[" + string(PrefixMaterial) + "MATERIAL]... " +
		"[" + string(PrefixBudget) + "BUDGET] " +
		"[" + string(PrefixRecurrence) + "RRULE]\n" +
		"Example: " + EventEditWord + " 1 " +
		string(PrefixLocation) + "Marina Bay " +
		string(PrefixBudget) + "80.00"

	EventDeleteUsage = EventDeleteWord + ": Deletes the event identified " +
		"by the index number used in the displayed event list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + EventDeleteWord + " 1"

	EventListUsage  = EventListWord + ": Lists all events.\nExample: " + EventListWord
	EventClearUsage = EventClearWord + ": Removes every event.\nExample: " + EventClearWord

	EventFindUsage = EventFindWord + ": Finds all events whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + EventFindWord + " beach cleanup"

	MessageEventCreateSuccess = "New event added: %s"
	MessageEventEditSuccess   = "Edited event: %s"
	MessageEventDeleteSuccess = "Deleted event: %s"
	MessageEventListSuccess   = "Listed all events"
	MessageEventClearSuccess  = "Event list has been cleared!"
	MessageDuplicateEvent     = "This event already exists in the event list"
)

// EventCreateCommand adds an event
type EventCreateCommand struct {
	Event model.Event
}

func (c EventCreateCommand) Execute(m *model.Model) (Result, error) {
	if m.HasEvent(c.Event) {
		return Result{}, duplicate(MessageDuplicateEvent)
	}

	if err := m.AddEvent(c.Event); err != nil {
		return Result{}, duplicate(MessageDuplicateEvent)
	}

	return Result{Feedback: fmt.Sprintf(MessageEventCreateSuccess, FormatEvent(c.Event))}, nil
}

// EventEditCommand changes the event at Index in the displayed list
type EventEditCommand struct {
	Index      model.Index
	Descriptor model.EditEventDescriptor
}

func (c EventEditCommand) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.FilteredEvents(), c.Index, MessageInvalidEventDisplayedIndex)
	if err != nil {
		return Result{}, err
	}

	edited := c.Descriptor.Apply(target)

	if !target.IsSame(edited) && m.HasEvent(edited) {
		return Result{}, duplicate(MessageDuplicateEvent)
	}

	if err := m.SetEvent(target, edited); err != nil {
		return Result{}, fmt.Errorf("failed to replace event: %w", err)
	}

	m.UpdateFilteredEvents(model.ShowAll[model.Event])

	return Result{Feedback: fmt.Sprintf(MessageEventEditSuccess, FormatEvent(edited))}, nil
}

// EventDeleteCommand removes the event at Index in the displayed list
type EventDeleteCommand struct {
	Index model.Index
}

func (c EventDeleteCommand) Execute(m *model.Model) (Result, error) {
	target, err := resolve(m.FilteredEvents(), c.Index, MessageInvalidEventDisplayedIndex)
	if err != nil {
		return Result{}, err
	}

	if err := m.DeleteEvent(target); err != nil {
		return Result{}, fmt.Errorf("failed to delete event: %w", err)
	}

	return Result{Feedback: fmt.Sprintf(MessageEventDeleteSuccess, FormatEvent(target))}, nil
}

// EventListCommand clears the event filter
type EventListCommand struct{}

func (EventListCommand) Execute(m *model.Model) (Result, error) {
	m.UpdateFilteredEvents(model.ShowAll[model.Event])
	return Result{Feedback: MessageEventListSuccess}, nil
}

// EventFindCommand filters events by name keywords
type EventFindCommand struct {
	Predicate model.NameContainsKeywords
}

func (c EventFindCommand) Execute(m *model.Model) (Result, error) {
	m.UpdateFilteredEvents(c.Predicate.Event)
	return Result{Feedback: fmt.Sprintf(MessageEventsListedOverview, len(m.FilteredEvents()))}, nil
}

// EventClearCommand removes every event
type EventClearCommand struct{}

func (EventClearCommand) Execute(m *model.Model) (Result, error) {
	m.ClearEvents()
	return Result{Feedback: MessageEventClearSuccess}, nil
}

func (EventCreateCommand) command() {}
func (EventEditCommand) command()   {}
func (EventDeleteCommand) command() {}
func (EventListCommand) command()   {}
func (EventFindCommand) command()   {}
func (EventClearCommand) command()  {}
