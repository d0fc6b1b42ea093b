package sheetsclient

import (
	"fmt"
	"slices"
	"strings"
)

// PublishedEvent is one row of the published events tab
type PublishedEvent struct {
	Name           string
	DateAndTime    string
	NextOccurrence string // empty for one-off events
	Location       string
	Roles          []string
	Materials      []string
	Budget         string
	Description    string
}

var publishedEventHeader = []interface{}{
	"Name", "Date and time", "Next occurrence", "Location", "Roles", "Materials", "Budget", "Description",
}

type publishAPI interface {
	ListSheets(spreadsheetID string) ([]string, error)
	CreateSheet(spreadsheetID, sheetTitle string) (int64, error)
	ClearValues(spreadsheetID, sheetRange string) error
	UpdateValues(spreadsheetID, sheetRange string, values [][]interface{}) error
}

// PublishEvents writes events to the tab, creating it if it doesn't exist.
// An existing tab is cleared first so events deleted since the last publish disappear.
func (c *Client) PublishEvents(spreadsheetID, tab string, events []PublishedEvent) error {
	return publishEvents(c, spreadsheetID, tab, events)
}

func publishEvents(api publishAPI, spreadsheetID, tab string, events []PublishedEvent) error {
	titles, err := api.ListSheets(spreadsheetID)
	if err != nil {
		return fmt.Errorf("failed to list tabs: %w", err)
	}

	if slices.Contains(titles, tab) {
		if err := api.ClearValues(spreadsheetID, tab); err != nil {
			return fmt.Errorf("failed to clear tab %q: %w", tab, err)
		}
	} else if _, err := api.CreateSheet(spreadsheetID, tab); err != nil {
		return fmt.Errorf("failed to create tab %q: %w", tab, err)
	}

	if err := api.UpdateValues(spreadsheetID, fmt.Sprintf("%s!A1", tab), buildEventRows(events)); err != nil {
		return fmt.Errorf("failed to write events to tab %q: %w", tab, err)
	}

	return nil
}

// buildEventRows returns the header row followed by one row per event
func buildEventRows(events []PublishedEvent) [][]interface{} {
	rows := make([][]interface{}, 0, len(events)+1)
	rows = append(rows, publishedEventHeader)

	for _, e := range events {
		rows = append(rows, []interface{}{
			e.Name,
			e.DateAndTime,
			e.NextOccurrence,
			e.Location,
			strings.Join(e.Roles, ", "),
			strings.Join(e.Materials, ", "),
			e.Budget,
			e.Description,
		})
	}

	return rows
}
