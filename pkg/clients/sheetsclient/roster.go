package sheetsclient

import (
	"fmt"
	"strings"
)

// Expected column names in the roster sheet
var rosterFields = []string{
	"Name",
	"Phone",
	"Email",
	"Address",
	"Skills",
}

// RosterRow is one volunteer as typed into the roster sheet, before validation
type RosterRow struct {
	Row     int // 1-based sheet row, for error reporting
	Name    string
	Phone   string
	Email   string
	Address string
	Skills  []string
}

type valueGetter interface {
	GetValues(spreadsheetID, sheetRange string) ([][]interface{}, error)
}

// ReadRoster retrieves and parses the volunteers on a roster tab
func (c *Client) ReadRoster(spreadsheetID, tab string) ([]RosterRow, error) {
	return readRoster(c, spreadsheetID, tab)
}

func readRoster(getter valueGetter, spreadsheetID, tab string) ([]RosterRow, error) {
	values, err := getter.GetValues(spreadsheetID, tab)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster data: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("roster tab %q is empty", tab)
	}

	rows, err := parseRoster(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	return rows, nil
}

// parseRoster converts raw sheet data into roster rows.
// Columns are found by header name so they may be in any order; rows without a name are skipped.
func parseRoster(raw [][]interface{}) ([]RosterRow, error) {
	if len(raw) < 1 {
		return nil, fmt.Errorf("no header row found")
	}

	fieldIndexes := make(map[string]int)
	for _, field := range rosterFields {
		index := findColumnIndex(raw[0], field)
		if index == -1 {
			return nil, fmt.Errorf("missing required field in header: %s", field)
		}
		fieldIndexes[field] = index
	}

	getField := func(field string, row []interface{}) string {
		index := fieldIndexes[field]
		if index >= len(row) {
			return ""
		}
		if str, ok := row[index].(string); ok {
			return strings.TrimSpace(str)
		}
		return ""
	}

	rows := make([]RosterRow, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := raw[i]

		name := getField("Name", row)
		if name == "" {
			continue
		}

		rows = append(rows, RosterRow{
			Row:     i + 1,
			Name:    name,
			Phone:   getField("Phone", row),
			Email:   getField("Email", row),
			Address: getField("Address", row),
			Skills:  splitList(getField("Skills", row)),
		})
	}

	return rows, nil
}

// splitList splits a comma separated cell, dropping blank entries
func splitList(cell string) []string {
	var items []string
	for _, item := range strings.Split(cell, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// findColumnIndex finds the index of a column by its header name
func findColumnIndex(header []interface{}, columnName string) int {
	for i, cell := range header {
		if str, ok := cell.(string); ok && strings.TrimSpace(str) == columnName {
			return i
		}
	}
	return -1
}
