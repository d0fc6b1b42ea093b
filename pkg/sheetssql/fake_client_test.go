package sheetssql

import (
	"fmt"
	"strings"
)

// fakeSheetsClient keeps sheets in memory, storing every cell as the string the API would return
type fakeSheetsClient struct {
	sheets map[string][][]interface{}
	order  []string
}

func newFakeSheetsClient() *fakeSheetsClient {
	return &fakeSheetsClient{sheets: make(map[string][][]interface{})}
}

func (f *fakeSheetsClient) GetValues(spreadsheetID, sheetRange string) ([][]interface{}, error) {
	name, _, _ := strings.Cut(sheetRange, "!")
	rows, ok := f.sheets[name]
	if !ok {
		return nil, fmt.Errorf("unknown sheet %s", name)
	}
	if strings.Contains(sheetRange, "!") && len(rows) > 2 {
		rows = rows[:2]
	}
	return rows, nil
}

func (f *fakeSheetsClient) AppendRows(spreadsheetID, sheetRange string, values [][]interface{}) error {
	if _, ok := f.sheets[sheetRange]; !ok {
		return fmt.Errorf("unknown sheet %s", sheetRange)
	}
	for _, row := range values {
		stored := make([]interface{}, len(row))
		for i, cell := range row {
			stored[i] = fmt.Sprint(cell)
		}
		f.sheets[sheetRange] = append(f.sheets[sheetRange], stored)
	}
	return nil
}

func (f *fakeSheetsClient) CreateSheet(spreadsheetID, sheetTitle string) (int64, error) {
	if _, ok := f.sheets[sheetTitle]; ok {
		return 0, fmt.Errorf("sheet %s already exists", sheetTitle)
	}
	f.sheets[sheetTitle] = nil
	f.order = append(f.order, sheetTitle)
	return int64(len(f.order)), nil
}

func (f *fakeSheetsClient) ListSheets(spreadsheetID string) ([]string, error) {
	return append([]string(nil), f.order...), nil
}
