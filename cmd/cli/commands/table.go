package commands

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	colorReset = "\033[0m"
	colorDim   = "\033[2m"
)

// table prints left-aligned columns sized to their widest cell
type table struct {
	header []string
	rows   [][]string
	dim    []bool
}

func newTable(header ...string) *table {
	return &table{header: header}
}

// add appends a row; dimmed rows are printed faint
func (t *table) add(dimmed bool, cells ...string) {
	t.rows = append(t.rows, cells)
	t.dim = append(t.dim, dimmed)
}

func (t *table) write(out io.Writer) {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, len(widths))
		for i := range widths {
			var cell string
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		}
		fmt.Fprint(out, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	writeRow(t.header)
	fmt.Fprintln(out)

	total := 0
	for _, w := range widths {
		total += w
	}
	fmt.Fprintln(out, strings.Repeat("-", total+2*(len(widths)-1)))

	for i, row := range t.rows {
		if t.dim[i] {
			fmt.Fprint(out, colorDim)
			writeRow(row)
			fmt.Fprintln(out, colorReset)
			continue
		}
		writeRow(row)
		fmt.Fprintln(out)
	}
}
