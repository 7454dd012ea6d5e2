// Package output provides terminal output utilities.
package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableStyle defines the style for table output.
type TableStyle struct {
	// Border is the border style.
	Border lipgloss.Border

	// BorderColor is the color for borders.
	BorderColor lipgloss.Color

	// HeaderStyle is the style for header cells.
	HeaderStyle lipgloss.Style

	// CellStyle is the style for regular cells.
	CellStyle lipgloss.Style
}

// DefaultTableStyle returns the default table style.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.NormalBorder(),
		BorderColor: lipgloss.Color("240"),
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		CellStyle:   lipgloss.NewStyle(),
	}
}

// Table represents a styled table.
type Table struct {
	headers []string
	rows    [][]string
	style   TableStyle
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		style:   DefaultTableStyle(),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// SetStyle sets the table style.
func (t *Table) SetStyle(style TableStyle) *Table {
	t.style = style
	return t
}

// String renders the table as a string.
func (t *Table) String() string {
	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.style.BorderColor)).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.style.HeaderStyle
			}
			return t.style.CellStyle
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}

// RenderTimingTable renders a per-transform execution timing table,
// as produced by an Executor run.
func RenderTimingTable(timings []TransformTiming) string {
	t := NewTable("TRANSFORM", "INVOCATIONS", "TOTAL", "AVERAGE", "STATUS")

	for _, tm := range timings {
		t.Row(tm.Transform, tm.Invocations, tm.Total, tm.Average, tm.Status)
	}

	return t.String()
}

// TransformTiming holds aggregated execution timing for one node in an
// executed pipeline, formatted for display.
type TransformTiming struct {
	Transform   string
	Invocations string
	Total       string
	Average     string
	Status      string
}

// RenderDescriptionList renders a list of name/description pairs with the
// descriptions aligned to a common column, as used by list-transforms.
func RenderDescriptionList(entries []DescriptionEntry, alignColumn int) string {
	var result string
	for _, e := range entries {
		padding := alignColumn - len(e.Name)
		if padding < 1 {
			padding = 1
		}
		spaces := make([]byte, padding)
		for i := range spaces {
			spaces[i] = ' '
		}
		result += e.Name + string(spaces) + e.Description + "\n"
	}
	return result
}

// DescriptionEntry pairs a name with a one-line description for aligned listing.
type DescriptionEntry struct {
	Name        string
	Description string
}
