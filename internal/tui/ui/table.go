package ui

import "github.com/hy4ri/todo-tui/internal/api"

// EmptyPlaceholder is shown in place of rows when there are no tasks.
const EmptyPlaceholder = "No tasks add some!"

// RemoveLabel is the text of the per-row remove action.
const RemoveLabel = "Remove"

// TableColumns are the header names, left to right.
var TableColumns = []string{"Name", "Action"}

// Cell is one table cell. Span is the number of columns it covers.
type Cell struct {
	Text   string
	Span   int
	Action bool
}

// Row is one table body row.
type Row struct {
	ID       string // task id; empty for the placeholder row
	Cells    []Cell
	Selected bool
}

// TableRows builds the table body for items. The row at cursor is marked
// selected when focused is true.
func TableRows(items []api.Todo, cursor int, focused bool) []Row {
	if len(items) == 0 {
		return []Row{{
			Cells: []Cell{{Text: EmptyPlaceholder, Span: len(TableColumns)}},
		}}
	}

	rows := make([]Row, 0, len(items))
	for i, item := range items {
		rows = append(rows, Row{
			ID: item.ID,
			Cells: []Cell{
				{Text: item.Task, Span: 1},
				{Text: RemoveLabel, Span: 1, Action: true},
			},
			Selected: focused && i == cursor,
		})
	}
	return rows
}
