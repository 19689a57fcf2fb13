package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

const actionColumnWidth = 8

// renderTable draws the header and body produced by TableRows.
func (r *Renderer) renderTable(width int) string {
	focused := r.Focus == state.FocusTable

	// Inner width excludes the outer border.
	inner := width - 2
	// Each cell has one column of padding on both sides.
	nameWidth := inner - actionColumnWidth - 2 - 2 - 1
	if nameWidth < 8 {
		nameWidth = 8
	}
	widths := []int{nameWidth, actionColumnWidth}

	lines := []string{
		renderCells(headerCells(), widths, styles.TableHeader),
		styles.TableSeparator.Render(strings.Repeat("─", nameWidth+actionColumnWidth+5)),
	}

	for _, row := range TableRows(r.Items, r.Cursor, focused) {
		style := styles.TableCell
		if row.Selected {
			style = styles.TableCellSelected
		}
		if row.ID == "" {
			style = styles.TableEmpty
		}
		lines = append(lines, renderCells(row.Cells, widths, style))
	}

	border := styles.Table
	if focused {
		border = styles.TableFocused
	}
	return border.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func headerCells() []Cell {
	cells := make([]Cell, len(TableColumns))
	for i, name := range TableColumns {
		cells[i] = Cell{Text: name, Span: 1}
	}
	return cells
}

// renderCells lays cells out over the column widths, merging spanned columns.
func renderCells(cells []Cell, widths []int, style lipgloss.Style) string {
	parts := make([]string, 0, len(cells))
	col := 0
	for _, cell := range cells {
		span := cell.Span
		if span < 1 {
			span = 1
		}
		if col+span > len(widths) {
			span = len(widths) - col
		}

		// A spanned cell also absorbs the padding and divider of the columns it covers.
		w := 0
		for i := col; i < col+span; i++ {
			w += widths[i]
		}
		w += (span - 1) * 3

		text := padRight(cell.Text, w)
		if cell.Action {
			text = styles.RemoveAction.Render(text)
		}
		parts = append(parts, style.Render(text))
		col += span
	}
	return strings.Join(parts, styles.TableSeparator.Render("│"))
}
