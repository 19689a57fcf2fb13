// Package ui renders the controller state. It never mutates it.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// Renderer draws the application screen.
type Renderer struct {
	*state.State
}

// NewRenderer creates a renderer over s.
func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

// View renders the whole screen.
func (r *Renderer) View() string {
	if r.ShowHelp {
		return r.renderHelp()
	}

	width := r.contentWidth()

	sections := []string{
		styles.Header.Render("TODO"),
		r.renderForm(),
		"",
	}

	if r.IsLoading {
		sections = append(sections, r.renderBusy())
	} else {
		sections = append(sections,
			styles.Title.Render("Tasks"),
			r.renderTable(width),
		)
	}

	if toasts := r.renderToasts(); toasts != "" {
		sections = append(sections, "", toasts)
	}

	sections = append(sections, "", r.renderStatusBar(width))

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// contentWidth is the usable width inside the app padding.
func (r *Renderer) contentWidth() int {
	w := r.Width - 4
	if r.Width == 0 {
		w = 76
	}
	if w < 30 {
		w = 30
	}
	return w
}

// renderBusy is shown instead of the table while the list is loading.
func (r *Renderer) renderBusy() string {
	return r.Spinner.View() + " " + styles.Subtitle.Render("Loading tasks...")
}

func (r *Renderer) renderForm() string {
	inputStyle := styles.Input
	if r.Focus == state.FocusForm {
		inputStyle = styles.InputFocused
	}

	field := lipgloss.JoinHorizontal(
		lipgloss.Center,
		inputStyle.Render(r.PendingInput.View()),
		styles.Button.Render("Submit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.InputLabel.Render("Task"),
		field,
	)
}

func (r *Renderer) renderStatusBar(width int) string {
	var left string
	switch {
	case r.LastError != "" && r.StatusMsg == "":
		left = styles.StatusBarError.Render(r.LastError)
	case r.StatusMsg != "":
		left = styles.StatusBarSuccess.Render(r.StatusMsg)
	}

	hints := [][2]string{{"enter", "submit"}, {"tab", "switch"}, {"dd", "remove"}, {"r", "refresh"}, {"?", "help"}}
	if r.Focus == state.FocusTable {
		hints = [][2]string{{"j/k", "move"}, {"dd", "remove"}, {"yy", "copy"}, {"a", "add"}, {"r", "refresh"}, {"q", "quit"}}
	}

	var b strings.Builder
	for i, h := range hints {
		if i > 0 {
			b.WriteString(styles.StatusBarText.Render("  "))
		}
		b.WriteString(styles.StatusBarKey.Render(h[0]))
		b.WriteString(styles.StatusBarText.Render(" " + h[1]))
	}
	right := b.String()

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBar.Render(left + styles.StatusBarText.Render(strings.Repeat(" ", gap)) + right)
}
