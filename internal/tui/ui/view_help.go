package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// renderHelp renders the key binding overlay.
func (r *Renderer) renderHelp() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	for _, item := range r.Keymap.HelpItems() {
		switch {
		case item[0] == "" && item[1] == "":
			b.WriteString("\n")
		case item[1] == "":
			b.WriteString(styles.Subtitle.Render(item[0]) + "\n")
		default:
			b.WriteString(styles.HelpKey.Render(padRight(item[0], 14)))
			b.WriteString(styles.HelpDesc.Render(item[1]) + "\n")
		}
	}

	dialog := styles.Dialog.Render(strings.TrimRight(b.String(), "\n"))
	if r.Width == 0 || r.Height == 0 {
		return dialog
	}
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, dialog)
}
