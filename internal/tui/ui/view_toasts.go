package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/todo-tui/internal/notify"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// renderToasts stacks the visible notifications, newest last.
func (r *Renderer) renderToasts() string {
	if r.Toasts == nil {
		return ""
	}

	visible := r.Toasts.Visible()
	if len(visible) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(visible))
	for _, toast := range visible {
		style := styles.ToastInfo
		icon := "✓ "
		if toast.Severity == notify.SeverityError {
			style = styles.ToastError
			icon = "✗ "
		}
		rendered = append(rendered, style.Render(icon+toast.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
