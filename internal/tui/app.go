// Package tui provides the terminal user interface for the task list.
package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/notify"
	"github.com/hy4ri/todo-tui/internal/tui/logic"
	"github.com/hy4ri/todo-tui/internal/tui/state"
	"github.com/hy4ri/todo-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates a new App instance.
// Failures are shown as toasts, and also on the desktop when enabled in cfg.
func NewApp(ctx context.Context, gw logic.Gateway, cfg *config.Config, logger *slog.Logger) *App {
	toasts := notify.NewToasts(cfg.UI.ToastDuration, cfg.UI.MaxToasts)

	notifiers := notify.Multi{toasts}
	if cfg.UI.DesktopNotifications {
		notifiers = append(notifiers, notify.NewDesktop("todo-tui", logger))
	}

	s := state.New(toasts)
	return &App{
		state: s,
		handler: logic.NewHandler(ctx, s, gw, notifiers, logger, logic.Options{
			DiscardStaleRefresh: cfg.Sync.DiscardStaleRefresh,
		}),
		renderer: ui.NewRenderer(s),
	}
}

// State exposes the shared state (useful for testing).
func (a *App) State() *state.State {
	return a.state
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
