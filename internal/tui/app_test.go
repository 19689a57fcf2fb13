package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/api"
	"github.com/hy4ri/todo-tui/internal/config"
	"github.com/hy4ri/todo-tui/internal/testutil"
)

// drain runs cmd and every follow-up, expanding batches, like the program loop.
// Spinner ticks are dropped since they reschedule forever.
func drain(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 50 {
			t.Fatal("command chain did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg, nil:
		default:
			_, follow := app.Update(msg)
			queue = append(queue, follow)
		}
	}
}

func TestAppStartupAndFailureToast(t *testing.T) {
	server := testutil.NewFakeAPI()
	defer server.Close()
	server.Seed("1", "water plants")

	cfg := config.DefaultConfig()
	app := NewApp(context.Background(), api.NewClient(server.URL, 0), cfg, nil)

	drain(t, app, app.Init())
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if !strings.Contains(app.View(), "water plants") {
		t.Fatalf("expected startup refresh to show the task:\n%s", app.View())
	}

	server.FailWith(500)
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(t, app, cmd)

	view := app.View()
	if !strings.Contains(view, "Failed to add task") {
		t.Errorf("expected a failure toast:\n%s", view)
	}
	if !strings.Contains(view, "water plants") {
		t.Error("items must survive a failed create")
	}
}

func TestAppAddsTask(t *testing.T) {
	server := testutil.NewFakeAPI()
	defer server.Close()

	app := NewApp(context.Background(), api.NewClient(server.URL, 0), config.DefaultConfig(), nil)
	drain(t, app, app.Init())

	if !strings.Contains(app.View(), "No tasks add some!") {
		t.Fatalf("expected the empty placeholder:\n%s", app.View())
	}

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("buy milk")})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(t, app, cmd)

	if todos := server.Todos(); len(todos) != 1 || todos[0].Task != "buy milk" {
		t.Fatalf("expected the task on the server, got %+v", todos)
	}
	view := app.View()
	if !strings.Contains(view, "buy milk") || strings.Contains(view, "No tasks add some!") {
		t.Errorf("expected the refreshed list:\n%s", view)
	}
	if app.State().PendingText() != "" {
		t.Errorf("expected the form cleared, got %q", app.State().PendingText())
	}
}
