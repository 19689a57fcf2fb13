package logic

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/api"
	"github.com/hy4ri/todo-tui/internal/notify"
	"github.com/hy4ri/todo-tui/internal/testutil"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

type fixture struct {
	h        *Handler
	gateway  *testutil.FakeGateway
	notifier *testutil.RecordingNotifier
	logs     *bytes.Buffer
}

func newFixture(t *testing.T, opts Options, todos ...api.Todo) *fixture {
	t.Helper()
	logs := &bytes.Buffer{}
	f := &fixture{
		gateway:  testutil.NewFakeGateway(todos...),
		notifier: &testutil.RecordingNotifier{},
		logs:     logs,
	}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f.h = NewHandler(context.Background(), state.New(nil), f.gateway, f.notifier, logger, opts)
	return f
}

// run executes cmd and feeds every resulting message back into the handler
// until no follow-up command is left, the way the program loop would.
func (f *fixture) run(cmd tea.Cmd) {
	for cmd != nil {
		cmd = f.h.Update(cmd())
	}
}

func (f *fixture) messages() []string {
	var out []string
	for _, n := range f.notifier.Sent() {
		out = append(out, n.Message)
	}
	return out
}

var errBoom = &api.FetchError{Op: "test", Detail: "boom"}

func TestRefreshSuccess(t *testing.T) {
	f := newFixture(t, Options{}, api.Todo{ID: "1", Task: "a"})

	cmd := f.h.Refresh()
	if !f.h.IsLoading {
		t.Error("expected IsLoading while the refresh is in flight")
	}
	if f.h.Phase != state.PhaseLoading {
		t.Errorf("expected loading phase, got %s", f.h.Phase)
	}

	f.run(cmd)

	if len(f.h.Items) != 1 || f.h.Items[0] != (api.Todo{ID: "1", Task: "a"}) {
		t.Errorf("unexpected items %+v", f.h.Items)
	}
	if f.h.IsLoading {
		t.Error("expected IsLoading to be false after refresh")
	}
	if f.h.Phase != state.PhaseIdle {
		t.Errorf("expected idle phase, got %s", f.h.Phase)
	}
	if len(f.notifier.Sent()) != 0 {
		t.Errorf("expected no notifications, got %v", f.messages())
	}
}

func TestRefreshFailureKeepsItems(t *testing.T) {
	f := newFixture(t, Options{}, api.Todo{ID: "1", Task: "a"})
	f.run(f.h.Refresh())

	f.gateway.ListErr = errBoom
	f.run(f.h.Refresh())

	if len(f.h.Items) != 1 || f.h.Items[0].ID != "1" {
		t.Errorf("expected items unchanged, got %+v", f.h.Items)
	}
	if f.h.IsLoading {
		t.Error("expected IsLoading to be false after failed refresh")
	}
	if f.h.Phase != state.PhaseIdle {
		t.Errorf("error phase should collapse to idle, got %s", f.h.Phase)
	}
	if got := f.messages(); len(got) != 1 || got[0] != "Failed to fetch tasks" {
		t.Errorf("expected one fetch failure notification, got %v", got)
	}
	if sent := f.notifier.Sent(); sent[0].Severity != notify.SeverityError {
		t.Errorf("expected error severity, got %s", sent[0].Severity)
	}
	if f.h.LastError != MsgFetchFailed {
		t.Errorf("expected last error %q, got %q", MsgFetchFailed, f.h.LastError)
	}
	if !strings.Contains(f.logs.String(), `"level":"ERROR","msg":"Failed to fetch tasks"`) {
		t.Errorf("expected an error log record, got %s", f.logs.String())
	}
}

func TestRefreshIsIdempotent(t *testing.T) {
	f := newFixture(t, Options{}, api.Todo{ID: "1", Task: "a"}, api.Todo{ID: "2", Task: "b"})

	f.run(f.h.Refresh())
	first := append([]api.Todo(nil), f.h.Items...)
	f.run(f.h.Refresh())

	if len(first) != len(f.h.Items) {
		t.Fatalf("expected %d items, got %d", len(first), len(f.h.Items))
	}
	for i := range first {
		if first[i] != f.h.Items[i] {
			t.Errorf("item %d changed: %+v -> %+v", i, first[i], f.h.Items[i])
		}
	}
}

func TestSubmitSuccess(t *testing.T) {
	f := newFixture(t, Options{})
	f.h.SetPendingInput("buy milk")

	cmd := f.h.Submit(f.h.PendingText())
	if f.h.IsLoading {
		t.Error("a create must not raise the loading flag")
	}
	f.run(cmd)

	if len(f.gateway.CreateCalls) != 1 || f.gateway.CreateCalls[0] != "buy milk" {
		t.Errorf("expected CreateTodo(\"buy milk\"), got %v", f.gateway.CreateCalls)
	}
	if f.gateway.Lists() != 1 {
		t.Errorf("expected exactly one refresh, got %d", f.gateway.Lists())
	}
	if f.h.PendingText() != "" {
		t.Errorf("expected pending input cleared, got %q", f.h.PendingText())
	}
	if len(f.h.Items) != 1 || f.h.Items[0].Task != "buy milk" {
		t.Errorf("expected refreshed items to contain the new task, got %+v", f.h.Items)
	}
}

func TestSubmitFailureClearsInput(t *testing.T) {
	f := newFixture(t, Options{})
	f.gateway.CreateErr = errBoom
	f.h.SetPendingInput("buy milk")

	f.run(f.h.Submit(f.h.PendingText()))

	if f.h.PendingText() != "" {
		t.Errorf("expected pending input cleared after failure, got %q", f.h.PendingText())
	}
	if f.gateway.Lists() != 0 {
		t.Errorf("expected no refresh after failed create, got %d", f.gateway.Lists())
	}
	if got := f.messages(); len(got) != 1 || got[0] != "Failed to add task" {
		t.Errorf("expected one add failure notification, got %v", got)
	}
}

func TestSubmitEmptyText(t *testing.T) {
	f := newFixture(t, Options{})

	f.run(f.h.Submit(""))

	if len(f.gateway.CreateCalls) != 1 || f.gateway.CreateCalls[0] != "" {
		t.Errorf("expected empty text to be submitted, got %v", f.gateway.CreateCalls)
	}
}

func TestRemoveSuccess(t *testing.T) {
	f := newFixture(t, Options{}, api.Todo{ID: "42", Task: "a"}, api.Todo{ID: "43", Task: "b"})
	f.run(f.h.Refresh())

	cmd := f.h.Remove("42")
	if len(f.h.Items) != 2 {
		t.Error("items must not change before the delete completes")
	}
	f.run(cmd)

	if f.gateway.Lists() != 2 {
		t.Errorf("expected a refresh after delete, got %d list calls", f.gateway.Lists())
	}
	if len(f.h.Items) != 1 || f.h.Items[0].ID != "43" {
		t.Errorf("unexpected items after delete %+v", f.h.Items)
	}
}

func TestRemoveFailure(t *testing.T) {
	f := newFixture(t, Options{}, api.Todo{ID: "42", Task: "a"})
	f.run(f.h.Refresh())
	f.gateway.DeleteErr = errBoom

	f.run(f.h.Remove("42"))

	if len(f.h.Items) != 1 || f.h.Items[0].ID != "42" {
		t.Errorf("expected items unchanged, got %+v", f.h.Items)
	}
	if f.gateway.Lists() != 1 {
		t.Errorf("expected no refresh after failed delete, got %d list calls", f.gateway.Lists())
	}
	if got := f.messages(); len(got) != 1 || got[0] != "Failed to delete task" {
		t.Errorf("expected one delete failure notification, got %v", got)
	}
}

func TestRemoveMissingID(t *testing.T) {
	f := newFixture(t, Options{})

	f.run(f.h.Remove("nope"))

	if got := f.messages(); len(got) != 1 || got[0] != MsgDeleteFailed {
		t.Errorf("expected delete failure for unknown id, got %v", got)
	}
}

func TestFailureDuringRefreshStaysLoading(t *testing.T) {
	f := newFixture(t, Options{})
	f.gateway.CreateErr = errors.New("offline")

	refresh := f.h.Refresh()
	f.run(f.h.Submit("x"))

	if !f.h.IsLoading || f.h.Phase != state.PhaseLoading {
		t.Errorf("expected outstanding refresh to keep loading, got %v/%s", f.h.IsLoading, f.h.Phase)
	}

	f.run(refresh)
	if f.h.IsLoading {
		t.Error("expected loading to end when the refresh completes")
	}
}

func TestOutOfOrderRefresh(t *testing.T) {
	tests := []struct {
		name    string
		discard bool
		want    string
	}{
		{name: "last completion wins", discard: false, want: "old"},
		{name: "stale result discarded", discard: true, want: "new"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{DiscardStaleRefresh: tt.discard})

			f.gateway.SetTodos(api.Todo{ID: "1", Task: "old"})
			older := f.h.Refresh()
			oldMsg := older()

			f.gateway.SetTodos(api.Todo{ID: "1", Task: "new"})
			newer := f.h.Refresh()

			// The newer refresh completes first.
			f.run(newer)
			f.h.Update(oldMsg)

			if len(f.h.Items) != 1 || f.h.Items[0].Task != tt.want {
				t.Errorf("expected %q to be shown, got %+v", tt.want, f.h.Items)
			}
			if !strings.Contains(f.logs.String(), "refresh completed out of order") {
				t.Error("expected the stale completion to be logged")
			}
			if f.h.Generation() != 2 {
				t.Errorf("expected 2 generations, got %d", f.h.Generation())
			}
		})
	}
}

func TestConcurrentSubmitsAreIndependent(t *testing.T) {
	f := newFixture(t, Options{})

	first := f.h.Submit("a")
	second := f.h.Submit("b")
	firstMsg, secondMsg := first(), second()

	f.run(func() tea.Msg { return firstMsg })
	f.run(func() tea.Msg { return secondMsg })

	if len(f.gateway.CreateCalls) != 2 {
		t.Errorf("expected two creates, got %v", f.gateway.CreateCalls)
	}
	if f.gateway.Lists() != 2 {
		t.Errorf("expected one refresh per create, got %d", f.gateway.Lists())
	}
	if len(f.h.Items) != 2 {
		t.Errorf("expected both tasks listed, got %+v", f.h.Items)
	}
}

func TestRefreshAgainstFakeAPI(t *testing.T) {
	server := testutil.NewFakeAPI()
	defer server.Close()
	server.Seed("1", "existing")

	client := api.NewClient(server.URL, 0)
	notifier := &testutil.RecordingNotifier{}
	h := NewHandler(context.Background(), state.New(nil), client, notifier, nil, Options{})

	run := func(cmd tea.Cmd) {
		for cmd != nil {
			cmd = h.Update(cmd())
		}
	}

	run(h.Submit("buy milk"))
	if len(h.Items) != 2 || h.Items[1].Task != "buy milk" {
		t.Fatalf("unexpected items %+v", h.Items)
	}

	run(h.Remove(h.Items[0].ID))
	if len(h.Items) != 1 || h.Items[0].Task != "buy milk" {
		t.Fatalf("unexpected items after remove %+v", h.Items)
	}

	server.FailWith(500)
	run(h.Refresh())
	if len(h.Items) != 1 {
		t.Errorf("failed refresh must keep items, got %+v", h.Items)
	}
	if sent := notifier.Sent(); len(sent) != 1 || sent[0].Message != MsgFetchFailed {
		t.Errorf("unexpected notifications %+v", sent)
	}
}
