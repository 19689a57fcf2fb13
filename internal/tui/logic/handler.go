// Package logic implements the task list controller: it sequences gateway
// calls and keeps the shared state in step with the remote collection.
package logic

import (
	"context"
	"log/slog"

	"github.com/atotto/clipboard"

	"github.com/hy4ri/todo-tui/internal/api"
	"github.com/hy4ri/todo-tui/internal/notify"
	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// Failure notifications shown to the user.
const (
	MsgFetchFailed  = "Failed to fetch tasks"
	MsgAddFailed    = "Failed to add task"
	MsgDeleteFailed = "Failed to delete task"
	MsgCopyFailed   = "Failed to copy task"
)

// Gateway is the remote task collection. *api.Client implements it.
type Gateway interface {
	ListTodos(ctx context.Context) ([]api.Todo, error)
	CreateTodo(ctx context.Context, text string) error
	DeleteTodo(ctx context.Context, id string) error
}

// Options tunes controller behavior.
type Options struct {
	// DiscardStaleRefresh drops list results older than one already applied.
	DiscardStaleRefresh bool
}

// Handler owns all state mutations. It must only be used from the UI loop;
// the commands it returns run elsewhere and report back through messages.
type Handler struct {
	*state.State

	ctx      context.Context
	gateway  Gateway
	notifier notify.Notifier
	logger   *slog.Logger
	opts     Options

	// Refresh generations: issued counts every Refresh call, applied is the
	// newest generation whose result has been written to Items.
	issued  uint64
	applied uint64

	copyText func(string) error
}

// NewHandler creates a controller over s. ctx bounds every gateway call.
func NewHandler(ctx context.Context, s *state.State, gw Gateway, n notify.Notifier, logger *slog.Logger, opts Options) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if n == nil {
		n = notify.Multi{}
	}
	return &Handler{
		State:    s,
		ctx:      ctx,
		gateway:  gw,
		notifier: n,
		logger:   logger,
		opts:     opts,
		copyText: clipboard.WriteAll,
	}
}

// Generation returns the number of refreshes issued so far.
func (h *Handler) Generation() uint64 {
	return h.issued
}

// fail records a failure: one error log record and one notification.
// The error phase does not outlive the call.
func (h *Handler) fail(message string, err error, attrs ...any) {
	h.Phase = state.PhaseError
	h.LastError = message
	h.logger.Error(message, append(attrs, "err", err)...)
	h.notifier.Notify(message, notify.SeverityError)
	h.settlePhase()
}

// settlePhase derives the resting phase from the loading flag.
func (h *Handler) settlePhase() {
	if h.IsLoading {
		h.Phase = state.PhaseLoading
	} else {
		h.Phase = state.PhaseIdle
	}
}
