package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// Refresh raises the loading flag and fetches the whole collection.
// The returned command performs the request.
func (h *Handler) Refresh() tea.Cmd {
	h.issued++
	generation := h.issued
	h.IsLoading = true
	h.Phase = state.PhaseLoading
	h.logger.Debug("refreshing todos", "generation", generation)

	ctx, gw := h.ctx, h.gateway
	return func() tea.Msg {
		todos, err := gw.ListTodos(ctx)
		if err != nil {
			return refreshFailedMsg{generation: generation, err: err}
		}
		return todosLoadedMsg{generation: generation, todos: todos}
	}
}

// Submit creates a task with text. Empty text is sent as is.
// The loading flag is not raised for the create itself.
func (h *Handler) Submit(text string) tea.Cmd {
	h.logger.Debug("adding todo", "text", text)

	ctx, gw := h.ctx, h.gateway
	return func() tea.Msg {
		if err := gw.CreateTodo(ctx, text); err != nil {
			return createFailedMsg{text: text, err: err}
		}
		return todoCreatedMsg{text: text}
	}
}

// Remove deletes the task with id. Items keep the task until the
// follow-up refresh says otherwise.
func (h *Handler) Remove(id string) tea.Cmd {
	h.logger.Debug("deleting todo", "id", id)

	ctx, gw := h.ctx, h.gateway
	return func() tea.Msg {
		if err := gw.DeleteTodo(ctx, id); err != nil {
			return deleteFailedMsg{id: id, err: err}
		}
		return todoDeletedMsg{id: id}
	}
}

// SetPendingInput replaces the uncommitted form text.
func (h *Handler) SetPendingInput(text string) {
	h.PendingInput.SetValue(text)
}

func (h *Handler) handleTodosLoaded(msg todosLoadedMsg) tea.Cmd {
	h.IsLoading = false
	h.settlePhase()

	if msg.generation < h.applied {
		h.logger.Warn("refresh completed out of order",
			"generation", msg.generation,
			"applied", h.applied,
			"discarded", h.opts.DiscardStaleRefresh,
		)
		if h.opts.DiscardStaleRefresh {
			return nil
		}
	} else {
		h.applied = msg.generation
	}

	h.Items = msg.todos
	h.ClampCursor()
	h.logger.Debug("todos loaded", "generation", msg.generation, "count", len(msg.todos))
	return nil
}

func (h *Handler) handleRefreshFailed(msg refreshFailedMsg) tea.Cmd {
	h.IsLoading = false
	h.fail(MsgFetchFailed, msg.err, "generation", msg.generation)
	return nil
}

func (h *Handler) handleTodoCreated(msg todoCreatedMsg) tea.Cmd {
	h.SetPendingInput("")
	return h.Refresh()
}

func (h *Handler) handleCreateFailed(msg createFailedMsg) tea.Cmd {
	h.fail(MsgAddFailed, msg.err, "text", msg.text)
	// The form is cleared even when the create failed.
	h.SetPendingInput("")
	return nil
}

func (h *Handler) handleTodoDeleted(msg todoDeletedMsg) tea.Cmd {
	return h.Refresh()
}

func (h *Handler) handleDeleteFailed(msg deleteFailedMsg) tea.Cmd {
	h.fail(MsgDeleteFailed, msg.err, "id", msg.id)
	return nil
}
