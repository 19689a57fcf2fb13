package logic

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/todo-tui/internal/tui/state"
)

// Init loads the collection once at startup.
func (h *Handler) Init() tea.Cmd {
	return tea.Batch(
		h.Spinner.Tick,
		h.Refresh(),
	)
}

// Update applies msg to the state and returns any follow-up command.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		h.Width = msg.Width
		h.Height = msg.Height
		h.PendingInput.Width = inputWidth(msg.Width)
		return nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case todosLoadedMsg:
		return h.handleTodosLoaded(msg)

	case refreshFailedMsg:
		return h.handleRefreshFailed(msg)

	case todoCreatedMsg:
		return h.handleTodoCreated(msg)

	case createFailedMsg:
		return h.handleCreateFailed(msg)

	case todoDeletedMsg:
		return h.handleTodoDeleted(msg)

	case deleteFailedMsg:
		return h.handleDeleteFailed(msg)

	case copiedMsg:
		if msg.err != nil {
			h.fail(MsgCopyFailed, msg.err)
			return nil
		}
		h.StatusMsg = "Copied to clipboard"
		return nil
	}

	// Forward non-key messages (like blink) to the form input
	if h.Focus == state.FocusForm {
		var cmd tea.Cmd
		h.PendingInput, cmd = h.PendingInput.Update(msg)
		return cmd
	}

	return nil
}

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if h.ShowHelp {
		switch msg.String() {
		case h.Keymap.Help.Key, h.Keymap.Back.Key, h.Keymap.Quit.Key:
			h.ShowHelp = false
		}
		return nil
	}

	if h.Focus == state.FocusForm {
		return h.handleFormKeyMsg(msg)
	}
	return h.handleTableKeyMsg(msg)
}

func (h *Handler) handleFormKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case h.Keymap.Submit.Key:
		return h.Submit(h.PendingText())
	case h.Keymap.SwitchPane.Key, h.Keymap.Back.Key:
		h.focusTable()
		return nil
	}

	var cmd tea.Cmd
	h.PendingInput, cmd = h.PendingInput.Update(msg)
	return cmd
}

func (h *Handler) handleTableKeyMsg(msg tea.KeyMsg) tea.Cmd {
	action, _ := h.KeyState.HandleKey(msg, h.Keymap)

	switch action {
	case "up":
		if h.Cursor > 0 {
			h.Cursor--
		}
	case "down":
		if h.Cursor < len(h.Items)-1 {
			h.Cursor++
		}
	case "top":
		h.Cursor = 0
	case "bottom":
		h.Cursor = len(h.Items) - 1
		h.ClampCursor()
	case "remove":
		if item := h.SelectedItem(); item != nil {
			return h.Remove(item.ID)
		}
	case "copy":
		if item := h.SelectedItem(); item != nil {
			return h.copySelected(item.Task)
		}
	case "refresh":
		return h.Refresh()
	case "focus_form":
		return h.focusForm()
	case "help":
		h.ShowHelp = true
	case "back":
		h.StatusMsg = ""
		h.LastError = ""
		h.Toasts.Dismiss()
	case "quit":
		return tea.Quit
	}
	return nil
}

func (h *Handler) focusForm() tea.Cmd {
	h.Focus = state.FocusForm
	h.KeyState.Reset()
	return h.PendingInput.Focus()
}

func (h *Handler) focusTable() {
	h.Focus = state.FocusTable
	h.PendingInput.Blur()
	h.ClampCursor()
}

func (h *Handler) copySelected(text string) tea.Cmd {
	copyText := h.copyText
	return func() tea.Msg {
		return copiedMsg{text: text, err: copyText(text)}
	}
}

func inputWidth(width int) int {
	w := width - 12
	if w < 20 {
		w = 20
	}
	if w > 80 {
		w = 80
	}
	return w
}
