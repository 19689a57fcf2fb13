package state

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/hy4ri/todo-tui/internal/api"
	"github.com/hy4ri/todo-tui/internal/notify"
	"github.com/hy4ri/todo-tui/internal/tui/styles"
)

// Phase is the controller's synchronization state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	// PhaseError is transient: a failure notification is emitted on entry and
	// the phase falls back to Idle or Loading before the update returns.
	PhaseError
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// Focus represents which part of the screen receives keys.
type Focus int

const (
	FocusForm Focus = iota
	FocusTable
)

// State holds the application state.
// All fields are exported to allow access from logic and ui packages;
// only logic mutates them.
type State struct {
	// Task list
	Items        []api.Todo      // last applied refresh, server order
	PendingInput textinput.Model // uncommitted form text
	IsLoading    bool            // a list refresh is in flight

	// Synchronization
	Phase     Phase
	LastError string // message of the most recent failure

	// UI state
	Focus     Focus
	Cursor    int
	Width     int
	Height    int
	StatusMsg string
	ShowHelp  bool

	// Components
	Spinner  spinner.Model
	Toasts   *notify.Toasts
	Keymap   KeymapData
	KeyState *KeyState
}

// New creates the start-of-application state: no items and not loading.
func New(toasts *notify.Toasts) *State {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	if toasts == nil {
		toasts = notify.NewToasts(0, 0)
	}

	return &State{
		Items:        []api.Todo{},
		PendingInput: NewTaskInput(),
		Phase:        PhaseIdle,
		Focus:        FocusForm,
		Spinner:      s,
		Toasts:       toasts,
		Keymap:       DefaultKeymap(),
		KeyState:     &KeyState{},
	}
}

// PendingText returns the current uncommitted form text.
func (s *State) PendingText() string {
	return s.PendingInput.Value()
}

// SelectedItem returns the task under the cursor, or nil if the list is empty.
func (s *State) SelectedItem() *api.Todo {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return nil
	}
	return &s.Items[s.Cursor]
}

// ClampCursor keeps the cursor inside the current list.
func (s *State) ClampCursor() {
	if s.Cursor >= len(s.Items) {
		s.Cursor = len(s.Items) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}
