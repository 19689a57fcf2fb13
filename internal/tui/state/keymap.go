package state

import tea "github.com/charmbracelet/bubbletea"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains the key bindings for the task table.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Actions
	Submit     Key
	SwitchPane Key
	Back       Key
	Quit       Key
	Help       Key
	Refresh    Key

	// Task actions
	AddTask    Key
	DeleteTask Key
	CopyTask   Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},

		Submit:     Key{Key: "enter", Help: "submit"},
		SwitchPane: Key{Key: "tab", Help: "switch form/table"},
		Back:       Key{Key: "esc", Help: "back"},
		Quit:       Key{Key: "q", Help: "quit"},
		Help:       Key{Key: "?", Help: "help"},
		Refresh:    Key{Key: "r", Help: "refresh"},

		AddTask:    Key{Key: "a", Help: "add task"},
		DeleteTask: Key{Key: "d", Help: "remove (dd)"},
		CopyTask:   Key{Key: "y", Help: "copy (yy)"},
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd' or 'yy').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey processes a table key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData) (string, bool) {
	key := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if key == keymap.Top.Key {
			return "top", true
		}
	}

	if ks.WaitingD {
		ks.WaitingD = false
		if key == keymap.DeleteTask.Key {
			return "remove", true
		}
	}

	if ks.WaitingY {
		ks.WaitingY = false
		if key == keymap.CopyTask.Key {
			return "copy", true
		}
	}

	switch key {
	case keymap.Top.Key:
		ks.WaitingG = true
		ks.LastKey = key
		return "", true
	case keymap.DeleteTask.Key:
		ks.WaitingD = true
		ks.LastKey = key
		return "", true
	case keymap.CopyTask.Key:
		ks.WaitingY = true
		ks.LastKey = key
		return "", true
	}

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Bottom.Key:
		return "bottom", true
	case "delete":
		return "remove", true
	case keymap.SwitchPane.Key, keymap.AddTask.Key, "i":
		return "focus_form", true
	case keymap.Quit.Key:
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Refresh.Key:
		return "refresh", true
	case keymap.Back.Key:
		return "back", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
	ks.LastKey = ""
}

// HelpItems returns a slice of key-description pairs for the help view.
func (k KeymapData) HelpItems() [][]string {
	return [][]string{
		{"Form", ""},
		{k.Submit.Key, "Submit task"},
		{k.SwitchPane.Key + "/" + k.Back.Key, "Go to table"},
		{"", ""},
		{"Table", ""},
		{k.Up.Key + "/" + k.Down.Key, "Move up/down"},
		{"gg/" + k.Bottom.Key, "Go to top/bottom"},
		{"dd/delete", "Remove task"},
		{"yy", "Copy task to clipboard"},
		{k.AddTask.Key + "/" + k.SwitchPane.Key, "Go to form"},
		{"", ""},
		{"General", ""},
		{k.Refresh.Key, "Refresh tasks"},
		{k.Help.Key, "Toggle help"},
		{k.Quit.Key + "/ctrl+c", "Quit"},
	}
}
