package state

import "github.com/charmbracelet/bubbles/textinput"

// NewTaskInput creates the "Task" form field.
// There is no client-side validation; whatever is typed is submitted.
func NewTaskInput() textinput.Model {
	input := textinput.New()
	input.Placeholder = "Enter task name ..."
	input.Prompt = ""
	input.CharLimit = 500
	input.Width = 50
	input.Focus()
	return input
}
