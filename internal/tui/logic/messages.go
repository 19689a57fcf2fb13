package logic

import "github.com/hy4ri/todo-tui/internal/api"

// Message types
type todosLoadedMsg struct {
	generation uint64
	todos      []api.Todo
}
type refreshFailedMsg struct {
	generation uint64
	err        error
}
type todoCreatedMsg struct{ text string }
type createFailedMsg struct {
	text string
	err  error
}
type todoDeletedMsg struct{ id string }
type deleteFailedMsg struct {
	id  string
	err error
}
type copiedMsg struct {
	text string
	err  error
}
