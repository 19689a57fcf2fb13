package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hy4ri/todo-tui/internal/api"
)

// ErrNotFound is returned when a todo does not exist.
var ErrNotFound = errors.New("not found")

// FakeGateway is an in-memory implementation of the controller's gateway for testing.
type FakeGateway struct {
	mu     sync.Mutex
	todos  []api.Todo
	nextID int

	// Error injection for testing
	ListErr   error
	CreateErr error
	DeleteErr error

	// Call records
	ListCalls   int
	CreateCalls []string
	DeleteCalls []string
}

// NewFakeGateway creates a gateway holding the given todos.
func NewFakeGateway(todos ...api.Todo) *FakeGateway {
	return &FakeGateway{
		todos:  append([]api.Todo(nil), todos...),
		nextID: len(todos) + 1,
	}
}

// SetTodos replaces the remote collection.
func (f *FakeGateway) SetTodos(todos ...api.Todo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.todos = append([]api.Todo(nil), todos...)
}

// ListTodos implements the gateway.
func (f *FakeGateway) ListTodos(ctx context.Context) ([]api.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]api.Todo{}, f.todos...), nil
}

// CreateTodo implements the gateway.
func (f *FakeGateway) CreateTodo(ctx context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls = append(f.CreateCalls, text)
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.todos = append(f.todos, api.Todo{ID: fmt.Sprintf("%d", f.nextID), Task: text})
	f.nextID++
	return nil
}

// DeleteTodo implements the gateway.
func (f *FakeGateway) DeleteTodo(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls = append(f.DeleteCalls, id)
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i, todo := range f.todos {
		if todo.ID == id {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return &api.FetchError{Op: "delete todo", Detail: ErrNotFound.Error()}
}

// Lists returns how many list calls were made.
func (f *FakeGateway) Lists() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ListCalls
}
