// Package testutil provides testing utilities.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/hy4ri/todo-tui/internal/api"
)

// FakeAPI is an in-memory server speaking the /api/todos contract.
type FakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	todos    []api.Todo
	requests []string
	status   int
}

// NewFakeAPI starts a fake server. Close it when done.
func NewFakeAPI() *FakeAPI {
	f := &FakeAPI{}

	r := mux.NewRouter()
	r.Use(f.record)
	r.HandleFunc(api.CollectionPath, f.list).Methods(http.MethodGet)
	r.HandleFunc(api.CollectionPath, f.create).Methods(http.MethodPost)
	r.HandleFunc(api.CollectionPath+"/{id}", f.remove).Methods(http.MethodDelete)

	f.Server = httptest.NewServer(r)
	return f
}

// Seed adds a todo with a fixed id.
func (f *FakeAPI) Seed(id, task string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.todos = append(f.todos, api.Todo{ID: id, Task: task})
}

// FailWith makes every following request answer with status.
// Zero restores normal behavior.
func (f *FakeAPI) FailWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

// Todos returns a copy of the stored collection.
func (f *FakeAPI) Todos() []api.Todo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.Todo(nil), f.todos...)
}

// Requests returns "METHOD path" for every request received, in order.
func (f *FakeAPI) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *FakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Method+" "+r.URL.Path)
		status := f.status
		f.mu.Unlock()

		if status != 0 && (status < 200 || status > 299) {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPI) list(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(f.Todos())
}

func (f *FakeAPI) create(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "expected application/json", http.StatusUnsupportedMediaType)
		return
	}

	var req api.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	todo := api.Todo{ID: uuid.NewString(), Task: req.Task}
	f.mu.Lock()
	f.todos = append(f.todos, todo)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(todo)
}

func (f *FakeAPI) remove(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, todo := range f.todos {
		if todo.ID == id {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "todo not found", http.StatusNotFound)
}
