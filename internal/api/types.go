// Package api provides a client for the todos REST API.
package api

// Todo represents a single task stored by the server.
type Todo struct {
	ID   string `json:"id"`
	Task string `json:"task"`
}

// CreateTodoRequest is the body sent when adding a task.
type CreateTodoRequest struct {
	Task string `json:"task"`
}
