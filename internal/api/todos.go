package api

import (
	"context"
	"net/url"
)

// ListTodos returns the whole collection in server order.
func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	todos := make([]Todo, 0)
	if err := c.Get(ctx, "list todos", CollectionPath, &todos); err != nil {
		return nil, err
	}
	// A literal null body decodes to a nil slice.
	if todos == nil {
		todos = make([]Todo, 0)
	}
	return todos, nil
}

// CreateTodo adds a task with the given text. The server assigns the id.
func (c *Client) CreateTodo(ctx context.Context, text string) error {
	return c.Post(ctx, "add todo", CollectionPath, CreateTodoRequest{Task: text}, nil)
}

// DeleteTodo deletes the task with the given id.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.Delete(ctx, "delete todo", CollectionPath+"/"+url.PathEscape(id))
}
