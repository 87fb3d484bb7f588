package api

import (
	"time"

	"github.com/taskdeck/taskdeck/internal/store"
)

// CreateTaskRequest is the request body for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// UpdateTaskRequest is the request body for PUT /api/tasks/{id}.
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CompleteTaskRequest is the request body for PATCH /api/tasks/{id}/complete.
type CompleteTaskRequest struct {
	Completed bool `json:"completed"`
}

// TaskResponse is the JSON representation of a single task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskListResponse is the paginated response for GET /api/tasks.
type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	NextCursor *string        `json:"next_cursor"`
}

func toTaskResponse(t *store.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
