package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/store"
)

// TasksHandler provides REST handlers for task management. Every operation
// is scoped to the authenticated caller; there is no cross-user access.
type TasksHandler struct {
	tasks store.TaskStoreIface
}

// NewTasksHandler creates a TasksHandler.
func NewTasksHandler(ts store.TaskStoreIface) *TasksHandler {
	return &TasksHandler{tasks: ts}
}

// List returns the caller's tasks, newest first.
// GET /api/v1/tasks
//
// @Summary      List tasks
// @Description  Returns the caller's tasks, newest first, with cursor pagination.
// @Tags         Tasks
// @Produce      json
// @Param        cursor  query  string  false  "Opaque pagination cursor"
// @Param        limit   query  int     false  "Page size (default 50, max 200)"
// @Success      200  {object}  TaskListResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tasks [get]
func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	cursorCreatedAt, cursorID, limit := parsePagination(r)

	// Fetch one extra row to learn whether another page exists.
	tasks, err := h.tasks.ListByUser(r.Context(), user.ID, cursorCreatedAt, cursorID, limit+1)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := TaskListResponse{Tasks: make([]TaskResponse, 0, len(tasks))}
	if len(tasks) > limit {
		tasks = tasks[:limit]
		last := tasks[len(tasks)-1]
		next := encodeCursor(last.CreatedAt.UTC().Format(time.RFC3339Nano), last.ID)
		resp.NextCursor = &next
	}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(t))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create adds a new task for the caller.
// POST /api/v1/tasks
//
// @Summary      Create a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        task  body  CreateTaskRequest  true  "Task to create"
// @Success      201  {object}  TaskResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tasks [post]
func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "BAD_REQUEST")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", "TITLE_REQUIRED")
		return
	}

	task, err := h.tasks.Create(r.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.TasksCreatedTotal.Inc()
	writeJSON(w, http.StatusCreated, toTaskResponse(task))
}

// Get returns a single task.
// GET /api/v1/tasks/{id}
//
// @Summary      Get a task
// @Tags         Tasks
// @Produce      json
// @Param        id  path  string  true  "Task ID"
// @Success      200  {object}  TaskResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tasks/{id} [get]
func (h *TasksHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	task, err := h.tasks.GetByID(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeTaskError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

// Update changes a task's title and description.
// PUT /api/v1/tasks/{id}
//
// @Summary      Update a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Task ID"
// @Param        task  body  UpdateTaskRequest  true  "New task fields"
// @Success      200  {object}  TaskResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tasks/{id} [put]
func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "BAD_REQUEST")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required", "TITLE_REQUIRED")
		return
	}

	task, err := h.tasks.Update(r.Context(), user.ID, chi.URLParam(r, "id"), req.Title, req.Description)
	if err != nil {
		writeTaskError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

// Complete flips a task's completed flag.
// PATCH /api/v1/tasks/{id}/complete
//
// @Summary      Complete or reopen a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Task ID"
// @Param        body  body  CompleteTaskRequest  true  "Completed flag"
// @Success      200  {object}  TaskResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tasks/{id}/complete [patch]
func (h *TasksHandler) Complete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	var req CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", "BAD_REQUEST")
		return
	}

	task, err := h.tasks.SetCompleted(r.Context(), user.ID, chi.URLParam(r, "id"), req.Completed)
	if err != nil {
		writeTaskError(w, err)
		return
	}

	if req.Completed {
		metrics.TasksCompletedTotal.Inc()
	}
	writeJSON(w, http.StatusOK, toTaskResponse(task))
}

// Delete removes a task.
// DELETE /api/v1/tasks/{id}
//
// @Summary      Delete a task
// @Tags         Tasks
// @Param        id  path  string  true  "Task ID"
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerToken
// @Router       /tasks/{id} [delete]
func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "UNAUTHORIZED")
		return
	}

	if err := h.tasks.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		writeTaskError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeTaskError maps store errors to API responses.
func writeTaskError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "task not found", "NOT_FOUND")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
}
