package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Task struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Completed   bool      `db:"completed"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// TaskStore is the sqlx-backed implementation of TaskStoreIface. Every
// operation is scoped by user ID; a task belonging to another user reads as
// ErrNotFound rather than forbidden.
type TaskStore struct {
	db *sqlx.DB
}

func NewTaskStore(db *sqlx.DB) *TaskStore {
	return &TaskStore{db: db}
}

// q rebinds ? placeholders to the driver's native format.
func (s *TaskStore) q(query string) string { return s.db.Rebind(query) }

// Create inserts a new task for the given user.
func (s *TaskStore) Create(ctx context.Context, userID, title, description string) (*Task, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO tasks (id, user_id, title, description, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), id, userID, title, description, false, now, now)
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, userID, id)
}

// GetByID returns the task with the given ID if it belongs to userID.
func (s *TaskStore) GetByID(ctx context.Context, userID, id string) (*Task, error) {
	var t Task
	err := s.db.GetContext(ctx, &t, s.q(`
		SELECT * FROM tasks WHERE id = ? AND user_id = ?
	`), id, userID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByUser returns up to limit tasks for the user, newest first.
// afterCreatedAt (RFC3339Nano) and afterID form an optional keyset cursor
// matching the (created_at, id) sort order: only tasks strictly older than
// that pair are returned, so rows sharing the boundary timestamp are not
// skipped across pages. An unparseable timestamp is ignored and the listing
// starts from the top.
func (s *TaskStore) ListByUser(ctx context.Context, userID, afterCreatedAt, afterID string, limit int) ([]*Task, error) {
	var tasks []*Task

	if afterCreatedAt != "" {
		if cur, err := time.Parse(time.RFC3339Nano, afterCreatedAt); err == nil {
			err := s.db.SelectContext(ctx, &tasks, s.q(`
				SELECT * FROM tasks
				WHERE user_id = ? AND (created_at < ? OR (created_at = ? AND id < ?))
				ORDER BY created_at DESC, id DESC LIMIT ?
			`), userID, cur.UTC(), cur.UTC(), afterID, limit)
			return tasks, err
		}
	}

	err := s.db.SelectContext(ctx, &tasks, s.q(`
		SELECT * FROM tasks WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?
	`), userID, limit)
	return tasks, err
}

// Update changes a task's title and description.
func (s *TaskStore) Update(ctx context.Context, userID, id, title, description string) (*Task, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE tasks SET title = ?, description = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`), title, description, time.Now().UTC(), id, userID)
	if err != nil {
		return nil, err
	}
	if err := requireRow(res); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, userID, id)
}

// SetCompleted flips a task's completed flag.
func (s *TaskStore) SetCompleted(ctx context.Context, userID, id string, completed bool) (*Task, error) {
	res, err := s.db.ExecContext(ctx, s.q(`
		UPDATE tasks SET completed = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`), completed, time.Now().UTC(), id, userID)
	if err != nil {
		return nil, err
	}
	if err := requireRow(res); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, userID, id)
}

// Delete removes a task. Returns ErrNotFound when nothing was deleted.
func (s *TaskStore) Delete(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx, s.q(`
		DELETE FROM tasks WHERE id = ? AND user_id = ?
	`), id, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// requireRow converts a zero-rows-affected result into ErrNotFound.
func requireRow(res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
