package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// TaskStoreIface exposes all task data operations. Handlers never query the
// DB directly; all access goes through this interface.
type TaskStoreIface interface {
	Create(ctx context.Context, userID, title, description string) (*Task, error)
	GetByID(ctx context.Context, userID, id string) (*Task, error)
	ListByUser(ctx context.Context, userID, afterCreatedAt, afterID string, limit int) ([]*Task, error)
	Update(ctx context.Context, userID, id, title, description string) (*Task, error)
	SetCompleted(ctx context.Context, userID, id string, completed bool) (*Task, error)
	Delete(ctx context.Context, userID, id string) error
}

// UserStoreIface exposes user record operations.
type UserStoreIface interface {
	Create(ctx context.Context, email, displayName string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)
}
