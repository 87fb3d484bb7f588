package store_test

import (
	"context"
	"testing"

	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func TestUserStore_CreateAndGet(t *testing.T) {
	us := store.NewUserStore(testutil.NewTestDB(t))
	ctx := context.Background()

	u, err := us.Create(ctx, "jo@example.com", "Jo")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	byID, err := us.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Email != "jo@example.com" {
		t.Errorf("email = %q", byID.Email)
	}

	byEmail, err := us.GetByEmail(ctx, "jo@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Errorf("GetByEmail ID = %s, want %s", byEmail.ID, u.ID)
	}

	if _, err := us.GetByEmail(ctx, "nobody@example.com"); err != store.ErrNotFound {
		t.Errorf("GetByEmail(unknown) err = %v, want ErrNotFound", err)
	}
}

func TestUserStore_DuplicateEmail(t *testing.T) {
	us := store.NewUserStore(testutil.NewTestDB(t))
	ctx := context.Background()

	if _, err := us.Create(ctx, "dup@example.com", "One"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := us.Create(ctx, "dup@example.com", "Two"); err == nil {
		t.Error("second Create with same email succeeded, want unique violation")
	}
}

func TestUserStore_ListAll(t *testing.T) {
	us := store.NewUserStore(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, e := range []string{"b@example.com", "a@example.com"} {
		if _, err := us.Create(ctx, e, e); err != nil {
			t.Fatalf("Create %s: %v", e, err)
		}
	}

	users, err := us.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len = %d, want 2", len(users))
	}
	if users[0].DisplayName != "a@example.com" {
		t.Errorf("order: first = %s, want a@example.com", users[0].DisplayName)
	}
}
