package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func newTokenTestEnv(t *testing.T) (*SQLTokenStore, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	us := store.NewUserStore(db)
	u, err := us.Create(context.Background(), "test@example.com", "Test")
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return NewSQLTokenStore(db), u.ID
}

func TestGenerateToken(t *testing.T) {
	plaintext, hash, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if !strings.HasPrefix(plaintext, "td_") {
		t.Errorf("plaintext %q missing td_ prefix", plaintext)
	}
	if got := HashToken(plaintext); got != hash {
		t.Errorf("HashToken(plaintext) = %q, want %q", got, hash)
	}

	// Tokens must not repeat.
	other, _, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if other == plaintext {
		t.Error("two generated tokens are identical")
	}
}

func TestTokenStore_CreateAndGetByHash(t *testing.T) {
	ts, userID := newTokenTestEnv(t)
	ctx := context.Background()

	_, hash, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	rec, err := ts.Create(ctx, userID, "ci", hash, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.UserID != userID || rec.Name != "ci" {
		t.Errorf("record = %+v, want user %s name ci", rec, userID)
	}

	got, err := ts.GetByHash(ctx, hash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if got.ID != rec.ID {
		t.Errorf("GetByHash ID = %s, want %s", got.ID, rec.ID)
	}

	if _, err := ts.GetByHash(ctx, "nope"); err != store.ErrNotFound {
		t.Errorf("GetByHash(unknown) err = %v, want ErrNotFound", err)
	}
}

func TestTokenStore_Revoke(t *testing.T) {
	ts, userID := newTokenTestEnv(t)
	ctx := context.Background()

	_, hash, _ := GenerateToken()
	rec, err := ts.Create(ctx, userID, "ci", hash, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := ts.Revoke(ctx, rec.ID, userID); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	got, err := ts.GetByHash(ctx, hash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if !got.RevokedAt.Valid {
		t.Error("revoked_at not set after Revoke")
	}

	// Revoking on behalf of the wrong user must not succeed.
	if err := ts.Revoke(ctx, rec.ID, "someone-else"); err != store.ErrNotFound {
		t.Errorf("Revoke(wrong user) err = %v, want ErrNotFound", err)
	}
}

func TestTokenStore_ListByUser(t *testing.T) {
	ts, userID := newTokenTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, hash, _ := GenerateToken()
		if _, err := ts.Create(ctx, userID, "ci", hash, nil); err != nil {
			t.Fatalf("Create: %v", err)
		}
		time.Sleep(time.Millisecond) // distinct created_at ordering
	}

	recs, err := ts.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(recs) != 3 {
		t.Errorf("len = %d, want 3", len(recs))
	}
}
