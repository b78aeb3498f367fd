package user

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryStore_CreateAndFind(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	u, err := store.Create(ctx, "alice", "hash-1")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.ID != 1 {
		t.Fatalf("expected id 1, got %d", u.ID)
	}
	if u.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	got, err := store.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername error: %v", err)
	}
	if got.ID != u.ID || got.PasswordHash != "hash-1" {
		t.Fatalf("unexpected user: %+v", got)
	}

	byID, err := store.FindByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if byID.Username != "alice" {
		t.Fatalf("unexpected user: %+v", byID)
	}
}

func TestMemoryStore_DuplicateUsername(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Create(ctx, "bob", "h1"); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := store.Create(ctx, "bob", "h2"); err != ErrDuplicateUsername {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	// Exact-match policy: differing case is a different username.
	if _, err := store.Create(ctx, "Bob", "h3"); err != nil {
		t.Fatalf("expected case-sensitive create to succeed, got %v", err)
	}
}

func TestMemoryStore_NotFound(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.FindByUsername(ctx, "ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.FindByID(ctx, 42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_ConcurrentCreates(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := store.Create(ctx, "user-"+string(rune('a'+i%26))+string(rune('a'+i/26)), "h")
			if err != nil {
				t.Errorf("Create error: %v", err)
				return
			}
			ids <- u.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id assigned: %d", id)
		}
		seen[id] = true
	}
}
