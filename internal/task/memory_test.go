package task

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

func TestMemoryStore_CreateDefaults(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	created, err := store.Create(ctx, 1, "Write report", false)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Completed {
		t.Fatalf("expected completed=false by default")
	}
	if created.Title != "Write report" {
		t.Fatalf("unexpected title %q", created.Title)
	}
	if created.UserID != 1 {
		t.Fatalf("unexpected user id %d", created.UserID)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestMemoryStore_ListStableOrder(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.Create(ctx, 1, fmt.Sprintf("task %d", i), false); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	first, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	second, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	if len(first) != 5 {
		t.Fatalf("expected 5 tasks, got %d", len(first))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("ordering not stable across calls")
		}
		if i > 0 && first[i].ID <= first[i-1].ID {
			t.Fatalf("expected insertion order, got %d after %d", first[i].ID, first[i-1].ID)
		}
	}
}

func TestMemoryStore_OwnerScoping(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	mine, err := store.Create(ctx, 1, "mine", false)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := store.Create(ctx, 2, "theirs", false); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	list, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	for _, got := range list {
		if got.ID == mine.ID {
			t.Fatalf("user 2 can see user 1's task")
		}
	}

	// Cross-user update/delete must read as not-found, never forbidden.
	done := true
	if _, err := store.Update(ctx, 2, mine.ID, Patch{Completed: &done}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for cross-user update, got %v", err)
	}
	if err := store.Delete(ctx, 2, mine.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for cross-user delete, got %v", err)
	}

	// Owner still sees the task untouched.
	got, err := store.Update(ctx, 1, mine.ID, Patch{})
	if err != nil {
		t.Fatalf("owner update error: %v", err)
	}
	if got.Completed {
		t.Fatalf("cross-user update modified the task")
	}
}

func TestMemoryStore_UpdatePatchSemantics(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	created, err := store.Create(ctx, 1, "Write report", false)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	done := true
	updated, err := store.Update(ctx, 1, created.ID, Patch{Completed: &done})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !updated.Completed {
		t.Fatalf("expected completed=true")
	}
	if updated.Title != "Write report" {
		t.Fatalf("patch changed title: %q", updated.Title)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("patch changed created_at")
	}

	title := "Write final report"
	updated, err = store.Update(ctx, 1, created.ID, Patch{Title: &title})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != title || !updated.Completed {
		t.Fatalf("unexpected task after title patch: %+v", updated)
	}
}

func TestMemoryStore_DeleteLifecycle(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	created, err := store.Create(ctx, 1, "Write report", false)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := store.Delete(ctx, 1, created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	list, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(list))
	}

	// Second delete of the same id is not found.
	if err := store.Delete(ctx, 1, created.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemoryStore_ConcurrentCreates(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	const n = 100
	ids := make(chan int64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := store.Create(ctx, 1, "concurrent", false)
			if err != nil {
				t.Errorf("Create error: %v", err)
				return
			}
			ids <- created.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate task id assigned: %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d distinct ids, got %d", n, len(seen))
	}
}
