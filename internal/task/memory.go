package task

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore keeps tasks in process memory, one map keyed by task id.
// The mutex serializes id assignment, so concurrent creates always
// receive distinct, strictly increasing ids.
type MemoryStore struct {
	mu     sync.RWMutex
	tasks  map[int64]*Task
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks:  make(map[int64]*Task),
		nextID: 1,
	}
}

func (m *MemoryStore) List(ctx context.Context, userID int64) ([]Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Task, 0)
	for _, t := range m.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}

	// Ids are assigned in insertion order, so sorting by id gives a
	// stable insertion ordering across calls.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (m *MemoryStore) Create(ctx context.Context, userID int64, title string, completed bool) (*Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &Task{
		ID:        m.nextID,
		Title:     title,
		Completed: completed,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	m.nextID++

	m.tasks[t.ID] = t

	copied := *t
	return &copied, nil
}

func (m *MemoryStore) Update(ctx context.Context, userID, id int64, patch Patch) (*Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return nil, ErrNotFound
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}

	copied := *t
	return &copied, nil
}

func (m *MemoryStore) Delete(ctx context.Context, userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return ErrNotFound
	}

	delete(m.tasks, id)
	return nil
}
