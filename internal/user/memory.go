package user

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps users in process memory. It is the unit of truth
// in the simplest deployment and the fixture for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[int64]*User
	byName map[string]int64
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[int64]*User),
		byName: make(map[string]int64),
		nextID: 1,
	}
}

func (m *MemoryStore) Create(ctx context.Context, username, passwordHash string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byName[username]; exists {
		return nil, ErrDuplicateUsername
	}

	u := &User{
		ID:           m.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.nextID++

	m.users[u.ID] = u
	m.byName[username] = u.ID

	copied := *u
	return &copied, nil
}

func (m *MemoryStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byName[username]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *m.users[id]
	return &copied, nil
}

func (m *MemoryStore) FindByID(ctx context.Context, id int64) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *u
	return &copied, nil
}
