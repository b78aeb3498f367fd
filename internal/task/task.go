package task

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound covers both a missing task id and a task owned by a
// different user. Callers must not be able to tell the two apart.
var ErrNotFound = errors.New("task not found")

type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Patch carries the fields a partial update may change.
// Nil means "leave unchanged".
type Patch struct {
	Title     *string
	Completed *bool
}

// Store is the task repository. Every operation is scoped to the
// calling user; a task never escapes its owner's scope.
type Store interface {
	List(ctx context.Context, userID int64) ([]Task, error)
	Create(ctx context.Context, userID int64, title string, completed bool) (*Task, error)
	Update(ctx context.Context, userID, id int64, patch Patch) (*Task, error)
	Delete(ctx context.Context, userID, id int64) error
}
