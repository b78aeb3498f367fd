package user

import (
	"context"
	"errors"
	"time"
)

var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrNotFound          = errors.New("user not found")
)

// User is an account record. The password hash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Store is the user directory. Usernames are matched exactly
// (case-sensitive) and must be unique.
type Store interface {
	Create(ctx context.Context, username, passwordHash string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
}
