package task

import (
	"context"
	"database/sql"

	"taskboard/internal/db"
)

// PostgresStore is the durable task repository. The user_id predicate
// on every statement enforces owner scoping in the database itself.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context, userID int64) ([]Task, error) {

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, completed, user_id, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.UserID, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, rows.Err()
}

func (s *PostgresStore) Create(ctx context.Context, userID int64, title string, completed bool) (*Task, error) {

	var t Task
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tasks (title, completed, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, completed, user_id, created_at
	`, title, completed, userID).Scan(
		&t.ID,
		&t.Title,
		&t.Completed,
		&t.UserID,
		&t.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *PostgresStore) Update(ctx context.Context, userID, id int64, patch Patch) (*Task, error) {

	var t Task
	err := s.db.QueryRowContext(ctx, `
		UPDATE tasks
		SET title     = COALESCE($1, title),
		    completed = COALESCE($2, completed)
		WHERE id = $3 AND user_id = $4
		RETURNING id, title, completed, user_id, created_at
	`, patch.Title, patch.Completed, id, userID).Scan(
		&t.ID,
		&t.Title,
		&t.Completed,
		&t.UserID,
		&t.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID, id int64) error {

	res, err := s.db.ExecContext(ctx, `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
