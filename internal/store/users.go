package store

import (
	"context"
	"fmt"
)

// CreateUser inserts a user row and returns its id. Users exist so that
// per-user configuration rows have a foreign key to cascade from.
func (s *Store) CreateUser(ctx context.Context, name string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO users (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

// DeleteUser removes a user row. Configuration rows and zone settings
// scoped to the user are removed by the ON DELETE CASCADE constraints.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
