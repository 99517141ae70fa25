package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stackhaven/zonemenu/internal/menu"
)

// scopeClause returns the SQL fragment and arguments that select rows
// belonging to a scope. A nil UserID means the global scope, stored as
// NULL user_id.
func scopeClause(scope menu.Scope) (string, []any) {
	if scope.UserID == nil {
		return "layout = ? AND user_id IS NULL", []any{scope.Layout}
	}
	return "layout = ? AND user_id = ?", []any{scope.Layout, *scope.UserID}
}

// ConfigRows returns the stored item configuration rows for a scope,
// ordered by sort_order then insertion id for a stable result.
func (s *Store) ConfigRows(ctx context.Context, scope menu.Scope) ([]menu.ConfigRow, error) {
	where, args := scopeClause(scope)
	query := fmt.Sprintf(`
		SELECT item_key, parent_key, zone, sort_order, visible
		FROM menu_item_configs
		WHERE %s
		ORDER BY sort_order, id`, where)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query item configs: %w", err)
	}
	defer rows.Close()

	var result []menu.ConfigRow
	for rows.Next() {
		var row menu.ConfigRow
		var parent sql.NullString
		if err := rows.Scan(&row.Key, &parent, &row.Zone, &row.SortOrder, &row.Visible); err != nil {
			return nil, fmt.Errorf("scan item config: %w", err)
		}
		if parent.Valid {
			row.ParentKey = &parent.String
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item configs: %w", err)
	}

	return result, nil
}

// ConfigMap returns the stored configuration for a scope keyed by item key.
func (s *Store) ConfigMap(ctx context.Context, scope menu.Scope) (map[string]menu.ItemConfig, error) {
	rows, err := s.ConfigRows(ctx, scope)
	if err != nil {
		return nil, err
	}
	configs := make(map[string]menu.ItemConfig, len(rows))
	for _, row := range rows {
		configs[row.Key] = row.Config()
	}
	return configs, nil
}

// HasConfig reports whether any item configuration rows exist for a scope.
func (s *Store) HasConfig(ctx context.Context, scope menu.Scope) (bool, error) {
	where, args := scopeClause(scope)
	query := fmt.Sprintf("SELECT COUNT(*) FROM menu_item_configs WHERE %s", where)

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("count item configs: %w", err)
	}
	return count > 0, nil
}

// SaveConfig replaces all item configuration rows for a scope with the
// given rows in a single transaction. An empty slice clears the scope.
func (s *Store) SaveConfig(ctx context.Context, scope menu.Scope, rows []menu.ConfigRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	where, args := scopeClause(scope)
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM menu_item_configs WHERE %s", where), args...); err != nil {
		return fmt.Errorf("clear item configs: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO menu_item_configs (layout, user_id, item_key, parent_key, zone, sort_order, visible)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	var userID any
	if scope.UserID != nil {
		userID = *scope.UserID
	}

	for _, row := range rows {
		zone := row.Zone
		if zone == "" {
			zone = menu.DefaultZone
		}
		var parent any
		if row.ParentKey != nil {
			parent = *row.ParentKey
		}
		if _, err := stmt.ExecContext(ctx, scope.Layout, userID, row.Key, parent, zone, row.SortOrder, row.Visible); err != nil {
			return fmt.Errorf("insert item config %q: %w", row.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	return nil
}
