package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stackhaven/zonemenu/internal/menu"
)

// ZoneSetting returns the stored value for a zone setting key, or "" if
// the setting has never been written for this scope.
func (s *Store) ZoneSetting(ctx context.Context, scope menu.Scope, zone, key string) (string, error) {
	where, args := scopeClause(scope)
	query := fmt.Sprintf(`
		SELECT value
		FROM menu_zone_settings
		WHERE %s AND zone = ? AND key = ?`, where)
	args = append(args, zone, key)

	var value string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query zone setting: %w", err)
	}
	return value, nil
}

// ZoneSettings returns all stored settings for a scope, keyed by zone
// then setting key.
func (s *Store) ZoneSettings(ctx context.Context, scope menu.Scope) (map[string]map[string]string, error) {
	where, args := scopeClause(scope)
	query := fmt.Sprintf(`
		SELECT zone, key, value
		FROM menu_zone_settings
		WHERE %s`, where)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query zone settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]map[string]string)
	for rows.Next() {
		var zone, key, value string
		if err := rows.Scan(&zone, &key, &value); err != nil {
			return nil, fmt.Errorf("scan zone setting: %w", err)
		}
		if settings[zone] == nil {
			settings[zone] = make(map[string]string)
		}
		settings[zone][key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate zone settings: %w", err)
	}

	return settings, nil
}

// SaveZoneSettings upserts settings for a scope in a single transaction.
// Settings not mentioned are left untouched.
func (s *Store) SaveZoneSettings(ctx context.Context, scope menu.Scope, settings []menu.ZoneSetting) error {
	if len(settings) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin settings save: %w", err)
	}
	defer tx.Rollback()

	where, scopeArgs := scopeClause(scope)

	// Update-then-insert instead of ON CONFLICT: the uniqueness index
	// is an expression index over COALESCE(user_id, 0), which cannot be
	// named as a conflict target.
	updateQuery := fmt.Sprintf(`
		UPDATE menu_zone_settings SET value = ?
		WHERE %s AND zone = ? AND key = ?`, where)
	insertQuery := `
		INSERT INTO menu_zone_settings (layout, user_id, zone, key, value)
		VALUES (?, ?, ?, ?, ?)`

	var userID any
	if scope.UserID != nil {
		userID = *scope.UserID
	}

	for _, setting := range settings {
		args := append([]any{setting.Value}, scopeArgs...)
		args = append(args, setting.Zone, setting.Key)
		res, err := tx.ExecContext(ctx, updateQuery, args...)
		if err != nil {
			return fmt.Errorf("update zone setting %s/%s: %w", setting.Zone, setting.Key, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update zone setting %s/%s: %w", setting.Zone, setting.Key, err)
		}
		if affected == 0 {
			if _, err := tx.ExecContext(ctx, insertQuery, scope.Layout, userID, setting.Zone, setting.Key, setting.Value); err != nil {
				return fmt.Errorf("insert zone setting %s/%s: %w", setting.Zone, setting.Key, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit settings save: %w", err)
	}

	return nil
}

// IsZoneAlwaysVisible reports whether the always_visible flag is set for
// a zone in this scope.
func (s *Store) IsZoneAlwaysVisible(ctx context.Context, scope menu.Scope, zone string) (bool, error) {
	value, err := s.ZoneSetting(ctx, scope, zone, menu.SettingAlwaysVisible)
	if err != nil {
		return false, err
	}
	return value == "1" || value == "true", nil
}
