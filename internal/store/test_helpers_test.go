package store

import (
	"path/filepath"
	"testing"

	"github.com/stackhaven/zonemenu/internal/menu"
)

// createTestStore creates a new store backed by a temp file for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// row builds a configuration row with a nil parent.
func row(key, zone string, order int, visible bool) menu.ConfigRow {
	return menu.ConfigRow{
		Key:       key,
		Zone:      zone,
		SortOrder: order,
		Visible:   visible,
	}
}

// childRow builds a configuration row belonging to a group.
func childRow(key, parent, zone string, order int, visible bool) menu.ConfigRow {
	return menu.ConfigRow{
		Key:       key,
		ParentKey: &parent,
		Zone:      zone,
		SortOrder: order,
		Visible:   visible,
	}
}
