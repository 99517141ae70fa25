// Package store provides SQLite-backed storage for menu configuration.
//
// Two record tables, both scoped by (layout, optional user):
//   - menu_item_configs: one row per item key holding zone, sort order,
//     visibility and group assignment
//   - menu_zone_settings: one row per zone+key holding a "1"/"0" flag
//
// Saving item configs replaces the whole scoped row set (delete + insert
// inside one transaction), so a save is a snapshot write and stale rows
// cannot accumulate. Zone settings are upserted per key. Rows scoped to a
// user are removed with the user (ON DELETE CASCADE).
//
// Concurrent readers see a consistent pre- or post-save snapshot: the
// database runs in WAL mode and the pool is capped at a single connection,
// so a reader never observes the window between delete and insert.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
