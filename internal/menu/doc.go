// Package menu defines the core data model for navigation configuration.
//
// Two families of types live here:
//
//   - Element: a navigation element as produced by discovery — the flat,
//     immutable description of what the application's menu natively
//     contains. Elements are a tagged union of items and groups,
//     dispatched by the Type field, never by structural inspection.
//
//   - ItemConfig / ZoneSetting: the persisted override records. One
//     ItemConfig row exists per item key per scope and carries the zone,
//     order, visibility and group assignment the administrator saved.
//     ZoneSetting rows hold small per-zone flags ("1"/"0" encoded).
//
// A Scope is the (layout, optional user) pair that isolates one saved
// configuration from another. A nil user means the global configuration.
//
// Identity rules (see keys.go): items carry a stable key supplied by the
// application; groups derive their key deterministically from their label
// unless the definition assigns an explicit id. Renaming a labeled group
// without an id therefore changes its key and orphans its saved rows.
package menu
