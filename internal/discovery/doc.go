// Package discovery enumerates the application's native navigation
// elements, independent of any saved configuration.
//
// The canonical adapter loads declarative menu definition files written in
// CUE from a directory: each file contributes entries to a top-level `menu`
// list of items and groups (one nesting level — groups contain items).
// Definitions are validated against an embedded schema before they are
// flattened into the discovery-order element list.
//
// Identity: items should declare an explicit `key` (their implementation
// identity, e.g. a page class path). Items without one get an opaque
// fallback key that does not survive reloads. Groups derive their key from
// their label, or from an explicit `id` when stability across renames is
// wanted.
package discovery
