// Package render projects the stored menu configuration into renderable
// per-zone trees.
//
// The projector combines three inputs: the discovery adapter (the native
// menu tree), the config store (saved overrides for a scope), and the zone
// configuration (zone list, base zones, default zone). Projection is a pure
// read: it never mutates stored state.
//
// Two rendering paths exist. When a scope has saved configuration, each
// zone is assembled from its blocks. When a scope has never been saved, the
// default zone renders the discovery tree as-is and every other zone is
// empty. In both paths zones other than the default render in top mode:
// group members are promoted inline and the group header is dropped, since
// bar zones have no room for nesting.
package render
