// Package engine implements the menu configuration engine.
//
// A Session merges the discovered element list with the saved override
// rows into an editable item set, serves per-zone block views of it,
// applies mutations (move, reparent, reorder, show/hide), and flattens the
// result back into the flat row set the store persists.
//
// ARCHITECTURE:
//
// Explicit mutable state, single caller:
// The Session is a plain state object. Every mutation is a synchronous
// method call that completes before the next one starts — editing is
// driven by one UI session, so there is no internal locking and no
// concurrency. A Session must not be shared across goroutines.
//
// Blocks:
// A block is the transient edit/render unit of one zone — either a group
// with its ordered member items, or a single standalone item. Blocks are
// derived on demand from the item set and are never stored. Within a zone,
// group blocks and standalone items interleave by their respective
// minimum/own sort order.
//
// Ordering:
// Mutations are responsible for keeping sort orders sane: reorder
// operations stamp dense increasing sequences over a container, and
// cross-container moves reorder both the destination and the source so no
// collisions are left behind. Flatten emits orders verbatim.
//
// INVARIANTS:
//   - All members of a group share one zone (moving a group moves all).
//   - Flatten emits every item key exactly once.
//   - Every item flattens as either a visible block member/standalone row
//     or a trailing hidden row, never both.
package engine
