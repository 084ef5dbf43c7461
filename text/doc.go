// Package text provides the line-indexed text buffer at the bottom of the
// editing core, together with the position and length arithmetic everything
// else is built on.
//
// A Text is an ordered sequence of line strings and is never empty: an empty
// document is a single empty line. Positions address a byte offset within a
// line and must land on UTF-8 boundaries; lengths are the two-dimensional
// deltas between positions, carrying across line boundaries.
//
// Edits are expressed as Change values, a closed tagged union of Insert and
// Delete. A Change can be inverted against the buffer state that precedes it,
// which is what the history package uses to build its undo and redo stacks.
// Positions can be remapped through a Change that happened elsewhere in the
// buffer; the Drift parameter breaks the tie for a position sitting exactly
// at an insertion point.
//
// All operations assume valid, in-bounds positions. Out-of-bounds access is a
// programming error in the caller and panics; it is never reported as a
// recoverable error value.
package text
