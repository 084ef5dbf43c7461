// Package history provides grouped undo/redo over a text buffer.
//
// A History owns the authoritative Text plus two group-structured stacks of
// inverse changes. Consecutive edits coalesce into one undo group while they
// come from the same origin and are of the same kind; a different origin, a
// different kind, or an explicit ForceNewUndoGroup call starts a fresh
// group. Each group also records the selection that preceded it, so undoing
// a group restores both the text and where the cursors were.
//
// Edits flow through an EditScope: every change applied through the scope is
// inverted against the pre-change buffer and the inverse pushed onto the
// open undo group. Undo pops a group, re-inverts each stored change against
// the live buffer as it applies it, and pushes the fresh inverses onto the
// redo stack; redo mirrors the operation in the other direction. Undo or
// redo on an empty stack is a silent no-op, not an error.
package history
