package history

import (
	"github.com/dshills/editcore/selection"
	"github.com/dshills/editcore/text"
)

// Origin identifies the source of an edit. It exists purely to decide
// undo-group coalescing: edits from different origins never share a group.
type Origin uint64

// EditKind classifies an edit for grouping. Inserts only coalesce with
// inserts, deletes only with deletes.
type EditKind uint8

const (
	EditInsert EditKind = iota
	EditDelete
)

func (k EditKind) groupsWith(other EditKind) bool {
	return k == other
}

// History owns a Text plus the undo and redo stacks of inverse changes.
type History struct {
	text       text.Text
	prevOrigin Origin
	prevKind   EditKind
	hasPrev    bool
	undo       editStack
	redo       editStack
}

// New returns a history over an empty document.
func New() *History {
	return &History{text: text.New()}
}

// FromText returns a history over a copy of t.
func FromText(t text.Text) *History {
	return &History{text: t.Clone()}
}

// Text returns the buffer the history operates on. Callers must only
// mutate it through an EditScope.
func (h *History) Text() *text.Text {
	return &h.text
}

// ForceNewUndoGroup clears the grouping marker so the next edit always
// starts a fresh undo group. Invoked after selection-only mutations so that
// cursor movement never coalesces with adjacent edits.
func (h *History) ForceNewUndoGroup() {
	h.hasPrev = false
}

// Edit opens an edit scope. If the previous edit came from a different
// origin or was of a different kind, a new undo group anchored at the
// current selection is pushed; otherwise changes keep appending to the open
// group. Any new edit invalidates the redo stack.
func (h *History) Edit(origin Origin, kind EditKind, sel *selection.Selection, changes *[]text.Change) *EditScope {
	if !(h.hasPrev && h.prevOrigin == origin && h.prevKind.groupsWith(kind)) {
		h.prevOrigin = origin
		h.prevKind = kind
		h.hasPrev = true
		h.undo.pushSelection(sel.Clone())
	}
	h.redo.clear()
	return &EditScope{history: h, changes: changes}
}

// Undo reverts the most recent undo group, appending the applied changes to
// changes and returning the selection that preceded the group. Returns
// false, leaving everything untouched, if there is nothing to undo.
func (h *History) Undo(sel *selection.Selection, changes *[]text.Change) (*selection.Selection, bool) {
	return h.pop(&h.undo, &h.redo, sel, changes)
}

// Redo reapplies the most recently undone group, the mirror of Undo.
func (h *History) Redo(sel *selection.Selection, changes *[]text.Change) (*selection.Selection, bool) {
	return h.pop(&h.redo, &h.undo, sel, changes)
}

func (h *History) pop(from, to *editStack, sel *selection.Selection, changes *[]text.Change) (*selection.Selection, bool) {
	start := len(*changes)
	restored, ok := from.popUntilSelection(changes)
	if !ok {
		return nil, false
	}
	// The group the next edit would have coalesced into may just have been
	// popped. Break the chain so it starts a fresh one.
	h.hasPrev = false
	to.pushSelection(sel.Clone())
	for _, change := range (*changes)[start:] {
		inverted := change.Invert(&h.text)
		h.text.ApplyChange(change)
		to.pushChange(inverted)
	}
	return restored, true
}

// EditScope applies changes to the buffer on behalf of one Edit call,
// recording inverses onto the open undo group and the applied changes onto
// the caller's change log.
type EditScope struct {
	history *History
	changes *[]text.Change
}

// ApplyChange inverts change against the pre-change buffer, applies it, and
// records both directions.
func (e *EditScope) ApplyChange(change text.Change) {
	inverted := change.Invert(&e.history.text)
	e.history.text.ApplyChange(change)
	e.history.undo.pushChange(inverted)
	*e.changes = append(*e.changes, change)
}
