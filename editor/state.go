package editor

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/dshills/editcore/history"
	"github.com/dshills/editcore/layout"
	"github.com/dshills/editcore/selection"
	"github.com/dshills/editcore/text"
)

var (
	// ErrUnknownDocument is returned when a DocumentID does not name a
	// live document.
	ErrUnknownDocument = errors.New("unknown document")
	// ErrUnknownSession is returned when a SessionID does not name a
	// live session.
	ErrUnknownSession = errors.New("unknown session")
)

// State owns every document and session and serializes all mutation. It is
// not safe for concurrent use; callers drive it from a single goroutine.
type State struct {
	logger   zerolog.Logger
	settings Settings

	documents     []documentSlot
	freeDocuments []uint32
	sessions      []sessionSlot
	freeSessions  []uint32

	// changes is scratch space reused across text modifications.
	changes []text.Change
}

type documentSlot struct {
	generation uint32
	document   *document
}

type sessionSlot struct {
	generation uint32
	session    *session
}

// New returns an empty State with default settings and a no-op logger.
func New(opts ...Option) *State {
	s := &State{
		logger:   zerolog.Nop(),
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateDocument adds a document holding a copy of t and returns its
// handle. The document stays alive until its last session is closed; a
// document that never gets a session is only reclaimed with the State.
func (st *State) CreateDocument(t text.Text) DocumentID {
	id := st.allocDocument(newDocument(t))
	st.logger.Debug().
		Stringer("document", id).
		Int("lines", len(t.Lines())).
		Msg("created document")
	return id
}

// CreateSession opens a new view onto the given document, with the State's
// settings and a single cursor at the start of the text.
func (st *State) CreateSession(document DocumentID) (SessionID, error) {
	doc, ok := st.findDocument(document)
	if !ok {
		return SessionID{}, fmt.Errorf("creating session on %v: %w", document, ErrUnknownDocument)
	}
	id := st.allocSession(newSession(document, doc, st.settings))
	doc.sessions = append(doc.sessions, id)
	st.logger.Debug().
		Stringer("session", id).
		Stringer("document", document).
		Msg("created session")
	return id, nil
}

// CloseSession discards a session. Closing the last session of a document
// discards the document as well.
func (st *State) CloseSession(id SessionID) error {
	sess, ok := st.findSession(id)
	if !ok {
		return fmt.Errorf("closing %v: %w", id, ErrUnknownSession)
	}
	doc := st.document(sess.document)
	doc.removeSession(id)
	st.freeSession(id)
	if len(doc.sessions) == 0 {
		st.freeDocument(sess.document)
		st.logger.Debug().
			Stringer("document", sess.document).
			Msg("destroyed document")
	}
	st.logger.Debug().Stringer("session", id).Msg("closed session")
	return nil
}

// Layout returns the session's layout view, extending the vertical offset
// cache to cover the whole document first. The view borrows the State's
// internals and is invalidated by the next mutation.
func (st *State) Layout(id SessionID) layout.Layout {
	sess := st.session(id)
	doc := st.document(sess.document)
	sess.updateY(doc)
	return st.layoutFor(sess, doc)
}

// Selection returns the session's selection. The value is a read-only view
// into the session; callers mutate it through State methods only.
func (st *State) Selection(id SessionID) *selection.Selection {
	return st.session(id).selection
}

// SetCursor collapses the selection to a single cursor.
func (st *State) SetCursor(id SessionID, cursor selection.Cursor) {
	st.modifySelection(id, func(sess *session, _ *document) {
		sess.selection.Set(selection.RegionFrom(cursor))
		sess.lastAddedRegion = 0
	})
}

// AddCursor adds a cursor as a new selection region.
func (st *State) AddCursor(id SessionID, cursor selection.Cursor) {
	st.modifySelection(id, func(sess *session, _ *document) {
		sess.lastAddedRegion = sess.selection.Add(selection.RegionFrom(cursor))
	})
}

// UpdateLastAddedCursor moves the most recently added region's cursor.
// With resetAnchor the region collapses onto the cursor; without it the
// anchor stays, extending the region.
func (st *State) UpdateLastAddedCursor(id SessionID, cursor selection.Cursor, resetAnchor bool) {
	st.modifySelection(id, func(sess *session, _ *document) {
		sess.lastAddedRegion = sess.selection.Update(sess.lastAddedRegion, func(region selection.Region) selection.Region {
			region.Cursor = cursor
			if resetAnchor {
				region = region.ResetAnchor()
			}
			return region
		})
	})
}

// MoveAllCursorsLeft moves every cursor one grapheme cluster left.
func (st *State) MoveAllCursorsLeft(id SessionID, resetAnchor bool) {
	st.moveAllCursors(id, resetAnchor, moveLeft)
}

// MoveAllCursorsRight moves every cursor one grapheme cluster right.
func (st *State) MoveAllCursorsRight(id SessionID, resetAnchor bool) {
	st.moveAllCursors(id, resetAnchor, moveRight)
}

// Insert replaces every selection region with t, as one undo group.
// Consecutive inserts from the same session coalesce into a single group.
func (st *State) Insert(id SessionID, t text.Text) {
	st.edit(id, history.EditInsert, func(scope *history.EditScope, region selection.Region) {
		scope.ApplyChange(text.Delete(region.Start(), region.Length()))
		scope.ApplyChange(text.Insert(region.Start(), t))
	})
}

// Delete removes every selection region's text, as one undo group.
// Consecutive deletes from the same session coalesce into a single group.
func (st *State) Delete(id SessionID) {
	st.edit(id, history.EditDelete, func(scope *history.EditScope, region selection.Region) {
		scope.ApplyChange(text.Delete(region.Start(), region.Length()))
	})
}

// Undo reverts the newest undo group and restores the selection recorded
// with it. It reports whether there was anything to undo.
func (st *State) Undo(id SessionID) bool {
	var ok bool
	st.modifyText(id, func(sess *session, h *history.History, changes *[]text.Change) *selection.Selection {
		var restored *selection.Selection
		restored, ok = h.Undo(sess.selection, changes)
		return restored
	})
	return ok
}

// Redo reapplies the newest undone group. It reports whether there was
// anything to redo.
func (st *State) Redo(id SessionID) bool {
	var ok bool
	st.modifyText(id, func(sess *session, h *history.History, changes *[]text.Change) *selection.Selection {
		var restored *selection.Selection
		restored, ok = h.Redo(sess.selection, changes)
		return restored
	})
	return ok
}

// SetInlineInlays replaces the inline inlays of one line on the session's
// document and reflows the line in every session viewing it.
func (st *State) SetInlineInlays(id SessionID, lineIndex int, inlays []layout.InlineInlay) {
	sess := st.session(id)
	doc := st.document(sess.document)
	sorted := slices.Clone(inlays)
	slices.SortStableFunc(sorted, func(a, b layout.InlineInlay) int {
		return a.ByteOffset - b.ByteOffset
	})
	doc.inlineInlay[lineIndex] = sorted
	for _, other := range doc.sessions {
		st.sessions[other.index].session.updateWrapData(doc, lineIndex)
	}
}

// SetBlockInlays replaces all block inlays on the session's document and
// invalidates the vertical offsets of every session viewing it.
func (st *State) SetBlockInlays(id SessionID, inlays []layout.BlockInlay) {
	sess := st.session(id)
	doc := st.document(sess.document)
	sorted := slices.Clone(inlays)
	slices.SortStableFunc(sorted, func(a, b layout.BlockInlay) int {
		return a.LineIndex - b.LineIndex
	})
	doc.blockInlays = sorted
	for _, other := range doc.sessions {
		s := st.sessions[other.index].session
		s.y = s.y[:0]
	}
}

// FoldLine folds one line in this session, scaling its height by the
// session's folded scale from the given column on. Folds are view state and
// do not affect other sessions.
func (st *State) FoldLine(id SessionID, lineIndex, foldColumnIndex int) {
	sess := st.session(id)
	sess.foldColumnIndex[lineIndex] = foldColumnIndex
	sess.foldScale[lineIndex] = sess.settings.FoldedScale
	if len(sess.y) > lineIndex+1 {
		sess.y = sess.y[:lineIndex+1]
	}
}

// UnfoldLine restores a folded line to full height.
func (st *State) UnfoldLine(id SessionID, lineIndex int) {
	sess := st.session(id)
	sess.foldColumnIndex[lineIndex] = 0
	sess.foldScale[lineIndex] = 1.0
	if len(sess.y) > lineIndex+1 {
		sess.y = sess.y[:lineIndex+1]
	}
}

// SetMaxColumnCount changes the session's soft wrap width and reflows the
// whole document for it.
func (st *State) SetMaxColumnCount(id SessionID, maxColumnCount int) {
	if maxColumnCount < 1 {
		panic("editor: max column count must be at least 1")
	}
	sess := st.session(id)
	if sess.settings.MaxColumnCount == maxColumnCount {
		return
	}
	sess.settings.MaxColumnCount = maxColumnCount
	doc := st.document(sess.document)
	sess.y = sess.y[:0]
	for i := range sess.wrapByteIndices {
		sess.updateWrapData(doc, i)
	}
}

func (st *State) moveAllCursors(id SessionID, resetAnchor bool, f func(selection.Cursor, []string) selection.Cursor) {
	st.modifySelection(id, func(sess *session, doc *document) {
		lines := doc.history.Text().Lines()
		sess.lastAddedRegion = sess.selection.UpdateAll(sess.lastAddedRegion, func(region selection.Region) selection.Region {
			region.Cursor = f(region.Cursor, lines)
			if resetAnchor {
				region = region.ResetAnchor()
			}
			return region
		})
	})
}

// modifySelection runs f over the session and closes the current undo
// group; an edit after a selection change starts a fresh group.
func (st *State) modifySelection(id SessionID, f func(sess *session, doc *document)) {
	sess := st.session(id)
	doc := st.document(sess.document)
	f(sess, doc)
	doc.history.ForceNewUndoGroup()
}

// edit runs f once per selection region inside a single undo group.
// Regions are visited from last to first so positions recorded for earlier
// regions stay valid while later ones are edited.
func (st *State) edit(id SessionID, kind history.EditKind, f func(scope *history.EditScope, region selection.Region)) {
	st.modifyText(id, func(sess *session, h *history.History, changes *[]text.Change) *selection.Selection {
		scope := h.Edit(id.origin(), kind, sess.selection, changes)
		regions := sess.selection.Regions()
		for i := len(regions) - 1; i >= 0; i-- {
			f(scope, regions[i])
		}
		return nil
	})
}

// modifyText is the single funnel for text mutation. It runs f against the
// document's history, then propagates the recorded changes to the
// document's inlays and to the caches and selections of every session
// viewing it.
func (st *State) modifyText(id SessionID, f func(sess *session, h *history.History, changes *[]text.Change) *selection.Selection) {
	sess := st.session(id)
	doc := st.document(sess.document)
	changes := st.changes[:0]
	replacement := f(sess, doc.history, &changes)
	doc.updateAfterTextModified(changes)
	sess.updateAfterTextModified(doc, changes, replacement)
	for _, other := range doc.sessions {
		if s := st.sessions[other.index].session; s != sess {
			s.updateAfterTextModified(doc, changes, nil)
		}
	}
	st.logger.Debug().
		Stringer("session", id).
		Int("changes", len(changes)).
		Msg("text modified")
	st.changes = changes[:0]
}

func (st *State) layoutFor(sess *session, doc *document) layout.Layout {
	return layout.Layout{
		Y:                    sess.y,
		ColumnCount:          sess.columnCount,
		FoldColumnIndex:      sess.foldColumnIndex,
		FoldScale:            sess.foldScale,
		Text:                 doc.history.Text(),
		InlineInlays:         doc.inlineInlay,
		BlockInlays:          doc.blockInlays,
		WrapByteIndices:      sess.wrapByteIndices,
		WrapIndentationWidth: sess.wrapIndentationWidth,
	}
}

func (st *State) session(id SessionID) *session {
	sess, ok := st.findSession(id)
	if !ok {
		panic(fmt.Sprintf("editor: unknown %v", id))
	}
	return sess
}

func (st *State) document(id DocumentID) *document {
	doc, ok := st.findDocument(id)
	if !ok {
		panic(fmt.Sprintf("editor: unknown %v", id))
	}
	return doc
}

func (st *State) findSession(id SessionID) (*session, bool) {
	if int(id.index) >= len(st.sessions) {
		return nil, false
	}
	slot := st.sessions[id.index]
	if slot.session == nil || slot.generation != id.generation {
		return nil, false
	}
	return slot.session, true
}

func (st *State) findDocument(id DocumentID) (*document, bool) {
	if int(id.index) >= len(st.documents) {
		return nil, false
	}
	slot := st.documents[id.index]
	if slot.document == nil || slot.generation != id.generation {
		return nil, false
	}
	return slot.document, true
}

func (st *State) allocDocument(d *document) DocumentID {
	if n := len(st.freeDocuments); n > 0 {
		index := st.freeDocuments[n-1]
		st.freeDocuments = st.freeDocuments[:n-1]
		st.documents[index].document = d
		return DocumentID{index: index, generation: st.documents[index].generation}
	}
	st.documents = append(st.documents, documentSlot{document: d})
	return DocumentID{index: uint32(len(st.documents) - 1)}
}

func (st *State) freeDocument(id DocumentID) {
	st.documents[id.index].document = nil
	st.documents[id.index].generation++
	st.freeDocuments = append(st.freeDocuments, id.index)
}

func (st *State) allocSession(s *session) SessionID {
	if n := len(st.freeSessions); n > 0 {
		index := st.freeSessions[n-1]
		st.freeSessions = st.freeSessions[:n-1]
		st.sessions[index].session = s
		return SessionID{index: index, generation: st.sessions[index].generation}
	}
	st.sessions = append(st.sessions, sessionSlot{session: s})
	return SessionID{index: uint32(len(st.sessions) - 1)}
}

func (st *State) freeSession(id SessionID) {
	st.sessions[id.index].session = nil
	st.sessions[id.index].generation++
	st.freeSessions = append(st.freeSessions, id.index)
}
