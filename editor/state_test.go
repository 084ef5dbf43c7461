package editor

import (
	"errors"
	"testing"

	"github.com/dshills/editcore/layout"
	"github.com/dshills/editcore/selection"
	"github.com/dshills/editcore/text"
)

func newSessionOver(t *testing.T, st *State, content string) SessionID {
	t.Helper()
	doc := st.CreateDocument(text.FromString(content))
	id, err := st.CreateSession(doc)
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}
	return id
}

func cursorAt(line, byte int) selection.Cursor {
	return selection.Cursor{Position: text.Position{Line: line, Byte: byte}}
}

func documentText(st *State, id SessionID) string {
	return st.Layout(id).Text.String()
}

func TestInsertOnEmptyDocument(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "")

	st.Insert(id, text.FromString("hi"))
	if got := documentText(st, id); got != "hi" {
		t.Fatalf("after insert: %q", got)
	}

	if !st.Undo(id) {
		t.Fatal("expected something to undo")
	}
	if got := documentText(st, id); got != "" {
		t.Errorf("after undo: %q", got)
	}
	sel := st.Selection(id)
	if sel.Len() != 1 || sel.Region(0).Cursor.Position != (text.Position{}) {
		t.Errorf("after undo selection = %v", sel.Regions())
	}

	if !st.Redo(id) {
		t.Fatal("expected something to redo")
	}
	if got := documentText(st, id); got != "hi" {
		t.Errorf("after redo: %q", got)
	}
}

func TestUndoOnFreshSessionReportsFalse(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "hello")
	if st.Undo(id) {
		t.Error("undo with no history should report false")
	}
	if st.Redo(id) {
		t.Error("redo with no history should report false")
	}
}

func TestConsecutiveInsertsCoalesce(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "")

	st.Insert(id, text.FromString("a"))
	st.Insert(id, text.FromString("b"))

	if !st.Undo(id) {
		t.Fatal("undo failed")
	}
	if got := documentText(st, id); got != "" {
		t.Errorf("one undo should revert both inserts, got %q", got)
	}
	if st.Undo(id) {
		t.Error("nothing should be left to undo")
	}
}

func TestCursorMoveSplitsUndoGroups(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "")

	st.Insert(id, text.FromString("a"))
	st.SetCursor(id, cursorAt(0, 1))
	st.Insert(id, text.FromString("b"))
	if got := documentText(st, id); got != "ab" {
		t.Fatalf("after inserts: %q", got)
	}

	if !st.Undo(id) {
		t.Fatal("first undo failed")
	}
	if got := documentText(st, id); got != "a" {
		t.Errorf("after first undo: %q", got)
	}
	if !st.Undo(id) {
		t.Fatal("second undo failed")
	}
	if got := documentText(st, id); got != "" {
		t.Errorf("after second undo: %q", got)
	}
}

func TestTwoRegionDeleteUndoesAtomically(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "abcdefgh")

	st.SetCursor(id, cursorAt(0, 0))
	st.UpdateLastAddedCursor(id, cursorAt(0, 2), false)
	st.AddCursor(id, cursorAt(0, 5))
	st.UpdateLastAddedCursor(id, cursorAt(0, 7), false)

	st.Delete(id)
	if got := documentText(st, id); got != "cdeh" {
		t.Fatalf("after delete: %q", got)
	}
	sel := st.Selection(id)
	if sel.Len() != 2 {
		t.Fatalf("expected 2 regions, got %d", sel.Len())
	}
	if sel.Region(0).Cursor.Position != (text.Position{Line: 0, Byte: 0}) ||
		sel.Region(1).Cursor.Position != (text.Position{Line: 0, Byte: 3}) {
		t.Errorf("collapsed regions = %v", sel.Regions())
	}

	if !st.Undo(id) {
		t.Fatal("undo failed")
	}
	if got := documentText(st, id); got != "abcdefgh" {
		t.Errorf("after undo: %q", got)
	}
	sel = st.Selection(id)
	if sel.Len() != 2 {
		t.Fatalf("expected restored 2 regions, got %d", sel.Len())
	}
	first, second := sel.Region(0), sel.Region(1)
	if first.Anchor != (text.Position{Line: 0, Byte: 0}) || first.Cursor.Position != (text.Position{Line: 0, Byte: 2}) {
		t.Errorf("first restored region = %v", first)
	}
	if second.Anchor != (text.Position{Line: 0, Byte: 5}) || second.Cursor.Position != (text.Position{Line: 0, Byte: 7}) {
		t.Errorf("second restored region = %v", second)
	}
}

func TestEditPropagatesToOtherSessions(t *testing.T) {
	st := New()
	doc := st.CreateDocument(text.FromString("hello"))
	a, err := st.CreateSession(doc)
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.CreateSession(doc)
	if err != nil {
		t.Fatal(err)
	}

	st.SetCursor(b, cursorAt(0, 5))
	st.SetCursor(a, cursorAt(0, 0))
	st.Insert(a, text.FromString("xx"))

	if got := documentText(st, b); got != "xxhello" {
		t.Errorf("session b sees %q", got)
	}
	if got := st.Selection(b).Region(0).Cursor.Position; got != (text.Position{Line: 0, Byte: 7}) {
		t.Errorf("session b cursor = %v, want (0:7)", got)
	}

	// Undo from a restores a's recorded selection; b is only remapped.
	if !st.Undo(a) {
		t.Fatal("undo failed")
	}
	if got := st.Selection(b).Region(0).Cursor.Position; got != (text.Position{Line: 0, Byte: 5}) {
		t.Errorf("session b cursor after undo = %v, want (0:5)", got)
	}
}

func TestMoveAllCursorsAcrossGraphemesAndLines(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "hé\ncd")

	st.MoveAllCursorsRight(id, true)
	if got := st.Selection(id).Region(0).Cursor.Position; got != (text.Position{Line: 0, Byte: 1}) {
		t.Fatalf("after first right: %v", got)
	}
	st.MoveAllCursorsRight(id, true)
	if got := st.Selection(id).Region(0).Cursor.Position; got != (text.Position{Line: 0, Byte: 3}) {
		t.Fatalf("after second right: %v", got)
	}
	st.MoveAllCursorsRight(id, true)
	if got := st.Selection(id).Region(0).Cursor.Position; got != (text.Position{Line: 1, Byte: 0}) {
		t.Fatalf("right across line break: %v", got)
	}
	st.MoveAllCursorsLeft(id, true)
	if got := st.Selection(id).Region(0).Cursor.Position; got != (text.Position{Line: 0, Byte: 3}) {
		t.Fatalf("left across line break: %v", got)
	}
}

func TestMoveAllCursorsStopsAtDocumentEdges(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "ab")

	st.MoveAllCursorsLeft(id, true)
	if got := st.Selection(id).Region(0).Cursor.Position; got != (text.Position{}) {
		t.Errorf("left at document start moved to %v", got)
	}
	st.SetCursor(id, cursorAt(0, 2))
	st.MoveAllCursorsRight(id, true)
	if got := st.Selection(id).Region(0).Cursor.Position; got != (text.Position{Line: 0, Byte: 2}) {
		t.Errorf("right at document end moved to %v", got)
	}
}

func TestMoveAllCursorsMergesCollidingRegions(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "ab")

	st.SetCursor(id, cursorAt(0, 0))
	st.AddCursor(id, cursorAt(0, 1))
	st.MoveAllCursorsLeft(id, true)
	if got := st.Selection(id).Len(); got != 1 {
		t.Errorf("expected colliding cursors to merge, got %d regions", got)
	}
}

func TestLayoutWrapsAndMeasures(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxColumnCount = 9
	st := New(WithSettings(settings))
	id := newSessionOver(t, st, "aaaa bbbb cccc")

	lay := st.Layout(id)
	line := lay.Line(0)
	if line.RowCount() != 2 {
		t.Fatalf("row count = %d, want 2", line.RowCount())
	}
	if lay.Height() != 2 {
		t.Errorf("height = %g, want 2", lay.Height())
	}
	if lay.Width() != 9 {
		t.Errorf("width = %d, want 9", lay.Width())
	}

	st.SetMaxColumnCount(id, 80)
	lay = st.Layout(id)
	if lay.Line(0).RowCount() != 1 {
		t.Errorf("row count after widening = %d, want 1", lay.Line(0).RowCount())
	}
	if lay.Height() != 1 {
		t.Errorf("height after widening = %g", lay.Height())
	}
}

func TestLayoutYAfterEdit(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "one\ntwo")

	lay := st.Layout(id)
	if len(lay.Y) != 3 || lay.Y[2] != 2 {
		t.Fatalf("initial y = %v", lay.Y)
	}

	st.SetCursor(id, cursorAt(0, 3))
	st.Insert(id, text.FromString("\nextra"))
	lay = st.Layout(id)
	if lay.LineCount() != 3 {
		t.Fatalf("line count = %d", lay.LineCount())
	}
	if len(lay.Y) != 4 || lay.Y[3] != 3 {
		t.Errorf("y after edit = %v", lay.Y)
	}
}

func TestUndoOfMultiLineDeleteRestoresLayout(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "one\ntwo\nthree")

	st.SetCursor(id, cursorAt(0, 0))
	st.UpdateLastAddedCursor(id, cursorAt(2, 0), false)
	st.Delete(id)
	if got := documentText(st, id); got != "three" {
		t.Fatalf("text after delete = %q", got)
	}
	if lay := st.Layout(id); lay.LineCount() != 1 || lay.Height() != 1 {
		t.Fatalf("layout after delete: %d lines, height %g", lay.LineCount(), lay.Height())
	}

	if !st.Undo(id) {
		t.Fatal("undo failed")
	}
	if got := documentText(st, id); got != "one\ntwo\nthree" {
		t.Fatalf("text after undo = %q", got)
	}
	lay := st.Layout(id)
	if lay.LineCount() != 3 || lay.Height() != 3 {
		t.Errorf("layout after undo: %d lines, height %g", lay.LineCount(), lay.Height())
	}
	if lay.Line(2).Text != "three" {
		t.Errorf("line 2 = %q", lay.Line(2).Text)
	}
}

func TestDeleteMergesCollapsedRegionsInOtherSessions(t *testing.T) {
	st := New()
	doc := st.CreateDocument(text.FromString("abcdef"))
	a, err := st.CreateSession(doc)
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.CreateSession(doc)
	if err != nil {
		t.Fatal(err)
	}

	st.SetCursor(b, cursorAt(0, 2))
	st.AddCursor(b, cursorAt(0, 4))
	st.SetCursor(a, cursorAt(0, 1))
	st.UpdateLastAddedCursor(a, cursorAt(0, 5), false)
	st.Delete(a)

	sel := st.Selection(b)
	if sel.Len() != 1 {
		t.Fatalf("expected collapsed cursors to merge, got %d regions", sel.Len())
	}
	if got := sel.Region(0).Cursor.Position; got != (text.Position{Line: 0, Byte: 1}) {
		t.Errorf("merged cursor = %v, want (0:1)", got)
	}
}

func TestFoldLineScalesHeight(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "one\ntwo\nthree")

	st.FoldLine(id, 1, 2)
	lay := st.Layout(id)
	if lay.Line(1).FoldScale != 0.5 || lay.Line(1).FoldColumnIndex != 2 {
		t.Errorf("folded line = %+v", lay.Line(1))
	}
	if lay.Height() != 2.5 {
		t.Errorf("height = %g, want 2.5", lay.Height())
	}

	st.UnfoldLine(id, 1)
	lay = st.Layout(id)
	if lay.Height() != 3 {
		t.Errorf("height after unfold = %g, want 3", lay.Height())
	}
}

func TestInlineInlaysFollowEdits(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "hello")

	st.SetInlineInlays(id, 0, []layout.InlineInlay{layout.TextInlay(4, ": int")})
	st.SetCursor(id, cursorAt(0, 0))
	st.Insert(id, text.FromString("ab"))

	lay := st.Layout(id)
	if got := lay.InlineInlays[0][0].ByteOffset; got != 6 {
		t.Errorf("inlay offset = %d, want 6", got)
	}
}

func TestInlineInlayDroppedWhenAnchorDeleted(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "hello")

	st.SetInlineInlays(id, 0, []layout.InlineInlay{layout.TextInlay(3, "x")})
	st.SetCursor(id, cursorAt(0, 2))
	st.UpdateLastAddedCursor(id, cursorAt(0, 4), false)
	st.Delete(id)

	lay := st.Layout(id)
	if got := len(lay.InlineInlays[0]); got != 0 {
		t.Errorf("expected inlay dropped, still have %d", got)
	}
}

func TestBlockInlaysFollowLineSplices(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "one\ntwo")

	st.SetBlockInlays(id, []layout.BlockInlay{{LineIndex: 1, Widget: layout.BlockWidget{ID: 1, Height: 5}}})
	lay := st.Layout(id)
	if lay.Height() != 7 {
		t.Fatalf("height with block widget = %g, want 7", lay.Height())
	}
	if lay.Y[1] != 6 {
		t.Errorf("y[1] = %g, want 6", lay.Y[1])
	}

	st.SetCursor(id, cursorAt(0, 0))
	st.Insert(id, text.FromString("zero\n"))
	lay = st.Layout(id)
	if got := lay.BlockInlays[0].LineIndex; got != 2 {
		t.Errorf("block inlay line = %d, want 2", got)
	}
}

func TestCloseSessionLifecycle(t *testing.T) {
	st := New()
	doc := st.CreateDocument(text.FromString("shared"))
	a, err := st.CreateSession(doc)
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.CreateSession(doc)
	if err != nil {
		t.Fatal(err)
	}

	if err := st.CloseSession(a); err != nil {
		t.Fatalf("closing first session: %v", err)
	}
	// The document survives while b still views it.
	if got := documentText(st, b); got != "shared" {
		t.Errorf("after closing a: %q", got)
	}

	if err := st.CloseSession(b); err != nil {
		t.Fatalf("closing second session: %v", err)
	}
	if _, err := st.CreateSession(doc); !errors.Is(err, ErrUnknownDocument) {
		t.Errorf("expected ErrUnknownDocument, got %v", err)
	}
	if err := st.CloseSession(b); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("expected ErrUnknownSession, got %v", err)
	}
}

func TestSessionSlotReuseGetsNewGeneration(t *testing.T) {
	st := New()
	doc := st.CreateDocument(text.FromString("a"))
	a, err := st.CreateSession(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.CloseSession(a); err != nil {
		t.Fatal(err)
	}

	doc2 := st.CreateDocument(text.FromString("b"))
	b, err := st.CreateSession(doc2)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("recycled slot must not reuse the old handle")
	}
	if err := st.CloseSession(a); !errors.Is(err, ErrUnknownSession) {
		t.Errorf("stale handle should be rejected, got %v", err)
	}
}

func TestSelectionReplacedByInsert(t *testing.T) {
	st := New()
	id := newSessionOver(t, st, "hello world")

	st.SetCursor(id, cursorAt(0, 0))
	st.UpdateLastAddedCursor(id, cursorAt(0, 5), false)
	st.Insert(id, text.FromString("goodbye"))
	if got := documentText(st, id); got != "goodbye world" {
		t.Errorf("after replacing insert: %q", got)
	}
}
