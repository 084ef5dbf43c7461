package editor

import (
	"slices"
	"sort"

	"github.com/dshills/editcore/layout"
	"github.com/dshills/editcore/selection"
	"github.com/dshills/editcore/text"
	"github.com/dshills/editcore/wrap"
)

// session is one view onto a document. It owns the selection and every
// per-view derived cache. The caches are sized to the document's line count
// at all times; the y slice alone is a lazily extended prefix.
type session struct {
	document        DocumentID
	settings        Settings
	selection       *selection.Selection
	lastAddedRegion int

	y                    []float64
	columnCount          []int
	foldColumnIndex      []int
	foldScale            []float64
	wrapByteIndices      [][]int
	wrapIndentationWidth []int
}

func newSession(id DocumentID, d *document, settings Settings) *session {
	lineCount := len(d.history.Text().Lines())
	s := &session{
		document:             id,
		settings:             settings,
		selection:            selection.New(),
		columnCount:          make([]int, lineCount),
		foldColumnIndex:      make([]int, lineCount),
		foldScale:            make([]float64, lineCount),
		wrapByteIndices:      make([][]int, lineCount),
		wrapIndentationWidth: make([]int, lineCount),
	}
	for i := range s.foldScale {
		s.foldScale[i] = 1.0
	}
	for i := 0; i < lineCount; i++ {
		s.updateWrapData(d, i)
	}
	return s
}

// line assembles the per-line view for index from the session caches and
// the document.
func (s *session) line(d *document, index int) layout.Line {
	return layout.Line{
		FoldColumnIndex:      s.foldColumnIndex[index],
		FoldScale:            s.foldScale[index],
		Text:                 d.history.Text().Lines()[index],
		Inlays:               d.inlineInlay[index],
		WrapByteIndices:      s.wrapByteIndices[index],
		WrapIndentationWidth: s.wrapIndentationWidth[index],
	}
}

// updateY extends the y prefix to cover the whole document. Already
// computed entries are kept; block widget heights accumulate into the
// offsets without producing entries of their own.
func (s *session) updateY(d *document) {
	lineCount := len(d.history.Text().Lines())
	start := len(s.y)
	if start == lineCount+1 {
		return
	}
	var y float64
	if start > 0 {
		y = s.y[start-1] + s.line(d, start-1).Height()
	}
	inlays := d.blockInlays
	for len(inlays) > 0 && inlays[0].LineIndex < start {
		inlays = inlays[1:]
	}
	for index := start; index < lineCount; index++ {
		for len(inlays) > 0 && inlays[0].LineIndex == index {
			y += inlays[0].Widget.Height
			inlays = inlays[1:]
		}
		s.y = append(s.y, y)
		y += s.line(d, index).Height()
	}
	for len(inlays) > 0 && inlays[0].LineIndex == lineCount {
		y += inlays[0].Widget.Height
		inlays = inlays[1:]
	}
	s.y = append(s.y, y)
}

// updateWrapData recomputes line index's soft wrap points and invalidates
// the y prefix past it.
func (s *session) updateWrapData(d *document, index int) {
	line := layout.Line{
		FoldColumnIndex: s.foldColumnIndex[index],
		FoldScale:       s.foldScale[index],
		Text:            d.history.Text().Lines()[index],
		Inlays:          d.inlineInlay[index],
	}
	breaks, indentationWidth := wrap.Wrap(
		line,
		s.settings.MaxColumnCount,
		s.settings.TabColumnCount,
		s.wrapByteIndices[index][:0],
	)
	s.wrapByteIndices[index] = breaks
	s.wrapIndentationWidth[index] = indentationWidth
	if len(s.y) > index+1 {
		s.y = s.y[:index+1]
	}
	s.updateColumnCount(d, index)
}

func (s *session) updateColumnCount(d *document, index int) {
	s.columnCount[index] = s.line(d, index).Width(s.settings.TabColumnCount)
}

// spliceLines adjusts the per-line cache slices to one change's line
// structure. New lines start unfolded with empty wrap data.
func (s *session) spliceLines(c text.Change) {
	span := c.Span()
	if span.Lines == 0 {
		return
	}
	at := c.Position.Line + 1
	switch c.Kind {
	case text.ChangeInsert:
		n := span.Lines
		s.columnCount = slices.Insert(s.columnCount, at, make([]int, n)...)
		s.foldColumnIndex = slices.Insert(s.foldColumnIndex, at, make([]int, n)...)
		scales := make([]float64, n)
		for i := range scales {
			scales[i] = 1.0
		}
		s.foldScale = slices.Insert(s.foldScale, at, scales...)
		s.wrapByteIndices = slices.Insert(s.wrapByteIndices, at, make([][]int, n)...)
		s.wrapIndentationWidth = slices.Insert(s.wrapIndentationWidth, at, make([]int, n)...)
	case text.ChangeDelete:
		to := at + span.Lines
		s.columnCount = slices.Delete(s.columnCount, at, to)
		s.foldColumnIndex = slices.Delete(s.foldColumnIndex, at, to)
		s.foldScale = slices.Delete(s.foldScale, at, to)
		s.wrapByteIndices = slices.Delete(s.wrapByteIndices, at, to)
		s.wrapIndentationWidth = slices.Delete(s.wrapIndentationWidth, at, to)
	}
}

// updateAfterTextModified brings the session's caches and selection up to
// date after the document text changed. When the modification came with a
// replacement selection (undo and redo restore one) it is installed as is;
// otherwise the current selection is remapped across the changes.
func (s *session) updateAfterTextModified(d *document, changes []text.Change, replacement *selection.Selection) {
	var dirty []int
	for _, change := range changes {
		for i := range dirty {
			dirty[i] = remapLine(dirty[i], change)
		}
		s.spliceLines(change)
		dirty = append(dirty, change.Position.Line)
		if change.Kind == text.ChangeInsert {
			for i := 1; i <= change.Span().Lines; i++ {
				dirty = append(dirty, change.Position.Line+i)
			}
		}
	}
	if len(dirty) > 0 {
		sort.Ints(dirty)
		dirty = slices.Compact(dirty)
		if len(s.y) > dirty[0] {
			s.y = s.y[:dirty[0]]
		}
		for _, index := range dirty {
			s.updateWrapData(d, index)
		}
	}
	if replacement != nil {
		s.selection = replacement
		s.lastAddedRegion = 0
		return
	}
	for _, change := range changes {
		s.selection.ApplyChange(change)
	}
	// A delete can collapse neighboring regions onto the same position.
	s.lastAddedRegion = s.selection.UpdateAll(s.lastAddedRegion, func(r selection.Region) selection.Region {
		return r
	})
	if s.lastAddedRegion >= s.selection.Len() {
		s.lastAddedRegion = s.selection.Len() - 1
	}
}

// remapLine maps a line index valid before change to the index of the same
// content after it. Lines removed by a deletion collapse onto the
// deletion's first line.
func remapLine(line int, change text.Change) int {
	span := change.Span()
	switch change.Kind {
	case text.ChangeInsert:
		if line > change.Position.Line {
			return line + span.Lines
		}
	case text.ChangeDelete:
		end := change.Position.Line + span.Lines
		if line > end {
			return line - span.Lines
		}
		if line > change.Position.Line {
			return change.Position.Line
		}
	}
	return line
}
