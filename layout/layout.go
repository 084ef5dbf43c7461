package layout

import (
	"sort"

	"github.com/dshills/editcore/text"
)

// Layout is a borrowed, read-only view over one session's visual state. All
// slices are indexed by line unless noted otherwise; callers must not mutate
// them and must not retain the view across edits.
type Layout struct {
	// Y holds cumulative vertical offsets. Y[i] is the top of line i
	// including any block widgets anchored above it; the final entry is
	// the total document height. Y may be shorter than LineCount()+1 when
	// the owning session has only laid out a prefix of the document.
	Y []float64

	// ColumnCount[i] is the widest row of line i, in display columns.
	ColumnCount []int

	FoldColumnIndex []int
	FoldScale       []float64

	Text *text.Text

	// InlineInlays[i] holds line i's inline inlays sorted by byte offset.
	InlineInlays [][]InlineInlay

	// BlockInlays holds every block inlay in the document sorted by line.
	BlockInlays []BlockInlay

	// WrapByteIndices[i] holds line i's soft wrap points in expanded
	// element coordinates, ascending.
	WrapByteIndices [][]int

	WrapIndentationWidth []int
}

// LineCount reports the number of buffer lines in the document.
func (l *Layout) LineCount() int {
	return len(l.Text.Lines())
}

// Height reports the total laid-out document height. It requires the Y
// slice to be fully populated.
func (l *Layout) Height() float64 {
	return l.Y[len(l.Y)-1]
}

// Width reports the widest line of the document, in display columns.
func (l *Layout) Width() int {
	var width int
	for _, count := range l.ColumnCount {
		if count > width {
			width = count
		}
	}
	return width
}

// Line assembles the per-line view for the given line index.
func (l *Layout) Line(index int) Line {
	return Line{
		FoldColumnIndex:      l.FoldColumnIndex[index],
		FoldScale:            l.FoldScale[index],
		Text:                 l.Text.Lines()[index],
		Inlays:               l.InlineInlays[index],
		WrapByteIndices:      l.WrapByteIndices[index],
		WrapIndentationWidth: l.WrapIndentationWidth[index],
	}
}

// FindFirstLineEndingAfterY locates the first line whose bottom edge lies
// strictly below y. Feeding in the top of a viewport yields the first line
// that needs drawing.
func (l *Layout) FindFirstLineEndingAfterY(y float64) int {
	i := sort.SearchFloat64s(l.Y[:l.LineCount()], y)
	if i < l.LineCount() && l.Y[i] == y {
		return i
	}
	if i == 0 {
		return 0
	}
	return i - 1
}

// FindFirstLineStartingAfterY locates the first line whose top edge lies at
// or below y. Feeding in the bottom of a viewport yields the first line that
// can be skipped.
func (l *Layout) FindFirstLineStartingAfterY(y float64) int {
	i := sort.SearchFloat64s(l.Y[:l.LineCount()], y)
	if i < l.LineCount() && l.Y[i] == y {
		return i + 1
	}
	return i
}

// Lines iterates the per-line views for lines in [start, end).
func (l *Layout) Lines(start, end int) *LineIter {
	return &LineIter{
		layout:   l,
		position: start,
		end:      end,
	}
}

// BlockElements iterates the lines in [start, end) paired with any block
// widgets anchored above them. Block inlays ahead of start are skipped up
// front so a viewport iteration pays only for what it draws.
func (l *Layout) BlockElements(start, end int) *BlockElementIter {
	inlays := l.BlockInlays
	for len(inlays) > 0 && inlays[0].LineIndex < start {
		inlays = inlays[1:]
	}
	return &BlockElementIter{
		layout:   l,
		position: start,
		end:      end,
		inlays:   inlays,
	}
}
