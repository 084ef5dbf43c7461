package layout

import (
	"github.com/dshills/editcore/internal/charwidth"
)

// Line is the borrowed visual view of one buffer line.
type Line struct {
	FoldColumnIndex      int
	FoldScale            float64
	Text                 string
	Inlays               []InlineInlay
	WrapByteIndices      []int
	WrapIndentationWidth int
}

// RowCount reports how many visual rows the line occupies.
func (l Line) RowCount() int {
	return len(l.WrapByteIndices) + 1
}

// Height reports the line's visual height, scaled by its fold factor.
func (l Line) Height() float64 {
	return float64(l.RowCount()) * l.FoldScale
}

// Width reports the widest row of the line, in display columns.
func (l Line) Width(tabColumnCount int) int {
	var width, rowWidth int
	elements := l.WrappedElements()
	for {
		element, ok := elements.Next()
		if !ok {
			break
		}
		switch element.Kind {
		case ElementText:
			rowWidth += charwidth.String(element.Text, tabColumnCount)
		case ElementWidget:
			rowWidth += element.Widget.ColumnCount
		case ElementWrap:
			if rowWidth > width {
				width = rowWidth
			}
			rowWidth = l.WrapIndentationWidth
		}
	}
	if rowWidth > width {
		width = rowWidth
	}
	return width
}

// InlineElements iterates the line's content with inline inlays spliced in
// at their byte offsets. Offsets on emitted elements are expanded element
// coordinates.
func (l Line) InlineElements() *InlineElementIter {
	return &InlineElementIter{
		text:   l.Text,
		inlays: l.Inlays,
	}
}

// WrappedElements iterates the line's inline elements further split at soft
// wrap points, emitting an ElementWrap marker at each break.
func (l Line) WrappedElements() *WrappedElementIter {
	iter := &WrappedElementIter{
		inner:           l.InlineElements(),
		wrapByteIndices: l.WrapByteIndices,
	}
	iter.element, iter.ok = iter.inner.Next()
	return iter
}
