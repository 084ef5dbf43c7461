package layout

// ElementKind discriminates the elements emitted by the inline and wrapped
// iterators. ElementWrap is only produced by WrappedElements.
type ElementKind uint8

const (
	ElementText ElementKind = iota
	ElementWidget
	ElementWrap
)

// Element is one run of a line's visual content. Text runs carry the run and
// whether it came from an inlay; widget elements carry the widget. Wrap
// elements mark a soft break and carry nothing.
type Element struct {
	Kind    ElementKind
	IsInlay bool
	Text    string
	Widget  InlineWidget
}

// InlineElementIter yields a line's text split at inlay anchors, with the
// inlays themselves spliced in between the runs.
type InlineElementIter struct {
	text     string
	position int
	inlays   []InlineInlay
}

// Next returns the next inline element, or false when the line is exhausted.
func (it *InlineElementIter) Next() (Element, bool) {
	if len(it.inlays) > 0 && it.inlays[0].ByteOffset == it.position {
		inlay := it.inlays[0]
		it.inlays = it.inlays[1:]
		switch inlay.Kind {
		case InlayText:
			return Element{Kind: ElementText, IsInlay: true, Text: inlay.Text}, true
		case InlayWidget:
			return Element{Kind: ElementWidget, Widget: inlay.Widget}, true
		}
	}
	if len(it.text) == 0 {
		return Element{}, false
	}
	n := len(it.text)
	if len(it.inlays) > 0 {
		if m := it.inlays[0].ByteOffset - it.position; m < n {
			n = m
		}
	}
	chunk := it.text[:n]
	it.text = it.text[n:]
	it.position += n
	return Element{Kind: ElementText, Text: chunk}, true
}

// WrappedElementIter yields inline elements further split at soft wrap
// points, with an ElementWrap marker emitted at each break. Positions are
// tracked in expanded element coordinates so breaks land inside inlay text
// and after widgets as computed by the wrapper.
type WrappedElementIter struct {
	inner           *InlineElementIter
	element         Element
	ok              bool
	position        int
	wrapByteIndices []int
}

// Next returns the next wrapped element, or false when the line is
// exhausted.
func (it *WrappedElementIter) Next() (Element, bool) {
	if len(it.wrapByteIndices) > 0 && it.wrapByteIndices[0] == it.position {
		it.wrapByteIndices = it.wrapByteIndices[1:]
		return Element{Kind: ElementWrap}, true
	}
	if !it.ok {
		return Element{}, false
	}
	switch it.element.Kind {
	case ElementText:
		n := len(it.element.Text)
		if len(it.wrapByteIndices) > 0 {
			if m := it.wrapByteIndices[0] - it.position; m < n {
				n = m
			}
		}
		isInlay := it.element.IsInlay
		chunk := it.element.Text[:n]
		rest := it.element.Text[n:]
		if rest == "" {
			it.element, it.ok = it.inner.Next()
		} else {
			it.element.Text = rest
		}
		it.position += n
		return Element{Kind: ElementText, IsInlay: isInlay, Text: chunk}, true
	default:
		widget := it.element.Widget
		it.element, it.ok = it.inner.Next()
		it.position++
		return Element{Kind: ElementWidget, Widget: widget}, true
	}
}

// BlockElementKind discriminates the elements emitted by a BlockElements
// iteration.
type BlockElementKind uint8

const (
	BlockElementLine BlockElementKind = iota
	BlockElementWidget
)

// BlockElement is one vertical slot of the document: either a buffer line or
// a block widget anchored above one.
type BlockElement struct {
	Kind      BlockElementKind
	LineIndex int
	Line      Line
	Widget    BlockWidget
}

// LineIter yields the per-line views of a half-open range, without block
// widgets.
type LineIter struct {
	layout   *Layout
	position int
	end      int
}

// Next returns the next line view, or false when the range is exhausted.
func (it *LineIter) Next() (Line, bool) {
	if it.position >= it.end {
		return Line{}, false
	}
	line := it.layout.Line(it.position)
	it.position++
	return line, true
}

// BlockElementIter yields the lines of a half-open range interleaved with
// the block widgets anchored above them.
type BlockElementIter struct {
	layout   *Layout
	position int
	end      int
	inlays   []BlockInlay
}

// Next returns the next block element, or false when the range is exhausted.
func (it *BlockElementIter) Next() (BlockElement, bool) {
	if len(it.inlays) > 0 && it.inlays[0].LineIndex == it.position {
		inlay := it.inlays[0]
		it.inlays = it.inlays[1:]
		return BlockElement{
			Kind:      BlockElementWidget,
			LineIndex: inlay.LineIndex,
			Widget:    inlay.Widget,
		}, true
	}
	if it.position >= it.end {
		return BlockElement{}, false
	}
	element := BlockElement{
		Kind:      BlockElementLine,
		LineIndex: it.position,
		Line:      it.layout.Line(it.position),
	}
	it.position++
	return element, true
}
