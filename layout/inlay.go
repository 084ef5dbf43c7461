package layout

// InlineInlayKind discriminates the inline inlay variants.
type InlineInlayKind uint8

const (
	// InlayText splices synthetic text into a line's visual content.
	InlayText InlineInlayKind = iota
	// InlayWidget reserves columns for a host-drawn widget inside a line.
	InlayWidget
)

// InlineInlay is synthetic content anchored at a byte offset within one
// line. It exists only in the visual layout, never in the buffer. The
// variant set is closed and matched exhaustively.
type InlineInlay struct {
	ByteOffset int
	Kind       InlineInlayKind
	Text       string       // InlayText only
	Widget     InlineWidget // InlayWidget only
}

// TextInlay builds an inline text inlay anchored at offset.
func TextInlay(offset int, text string) InlineInlay {
	return InlineInlay{ByteOffset: offset, Kind: InlayText, Text: text}
}

// WidgetInlay builds an inline widget inlay anchored at offset.
func WidgetInlay(offset int, widget InlineWidget) InlineInlay {
	return InlineInlay{ByteOffset: offset, Kind: InlayWidget, Widget: widget}
}

// InlineWidget is a host-drawn element occupying a fixed number of display
// columns within a line.
type InlineWidget struct {
	ID          int
	ColumnCount int
}

// BlockInlay is a host-drawn widget occupying vertical space above the line
// it is anchored to.
type BlockInlay struct {
	LineIndex int
	Widget    BlockWidget
}

// BlockWidget is a host-drawn element with a fixed height, measured in the
// same units as line heights.
type BlockWidget struct {
	ID     int
	Height float64
}
