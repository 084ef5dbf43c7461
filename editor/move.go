package editor

import (
	"github.com/dshills/editcore/internal/grapheme"
	"github.com/dshills/editcore/selection"
	"github.com/dshills/editcore/text"
)

// moveLeft moves the cursor one grapheme cluster left, crossing to the end
// of the previous line at a line start. At the start of the buffer it stays
// put. Affinity is preserved.
func moveLeft(cursor selection.Cursor, lines []string) selection.Cursor {
	p := cursor.Position
	switch {
	case p.Byte > 0:
		p.Byte = grapheme.PrevBoundary(lines[p.Line], p.Byte)
	case p.Line > 0:
		p = text.Position{Line: p.Line - 1, Byte: len(lines[p.Line-1])}
	}
	cursor.Position = p
	return cursor
}

// moveRight moves the cursor one grapheme cluster right, crossing to the
// start of the next line at a line end. At the end of the buffer it stays
// put. Affinity is preserved.
func moveRight(cursor selection.Cursor, lines []string) selection.Cursor {
	p := cursor.Position
	switch {
	case p.Byte < len(lines[p.Line]):
		p.Byte = grapheme.NextBoundary(lines[p.Line], p.Byte)
	case p.Line < len(lines)-1:
		p = text.Position{Line: p.Line + 1, Byte: 0}
	}
	cursor.Position = p
	return cursor
}
