package editor

import (
	"slices"

	"github.com/dshills/editcore/history"
	"github.com/dshills/editcore/layout"
	"github.com/dshills/editcore/text"
)

// document holds the state shared between every session viewing the same
// text: the buffer with its history, and the inlays anchored into it.
type document struct {
	sessions    []SessionID
	history     *history.History
	inlineInlay [][]layout.InlineInlay
	blockInlays []layout.BlockInlay
}

func newDocument(t text.Text) *document {
	return &document{
		history:     history.FromText(t),
		inlineInlay: make([][]layout.InlineInlay, len(t.Lines())),
	}
}

func (d *document) removeSession(id SessionID) {
	for i, other := range d.sessions {
		if other == id {
			d.sessions = slices.Delete(d.sessions, i, i+1)
			return
		}
	}
}

// applyChangeToInlays remaps the document's inlays across one change.
// Inline inlays anchored at the change position stay put on insert; inlays
// strictly inside a deleted range are dropped. Block inlays inside a deleted
// range collapse onto the first surviving line.
func (d *document) applyChangeToInlays(c text.Change) {
	switch c.Kind {
	case text.ChangeInsert:
		d.insertIntoInlays(c.Position, c.Text.Length())
	case text.ChangeDelete:
		d.deleteFromInlays(c.Position, c.Length)
	}
}

func (d *document) insertIntoInlays(at text.Position, length text.Length) {
	if length.Lines == 0 {
		inlays := d.inlineInlay[at.Line]
		for i := range inlays {
			if inlays[i].ByteOffset > at.Byte {
				inlays[i].ByteOffset += length.Bytes
			}
		}
		return
	}
	var kept, moved []layout.InlineInlay
	for _, inlay := range d.inlineInlay[at.Line] {
		if inlay.ByteOffset > at.Byte {
			inlay.ByteOffset = length.Bytes + (inlay.ByteOffset - at.Byte)
			moved = append(moved, inlay)
		} else {
			kept = append(kept, inlay)
		}
	}
	d.inlineInlay[at.Line] = kept
	d.inlineInlay = slices.Insert(d.inlineInlay, at.Line+1, make([][]layout.InlineInlay, length.Lines)...)
	d.inlineInlay[at.Line+length.Lines] = moved
	for i := range d.blockInlays {
		if d.blockInlays[i].LineIndex > at.Line {
			d.blockInlays[i].LineIndex += length.Lines
		}
	}
}

func (d *document) deleteFromInlays(start text.Position, length text.Length) {
	end := start.Add(length)
	if length.Lines == 0 {
		kept := d.inlineInlay[start.Line][:0]
		for _, inlay := range d.inlineInlay[start.Line] {
			switch {
			case inlay.ByteOffset <= start.Byte:
				kept = append(kept, inlay)
			case inlay.ByteOffset < end.Byte:
				// dropped with the text it annotated
			default:
				inlay.ByteOffset -= length.Bytes
				kept = append(kept, inlay)
			}
		}
		d.inlineInlay[start.Line] = kept
		return
	}
	kept := d.inlineInlay[start.Line][:0]
	for _, inlay := range d.inlineInlay[start.Line] {
		if inlay.ByteOffset <= start.Byte {
			kept = append(kept, inlay)
		}
	}
	for _, inlay := range d.inlineInlay[end.Line] {
		if inlay.ByteOffset >= end.Byte {
			inlay.ByteOffset = start.Byte + (inlay.ByteOffset - end.Byte)
			kept = append(kept, inlay)
		}
	}
	d.inlineInlay[start.Line] = kept
	d.inlineInlay = slices.Delete(d.inlineInlay, start.Line+1, end.Line+1)
	for i := range d.blockInlays {
		switch {
		case d.blockInlays[i].LineIndex > end.Line:
			d.blockInlays[i].LineIndex -= length.Lines
		case d.blockInlays[i].LineIndex > start.Line:
			d.blockInlays[i].LineIndex = start.Line
		}
	}
}

func (d *document) updateAfterTextModified(changes []text.Change) {
	for _, change := range changes {
		d.applyChangeToInlays(change)
	}
}
