package text

import "fmt"

// ChangeKind discriminates the Change variants.
type ChangeKind uint8

const (
	// ChangeInsert splices text into the buffer at a position.
	ChangeInsert ChangeKind = iota
	// ChangeDelete removes a span of the given length starting at a position.
	ChangeDelete
)

// Change is a single edit to a Text: either an insertion of a sub-text at a
// position, or a deletion of a length starting at a position. The variant
// set is closed and matched exhaustively throughout the core.
type Change struct {
	Kind     ChangeKind
	Position Position
	Text     Text   // inserted text, ChangeInsert only
	Length   Length // deleted span, ChangeDelete only
}

// Insert builds a change inserting t at position.
func Insert(position Position, t Text) Change {
	return Change{
		Kind:     ChangeInsert,
		Position: position,
		Text:     t,
	}
}

// Delete builds a change removing length starting at position.
func Delete(position Position, length Length) Change {
	return Change{
		Kind:     ChangeDelete,
		Position: position,
		Length:   length,
	}
}

// Span returns the length of the buffer region the change touches: the
// inserted text's length for an insert, the deleted length for a delete.
func (c Change) Span() Length {
	if c.Kind == ChangeInsert {
		return c.Text.Length()
	}
	return c.Length
}

// Invert returns the change that undoes c. It must be computed against the
// buffer state c applies to: inverting a Delete captures the exact sub-text
// about to be removed.
func (c Change) Invert(t *Text) Change {
	switch c.Kind {
	case ChangeInsert:
		return Delete(c.Position, c.Text.Length())
	case ChangeDelete:
		return Insert(c.Position, t.Slice(c.Position, c.Length))
	}
	return c
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	switch c.Kind {
	case ChangeInsert:
		return fmt.Sprintf("insert%v+%v", c.Position, c.Text.Length())
	case ChangeDelete:
		return fmt.Sprintf("delete%v-%v", c.Position, c.Length)
	}
	return "change(?)"
}
