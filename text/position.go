package text

import "fmt"

// Position addresses a byte offset within a specific line of a Text.
// Byte must land on a UTF-8 boundary of that line's content.
// Positions are totally ordered, lexicographically by (Line, Byte).
type Position struct {
	Line int // 0-indexed line number
	Byte int // byte offset within the line
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Byte)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Byte < other.Byte {
		return -1
	}
	if p.Byte > other.Byte {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Add returns the position length away from p. A multi-line length replaces
// the byte component with its own; a same-line length accumulates bytes.
func (p Position) Add(length Length) Position {
	if length.Lines == 0 {
		return Position{
			Line: p.Line,
			Byte: p.Byte + length.Bytes,
		}
	}
	return Position{
		Line: p.Line + length.Lines,
		Byte: length.Bytes,
	}
}

// Sub returns the length of the span from other up to p.
// other must not come after p.
func (p Position) Sub(other Position) Length {
	if p.Line == other.Line {
		return Length{
			Lines: 0,
			Bytes: p.Byte - other.Byte,
		}
	}
	return Length{
		Lines: p.Line - other.Line,
		Bytes: p.Byte,
	}
}

// ApplyChange remaps p through a change that occurred elsewhere in the
// buffer. Positions strictly before the edit are unaffected; positions
// strictly after are shifted by the inserted or deleted length. A position
// exactly at an insertion point is ambiguous and resolved by drift:
// DriftBefore moves it past the insertion, DriftAfter leaves it in place.
// A position inside a deleted range collapses to the deletion start.
func (p Position) ApplyChange(change Change, drift Drift) Position {
	switch change.Kind {
	case ChangeInsert:
		at := change.Position
		switch p.Compare(at) {
		case -1:
			return p
		case 0:
			if drift == DriftBefore {
				return at.Add(change.Text.Length())
			}
			return p
		default:
			return at.Add(change.Text.Length()).Add(p.Sub(at))
		}
	case ChangeDelete:
		start := change.Position
		end := start.Add(change.Length)
		if p.Compare(start) <= 0 {
			return p
		}
		if p.Before(end) {
			return start
		}
		return start.Add(p.Sub(end))
	}
	return p
}

// Length is the two-dimensional delta between two positions. Lines == 0
// means both ends share a line and Bytes is the distance between them;
// otherwise Bytes is the byte offset on the last line of the span.
type Length struct {
	Lines int
	Bytes int
}

// IsZero returns true if the length spans nothing.
func (l Length) IsZero() bool {
	return l.Lines == 0 && l.Bytes == 0
}

// Add returns the combined length of l followed by other.
func (l Length) Add(other Length) Length {
	if other.Lines == 0 {
		return Length{
			Lines: l.Lines,
			Bytes: l.Bytes + other.Bytes,
		}
	}
	return Length{
		Lines: l.Lines + other.Lines,
		Bytes: other.Bytes,
	}
}

// Sub returns the length of l with a trailing other removed.
func (l Length) Sub(other Length) Length {
	if l.Lines == other.Lines {
		return Length{
			Lines: 0,
			Bytes: l.Bytes - other.Bytes,
		}
	}
	return Length{
		Lines: l.Lines - other.Lines,
		Bytes: l.Bytes,
	}
}

// Drift breaks the tie when a position is remapped through an insertion
// landing exactly on it.
type Drift uint8

const (
	// DriftBefore moves the position past the inserted text.
	DriftBefore Drift = iota
	// DriftAfter keeps the position in place, in front of the inserted text.
	DriftAfter
)
