package text

import "strings"

// Text is the line-indexed content of a buffer. It is never empty: the zero
// document is a single empty line. The zero value of Text behaves like an
// empty document.
type Text struct {
	lines []string
}

// New returns an empty Text consisting of one empty line.
func New() Text {
	return Text{lines: []string{""}}
}

// FromString splits s on newlines into a Text.
func FromString(s string) Text {
	return Text{lines: strings.Split(s, "\n")}
}

// FromLines builds a Text from a copy of the given lines.
func FromLines(lines []string) Text {
	if len(lines) == 0 {
		return New()
	}
	copied := make([]string, len(lines))
	copy(copied, lines)
	return Text{lines: copied}
}

// Lines returns the underlying line slice. Callers must treat it as
// read-only.
func (t Text) Lines() []string {
	if t.lines == nil {
		return []string{""}
	}
	return t.lines
}

// Length returns the length of the text: the number of line breaks plus the
// byte count of the last line.
func (t Text) Length() Length {
	lines := t.Lines()
	return Length{
		Lines: len(lines) - 1,
		Bytes: len(lines[len(lines)-1]),
	}
}

// IsEmpty returns true if the text spans nothing.
func (t Text) IsEmpty() bool {
	return t.Length().IsZero()
}

// String joins the lines back into a single newline-separated string.
func (t Text) String() string {
	return strings.Join(t.Lines(), "\n")
}

// Clone returns a deep copy of the text.
func (t Text) Clone() Text {
	return FromLines(t.Lines())
}

// Equal reports whether two texts hold identical lines.
func (t Text) Equal(other Text) bool {
	a, b := t.Lines(), other.Lines()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Slice extracts the sub-text of the given length starting at start.
// The bounds must lie within the text.
func (t Text) Slice(start Position, length Length) Text {
	lines := t.Lines()
	if length.Lines == 0 {
		return Text{lines: []string{lines[start.Line][start.Byte : start.Byte+length.Bytes]}}
	}
	end := start.Add(length)
	sliced := make([]string, 0, length.Lines+1)
	sliced = append(sliced, lines[start.Line][start.Byte:])
	sliced = append(sliced, lines[start.Line+1:end.Line]...)
	sliced = append(sliced, lines[end.Line][:end.Byte])
	return Text{lines: sliced}
}

// ApplyChange mutates the text in place according to change.
func (t *Text) ApplyChange(change Change) {
	if t.lines == nil {
		t.lines = []string{""}
	}
	switch change.Kind {
	case ChangeInsert:
		t.insert(change.Position, change.Text)
	case ChangeDelete:
		t.delete(change.Position, change.Length)
	}
}

func (t *Text) insert(position Position, other Text) {
	otherLines := other.Lines()
	line := t.lines[position.Line]
	if other.Length().Lines == 0 {
		t.lines[position.Line] = line[:position.Byte] + otherLines[0] + line[position.Byte:]
		return
	}
	before := line[:position.Byte]
	after := line[position.Byte:]
	spliced := make([]string, 0, len(t.lines)+len(otherLines)-1)
	spliced = append(spliced, t.lines[:position.Line]...)
	spliced = append(spliced, before+otherLines[0])
	spliced = append(spliced, otherLines[1:len(otherLines)-1]...)
	spliced = append(spliced, otherLines[len(otherLines)-1]+after)
	spliced = append(spliced, t.lines[position.Line+1:]...)
	t.lines = spliced
}

func (t *Text) delete(start Position, length Length) {
	end := start.Add(length)
	if length.Lines == 0 {
		line := t.lines[start.Line]
		t.lines[start.Line] = line[:start.Byte] + line[end.Byte:]
		return
	}
	merged := t.lines[start.Line][:start.Byte] + t.lines[end.Line][end.Byte:]
	spliced := make([]string, 0, len(t.lines)-length.Lines)
	spliced = append(spliced, t.lines[:start.Line]...)
	spliced = append(spliced, merged)
	spliced = append(spliced, t.lines[end.Line+1:]...)
	t.lines = spliced
}
