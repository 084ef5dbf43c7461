package text

import "testing"

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 3}, Position{0, 5}, -1},
		{Position{1, 0}, Position{0, 9}, 1},
		{Position{2, 4}, Position{2, 4}, 0},
		{Position{1, 7}, Position{2, 0}, -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPositionAdd(t *testing.T) {
	tests := []struct {
		p      Position
		length Length
		want   Position
	}{
		{Position{1, 3}, Length{0, 4}, Position{1, 7}},
		{Position{1, 3}, Length{2, 5}, Position{3, 5}},
		{Position{0, 0}, Length{0, 0}, Position{0, 0}},
	}
	for _, tt := range tests {
		if got := tt.p.Add(tt.length); got != tt.want {
			t.Errorf("%v.Add(%v) = %v, want %v", tt.p, tt.length, got, tt.want)
		}
	}
}

func TestPositionSub(t *testing.T) {
	tests := []struct {
		p, other Position
		want     Length
	}{
		{Position{1, 7}, Position{1, 3}, Length{0, 4}},
		{Position{3, 5}, Position{1, 3}, Length{2, 5}},
	}
	for _, tt := range tests {
		if got := tt.p.Sub(tt.other); got != tt.want {
			t.Errorf("%v.Sub(%v) = %v, want %v", tt.p, tt.other, got, tt.want)
		}
	}
}

func TestPositionAddSubRoundTrip(t *testing.T) {
	start := Position{2, 3}
	end := Position{4, 1}
	if got := start.Add(end.Sub(start)); got != end {
		t.Errorf("start.Add(end.Sub(start)) = %v, want %v", got, end)
	}
}

func TestPositionApplyChangeInsert(t *testing.T) {
	change := Insert(Position{1, 3}, FromString("ab"))
	tests := []struct {
		name  string
		p     Position
		drift Drift
		want  Position
	}{
		{"before edit", Position{1, 2}, DriftAfter, Position{1, 2}},
		{"at edit, drift before", Position{1, 3}, DriftBefore, Position{1, 5}},
		{"at edit, drift after", Position{1, 3}, DriftAfter, Position{1, 3}},
		{"after edit same line", Position{1, 6}, DriftAfter, Position{1, 8}},
		{"after edit next line", Position{2, 4}, DriftAfter, Position{2, 4}},
	}
	for _, tt := range tests {
		if got := tt.p.ApplyChange(change, tt.drift); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPositionApplyChangeInsertMultiLine(t *testing.T) {
	change := Insert(Position{1, 3}, FromString("xx\ny"))
	if got := (Position{1, 6}).ApplyChange(change, DriftAfter); got != (Position{2, 4}) {
		t.Errorf("got %v, want (2:4)", got)
	}
	if got := (Position{1, 3}).ApplyChange(change, DriftBefore); got != (Position{2, 1}) {
		t.Errorf("got %v, want (2:1)", got)
	}
}

func TestPositionApplyChangeDelete(t *testing.T) {
	change := Delete(Position{1, 3}, Length{0, 2})
	tests := []struct {
		name string
		p    Position
		want Position
	}{
		{"before range", Position{1, 2}, Position{1, 2}},
		{"at range start", Position{1, 3}, Position{1, 3}},
		{"inside range", Position{1, 4}, Position{1, 3}},
		{"at range end", Position{1, 5}, Position{1, 3}},
		{"after range", Position{1, 7}, Position{1, 5}},
		{"next line", Position{2, 0}, Position{2, 0}},
	}
	for _, tt := range tests {
		if got := tt.p.ApplyChange(change, DriftAfter); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPositionApplyChangeDeleteMultiLine(t *testing.T) {
	change := Delete(Position{0, 2}, Length{2, 1})
	if got := (Position{2, 3}).ApplyChange(change, DriftAfter); got != (Position{0, 4}) {
		t.Errorf("got %v, want (0:4)", got)
	}
	if got := (Position{3, 0}).ApplyChange(change, DriftAfter); got != (Position{1, 0}) {
		t.Errorf("got %v, want (1:0)", got)
	}
	if got := (Position{1, 5}).ApplyChange(change, DriftAfter); got != (Position{0, 2}) {
		t.Errorf("got %v, want (0:2)", got)
	}
}

func TestLengthAdd(t *testing.T) {
	tests := []struct {
		a, b, want Length
	}{
		{Length{0, 3}, Length{0, 4}, Length{0, 7}},
		{Length{0, 3}, Length{1, 2}, Length{1, 2}},
		{Length{1, 2}, Length{0, 3}, Length{1, 5}},
		{Length{2, 1}, Length{3, 4}, Length{5, 4}},
	}
	for _, tt := range tests {
		if got := tt.a.Add(tt.b); got != tt.want {
			t.Errorf("%v.Add(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLengthIsZero(t *testing.T) {
	if !(Length{}).IsZero() {
		t.Error("zero length should report IsZero")
	}
	if (Length{0, 1}).IsZero() || (Length{1, 0}).IsZero() {
		t.Error("non-zero length should not report IsZero")
	}
}
