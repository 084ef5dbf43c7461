// Package grapheme exposes Unicode grapheme cluster boundaries as the pure
// step functions cursor motion consumes.
package grapheme

import "github.com/rivo/uniseg"

// NextBoundary returns the byte offset of the first grapheme boundary in s
// strictly after offset, or len(s) if offset is at or beyond the last
// boundary. offset must itself lie on a boundary.
func NextBoundary(s string, offset int) int {
	if offset >= len(s) {
		return len(s)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[offset:], -1)
	return offset + len(cluster)
}

// PrevBoundary returns the byte offset of the last grapheme boundary in s
// strictly before offset, or 0 if there is none.
func PrevBoundary(s string, offset int) int {
	start := 0
	position := 0
	state := -1
	rest := s[:offset]
	for len(rest) > 0 {
		cluster, remaining, _, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		start = position
		position += len(cluster)
		rest = remaining
		state = newState
	}
	return start
}
