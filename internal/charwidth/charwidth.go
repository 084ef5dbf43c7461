// Package charwidth computes display column widths, with tab expansion
// layered over Unicode width measurement.
package charwidth

import "github.com/mattn/go-runewidth"

// Rune returns the display column width of r. Tabs expand to
// tabColumnCount columns; everything else follows Unicode width rules
// (zero for combining marks, two for wide CJK).
func Rune(r rune, tabColumnCount int) int {
	if r == '\t' {
		return tabColumnCount
	}
	return runewidth.RuneWidth(r)
}

// String returns the total display column width of s.
func String(s string, tabColumnCount int) int {
	width := 0
	for _, r := range s {
		width += Rune(r, tabColumnCount)
	}
	return width
}
