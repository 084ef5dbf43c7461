package wrap

import (
	"unicode"

	"github.com/dshills/editcore/internal/charwidth"
	"github.com/dshills/editcore/layout"
)

// Wrap computes the soft wrap points of line at the given wrap width.
// Breaks are appended to the breaks slice, which callers may reuse across
// lines, and the continuation indentation width is returned alongside it.
// Breaks are in expanded element coordinates, ascending.
func Wrap(line layout.Line, maxColumnCount, tabColumnCount int, breaks []int) ([]int, int) {
	indentationWidth := charwidth.String(indentation(line.Text), tabColumnCount)

	// A single chunk wider than the space left after indentation would
	// never fit on an indented continuation row. Drop the indentation for
	// the whole line instead of wrapping forever.
	elements := line.InlineElements()
measure:
	for {
		element, ok := elements.Next()
		if !ok {
			break
		}
		switch element.Kind {
		case layout.ElementText:
			rest := element.Text
			for rest != "" {
				var chunk string
				chunk, rest = splitWhitespaceBoundary(rest)
				if indentationWidth+charwidth.String(chunk, tabColumnCount) > maxColumnCount {
					indentationWidth = 0
					break measure
				}
			}
		case layout.ElementWidget:
			if indentationWidth+element.Widget.ColumnCount > maxColumnCount {
				indentationWidth = 0
				break measure
			}
		}
	}

	var position, totalWidth int
	elements = line.InlineElements()
	for {
		element, ok := elements.Next()
		if !ok {
			break
		}
		switch element.Kind {
		case layout.ElementText:
			rest := element.Text
			for rest != "" {
				var chunk string
				chunk, rest = splitWhitespaceBoundary(rest)
				width := charwidth.String(chunk, tabColumnCount)
				if totalWidth+width > maxColumnCount {
					totalWidth = indentationWidth
					breaks = append(breaks, position)
				}
				totalWidth += width
				position += len(chunk)
			}
		case layout.ElementWidget:
			if totalWidth+element.Widget.ColumnCount > maxColumnCount {
				totalWidth = indentationWidth
				breaks = append(breaks, position)
			}
			totalWidth += element.Widget.ColumnCount
			position++
		}
	}
	return breaks, indentationWidth
}

// indentation returns the leading whitespace of s, or the empty string when
// s contains no non-whitespace character.
func indentation(s string) string {
	for i, r := range s {
		if !unicode.IsSpace(r) {
			return s[:i]
		}
	}
	return ""
}

// splitWhitespaceBoundary splits off the leading run of s that is uniformly
// whitespace or uniformly non-whitespace.
func splitWhitespaceBoundary(s string) (string, string) {
	var ws bool
	for i, r := range s {
		if i == 0 {
			ws = unicode.IsSpace(r)
			continue
		}
		if unicode.IsSpace(r) != ws {
			return s[:i], s[i:]
		}
	}
	return s, ""
}
