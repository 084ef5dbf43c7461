// Package layout composes raw text, inlay decorations, folding, and word
// wrap into a lazily-produced visual structure.
//
// A Layout is a read-only, zero-copy view over one document's text and
// inlay tables plus one session's per-line caches. It never owns data: it
// borrows the parallel per-line slices and projects them into Line values
// on demand.
//
// Visual content is produced by nested pull iterators, each a pure
// stateless-per-call transform over the borrowed slices:
//
//	InlineElements   one line's raw text interleaved with its inline inlays
//	WrappedElements  the inline stream split at wrap breaks, with explicit
//	                 Wrap markers
//	Lines            the per-line views over a range
//	BlockElements    the same range merged with block widgets by anchor
//	                 line index
//
// Iterators are finite, single-pass, and not restartable; a fresh call
// re-derives them cheaply from the underlying slices.
//
// Wrap break offsets are measured in expanded element coordinates: raw text
// and inlay text both count their bytes, and an inline widget counts one
// unit. This is the same coordinate space the wrap package produces.
//
// The cumulative Y slice has one entry per line plus a final entry holding
// the total height, which lets FindFirstLineEndingAfterY and
// FindFirstLineStartingAfterY answer viewport queries in logarithmic time.
package layout
