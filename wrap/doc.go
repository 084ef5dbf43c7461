// Package wrap computes soft wrap points for laid-out lines.
//
// Wrapping is a pure function of a line's visual content and the wrap
// width. It runs in two passes over the line's inline elements. The first
// pass measures the line's leading indentation and decides whether
// continuation rows can afford to be indented by it; a line containing any
// word wider than the remaining width falls back to zero continuation
// indentation so that word still fits. The second pass walks whitespace
// boundary chunks and widgets, emitting a break wherever the next chunk
// would overflow the wrap width.
//
// Break offsets are expressed in expanded element coordinates, the same
// coordinate space the layout iterators use: bytes of buffer and inlay text
// count their length, and each inline widget counts one.
package wrap
