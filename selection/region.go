package selection

import (
	"fmt"

	"github.com/dshills/editcore/text"
)

// Affinity disambiguates the visual row of a cursor whose position sits
// exactly on a wrap or fold boundary.
type Affinity uint8

const (
	// AffinityBefore associates the cursor with the row ending at the
	// boundary.
	AffinityBefore Affinity = iota
	// AffinityAfter associates the cursor with the row starting at the
	// boundary.
	AffinityAfter
)

// Cursor is the moving end of a region: a position plus its row affinity.
type Cursor struct {
	Position text.Position
	Affinity Affinity
}

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	if c.Affinity == AffinityAfter {
		return c.Position.String() + "+"
	}
	return c.Position.String()
}

// Region is one cursor/anchor pair defining a possibly empty selection span.
type Region struct {
	Cursor Cursor
	Anchor text.Position
}

// RegionFrom returns the empty region collapsed onto cursor.
func RegionFrom(cursor Cursor) Region {
	return Region{Cursor: cursor, Anchor: cursor.Position}
}

// Start returns the earlier of the region's two ends.
func (r Region) Start() text.Position {
	if r.Cursor.Position.Before(r.Anchor) {
		return r.Cursor.Position
	}
	return r.Anchor
}

// End returns the later of the region's two ends.
func (r Region) End() text.Position {
	if r.Cursor.Position.After(r.Anchor) {
		return r.Cursor.Position
	}
	return r.Anchor
}

// Length returns the length of the spanned text.
func (r Region) Length() text.Length {
	return r.End().Sub(r.Start())
}

// IsEmpty returns true if the region spans nothing.
func (r Region) IsEmpty() bool {
	return r.Length().IsZero()
}

// OverlapsWith reports whether r and other occupy overlapping spans. Empty
// regions already overlap when they touch; non-empty regions must actually
// intersect.
func (r Region) OverlapsWith(other Region) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return r.End().Compare(other.Start()) >= 0
	}
	return r.End().Compare(other.Start()) > 0
}

// ResetAnchor collapses the region onto its cursor.
func (r Region) ResetAnchor() Region {
	r.Anchor = r.Cursor.Position
	return r
}

// ApplyChange remaps both ends of the region through change. The drift
// tie-break is direction-aware: for a backward or empty region the cursor
// drifts past insertions at its position and the anchor stays put; for a
// forward region the roles swap. Either way the region's visual span is
// stable under insertion exactly at its boundary.
func (r Region) ApplyChange(change text.Change) Region {
	if r.Cursor.Position.Compare(r.Anchor) <= 0 {
		r.Cursor.Position = r.Cursor.Position.ApplyChange(change, text.DriftBefore)
		r.Anchor = r.Anchor.ApplyChange(change, text.DriftAfter)
		return r
	}
	r.Cursor.Position = r.Cursor.Position.ApplyChange(change, text.DriftAfter)
	r.Anchor = r.Anchor.ApplyChange(change, text.DriftBefore)
	return r
}

// MergeWith combines two overlapping regions into one. The merged region
// keeps the cursor of whichever original region held its cursor at the
// start side, preserving the typing direction of the earliest region.
// Returns false if the regions do not overlap.
func (r Region) MergeWith(other Region) (Region, bool) {
	if !r.OverlapsWith(other) {
		return Region{}, false
	}
	if r.Cursor.Position.Compare(r.Anchor) <= 0 {
		return Region{Cursor: r.Cursor, Anchor: other.Anchor}, true
	}
	return Region{Cursor: other.Cursor, Anchor: r.Anchor}, true
}

// String returns a human-readable representation of the region.
func (r Region) String() string {
	if r.IsEmpty() {
		return fmt.Sprintf("Cursor%v", r.Cursor)
	}
	return fmt.Sprintf("Region(%v..%v)", r.Anchor, r.Cursor)
}
