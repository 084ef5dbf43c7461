// Package selection implements the multi-region selection model.
//
// A Selection is a non-empty ordered sequence of regions, sorted by start
// position, with the invariant that no two regions overlap. Adjacent empty
// regions may touch; any actual overlap is merged immediately after a
// mutation. Each Region pairs a Cursor (the moving end, where typing
// happens) with an Anchor (the fixed end); the cursor's Affinity
// disambiguates the visual row when its position sits on a wrap or fold
// boundary.
//
// Selections can be remapped through buffer changes: every region's cursor
// and anchor is carried through the change with a direction-aware drift
// tie-break, which keeps a selection's visual span stable when text is
// inserted exactly at one of its boundaries.
package selection
