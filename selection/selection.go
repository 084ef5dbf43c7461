package selection

import (
	"sort"

	"github.com/dshills/editcore/text"
)

// Selection is a non-empty ordered sequence of regions, sorted by start
// position, with no two regions overlapping.
type Selection struct {
	regions []Region
}

// New returns a selection holding a single empty region at the document
// start.
func New() *Selection {
	return &Selection{regions: []Region{{}}}
}

// FromRegions builds a selection from a copy of the given regions. The
// caller is responsible for handing over sorted, non-overlapping regions.
func FromRegions(regions []Region) *Selection {
	if len(regions) == 0 {
		return New()
	}
	copied := make([]Region, len(regions))
	copy(copied, regions)
	return &Selection{regions: copied}
}

// Regions returns the underlying region slice. Callers must treat it as
// read-only.
func (s *Selection) Regions() []Region {
	return s.regions
}

// Len returns the number of regions.
func (s *Selection) Len() int {
	return len(s.regions)
}

// Region returns the region at index.
func (s *Selection) Region(index int) Region {
	return s.regions[index]
}

// Clone returns a deep copy of the selection.
func (s *Selection) Clone() *Selection {
	return FromRegions(s.regions)
}

// Equal reports whether two selections hold identical regions.
func (s *Selection) Equal(other *Selection) bool {
	if other == nil || len(s.regions) != len(other.regions) {
		return false
	}
	for i := range s.regions {
		if s.regions[i] != other.regions[i] {
			return false
		}
	}
	return true
}

// Update applies f to the region at index, then repairs the no-overlap
// invariant locally: neighbors that now overlap the mutated region are
// removed, first leftward then rightward. Returns the index of the mutated
// region after removals have shifted it.
func (s *Selection) Update(index int, f func(Region) Region) int {
	s.regions[index] = f(s.regions[index])
	for index > 0 {
		prevIndex := index - 1
		if !s.regions[prevIndex].OverlapsWith(s.regions[index]) {
			break
		}
		s.remove(prevIndex)
		index--
	}
	for index+1 < len(s.regions) {
		nextIndex := index + 1
		if !s.regions[index].OverlapsWith(s.regions[nextIndex]) {
			break
		}
		s.remove(nextIndex)
	}
	return index
}

// UpdateAll applies f to every region, then merges any now-overlapping
// neighbors in a single left-to-right pass. The caller must keep f
// monotonic so that post-transform starts remain sorted; a violation is a
// programming error. Returns where index ends up after merges have removed
// earlier regions.
func (s *Selection) UpdateAll(index int, f func(Region) Region) int {
	for i := range s.regions {
		s.regions[i] = f(s.regions[i])
	}
	currentIndex := 0
	for currentIndex+1 < len(s.regions) {
		nextIndex := currentIndex + 1
		currentRegion := s.regions[currentIndex]
		nextRegion := s.regions[nextIndex]
		if currentRegion.Start().After(nextRegion.Start()) {
			panic("selection: regions out of order after update")
		}
		if merged, ok := currentRegion.MergeWith(nextRegion); ok {
			s.regions[currentIndex] = merged
			s.remove(nextIndex)
			// <= so the tracked region follows the merge when it is
			// itself the one removed.
			if nextIndex <= index {
				index--
			}
		} else {
			currentIndex++
		}
	}
	return index
}

// ApplyChange remaps every region through change.
func (s *Selection) ApplyChange(change text.Change) {
	for i := range s.regions {
		s.regions[i] = s.regions[i].ApplyChange(change)
	}
}

// Add inserts region at its sorted position by start and returns its index.
// No overlap repair is performed; callers that may have introduced an
// overlap must follow with a repair pass.
func (s *Selection) Add(region Region) int {
	index := sort.Search(len(s.regions), func(i int) bool {
		return !s.regions[i].Start().Before(region.Start())
	})
	s.regions = append(s.regions, Region{})
	copy(s.regions[index+1:], s.regions[index:])
	s.regions[index] = region
	return index
}

// Set replaces the whole selection with a single region.
func (s *Selection) Set(region Region) {
	s.regions = s.regions[:0]
	s.regions = append(s.regions, region)
}

func (s *Selection) remove(index int) {
	s.regions = append(s.regions[:index], s.regions[index+1:]...)
}
