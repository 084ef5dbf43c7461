package history

import (
	"github.com/dshills/editcore/selection"
	"github.com/dshills/editcore/text"
)

// editStack stores undo groups as a flat change list plus per-group entries
// marking where each group's changes start and which selection preceded it.
type editStack struct {
	entries []stackEntry
	changes []text.Change
}

type stackEntry struct {
	selection    *selection.Selection
	changesStart int
}

func (s *editStack) pushSelection(sel *selection.Selection) {
	s.entries = append(s.entries, stackEntry{
		selection:    sel,
		changesStart: len(s.changes),
	})
}

func (s *editStack) pushChange(change text.Change) {
	if len(s.entries) == 0 {
		panic("history: change pushed outside an undo group")
	}
	s.changes = append(s.changes, change)
}

// popUntilSelection removes the top group, appending its changes to changes
// in reverse push order, which is the order needed to revert the edit.
func (s *editStack) popUntilSelection(changes *[]text.Change) (*selection.Selection, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	group := s.changes[entry.changesStart:]
	for i := len(group) - 1; i >= 0; i-- {
		*changes = append(*changes, group[i])
	}
	s.changes = s.changes[:entry.changesStart]
	return entry.selection, true
}

func (s *editStack) clear() {
	s.entries = s.entries[:0]
	s.changes = s.changes[:0]
}
