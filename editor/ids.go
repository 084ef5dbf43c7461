package editor

import (
	"fmt"

	"github.com/dshills/editcore/history"
)

// DocumentID is a generational handle for a document owned by a State. The
// zero value is never a live handle.
type DocumentID struct {
	index      uint32
	generation uint32
}

func (id DocumentID) String() string {
	return fmt.Sprintf("document(%d.%d)", id.index, id.generation)
}

// SessionID is a generational handle for a session owned by a State. The
// zero value is never a live handle.
type SessionID struct {
	index      uint32
	generation uint32
}

func (id SessionID) String() string {
	return fmt.Sprintf("session(%d.%d)", id.index, id.generation)
}

// origin folds the handle into the opaque tag history uses for undo
// grouping. Generations keep a recycled slot from continuing the previous
// session's group.
func (id SessionID) origin() history.Origin {
	return history.Origin(uint64(id.index)<<32 | uint64(id.generation))
}
