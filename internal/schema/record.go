package schema

import (
	"maps"
	"slices"
)

// FileRecord is the principal structure for all filesystem elements that are
// candidates for consolidation. It is created when the element is visited
// during walking and not modified afterwards.
//
// FileRecords are meant to be passed by reference (pointer) and are not
// thread-safe.
type FileRecord struct {
	// Path is the path the [FileRecord] is located at, joined onto the walked
	// root directory. It is unique per [FileRecord].
	Path string

	// Metadata is a pointer to the [Metadata] of the [FileRecord].
	Metadata *Metadata
}

// DuplicateGroup is a set of [FileRecord] sharing the same canonical identity.
//
// Once returned from grouping, Records holds at least two elements and is
// ordered ascending by creation and modification time, so that the last
// element is the newest one.
type DuplicateGroup struct {
	// Identity is the canonical (non-enumerated) name of the group.
	Identity string

	// Records is a slice of the [FileRecord] belonging to the group.
	Records []*FileRecord
}

// Survivor returns the [FileRecord] that is to be retained, being the last
// (newest) element of the group. It returns nil for an empty group.
func (g *DuplicateGroup) Survivor() *FileRecord {
	if len(g.Records) == 0 {
		return nil
	}

	return g.Records[len(g.Records)-1]
}

// Duplicates returns all [FileRecord] that are to be removed, being all but
// the last element of the group.
func (g *DuplicateGroup) Duplicates() []*FileRecord {
	if len(g.Records) == 0 {
		return nil
	}

	return g.Records[:len(g.Records)-1]
}

// Paths returns the paths of all [FileRecord] within the group, in order.
func (g *DuplicateGroup) Paths() []string {
	paths := make([]string, 0, len(g.Records))
	for _, r := range g.Records {
		paths = append(paths, r.Path)
	}

	return paths
}

// DuplicateGroups maps a canonical identity to its [DuplicateGroup].
type DuplicateGroups map[string]*DuplicateGroup

// Identities returns the canonical identities of all contained groups in
// ascending order.
func (groups DuplicateGroups) Identities() []string {
	return slices.Sorted(maps.Keys(groups))
}

// Records returns the number of [FileRecord] across all contained groups.
func (groups DuplicateGroups) Records() int {
	var n int
	for _, g := range groups {
		n += len(g.Records)
	}

	return n
}
