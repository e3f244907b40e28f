package io

// Removal is a duplicate that was removed (or would be, in a dry run).
type Removal struct {
	Path     string
	Identity string
	Size     uint64
	Checksum string
}

// Rename is a survivor that was renamed (or would be, in a dry run). For a
// survivor already bearing its canonical name, From and To are equal.
type Rename struct {
	From     string
	To       string
	Identity string
	Checksum string
}

// Report tracks all operations performed during a consolidation.
type Report struct {
	DryRun          bool
	GroupsProcessed int
	Removed         []Removal
	Renamed         []Rename
	Kept            []Rename
}

// BytesReclaimed returns the combined size of all removed duplicates.
func (r *Report) BytesReclaimed() uint64 {
	var total uint64
	for _, removal := range r.Removed {
		total += removal.Size
	}

	return total
}
