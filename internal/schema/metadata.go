package schema

import "time"

// Metadata is a structure holding the filesystem metadata of a [FileRecord],
// as read once while walking the directory tree.
type Metadata struct {
	// CreatedAt is the creation (birth) time of the filesystem element.
	CreatedAt time.Time

	// ModifiedAt is the last modification time of the filesystem element.
	ModifiedAt time.Time

	// Size is the size of the filesystem element in bytes.
	Size uint64

	// IsDir describes if the filesystem element is a directory.
	IsDir bool

	// IsSymlink describes if the filesystem element is a symbolic link.
	IsSymlink bool
}
