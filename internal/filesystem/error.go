package filesystem

import "errors"

var (
	// ErrTraversal occurs when a directory could not be listed, or an element
	// could not be visited, during walking of the directory tree.
	ErrTraversal = errors.New("failed to traverse")

	// ErrMetadataRead occurs when the metadata of a visited element could not
	// be obtained.
	ErrMetadataRead = errors.New("failed to read metadata")

	// ErrNoCreationTime occurs when the filesystem does not report a creation
	// time for an element.
	ErrNoCreationTime = errors.New("no creation time available")
)
