package io

import "errors"

var (
	// ErrDeletion is an error that occurs when a duplicate could not be
	// removed from the filesystem.
	ErrDeletion = errors.New("failed to remove duplicate")

	// ErrRename is an error that occurs when the survivor of a group could not
	// be renamed to its canonical name.
	ErrRename = errors.New("failed to rename survivor")

	// ErrIsDirectory is an error that occurs when a duplicate that is to be
	// removed is a directory. Directories are never removed.
	ErrIsDirectory = errors.New("duplicate is a directory")

	// ErrDestinationExists is an error that occurs when the survivor is to be
	// renamed to its canonical name, but that name already exists.
	ErrDestinationExists = errors.New("rename destination already exists")
)
