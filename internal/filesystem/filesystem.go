package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/desertwitch/unenum/internal/naming"
	"github.com/desertwitch/unenum/internal/schema"
	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Statx(dirfd int, path string, flags int, mask int, stat *unix.Statx_t) error
}

type fsWalkProvider interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// Options is a structure holding the walking options of a [Handler].
type Options struct {
	// FilesOnly excludes directories from the returned [schema.FileRecord],
	// while still descending into them.
	FilesOnly bool
}

// Handler is the principal implementation for walking a directory tree and
// establishing a [schema.FileRecord] for each encountered element.
type Handler struct {
	unixHandler     unixProvider
	fileWalkHandler fsWalkProvider
	options         Options
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(unixHandler unixProvider, options Options) *Handler {
	return &Handler{
		unixHandler:     unixHandler,
		fileWalkHandler: newFileWalker(),
		options:         options,
	}
}

// Walk recursively visits root and all of its non-hidden descendants, reading
// the [schema.Metadata] of each. Hidden directories are pruned together with
// their subtree. The root itself is visited but not returned as a record.
//
// Any failure to list a directory or to read metadata is fatal and aborts the
// walk, returning no records at all.
func (f *Handler) Walk(ctx context.Context, root string) ([]*schema.FileRecord, error) {
	records := []*schema.FileRecord{}

	err := f.fileWalkHandler.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("(fs-walk) %w: %s: %w", ErrTraversal, path, err)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if path == root {
			return nil
		}

		if naming.IsHidden(d.Name()) {
			slog.Debug("Skipped hidden element during walking of directory tree",
				"path", path,
			)
			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if f.options.FilesOnly && d.IsDir() {
			return nil
		}

		metadata, err := f.getMetadata(path)
		if err != nil {
			return err
		}
		metadata.IsSymlink = d.Type()&fs.ModeSymlink != 0

		records = append(records, &schema.FileRecord{
			Path:     path,
			Metadata: metadata,
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("(fs) failed walking: %w", err)
	}

	return records, nil
}
