package io

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/desertwitch/unenum/internal/naming"
	"github.com/desertwitch/unenum/internal/schema"
	"github.com/dustin/go-humanize"
)

// removeDuplicate removes a non-survivor element. Directories are never
// removed and yield [ErrIsDirectory], symbolic links to them are unlinked.
func (i *Handler) removeDuplicate(ctx context.Context, path string, r *schema.FileRecord, identity string, report *Report) error {
	if r.Metadata.IsDir && !r.Metadata.IsSymlink {
		return fmt.Errorf("(io-remove) %w: %s: %w", ErrDeletion, path, ErrIsDirectory)
	}

	removal := Removal{
		Path:     path,
		Identity: identity,
		Size:     r.Metadata.Size,
	}

	if i.options.Checksums && !r.Metadata.IsSymlink {
		checksum, err := i.checksumFile(ctx, path)
		if err != nil {
			return fmt.Errorf("(io-remove) failed to checksum %s: %w", path, err)
		}
		removal.Checksum = checksum
	}

	if !i.options.DryRun {
		if err := i.osHandler.Remove(path); err != nil {
			return fmt.Errorf("(io-remove) %w: %s: %w", ErrDeletion, path, err)
		}
	}

	report.Removed = append(report.Removed, removal)

	slog.Info("Removed duplicate:", withChecksum(removal.Checksum,
		"path", path,
		"size", humanize.IBytes(removal.Size),
		"identity", identity,
		"dryRun", i.options.DryRun,
	)...)

	return nil
}

// renameSurvivor renames the survivor to the canonical name within its own
// directory. An already existing destination is never overwritten. During a
// dry run, a destination that is one of the group's (unremoved) duplicates is
// not treated as existing.
func (i *Handler) renameSurvivor(ctx context.Context, path string, r *schema.FileRecord, identity string, removed map[string]struct{}, moves *dirMoves, report *Report) error {
	dst := path
	if base := filepath.Base(path); naming.IsEnumerated(base) {
		dst = filepath.Join(filepath.Dir(path), naming.Normalize(base))
	}

	var checksum string
	if i.options.Checksums && !r.Metadata.IsDir && !r.Metadata.IsSymlink {
		var err error
		if checksum, err = i.checksumFile(ctx, path); err != nil {
			return fmt.Errorf("(io-rename) failed to checksum %s: %w", path, err)
		}
	}

	if dst == path {
		report.Kept = append(report.Kept, Rename{From: path, To: dst, Identity: identity, Checksum: checksum})

		slog.Info("Kept survivor:", withChecksum(checksum,
			"path", path,
			"identity", identity,
			"dryRun", i.options.DryRun,
		)...)

		return nil
	}

	_, plannedRemoval := removed[dst]
	if !i.options.DryRun || !plannedRemoval {
		if _, err := i.osHandler.Lstat(dst); err == nil {
			return fmt.Errorf("(io-rename) %w: %s: %w", ErrRename, dst, ErrDestinationExists)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("(io-rename) %w: failed to lstat (pre rename existence): %w", ErrRename, err)
		}
	}

	if !i.options.DryRun {
		if err := i.osHandler.Rename(path, dst); err != nil {
			return fmt.Errorf("(io-rename) %w: %s -> %s: %w", ErrRename, path, dst, err)
		}
	}

	if r.Metadata.IsDir && !r.Metadata.IsSymlink && !i.options.DryRun {
		moves.add(path, dst)
	}

	report.Renamed = append(report.Renamed, Rename{From: path, To: dst, Identity: identity, Checksum: checksum})

	slog.Info("Renamed survivor:", withChecksum(checksum,
		"path", dst,
		"from", path,
		"identity", identity,
		"dryRun", i.options.DryRun,
	)...)

	return nil
}

// withChecksum appends a checksum to the log arguments, if one was computed.
func withChecksum(checksum string, args ...any) []any {
	if checksum == "" {
		return args
	}

	return append(args, "checksum", checksum)
}
