// Package io consolidates groups of duplicates on the filesystem. For each
// group all but the newest element are removed, and the newest element is
// renamed to the canonical identity of the group.
package io

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/unenum/internal/schema"
)

type osProvider interface {
	Open(name string) (*os.File, error)
	Lstat(name string) (os.FileInfo, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

// Options is a structure holding the consolidation options of a [Handler].
type Options struct {
	// DryRun plans and reports all operations without touching the
	// filesystem.
	DryRun bool

	// Checksums records a BLAKE3 checksum of every removed and retained file
	// in the [Report], for auditing what content was discarded.
	Checksums bool
}

// Handler is the principal implementation for consolidating groups of
// duplicates.
type Handler struct {
	osHandler osProvider
	options   Options
}

// NewHandler returns a pointer to a new IO [Handler].
func NewHandler(osHandler osProvider, options Options) *Handler {
	return &Handler{
		osHandler: osHandler,
		options:   options,
	}
}

// Consolidate processes all groups in order of their identity. The first
// failure aborts the entire consolidation, with no rollback of any elements
// that were already removed or renamed. Cancellation of the context is
// respected between groups, so a group is never left half-processed by it.
func (i *Handler) Consolidate(ctx context.Context, groups schema.DuplicateGroups) (*Report, error) {
	report := &Report{DryRun: i.options.DryRun}
	moves := &dirMoves{}

	for _, identity := range groups.Identities() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("(io) %w", err)
		}

		g := groups[identity]

		if err := i.consolidateGroup(ctx, g, moves, report); err != nil {
			return nil, fmt.Errorf("(io) failed to consolidate %q: %w", identity, err)
		}

		report.GroupsProcessed++

		slog.Debug("Consolidated group:",
			"identity", identity,
			"records", len(g.Records),
			"dryRun", i.options.DryRun,
		)
	}

	return report, nil
}

// consolidateGroup removes all duplicates of a group, then renames the
// survivor. Paths are first resolved against directories renamed earlier.
func (i *Handler) consolidateGroup(ctx context.Context, g *schema.DuplicateGroup, moves *dirMoves, report *Report) error {
	removed := make(map[string]struct{}, len(g.Records)-1)

	for _, r := range g.Duplicates() {
		path := moves.resolve(r.Path)

		if err := i.removeDuplicate(ctx, path, r, g.Identity, report); err != nil {
			return err
		}
		removed[path] = struct{}{}
	}

	return i.renameSurvivor(ctx, moves.resolve(g.Survivor().Path), g.Survivor(), g.Identity, removed, moves, report)
}
