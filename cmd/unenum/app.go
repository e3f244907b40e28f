package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/desertwitch/unenum/internal/grouping"
	"github.com/desertwitch/unenum/internal/io"
	"github.com/desertwitch/unenum/internal/schema"
	"github.com/desertwitch/unenum/internal/validation"
)

type fsProvider interface {
	Walk(ctx context.Context, root string) ([]*schema.FileRecord, error)
}

type ioProvider interface {
	Consolidate(ctx context.Context, groups schema.DuplicateGroups) (*io.Report, error)
}

// App runs a consolidation for a single root directory.
type App struct {
	root      string
	fsHandler fsProvider
	ioHandler ioProvider
}

func NewApp(root string, fsHandler fsProvider, ioHandler ioProvider) *App {
	return &App{
		root:      root,
		fsHandler: fsHandler,
		ioHandler: ioHandler,
	}
}

// Launch walks the root directory, groups the duplicates within it, validates
// the groups and consolidates them. Any failure is returned as is, after
// which some groups may already have been consolidated.
func (app *App) Launch(ctx context.Context) (*io.Report, error) {
	records, err := app.fsHandler.Walk(ctx, app.root)
	if err != nil {
		return nil, fmt.Errorf("(app) %w", err)
	}

	slog.Info("Walked directory tree:",
		"root", app.root,
		"records", len(records),
	)

	groups, err := grouping.Group(records)
	if err != nil {
		return nil, fmt.Errorf("(app) %w", err)
	}

	slog.Info("Grouped duplicates:",
		"groups", len(groups),
		"records", groups.Records(),
	)

	if err := validation.ValidateGroups(groups); err != nil {
		return nil, fmt.Errorf("(app) %w", err)
	}

	report, err := app.ioHandler.Consolidate(ctx, groups)
	if err != nil {
		return nil, fmt.Errorf("(app) %w", err)
	}

	return report, nil
}
