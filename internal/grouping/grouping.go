// Package grouping groups walked filesystem elements by their canonical
// identity and orders each group from oldest to newest.
package grouping

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/desertwitch/unenum/internal/naming"
	"github.com/desertwitch/unenum/internal/schema"
)

// Group places every [schema.FileRecord] into the [schema.DuplicateGroup] of
// its canonical identity, being the normalized base name of its path. Groups
// holding only one record are no duplicates and are discarded.
//
// Within each returned group, records are ordered ascending by creation time,
// then by modification time, so the last record is the newest one. Records
// with identical timestamps are ordered by path, so that the order does not
// depend on the order of walking.
//
// A record without metadata fails the entire grouping.
func Group(records []*schema.FileRecord) (schema.DuplicateGroups, error) {
	groups := make(schema.DuplicateGroups)

	for _, r := range records {
		if r.Metadata == nil {
			return nil, fmt.Errorf("(grouping) %w: %s", ErrNoMetadata, r.Path)
		}

		identity := naming.Normalize(filepath.Base(r.Path))

		g, exists := groups[identity]
		if !exists {
			g = &schema.DuplicateGroup{Identity: identity}
			groups[identity] = g
		}
		g.Records = append(g.Records, r)
	}

	maps.DeleteFunc(groups, func(_ string, g *schema.DuplicateGroup) bool {
		return len(g.Records) < 2 //nolint:mnd
	})

	for _, g := range groups {
		slices.SortStableFunc(g.Records, compareRecords)
	}

	return groups, nil
}

// compareRecords orders by creation time, modification time and path.
func compareRecords(a, b *schema.FileRecord) int {
	if c := a.Metadata.CreatedAt.Compare(b.Metadata.CreatedAt); c != 0 {
		return c
	}

	if c := a.Metadata.ModifiedAt.Compare(b.Metadata.ModifiedAt); c != 0 {
		return c
	}

	return strings.Compare(a.Path, b.Path)
}
