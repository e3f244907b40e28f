// Package validation checks duplicate groups for consistency before any of
// them is consolidated, so that an invalid group fails the run before the
// first filesystem element is touched.
package validation

import (
	"fmt"
	"path/filepath"

	"github.com/desertwitch/unenum/internal/naming"
	"github.com/desertwitch/unenum/internal/schema"
)

// ValidateGroups validates all given groups, returning the first encountered
// validation error. A path occurring in more than one group, or more than
// once in the same group, is also a validation error.
func ValidateGroups(groups schema.DuplicateGroups) error {
	seen := make(map[string]string)

	for _, identity := range groups.Identities() {
		g := groups[identity]

		if g == nil {
			return fmt.Errorf("(validation) %w: %q", ErrNilGroup, identity)
		}

		if g.Identity != identity {
			return fmt.Errorf("(validation) %w: %q (key) != %q (group)", ErrIdentityMismatch, identity, g.Identity)
		}

		if err := validateGroup(g); err != nil {
			return fmt.Errorf("(validation) %q: %w", identity, err)
		}

		for _, r := range g.Records {
			if other, exists := seen[r.Path]; exists {
				return fmt.Errorf("(validation) %w: %s (in %q and %q)", ErrDuplicatePath, r.Path, other, identity)
			}
			seen[r.Path] = identity
		}
	}

	return nil
}

func validateGroup(g *schema.DuplicateGroup) error {
	if g.Identity == "" {
		return ErrNoIdentity
	}

	if len(g.Records) < 2 { //nolint:mnd
		return fmt.Errorf("%w: %d", ErrGroupTooSmall, len(g.Records))
	}

	for i, r := range g.Records {
		if err := validateRecord(r, g.Identity); err != nil {
			return err
		}

		if i > 0 && isNewer(g.Records[i-1], r) {
			return fmt.Errorf("%w: %s before %s", ErrUnordered, g.Records[i-1].Path, r.Path)
		}
	}

	for _, r := range g.Duplicates() {
		if r.Metadata.IsDir && !r.Metadata.IsSymlink {
			return fmt.Errorf("%w: %s", ErrDirectoryDuplicate, r.Path)
		}
	}

	return nil
}

func validateRecord(r *schema.FileRecord, identity string) error {
	if r == nil {
		return ErrNilRecord
	}

	if r.Path == "" {
		return ErrNoPath
	}

	if r.Metadata == nil {
		return fmt.Errorf("%w: %s", ErrNoMetadata, r.Path)
	}

	if naming.Normalize(filepath.Base(r.Path)) != identity {
		return fmt.Errorf("%w: %s", ErrIdentityMismatch, r.Path)
	}

	return nil
}

// isNewer returns true if a is strictly newer than b.
func isNewer(a, b *schema.FileRecord) bool {
	if !a.Metadata.CreatedAt.Equal(b.Metadata.CreatedAt) {
		return a.Metadata.CreatedAt.After(b.Metadata.CreatedAt)
	}

	return a.Metadata.ModifiedAt.After(b.Metadata.ModifiedAt)
}
