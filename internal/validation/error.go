package validation

import "errors"

var (
	// ErrDirectoryDuplicate occurs when a directory is not the newest element
	// of its group and would have to be removed, which is never done. Symbolic
	// links to directories are exempt, as only the link itself is removed.
	ErrDirectoryDuplicate = errors.New("directory would be removed as duplicate")

	// ErrDuplicatePath occurs when a path occurs more than once across groups.
	ErrDuplicatePath = errors.New("path occurs more than once")

	// ErrGroupTooSmall occurs when a group holds less than two records and is
	// therefore no group of duplicates.
	ErrGroupTooSmall = errors.New("group has less than two records")

	// ErrIdentityMismatch occurs when a record or group does not normalize to
	// the identity it is grouped under.
	ErrIdentityMismatch = errors.New("identity mismatch")

	// ErrNilGroup occurs when a group is nil.
	ErrNilGroup = errors.New("group is nil")

	// ErrNilRecord occurs when a record within a group is nil.
	ErrNilRecord = errors.New("record is nil")

	// ErrNoIdentity occurs when a group has an empty identity.
	ErrNoIdentity = errors.New("no identity")

	// ErrNoMetadata indicates that required metadata is missing for a record.
	ErrNoMetadata = errors.New("no metadata")

	// ErrNoPath occurs when a record has no path set.
	ErrNoPath = errors.New("no path")

	// ErrUnordered occurs when the records of a group are not ordered from
	// oldest to newest.
	ErrUnordered = errors.New("records are not ordered oldest to newest")
)
