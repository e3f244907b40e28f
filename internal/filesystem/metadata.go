package filesystem

import (
	"fmt"
	"time"

	"github.com/desertwitch/unenum/internal/schema"
	"golang.org/x/sys/unix"
)

const (
	statxMask = unix.STATX_TYPE | unix.STATX_MTIME | unix.STATX_SIZE | unix.STATX_BTIME
)

// getMetadata reads the [schema.Metadata] for a path, following symbolic links.
// A filesystem that does not report a creation time yields [ErrNoCreationTime].
func (f *Handler) getMetadata(path string) (*schema.Metadata, error) {
	var stat unix.Statx_t

	if err := f.unixHandler.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, statxMask, &stat); err != nil {
		return nil, fmt.Errorf("(fs-metadata) %w: %s: %w", ErrMetadataRead, path, err)
	}

	if stat.Mask&unix.STATX_BTIME == 0 {
		return nil, fmt.Errorf("(fs-metadata) %w: %s: %w", ErrMetadataRead, path, ErrNoCreationTime)
	}

	metadata := &schema.Metadata{
		CreatedAt:  timestampToTime(stat.Btime),
		ModifiedAt: timestampToTime(stat.Mtime),
		Size:       stat.Size,
		IsDir:      uint32(stat.Mode)&unix.S_IFMT == unix.S_IFDIR,
	}

	return metadata, nil
}

func timestampToTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
