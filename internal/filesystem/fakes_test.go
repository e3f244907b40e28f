package filesystem

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// fakeStat describes what [fakeUnix] reports for a path.
type fakeStat struct {
	created  time.Time
	modified time.Time
	size     uint64
	dir      bool
	noBtime  bool
	err      error
}

// fakeUnix is a fake implementation of unixProvider. It answers Statx calls
// from a map of paths and records all paths it was asked about.
type fakeUnix struct {
	sync.Mutex
	stats map[string]fakeStat
	calls []string
}

func newFakeUnix() *fakeUnix {
	return &fakeUnix{
		stats: make(map[string]fakeStat),
	}
}

func (u *fakeUnix) set(path string, s fakeStat) {
	u.Lock()
	defer u.Unlock()

	u.stats[path] = s
}

func (u *fakeUnix) Statx(_ int, path string, _ int, _ int, stat *unix.Statx_t) error {
	u.Lock()
	defer u.Unlock()

	u.calls = append(u.calls, path)

	s, ok := u.stats[path]
	if !ok {
		return unix.ENOENT
	}
	if s.err != nil {
		return s.err
	}

	stat.Mask = unix.STATX_TYPE | unix.STATX_MTIME | unix.STATX_SIZE
	if !s.noBtime {
		stat.Mask |= unix.STATX_BTIME
		stat.Btime = unix.StatxTimestamp{Sec: s.created.Unix(), Nsec: uint32(s.created.Nanosecond())}
	}
	stat.Mtime = unix.StatxTimestamp{Sec: s.modified.Unix(), Nsec: uint32(s.modified.Nanosecond())}
	stat.Size = s.size

	stat.Mode = unix.S_IFREG
	if s.dir {
		stat.Mode = unix.S_IFDIR
	}

	return nil
}

// fakeEntry is an element known to [fakeWalker], also serving as its
// [fs.DirEntry].
type fakeEntry struct {
	path    string
	dir     bool
	symlink bool
	err     error
}

func (e fakeEntry) Name() string { return filepath.Base(e.path) }
func (e fakeEntry) IsDir() bool  { return e.dir }

func (e fakeEntry) Type() fs.FileMode {
	switch {
	case e.dir:
		return fs.ModeDir
	case e.symlink:
		return fs.ModeSymlink
	default:
		return 0
	}
}

func (e fakeEntry) Info() (fs.FileInfo, error) { return nil, fs.ErrInvalid }

// fakeWalker is a fake implementation of fsWalkProvider. It visits the root
// and then its entries in the given order, honoring [filepath.SkipDir].
type fakeWalker struct {
	entries []fakeEntry
	rootErr error
}

func (w *fakeWalker) WalkDir(root string, fn fs.WalkDirFunc) error {
	if w.rootErr != nil {
		return fn(root, nil, w.rootErr)
	}

	if err := fn(root, fakeEntry{path: root, dir: true}, nil); err != nil {
		if err == filepath.SkipDir { //nolint:errorlint
			return nil
		}

		return err
	}

	var skipped []string

	for _, e := range w.entries {
		if isBelowAny(e.path, skipped) {
			continue
		}

		if err := fn(e.path, e, e.err); err != nil {
			if err == filepath.SkipDir { //nolint:errorlint
				if e.dir {
					skipped = append(skipped, e.path)
				}

				continue
			}

			return err
		}
	}

	return nil
}

func isBelowAny(path string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}

	return false
}
