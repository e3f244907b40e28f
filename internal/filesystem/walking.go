package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

type fileWalker struct{}

func newFileWalker() *fileWalker {
	return &fileWalker{}
}

// WalkDir wraps around [filepath.WalkDir], but also descends into a root that
// is a symbolic link to a directory. Paths are reported below root as given.
func (*fileWalker) WalkDir(root string, fn fs.WalkDirFunc) error {
	fi, err := os.Lstat(root)
	if err != nil || fi.Mode()&fs.ModeSymlink == 0 {
		return filepath.WalkDir(root, fn)
	}

	// A trailing separator makes the root lookup follow the link.
	linkRoot := root + string(filepath.Separator)

	return filepath.WalkDir(linkRoot, func(path string, d fs.DirEntry, err error) error {
		if path == linkRoot {
			path = root
		}

		return fn(path, d, err)
	})
}
