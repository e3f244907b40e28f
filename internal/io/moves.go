package io

import (
	"path/filepath"
	"strings"
)

// dirMove is a directory renamed during consolidation.
type dirMove struct {
	from string
	to   string
}

// dirMoves tracks renamed directories, so that paths recorded while walking
// can be resolved to where their elements are now located.
type dirMoves struct {
	moves []dirMove
}

func (m *dirMoves) add(from, to string) {
	m.moves = append(m.moves, dirMove{from: from, to: to})
}

// resolve applies all directory renames in the order they happened.
func (m *dirMoves) resolve(path string) string {
	for _, mv := range m.moves {
		if path == mv.from {
			path = mv.to

			continue
		}

		if prefix := mv.from + string(filepath.Separator); strings.HasPrefix(path, prefix) {
			path = filepath.Join(mv.to, strings.TrimPrefix(path, prefix))
		}
	}

	return path
}
