// Package fs provides file system adapters: scratch cleanup, source pattern
// resolution, content hashing and directory walking.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker enumerates directories below a root.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkDirs yields root and every directory below it, skipping VCS
// metadata, node_modules and any directory whose path relative to root
// equals or lies below one of ignores.
func (w *Walker) WalkDirs(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				return nil
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && w.shouldSkipDir(root, path, d.Name(), ignores) {
				return filepath.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) shouldSkipDir(root, path, name string, ignores []string) bool {
	switch name {
	case ".git", ".jj", "node_modules":
		return true
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	for _, ignore := range ignores {
		ignore = filepath.Clean(ignore)
		if rel == ignore || strings.HasPrefix(rel, ignore+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
