package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylekit/internal/adapters/fs"
	"go.trai.ch/stylekit/internal/core/domain"
)

func TestWalker_WalkDirs(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{".git/objects", "node_modules/stylelint", "test/output", "test/tmp/output", "src"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), domain.DirPerm))
	}

	dirs := slices.Collect(fs.NewWalker().WalkDirs(root, []string{"test/tmp"}))

	assert.ElementsMatch(t, []string{
		root,
		filepath.Join(root, "src"),
		filepath.Join(root, "test"),
		filepath.Join(root, "test", "output"),
	}, dirs)
}

func TestWalker_StopsEarly(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), domain.DirPerm))

	var seen []string
	for dir := range fs.NewWalker().WalkDirs(root, nil) {
		seen = append(seen, dir)
		break
	}
	assert.Equal(t, []string{root}, seen)
}
