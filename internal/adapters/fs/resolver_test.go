package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylekit/internal/adapters/fs"
	"go.trai.ch/stylekit/internal/core/domain"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte("a {}\n"), 0o600))
	}
}

func TestResolver_BraceAlternation(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "test/output/output.scss", "test/output/output.css", "test/output/output.less")

	resolved, err := fs.NewResolver().ResolveInputs([]string{"test/output/output.{css,scss}"}, root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "test/output/output.css"),
		filepath.Join(root, "test/output/output.scss"),
	}, resolved)
}

func TestResolver_OneAlternativeIsEnough(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "test/output/output.scss")

	resolved, err := fs.NewResolver().ResolveInputs([]string{"test/output/output.{css,scss}"}, root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "test/output/output.scss")}, resolved)
}

func TestResolver_GlobAndDedup(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.scss", "b.scss")

	resolved, err := fs.NewResolver().ResolveInputs([]string{"*.scss", "a.scss"}, root)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.scss"), filepath.Join(root, "b.scss")}, resolved)
}

func TestResolver_NoMatches(t *testing.T) {
	_, err := fs.NewResolver().ResolveInputs([]string{"test/output/output.{css,scss}"}, t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInputNotFound.Error())
}

func TestResolver_InvalidPatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{name: "malformed class", pattern: "["},
		{name: "unclosed brace", pattern: "output.{css,scss"},
		{name: "stray closing brace", pattern: "output.css}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fs.NewResolver().ResolveInputs([]string{tt.pattern}, t.TempDir())
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInvalidPattern.Error())
		})
	}
}

func TestResolver_NestedBraces(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "a.css", "b.scss", "c.scss")

	resolved, err := fs.NewResolver().ResolveInputs([]string{"{a.css,{b,c}.scss}"}, root)
	require.NoError(t, err)
	assert.Len(t, resolved, 3)
}
