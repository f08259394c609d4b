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

func TestHasher_ComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.scss")
	b := filepath.Join(dir, "b.scss")
	require.NoError(t, os.WriteFile(a, []byte(".a { color: red; }\n"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(".a { color: red; }\n"), 0o600))

	h := fs.NewHasher()
	hashA, err := h.ComputeFileHash(a)
	require.NoError(t, err)
	hashB, err := h.ComputeFileHash(b)
	require.NoError(t, err)
	assert.Equal(t, hashA, hashB)

	require.NoError(t, os.WriteFile(b, []byte(".a { color: blue; }\n"), 0o600))
	hashB, err = h.ComputeFileHash(b)
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB)
}

func TestHasher_MissingFile(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "missing.scss"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileHashFailed.Error())
}
