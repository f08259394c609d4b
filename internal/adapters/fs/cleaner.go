package fs

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/stylekit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Cleaner = (*Cleaner)(nil)

// Cleaner removes scratch directories with os.RemoveAll.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean removes every path recursively. Missing paths are skipped.
// The working directory itself and filesystem roots are refused.
func (c *Cleaner) Clean(ctx context.Context, paths []string) error {
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := checkCleanPath(path); err != nil {
			return err
		}

		if err := os.RemoveAll(path); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", path)
		}
	}
	return nil
}

func checkCleanPath(path string) error {
	cleaned := filepath.Clean(path)
	if path == "" || cleaned == "." || cleaned == string(filepath.Separator) || cleaned == filepath.VolumeName(cleaned)+string(filepath.Separator) {
		return zerr.With(zerr.With(domain.ErrCleanFailed, "path", path), "reason", "refusing to remove a root directory")
	}
	return nil
}
