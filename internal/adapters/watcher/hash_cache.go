package watcher

import (
	"sync"
	"unique"

	"go.trai.ch/stylekit/internal/core/ports"
)

// HashCache remembers the content hash of every file it has seen, so that
// events which leave a file's content untouched (touch, editor save without
// changes) do not trigger a rerun.
type HashCache struct {
	mu     sync.Mutex
	hashes map[unique.Handle[string]]uint64
	hasher ports.Hasher
}

// NewHashCache creates an empty hash cache.
func NewHashCache(hasher ports.Hasher) *HashCache {
	return &HashCache{
		hashes: make(map[unique.Handle[string]]uint64),
		hasher: hasher,
	}
}

// Seed records the current hashes of paths. Unreadable paths are ignored.
func (h *HashCache) Seed(paths []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, path := range paths {
		if sum, err := h.hasher.ComputeFileHash(path); err == nil {
			h.hashes[unique.Make(path)] = sum
		}
	}
}

// Changed returns the subset of paths whose content differs from the last
// recorded hash and records the new hashes. A path that can no longer be
// hashed (removed, renamed away, a directory) counts as changed and is forgotten.
func (h *HashCache) Changed(paths []string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var changed []string
	for _, path := range paths {
		key := unique.Make(path)
		prev, known := h.hashes[key]

		sum, err := h.hasher.ComputeFileHash(path)
		if err != nil {
			delete(h.hashes, key)
			changed = append(changed, path)
			continue
		}

		h.hashes[key] = sum
		if !known || prev != sum {
			changed = append(changed, path)
		}
	}
	return changed
}

// Len returns the number of tracked files.
func (h *HashCache) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.hashes)
}
