package ports

// Hasher computes content digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns the digest of the file's content.
	ComputeFileHash(path string) (uint64, error)
}
