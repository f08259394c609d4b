package ports

import "context"

// Cleaner removes scratch paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=cleaner.go -destination=mocks/mock_cleaner.go -package=mocks
type Cleaner interface {
	// Clean removes every path recursively. Paths that do not exist are not an error.
	Clean(ctx context.Context, paths []string) error
}
