package ports

import (
	"context"

	"go.trai.ch/stylekit/internal/core/domain"
)

// TestRunner runs the test suite.
//
//go:generate go run go.uber.org/mock/mockgen -source=test_runner.go -destination=mocks/mock_test_runner.go -package=mocks
type TestRunner interface {
	// Run starts the suite with the given options in cwd. The returned channel
	// delivers exactly one result and is then closed.
	Run(ctx context.Context, opts domain.TestOptions, cwd string) <-chan domain.TestResult
}
