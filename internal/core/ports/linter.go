package ports

import (
	"context"

	"go.trai.ch/stylekit/internal/core/domain"
)

// Linter invokes the external stylesheet linter.
//
// Lint and Report are deliberately separate: Report produces the advisory
// report artifact, Lint returns structured results for gating.
//
//go:generate go run go.uber.org/mock/mockgen -source=linter.go -destination=mocks/mock_linter.go -package=mocks
type Linter interface {
	// Lint runs the linter and returns its structured result.
	// Lint problems are reported through LintResult.Errored, not as an error.
	Lint(ctx context.Context, opts domain.LintOptions) (*domain.LintResult, error)

	// Report runs the linter so that it writes its plaintext report to opts.OutputFile.
	Report(ctx context.Context, opts domain.ReportOptions) (*domain.ReportOutcome, error)
}
