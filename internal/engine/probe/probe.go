// Package probe implements the verification probe: lint the fixture and
// require that the linter reports no errors.
package probe

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/stylekit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Suite and case name of the probe as reported by the test runner.
const (
	SuiteName = "report"
	CaseName  = "should not contain any messages"
)

// maxReportedFindings caps the findings attached to a probe failure.
const maxReportedFindings = 5

// Probe lints a single fixture and asserts a clean result.
type Probe struct {
	linter ports.Linter
}

// New creates a Probe using linter.
func New(linter ports.Linter) *Probe {
	return &Probe{linter: linter}
}

// Verify lints the fixture described by opts. Linter failures are returned
// unchanged; an errored result yields ErrReportErrored carrying the first
// findings.
func (p *Probe) Verify(ctx context.Context, opts domain.ProbeOptions) error {
	res, err := p.linter.Lint(ctx, opts.LintOptions())
	if err != nil {
		return err
	}
	if !res.Errored {
		return nil
	}

	err = zerr.With(domain.ErrReportErrored, "files", opts.Files)
	err = zerr.With(err, "errors", res.ErrorCount())
	if findings := formatFindings(res.Findings()); findings != "" {
		err = zerr.With(err, "findings", findings)
	}
	return err
}

// Case exposes the probe as a test case of the built-in suite.
func (p *Probe) Case(opts domain.ProbeOptions) domain.TestCase {
	return domain.TestCase{
		Suite: SuiteName,
		Name:  CaseName,
		Run: func(ctx context.Context) error {
			return p.Verify(ctx, opts)
		},
	}
}

func formatFindings(findings []domain.Finding) string {
	lines := make([]string, 0, maxReportedFindings+1)
	for i, f := range findings {
		if i == maxReportedFindings {
			lines = append(lines, fmt.Sprintf("... and %d more", len(findings)-maxReportedFindings))
			break
		}
		line := fmt.Sprintf("%s:%d:%d %s", f.Source, f.Line, f.Column, f.Text)
		if f.Rule != "" {
			line += " (" + f.Rule + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
