package domain

import (
	"context"
	"time"
)

// ProbeOptions configure the verification probe's linter invocation.
type ProbeOptions struct {
	Linter LinterSettings
	Files  string
	Syntax string
	Cache  bool
	// ConfigFile is optional; the linter discovers its configuration when empty.
	ConfigFile string
	// Dir is the linter's working directory; empty means the current one.
	Dir string
}

// LintOptions returns the linter options the probe lints with.
func (o ProbeOptions) LintOptions() LintOptions {
	return LintOptions{
		Linter:     o.Linter,
		Files:      []string{o.Files},
		ConfigFile: o.ConfigFile,
		Syntax:     o.Syntax,
		Cache:      o.Cache,
		Dir:        o.Dir,
	}
}

// TestOptions configure the run-tests task.
type TestOptions struct {
	// Command runs an external test framework. Empty selects the built-in suite.
	Command []string
	Verbose bool
	Probe   ProbeOptions
}

// TestCase is one case of the built-in suite.
type TestCase struct {
	Suite string
	Name  string
	Run   func(ctx context.Context) error
}

// FullName joins suite and case name the way reporters print them.
func (c TestCase) FullName() string {
	if c.Suite == "" {
		return c.Name
	}
	return c.Suite + " › " + c.Name
}

// CaseResult is the outcome of one test case.
type CaseResult struct {
	Suite    string
	Name     string
	Passed   bool
	Skipped  bool
	Failure  string
	Duration time.Duration
}

// TestResult is delivered once by the test runner when a run completes.
type TestResult struct {
	Success bool
	Cases   []CaseResult
	// Err is set when the runner itself could not run the suite.
	Err error
}

// Failed returns the failed cases.
func (r TestResult) Failed() []CaseResult {
	var failed []CaseResult
	for _, c := range r.Cases {
		if !c.Passed && !c.Skipped {
			failed = append(failed, c)
		}
	}
	return failed
}
