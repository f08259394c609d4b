// Package testrunner runs the test suite of the run-tests task, either the
// built-in suite or an external test command.
package testrunner

import (
	"context"
	"io"
	"os"
	"time"

	"go.trai.ch/stylekit/internal/adapters/shell"
	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/stylekit/internal/core/ports"
	"go.trai.ch/zerr"
)

// CaseSource provides the cases of the built-in suite.
type CaseSource interface {
	Case(opts domain.ProbeOptions) domain.TestCase
}

var _ ports.TestRunner = (*Runner)(nil)

// Runner implements ports.TestRunner.
type Runner struct {
	shell  *shell.Runner
	source CaseSource
	out    io.Writer
}

// New creates a Runner printing its report to stdout.
func New(sh *shell.Runner, source CaseSource) *Runner {
	return &Runner{shell: sh, source: source, out: os.Stdout}
}

// WithOutput redirects the test report to w.
func (r *Runner) WithOutput(w io.Writer) *Runner {
	r.out = w
	return r
}

// Run starts the suite in the background. The returned channel receives
// exactly one result and is then closed.
func (r *Runner) Run(ctx context.Context, opts domain.TestOptions, cwd string) <-chan domain.TestResult {
	done := make(chan domain.TestResult, 1)
	go func() {
		defer close(done)
		if len(opts.Command) == 0 {
			done <- r.runBuiltin(ctx, opts, cwd)
			return
		}
		done <- r.runCommand(ctx, opts, cwd)
	}()
	return done
}

func (r *Runner) output(ctx context.Context) io.Writer {
	if v := ports.VertexFromContext(ctx); v != nil {
		return io.MultiWriter(r.out, v.Stdout())
	}
	return r.out
}

func (r *Runner) runBuiltin(ctx context.Context, opts domain.TestOptions, cwd string) domain.TestResult {
	probe := opts.Probe
	probe.Dir = cwd
	cases := []domain.TestCase{r.source.Case(probe)}

	rep := newReporter(r.output(ctx), opts.Verbose)
	result := domain.TestResult{Success: true}

	for _, tc := range cases {
		if err := ctx.Err(); err != nil {
			return domain.TestResult{Err: zerr.Wrap(err, domain.ErrTestRunnerFailed.Error()), Cases: result.Cases}
		}

		start := time.Now()
		err := tc.Run(ctx)
		cr := domain.CaseResult{
			Suite:    tc.Suite,
			Name:     tc.Name,
			Passed:   err == nil,
			Duration: time.Since(start),
		}
		if err != nil {
			cr.Failure = failureMessage(err)
			result.Success = false
		}
		result.Cases = append(result.Cases, cr)
		rep.caseDone(cr)
	}

	rep.summary(result.Cases)
	return result
}

func (r *Runner) runCommand(ctx context.Context, opts domain.TestOptions, cwd string) domain.TestResult {
	out := r.output(ctx)
	col := newCollector(out, opts.Verbose)

	stdout := shell.NewLineWriter(col.line)
	stderr := shell.NewLineWriter(col.raw)

	code, err := r.shell.Run(ctx, shell.Command{
		Args:   opts.Command,
		Dir:    cwd,
		Stdout: stdout,
		Stderr: stderr,
	})
	_ = stdout.Close()
	_ = stderr.Close()

	if err != nil {
		return domain.TestResult{Err: zerr.Wrap(err, domain.ErrTestRunnerFailed.Error()), Cases: col.results()}
	}

	cases := col.results()
	if len(cases) > 0 {
		newReporter(out, false).summary(cases)
	}

	return domain.TestResult{Success: code == 0, Cases: cases}
}
