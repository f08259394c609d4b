// Package pipeline executes task plans step by step.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/stylekit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes the leaf tasks of a plan sequentially. A failed step halts
// the run and every remaining step is reported as skipped.
type Runner struct {
	cleaner   ports.Cleaner
	linter    ports.Linter
	resolver  ports.InputResolver
	tests     ports.TestRunner
	logger    ports.Logger
	telemetry ports.Telemetry
	root      string
}

// NewRunner creates a new Runner rooted at the working directory.
func NewRunner(
	cleaner ports.Cleaner,
	linter ports.Linter,
	resolver ports.InputResolver,
	tests ports.TestRunner,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Runner {
	return &Runner{
		cleaner:   cleaner,
		linter:    linter,
		resolver:  resolver,
		tests:     tests,
		logger:    logger,
		telemetry: telemetry,
		root:      ".",
	}
}

// Run expands target against p and executes the resulting plan.
// The returned result is non-nil whenever the plan could be built.
func (r *Runner) Run(ctx context.Context, p *domain.Pipeline, target string) (*domain.RunResult, error) {
	plan, err := p.Plan(target)
	if err != nil {
		return nil, err
	}

	result := &domain.RunResult{
		Target: target,
		Steps:  make([]domain.StepResult, len(plan)),
	}
	for i, task := range plan {
		result.Steps[i] = domain.StepResult{
			Task:   task.Name.String(),
			Kind:   task.Kind,
			Status: domain.StepPending,
		}
	}

	for i := range plan {
		if ctxErr := ctx.Err(); ctxErr != nil {
			skipFrom(result, i)
			return result, ctxErr
		}

		step := &result.Steps[i]
		step.Status = domain.StepRunning
		start := time.Now()
		stepErr := r.runStep(ctx, &plan[i])
		step.Duration = time.Since(start)

		if stepErr != nil {
			step.Status = domain.StepFailed
			step.Err = zerr.With(zerr.Wrap(stepErr, domain.ErrTaskExecutionFailed.Error()), "task", step.Task)
			skipFrom(result, i+1)
			r.logger.Error(step.Err)
			return result, step.Err
		}
		step.Status = domain.StepCompleted
	}

	return result, nil
}

func skipFrom(result *domain.RunResult, i int) {
	for ; i < len(result.Steps); i++ {
		result.Steps[i].Status = domain.StepSkipped
	}
}

func (r *Runner) runStep(ctx context.Context, task *domain.Task) (err error) {
	ctx, vertex := r.telemetry.Record(ctx, task.Name.String())
	defer func() { vertex.Complete(err) }()

	switch task.Kind {
	case domain.KindClean:
		return r.clean(ctx, task.Clean)
	case domain.KindLint:
		return r.lint(ctx, vertex, task.Lint)
	case domain.KindRunTests:
		return r.runTests(ctx, task.Tests)
	default:
		return zerr.With(zerr.With(domain.ErrInvalidTaskKind, "task_name", task.Name.String()), "kind", string(task.Kind))
	}
}

func (r *Runner) clean(ctx context.Context, opts *domain.CleanOptions) error {
	return r.cleaner.Clean(ctx, opts.Paths)
}

func (r *Runner) lint(ctx context.Context, vertex ports.Vertex, opts *domain.ReportOptions) error {
	files, err := r.resolver.ResolveInputs(opts.Src, r.root)
	if err != nil {
		return err
	}

	reportOpts := *opts
	reportOpts.Files = files
	reportOpts.Dir = r.root

	outcome, err := r.linter.Report(ctx, reportOpts)
	if err != nil {
		return err
	}

	if !outcome.Errored {
		vertex.Log(domain.LogLevelInfo, "report written to "+outcome.OutputFile)
		return nil
	}

	if opts.FailOnError {
		return zerr.With(domain.ErrLintFailed, "report", outcome.OutputFile)
	}

	msg := fmt.Sprintf("lint problems found, see %s", outcome.OutputFile)
	vertex.Log(domain.LogLevelWarn, msg)
	r.logger.Warn(msg)
	return nil
}

func (r *Runner) runTests(ctx context.Context, opts *domain.TestOptions) error {
	select {
	case res, ok := <-r.tests.Run(ctx, *opts, r.root):
		if !ok {
			return zerr.With(domain.ErrTestRunnerFailed, "reason", "runner closed without a result")
		}
		if res.Err != nil {
			return zerr.Wrap(res.Err, domain.ErrTestRunnerFailed.Error())
		}
		if !res.Success {
			return zerr.With(domain.ErrTestsFailed, "failed", len(res.Failed()))
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
