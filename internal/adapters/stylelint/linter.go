// Package stylelint drives the stylelint CLI.
package stylelint

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/stylekit/internal/adapters/shell"
	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/stylekit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Exit codes of the stylelint CLI.
const (
	exitClean    = 0
	exitProblems = 2
)

// stderrTailLines is how much linter stderr is attached to errors.
const stderrTailLines = 20

var _ ports.Linter = (*Linter)(nil)

// Linter implements ports.Linter by running the stylelint CLI.
type Linter struct {
	runner *shell.Runner
}

// New creates a Linter that starts stylelint through runner.
func New(runner *shell.Runner) *Linter {
	return &Linter{runner: runner}
}

// Lint runs stylelint with the JSON formatter and decodes its results.
func (l *Linter) Lint(ctx context.Context, opts domain.LintOptions) (*domain.LintResult, error) {
	args, err := lintArgs(opts, "json")
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	code, err := l.run(ctx, opts.Dir, args, &stdout, &stderr)
	if err != nil {
		return nil, err
	}
	if code != exitClean && code != exitProblems {
		return nil, exitError(code, args, stderr.String())
	}

	results, err := decodeResults(stdout.Bytes(), stderr.Bytes())
	if err != nil {
		return nil, zerr.With(zerr.With(err, "exit_code", code), "stderr", tail(stderr.String(), stderrTailLines))
	}

	res := &domain.LintResult{Results: results, Errored: code == exitProblems}
	for _, r := range results {
		if r.Errored {
			res.Errored = true
			break
		}
	}

	return res, nil
}

// Report runs stylelint with the string formatter so that it writes a
// plaintext report to opts.OutputFile. The report directory is created first.
func (l *Linter) Report(ctx context.Context, opts domain.ReportOptions) (*domain.ReportOutcome, error) {
	if opts.OutputFile == "" {
		return nil, zerr.With(domain.ErrLinterFailed, "reason", "no report output file")
	}
	dir := filepath.Dir(opts.OutputFile)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportDirCreateFailed.Error()), "path", dir)
	}

	args, err := lintArgs(opts.LintOptions, "string")
	if err != nil {
		return nil, err
	}
	args = append(args, "--output-file", opts.OutputFile, "--no-color")

	var stderr bytes.Buffer
	code, err := l.run(ctx, opts.Dir, args, io.Discard, &stderr)
	if err != nil {
		return nil, err
	}
	if code != exitClean && code != exitProblems {
		return nil, exitError(code, args, stderr.String())
	}

	return &domain.ReportOutcome{
		OutputFile: opts.OutputFile,
		ExitCode:   code,
		Errored:    code == exitProblems,
	}, nil
}

func (l *Linter) run(ctx context.Context, dir string, args []string, stdout, stderr io.Writer) (int, error) {
	if v := ports.VertexFromContext(ctx); v != nil {
		stderr = io.MultiWriter(stderr, v.Stderr())
	}

	code, err := l.runner.Run(ctx, shell.Command{
		Args:   args,
		Dir:    dir,
		Env:    map[string]string{"FORCE_COLOR": "0"},
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		return code, zerr.With(zerr.Wrap(err, domain.ErrLinterFailed.Error()), "command", strings.Join(args, " "))
	}
	return code, nil
}

func exitError(code int, args []string, stderr string) error {
	err := zerr.With(domain.ErrLinterFailed, "exit_code", code)
	err = zerr.With(err, "command", strings.Join(args, " "))
	if s := tail(stderr, stderrTailLines); s != "" {
		err = zerr.With(err, "stderr", s)
	}
	return err
}

// tail returns the last n non-empty-trailing lines of s.
func tail(s string, n int) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
