// Package shell runs external tools as subprocesses.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrCommandFailed is returned when a subprocess cannot be started.
	ErrCommandFailed = zerr.New("command failed")
	// ErrOutputFailed is returned when process output could not be written.
	ErrOutputFailed = zerr.New("failed to write command output")
)

// Command describes one subprocess invocation.
type Command struct {
	// Args holds the executable followed by its arguments.
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env overrides entries of the inherited environment.
	Env map[string]string
	// Stdout and Stderr receive the process output; nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner starts subprocesses with os/exec.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes cmd and returns its exit code. A non-zero exit is not an
// error; the error is reserved for processes that could not be started
// or were interrupted by ctx, or whose output could not be written. Output
// pipes are drained concurrently and fully before the process is reaped.
func (r *Runner) Run(ctx context.Context, cmd Command) (int, error) {
	if len(cmd.Args) == 0 {
		return -1, zerr.With(ErrCommandFailed, "reason", "empty command")
	}

	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...) //nolint:gosec // user provided command
	c.Dir = cmd.Dir
	c.Env = mergeEnvironment(os.Environ(), cmd.Env)

	stdout, err := c.StdoutPipe()
	if err != nil {
		return -1, r.startError(err, cmd)
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return -1, r.startError(err, cmd)
	}

	if err := c.Start(); err != nil {
		return -1, r.startError(err, cmd)
	}

	var g errgroup.Group
	g.Go(func() error { return drain(cmd.Stdout, stdout) })
	g.Go(func() error { return drain(cmd.Stderr, stderr) })
	drainErr := g.Wait()

	waitErr := c.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, ctxErr
	}

	code := 0
	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
	case errors.As(waitErr, &exitErr):
		code = exitErr.ExitCode()
	default:
		return -1, zerr.With(zerr.Wrap(waitErr, ErrCommandFailed.Error()), "command", strings.Join(cmd.Args, " "))
	}

	if drainErr != nil {
		return code, zerr.With(zerr.Wrap(drainErr, ErrOutputFailed.Error()), "command", strings.Join(cmd.Args, " "))
	}
	return code, nil
}

func (r *Runner) startError(err error, cmd Command) error {
	return zerr.With(zerr.Wrap(err, ErrCommandFailed.Error()), "command", strings.Join(cmd.Args, " "))
}

func drain(w io.Writer, r io.Reader) error {
	if w == nil {
		w = io.Discard
	}
	_, err := io.Copy(w, r)
	if err != nil {
		// The child blocks on a full pipe unless it is read to EOF.
		_, _ = io.Copy(io.Discard, r)
	}
	return err
}

// mergeEnvironment applies overrides on top of the system environment.
func mergeEnvironment(sysEnv []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return sysEnv
	}

	result := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, overridden := overrides[k]; overridden {
			continue
		}
		result = append(result, entry)
	}
	for k, v := range overrides {
		result = append(result, k+"="+v)
	}
	return result
}
