package shell_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylekit/internal/adapters/shell"
)

func TestRunner_CapturesOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code, err := shell.NewRunner().Run(t.Context(), shell.Command{
		Args:   []string{"sh", "-c", "echo out; echo err >&2"},
		Stdout: &stdout,
		Stderr: &stderr,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestRunner_NonZeroExitIsNotAnError(t *testing.T) {
	code, err := shell.NewRunner().Run(t.Context(), shell.Command{
		Args: []string{"sh", "-c", "exit 2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, code)
}

func TestRunner_WorkingDirAndEnv(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer

	_, err := shell.NewRunner().Run(t.Context(), shell.Command{
		Args:   []string{"sh", "-c", "pwd; echo $STYLEKIT_TEST"},
		Dir:    dir,
		Env:    map[string]string{"STYLEKIT_TEST": "yes"},
		Stdout: &stdout,
	})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "yes")
}

func TestRunner_MissingExecutable(t *testing.T) {
	code, err := shell.NewRunner().Run(t.Context(), shell.Command{
		Args: []string{"stylekit-definitely-missing-binary"},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, shell.ErrCommandFailed.Error())
	assert.Equal(t, -1, code)
}

func TestRunner_EmptyCommand(t *testing.T) {
	_, err := shell.NewRunner().Run(t.Context(), shell.Command{})
	require.Error(t, err)
}

func TestRunner_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	_, err := shell.NewRunner().Run(ctx, shell.Command{
		Args: []string{"sleep", "5"},
	})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunner_OutputWriteFailureDoesNotBlockChild(t *testing.T) {
	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	var stderr bytes.Buffer
	code, err := shell.NewRunner().Run(ctx, shell.Command{
		// More than a pipe buffer on both streams.
		Args:   []string{"sh", "-c", "head -c 262144 /dev/zero; head -c 262144 /dev/zero >&2; exit 2"},
		Stdout: failingWriter{},
		Stderr: &stderr,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, shell.ErrOutputFailed.Error())
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 2, code)
	assert.Equal(t, 262144, stderr.Len())
}
