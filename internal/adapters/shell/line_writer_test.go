package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylekit/internal/adapters/shell"
)

func TestLineWriter_FragmentedWrites(t *testing.T) {
	var lines []string
	w := shell.NewLineWriter(func(line string) { lines = append(lines, line) })

	_, err := w.Write([]byte("part1"))
	require.NoError(t, err)
	_, err = w.Write([]byte("part2\nline2\r\nta"))
	require.NoError(t, err)
	assert.Equal(t, []string{"part1part2", "line2"}, lines)

	require.NoError(t, w.Close())
	assert.Equal(t, []string{"part1part2", "line2", "ta"}, lines)
}

func TestLineWriter_CloseWithoutPending(t *testing.T) {
	calls := 0
	w := shell.NewLineWriter(func(string) { calls++ })

	_, err := w.Write([]byte("done\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, 1, calls)
}
