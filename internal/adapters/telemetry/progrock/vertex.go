package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/stylekit/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer capturing the step's standard output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer capturing the step's error output.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log writes msg to the vertex output. Warnings and errors go to stderr
// with their level.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	if level < domain.LogLevelWarn {
		_, _ = fmt.Fprintln(v.vertex.Stdout(), msg)
		return
	}
	_, _ = fmt.Fprintf(v.vertex.Stderr(), "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex finished.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
