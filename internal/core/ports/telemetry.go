package ports

import (
	"context"
	"io"

	"go.trai.ch/stylekit/internal/core/domain"
)

// Telemetry records pipeline steps as vertices.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a vertex for a step. The returned context carries the vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Drain returns the vertices recorded since the previous call, in
	// start order, and forgets them.
	Drain() []domain.VertexSummary
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded step.
type Vertex interface {
	// Stdout returns a writer capturing the step's standard output.
	Stdout() io.Writer
	// Stderr returns a writer capturing the step's error output.
	Stderr() io.Writer
	// Log records a message on the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex finished; err is nil on success.
	Complete(err error)
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, or nil.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexKey{}).(Vertex)
	return v
}
