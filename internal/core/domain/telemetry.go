package domain

import "time"

// LogLevel represents the severity of a message recorded on a step vertex,
// mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// VertexSummary is the recorded outcome of one step vertex.
type VertexSummary struct {
	Name     string
	Duration time.Duration
	// Done is false for a vertex that never completed, e.g. on interrupt.
	Done bool
	// Err holds the completion error text; empty on success.
	Err string
	// Note is the last line the step wrote.
	Note string
	// Stderr holds the last lines of the step's error output.
	Stderr []string
}

// Failed reports whether the vertex completed with an error.
func (s VertexSummary) Failed() bool {
	return s.Err != ""
}
