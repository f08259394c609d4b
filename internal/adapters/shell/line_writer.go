package shell

import (
	"bytes"
	"sync"
)

// LineWriter buffers writes and calls fn once per complete line, without
// the trailing newline. Close flushes a final unterminated line.
type LineWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
	fn  func(line string)
}

// NewLineWriter creates a LineWriter calling fn for every line.
func NewLineWriter(fn func(line string)) *LineWriter {
	return &LineWriter{fn: fn}
}

// Write implements io.Writer.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		i := bytes.IndexByte(w.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := string(bytes.TrimSuffix(w.buf.Next(i + 1)[:i], []byte("\r")))
		w.fn(line)
	}
	return len(p), nil
}

// Close flushes any buffered partial line.
func (w *LineWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.fn(w.buf.String())
		w.buf.Reset()
	}
	return nil
}
