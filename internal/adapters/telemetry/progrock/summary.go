package progrock

import (
	"bytes"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/vito/progrock"
	"go.trai.ch/stylekit/internal/core/domain"
)

// stderrTailLines caps the error output kept per vertex.
const stderrTailLines = 10

var _ progrock.Writer = (*Summary)(nil)

// Summary is a progrock.Writer folding status updates into one state per
// vertex until they are drained.
type Summary struct {
	mu       sync.Mutex
	order    []string
	vertices map[string]*vertexState
}

type vertexState struct {
	name      string
	started   time.Time
	completed time.Time
	done      bool
	err       string
	note      string
	stderr    []string
	// Partial lines per stream, completed by a later write.
	pending map[progrock.LogStream][]byte
}

// NewSummary creates an empty Summary.
func NewSummary() *Summary {
	return &Summary{vertices: make(map[string]*vertexState)}
}

// WriteStatus applies one status update.
func (s *Summary) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.Vertexes {
		st := s.state(v.Id)
		st.name = v.Name
		if v.Started != nil {
			st.started = v.Started.AsTime()
		}
		if v.Completed != nil {
			st.done = true
			st.completed = v.Completed.AsTime()
		}
		if v.Error != nil {
			st.err = *v.Error
		}
	}

	for _, l := range update.Logs {
		st := s.state(l.Vertex)
		data := append(st.pending[l.Stream], l.Data...)
		for {
			i := bytes.IndexByte(data, '\n')
			if i < 0 {
				break
			}
			st.addLine(l.Stream, string(data[:i]))
			data = data[i+1:]
		}
		st.pending[l.Stream] = data
	}

	return nil
}

// Close implements progrock.Writer.
func (s *Summary) Close() error {
	return nil
}

// Drain returns the recorded vertices in start order and resets the Summary.
func (s *Summary) Drain() []domain.VertexSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.VertexSummary, 0, len(s.order))
	for _, id := range s.order {
		st := s.vertices[id]
		for stream, rest := range st.pending {
			st.addLine(stream, string(rest))
		}

		vs := domain.VertexSummary{
			Name:   st.name,
			Done:   st.done,
			Err:    st.err,
			Note:   st.note,
			Stderr: st.stderr,
		}
		if st.done && !st.started.IsZero() {
			vs.Duration = st.completed.Sub(st.started)
		}
		out = append(out, vs)
	}

	s.order = nil
	s.vertices = make(map[string]*vertexState)
	return out
}

func (s *Summary) state(id string) *vertexState {
	st, ok := s.vertices[id]
	if !ok {
		st = &vertexState{pending: make(map[progrock.LogStream][]byte)}
		s.vertices[id] = st
		s.order = append(s.order, id)
	}
	return st
}

func (st *vertexState) addLine(stream progrock.LogStream, line string) {
	line = strings.TrimSpace(ansi.Strip(line))
	if line == "" {
		return
	}
	st.note = line
	if stream != progrock.LogStream_STDERR {
		return
	}
	st.stderr = append(st.stderr, line)
	if len(st.stderr) > stderrTailLines {
		st.stderr = st.stderr[len(st.stderr)-stderrTailLines:]
	}
}
