package testrunner

import (
	"encoding/json"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/stylekit/internal/core/domain"
)

// testEvent is one line of `go test -json` (test2json) output.
type testEvent struct {
	Action  string  `json:"Action"`
	Package string  `json:"Package"`
	Test    string  `json:"Test"`
	Elapsed float64 `json:"Elapsed"`
	Output  string  `json:"Output"`
}

// collector turns test command output into case results. Lines that are
// not test2json events are echoed unchanged. Unless verbose, the output of
// a test is only echoed when it fails.
type collector struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
	pending map[string][]string
	cases   []domain.CaseResult
}

func newCollector(out io.Writer, verbose bool) *collector {
	return &collector{
		out:     out,
		verbose: verbose,
		pending: make(map[string][]string),
	}
}

func (c *collector) line(s string) {
	ev, ok := parseEvent(s)
	if !ok {
		c.raw(s)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := ev.Package + "\x00" + ev.Test
	switch ev.Action {
	case "output":
		if c.verbose {
			_, _ = io.WriteString(c.out, ev.Output)
			return
		}
		c.pending[key] = append(c.pending[key], ev.Output)
	case "pass", "fail", "skip":
		output := strings.Join(c.pending[key], "")
		delete(c.pending, key)

		if ev.Action == "fail" && !c.verbose {
			_, _ = io.WriteString(c.out, output)
		}
		if ev.Test == "" {
			return
		}

		c.cases = append(c.cases, domain.CaseResult{
			Suite:    ev.Package,
			Name:     ev.Test,
			Passed:   ev.Action == "pass",
			Skipped:  ev.Action == "skip",
			Failure:  failureOutput(ev.Action, output),
			Duration: time.Duration(ev.Elapsed * float64(time.Second)),
		})
	}
}

func (c *collector) raw(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, s+"\n")
}

func (c *collector) results() []domain.CaseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.cases)
}

func parseEvent(s string) (testEvent, bool) {
	var ev testEvent
	if !strings.HasPrefix(s, "{") {
		return ev, false
	}
	if err := json.Unmarshal([]byte(s), &ev); err != nil || ev.Action == "" {
		return ev, false
	}
	return ev, true
}

func failureOutput(action, output string) string {
	if action != "fail" {
		return ""
	}
	return strings.TrimRight(output, "\n")
}
