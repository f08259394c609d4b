package testrunner

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/stylekit/internal/ui/output"
	"go.trai.ch/stylekit/internal/ui/style"
	"go.trai.ch/zerr"
)

type reporter struct {
	out     *termenv.Output
	verbose bool
}

func newReporter(w io.Writer, verbose bool) *reporter {
	return &reporter{out: output.New(w), verbose: verbose}
}

func (r *reporter) caseDone(c domain.CaseResult) {
	name := (domain.TestCase{Suite: c.Suite, Name: c.Name}).FullName()

	switch {
	case c.Skipped:
		r.line(style.Skip+" "+name, style.Muted)
	case c.Passed && r.verbose:
		r.line(fmt.Sprintf("%s %s (%s)", style.Check, name, c.Duration.Round(time.Millisecond)), style.Green)
	case c.Passed:
		r.line(style.Check+" "+name, style.Green)
	default:
		r.line(style.Cross+" "+name, style.Red)
		for _, l := range strings.Split(c.Failure, "\n") {
			r.line("    "+l, style.Red)
		}
	}
}

func (r *reporter) summary(cases []domain.CaseResult) {
	var passed, failed, skipped int
	for _, c := range cases {
		switch {
		case c.Skipped:
			skipped++
		case c.Passed:
			passed++
		default:
			failed++
		}
	}

	parts := make([]string, 0, 4)
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	if skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", skipped))
	}
	parts = append(parts, fmt.Sprintf("%d passed", passed), fmt.Sprintf("%d total", len(cases)))

	color := style.Green
	if failed > 0 {
		color = style.Red
	}
	r.line("Tests: "+strings.Join(parts, ", "), color)
}

func (r *reporter) line(s string, color lipgloss.Color) {
	styled := r.out.String(s).Foreground(termenv.RGBColor(string(color)))
	_, _ = r.out.WriteString(styled.String() + "\n")
}

// failureMessage renders err followed by the metadata of its outermost
// zerr error, sorted by key.
func failureMessage(err error) string {
	msg := err.Error()

	z, ok := err.(*zerr.Error)
	if !ok {
		return msg
	}
	meta := z.Metadata()
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	lines := []string{msg}
	for _, k := range keys {
		value := strings.TrimRight(fmt.Sprint(meta[k]), "\n")
		lines = append(lines, k+": "+strings.ReplaceAll(value, "\n", "\n  "))
	}
	return strings.Join(lines, "\n")
}
