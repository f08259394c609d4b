// Package style holds the colours and icons shared by the log handler and
// the test reporter.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Muted  = lipgloss.Color("#6B7280")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Yellow = lipgloss.Color("#D97706")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Skip    = "-"
	Arrow   = "→"
)
