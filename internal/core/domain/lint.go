package domain

// Severity levels reported by the linter.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// LinterSettings describes how the external linter is invoked.
type LinterSettings struct {
	// Command is the linter executable followed by fixed leading arguments.
	Command []string
	// LegacySyntax passes --syntax <name> instead of --custom-syntax <module>.
	LegacySyntax bool
}

// LintOptions are the options of a single linter invocation.
type LintOptions struct {
	Linter     LinterSettings
	Files      []string
	ConfigFile string
	Syntax     string
	Cache      bool
	// Dir is the working directory of the invocation; empty means the current one.
	Dir string
}

// ReportOptions are the options of the lint task: the linter writes its
// plaintext report to OutputFile.
type ReportOptions struct {
	LintOptions

	OutputFile  string
	FailOnError bool
	// Src holds the source patterns; they are resolved into Files before invocation.
	Src []string
}

// LintResult is the structured result of a linter invocation.
type LintResult struct {
	Errored bool
	Results []FileResult
}

// FileResult holds the findings for one linted file.
type FileResult struct {
	Source      string    `json:"source"`
	Errored     bool      `json:"errored"`
	Warnings    []Warning `json:"warnings"`
	ParseErrors []Warning `json:"parseErrors"`
}

// Warning is one linter finding.
type Warning struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

// Findings returns every warning and parse error across all files, in order.
func (r *LintResult) Findings() []Finding {
	var out []Finding
	for _, file := range r.Results {
		for _, w := range file.ParseErrors {
			out = append(out, Finding{Source: file.Source, Warning: w})
		}
		for _, w := range file.Warnings {
			out = append(out, Finding{Source: file.Source, Warning: w})
		}
	}
	return out
}

// ErrorCount returns the number of findings with error severity.
func (r *LintResult) ErrorCount() int {
	n := 0
	for _, f := range r.Findings() {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Finding is a warning attributed to its source file.
type Finding struct {
	Source string
	Warning
}

// ReportOutcome is what the lint task learns from producing the report.
type ReportOutcome struct {
	OutputFile string
	ExitCode   int
	Errored    bool
}
