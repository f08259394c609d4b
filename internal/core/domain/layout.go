package domain

import "time"

const (
	// ConfigFileName is the default name of the stylekit configuration file.
	ConfigFileName = "stylekit.yaml"

	// DefaultScratchDir is removed by the clean task.
	DefaultScratchDir = "test/tmp"

	// DefaultReportFile is where the linter writes its plaintext report.
	DefaultReportFile = "test/tmp/output/report.txt"

	// DefaultRuleConfig is the linter rule-configuration file.
	DefaultRuleConfig = ".stylelintrc"

	// DefaultLintSource is the pattern of stylesheets linted by the lint task.
	DefaultLintSource = "test/output/output.{css,scss}"

	// DefaultFixture is the stylesheet checked by the verification probe.
	DefaultFixture = "test/output/output.scss"

	// DefaultSyntax is the stylesheet syntax of the fixture.
	DefaultSyntax = "scss"

	// DefaultDebounce is the watch debounce window.
	DefaultDebounce = 200 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750
)

// DefaultLinterCommand runs the project's locally installed stylelint.
func DefaultLinterCommand() []string {
	return []string{"npx", "--no-install", "stylelint"}
}
