package stylelint

import (
	"strings"

	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/zerr"
)

// lintArgs builds the full command line for one invocation.
func lintArgs(opts domain.LintOptions, formatter string) ([]string, error) {
	if len(opts.Linter.Command) == 0 {
		return nil, zerr.With(domain.ErrLinterFailed, "reason", "no linter command configured")
	}
	if len(opts.Files) == 0 {
		return nil, zerr.With(domain.ErrLinterFailed, "reason", "no input files")
	}

	args := make([]string, 0, len(opts.Linter.Command)+len(opts.Files)+8)
	args = append(args, opts.Linter.Command...)
	args = append(args, opts.Files...)

	if opts.ConfigFile != "" {
		args = append(args, "--config", opts.ConfigFile)
	}
	if opts.Syntax != "" {
		if opts.Linter.LegacySyntax {
			args = append(args, "--syntax", opts.Syntax)
		} else if module := customSyntax(opts.Syntax); module != "" {
			args = append(args, "--custom-syntax", module)
		}
	}
	if opts.Cache {
		args = append(args, "--cache")
	}

	return append(args, "--formatter", formatter), nil
}

// customSyntax maps a syntax name to the PostCSS syntax module stylelint
// loads for it. Plain CSS needs none; module names pass through.
func customSyntax(syntax string) string {
	switch {
	case syntax == "css":
		return ""
	case strings.HasPrefix(syntax, "postcss-"), strings.ContainsAny(syntax, "/\\"):
		return syntax
	default:
		return "postcss-" + syntax
	}
}
