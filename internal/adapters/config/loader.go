// Package config loads stylekit.yaml into the task registry.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/stylekit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration at path. When the file does not exist the
// built-in defaults are used.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		path = domain.ConfigFileName
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}
		if filepath.Base(path) != domain.ConfigFileName || filepath.Dir(path) != "." {
			l.logger.Warn("config file " + path + " not found, using defaults")
		}
		return Build(&Stylekitfile{})
	}

	file, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return Build(file)
}

// Parse decodes a stylekit.yaml document. Unknown keys are rejected.
func Parse(data []byte) (*Stylekitfile, error) {
	var file Stylekitfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if file.Version != "" && file.Version != "1" {
		return nil, zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version)
	}
	if file.Watch.Debounce < 0 {
		return nil, zerr.With(zerr.With(domain.ErrConfigParseFailed, "field", "watch.debounce"), "value", file.Watch.Debounce.String())
	}

	return &file, nil
}

// Build applies defaults to file and assembles the validated task registry.
func Build(file *Stylekitfile) (*domain.Config, error) {
	linter := domain.LinterSettings{
		Command:      orDefault(file.Linter.Command, domain.DefaultLinterCommand()),
		LegacySyntax: file.Linter.LegacySyntax,
	}

	probe := domain.ProbeOptions{
		Linter:     linter,
		Files:      stringOr(file.Probe.Files, domain.DefaultFixture),
		Syntax:     stringOr(file.Probe.Syntax, domain.DefaultSyntax),
		Cache:      file.Probe.Cache,
		ConfigFile: file.Probe.ConfigFile,
	}

	report := domain.ReportOptions{
		LintOptions: domain.LintOptions{
			Linter:     linter,
			ConfigFile: stringOr(file.Lint.ConfigFile, domain.DefaultRuleConfig),
			Syntax:     file.Lint.Syntax,
		},
		OutputFile:  stringOr(file.Lint.OutputFile, domain.DefaultReportFile),
		FailOnError: file.Lint.FailOnError,
		Src:         orDefault(file.Lint.Src, []string{domain.DefaultLintSource}),
	}

	tests := domain.TestOptions{
		Command: file.Test.Command,
		Verbose: file.Test.Verbose,
		Probe:   probe,
	}

	p := domain.NewPipeline()
	builtins := []*domain.Task{
		domain.NewCleanTask(domain.TaskClean, orDefault(file.Clean.Paths, []string{domain.DefaultScratchDir})...),
		domain.NewLintTask(domain.TaskLint, report),
		domain.NewRunTestsTask(domain.TaskRunTests, tests),
		domain.NewCompositeTask(domain.TaskTest, domain.TaskClean, domain.TaskLint, domain.TaskRunTests),
		domain.NewAliasTask(domain.TaskDefault, domain.TaskTest),
	}
	for _, t := range builtins {
		if err := p.AddTask(t); err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(file.Tasks))
	for name := range file.Tasks {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := p.AddTask(domain.NewCompositeTask(name, file.Tasks[name]...)); err != nil {
			return nil, err
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	debounce := file.Watch.Debounce
	if debounce == 0 {
		debounce = domain.DefaultDebounce
	}

	return &domain.Config{
		Pipeline: p,
		Probe:    probe,
		Watch:    domain.WatchOptions{Debounce: debounce},
	}, nil
}

func orDefault(values, def []string) []string {
	if len(values) == 0 {
		return def
	}
	return slices.Clone(values)
}

func stringOr(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
