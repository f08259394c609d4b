package config

import "time"

// Stylekitfile represents the structure of the stylekit.yaml configuration file.
type Stylekitfile struct {
	Version string              `yaml:"version"`
	Clean   CleanDTO            `yaml:"clean"`
	Lint    LintDTO             `yaml:"lint"`
	Linter  LinterDTO           `yaml:"linter"`
	Test    TestDTO             `yaml:"test"`
	Probe   ProbeDTO            `yaml:"probe"`
	Watch   WatchDTO            `yaml:"watch"`
	Tasks   map[string][]string `yaml:"tasks"`
}

// CleanDTO configures the clean task.
type CleanDTO struct {
	Paths []string `yaml:"paths"`
}

// LintDTO configures the lint task.
type LintDTO struct {
	OutputFile  string   `yaml:"outputFile"`
	ConfigFile  string   `yaml:"configFile"`
	FailOnError bool     `yaml:"failOnError"`
	Src         []string `yaml:"src"`
	Syntax      string   `yaml:"syntax"`
}

// LinterDTO configures how the linter executable is invoked.
type LinterDTO struct {
	Command      []string `yaml:"command"`
	LegacySyntax bool     `yaml:"legacySyntax"`
}

// TestDTO configures the run-tests task.
type TestDTO struct {
	Command []string `yaml:"command"`
	Verbose bool     `yaml:"verbose"`
}

// ProbeDTO configures the verification probe.
type ProbeDTO struct {
	Files      string `yaml:"files"`
	Syntax     string `yaml:"syntax"`
	Cache      bool   `yaml:"cache"`
	ConfigFile string `yaml:"configFile"`
}

// WatchDTO configures watch mode.
type WatchDTO struct {
	Debounce time.Duration `yaml:"debounce"`
}
