package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when a task name is registered twice.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrTaskNotFound is returned when a requested task or composite step is not registered.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrCycleDetected is returned when composite tasks reference each other recursively.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrEmptyComposite is returned when a composite task declares no steps.
	ErrEmptyComposite = zerr.New("composite task has no steps")

	// ErrInvalidTaskKind is returned when a task carries options that do not match its kind.
	ErrInvalidTaskKind = zerr.New("invalid task kind")

	// ErrConfigReadFailed is returned when the config file exists but cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned for config files with an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrCleanFailed is returned when a scratch path cannot be removed.
	ErrCleanFailed = zerr.New("failed to clean scratch path")

	// ErrInputNotFound is returned when a lint source pattern matches no files.
	ErrInputNotFound = zerr.New("input not found")

	// ErrInvalidPattern is returned when a lint source pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid source pattern")

	// ErrLinterFailed is returned when the external linter cannot be run or crashes.
	ErrLinterFailed = zerr.New("linter invocation failed")

	// ErrLinterOutputInvalid is returned when the linter output cannot be decoded.
	ErrLinterOutputInvalid = zerr.New("failed to decode linter output")

	// ErrReportDirCreateFailed is returned when the report directory cannot be created.
	ErrReportDirCreateFailed = zerr.New("failed to create report directory")

	// ErrLintFailed is returned when lint problems are found and failOnError is set.
	ErrLintFailed = zerr.New("lint reported errors")

	// ErrReportErrored is returned by the verification probe when the linter reports errors.
	ErrReportErrored = zerr.New("report should not contain any messages")

	// ErrTestRunnerFailed is returned when the test runner cannot be started.
	ErrTestRunnerFailed = zerr.New("test runner invocation failed")

	// ErrTestsFailed is returned when the test runner reports failure.
	ErrTestsFailed = zerr.New("tests failed")

	// ErrTaskExecutionFailed is returned when a pipeline step fails.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrPipelineFailed marks a pipeline failure that has already been reported.
	ErrPipelineFailed = zerr.New("pipeline failed")

	// ErrFileHashFailed is returned when a watched file cannot be hashed.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to start watcher")
)
