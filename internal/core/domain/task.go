package domain

// TaskKind identifies which orchestrator operation a task performs.
type TaskKind string

const (
	// KindClean removes scratch paths.
	KindClean TaskKind = "clean"
	// KindLint runs the external linter and writes the report artifact.
	KindLint TaskKind = "lint"
	// KindRunTests runs the test suite and reports its verdict.
	KindRunTests TaskKind = "run-tests"
	// KindComposite runs other tasks in order. An alias is a composite with one step.
	KindComposite TaskKind = "composite"
)

// Names of the tasks registered by default.
const (
	TaskClean    = "clean"
	TaskLint     = "lint"
	TaskRunTests = "run-tests"
	TaskTest     = "test"
	TaskDefault  = "default"
)

// Task is a named entry of the task registry.
// Exactly one of the option pointers is set for leaf kinds; composites use Steps.
type Task struct {
	Name  InternedString
	Kind  TaskKind
	Steps []InternedString

	Clean *CleanOptions
	Lint  *ReportOptions
	Tests *TestOptions
}

// CleanOptions configures the clean task.
type CleanOptions struct {
	Paths []string
}

// NewCleanTask creates a clean task.
func NewCleanTask(name string, paths ...string) *Task {
	return &Task{
		Name:  NewInternedString(name),
		Kind:  KindClean,
		Clean: &CleanOptions{Paths: paths},
	}
}

// NewLintTask creates a lint task.
func NewLintTask(name string, opts ReportOptions) *Task {
	return &Task{
		Name: NewInternedString(name),
		Kind: KindLint,
		Lint: &opts,
	}
}

// NewRunTestsTask creates a run-tests task.
func NewRunTestsTask(name string, opts TestOptions) *Task {
	return &Task{
		Name:  NewInternedString(name),
		Kind:  KindRunTests,
		Tests: &opts,
	}
}

// NewCompositeTask creates a task that runs steps in the given order.
func NewCompositeTask(name string, steps ...string) *Task {
	return &Task{
		Name:  NewInternedString(name),
		Kind:  KindComposite,
		Steps: internStrings(steps),
	}
}

// NewAliasTask creates a composite task with a single step.
func NewAliasTask(name, target string) *Task {
	return NewCompositeTask(name, target)
}

func (t *Task) hasOptionsFor(kind TaskKind) bool {
	switch kind {
	case KindClean:
		return t.Clean != nil
	case KindLint:
		return t.Lint != nil
	case KindRunTests:
		return t.Tests != nil
	case KindComposite:
		return len(t.Steps) > 0
	default:
		return false
	}
}
