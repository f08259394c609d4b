package domain

import (
	"strings"
	"time"
)

// StepStatus represents the lifecycle state of a pipeline step.
type StepStatus string

const (
	// StepPending indicates the step has not started yet.
	StepPending StepStatus = "pending"
	// StepRunning indicates the step is executing.
	StepRunning StepStatus = "running"
	// StepCompleted indicates the step finished successfully.
	StepCompleted StepStatus = "completed"
	// StepFailed indicates the step failed.
	StepFailed StepStatus = "failed"
	// StepSkipped indicates the step never ran because an earlier step failed.
	StepSkipped StepStatus = "skipped"
)

// StepResult records the outcome of one executed task.
type StepResult struct {
	Task     string
	Kind     TaskKind
	Status   StepStatus
	Duration time.Duration
	Err      error
}

// RunResult records the outcome of a pipeline run.
type RunResult struct {
	Target string
	Steps  []StepResult
}

// Success is the logical AND of all step results.
func (r *RunResult) Success() bool {
	if r == nil {
		return false
	}
	for _, s := range r.Steps {
		if s.Status != StepCompleted {
			return false
		}
	}
	return true
}

// Order returns the executed task names joined by arrows, e.g. "clean -> lint".
func (r *RunResult) Order() string {
	names := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		if s.Status == StepSkipped {
			continue
		}
		names = append(names, s.Task)
	}
	return strings.Join(names, " -> ")
}
