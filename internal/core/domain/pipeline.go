// Package domain contains the core models of the stylesheet pipeline: the
// task registry, lint and test results, and the error taxonomy.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Pipeline is the task registry. It is populated once at startup and only
// read afterwards.
type Pipeline struct {
	tasks map[InternedString]Task
	order []InternedString
}

// NewPipeline creates an empty registry.
func NewPipeline() *Pipeline {
	return &Pipeline{
		tasks: make(map[InternedString]Task),
	}
}

// AddTask registers a task. It returns an error if the name is already taken
// or the task options do not match its kind.
func (p *Pipeline) AddTask(t *Task) error {
	if _, exists := p.tasks[t.Name]; exists {
		return zerr.With(ErrTaskAlreadyExists, "task_name", t.Name.String())
	}
	if !t.hasOptionsFor(t.Kind) {
		if t.Kind == KindComposite {
			return zerr.With(ErrEmptyComposite, "task_name", t.Name.String())
		}
		return zerr.With(zerr.With(ErrInvalidTaskKind, "task_name", t.Name.String()), "kind", string(t.Kind))
	}
	p.tasks[t.Name] = *t
	p.order = append(p.order, t.Name)
	return nil
}

// Task returns the task registered under name.
func (p *Pipeline) Task(name string) (Task, bool) {
	t, ok := p.tasks[NewInternedString(name)]
	return t, ok
}

// Names returns the registered task names in registration order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.order))
	for i, n := range p.order {
		names[i] = n.String()
	}
	return names
}

// Validate checks that every composite step exists and that no composite
// expands into itself.
func (p *Pipeline) Validate() error {
	for _, name := range p.order {
		if _, err := p.Plan(name.String()); err != nil {
			return err
		}
	}
	return nil
}

// Plan expands target into the ordered list of leaf tasks it runs.
// Composites are expanded depth-first in declaration order, so a leaf that
// appears twice runs twice.
func (p *Pipeline) Plan(target string) ([]Task, error) {
	var (
		plan     []Task
		path     []InternedString
		visiting = make(map[InternedString]bool)
	)

	var expand func(name InternedString) error
	expand = func(name InternedString) error {
		task, ok := p.tasks[name]
		if !ok {
			return zerr.With(ErrTaskNotFound, "task_name", name.String())
		}
		if task.Kind != KindComposite {
			plan = append(plan, task)
			return nil
		}

		visiting[name] = true
		path = append(path, name)
		for _, step := range task.Steps {
			if visiting[step] {
				return buildCycleError(path, step)
			}
			if err := expand(step); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		visiting[name] = false
		return nil
	}

	if err := expand(NewInternedString(target)); err != nil {
		return nil, err
	}
	return plan, nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []InternedString, dep InternedString) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}
	parts := make([]string, 0, len(path)-start+1)
	for _, node := range path[start:] {
		parts = append(parts, node.String())
	}
	parts = append(parts, dep.String())
	return zerr.With(ErrCycleDetected, "cycle", strings.Join(parts, " -> "))
}
