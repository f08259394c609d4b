// Package app implements the application layer for stylekit.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/stylekit/internal/adapters/watcher" //nolint:depguard // Debouncing is owned by the watch loop
	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/stylekit/internal/core/ports"
	"go.trai.ch/stylekit/internal/engine/pipeline"
)

// Verifier gates on the lint result of the fixture.
type Verifier interface {
	Verify(ctx context.Context, opts domain.ProbeOptions) error
}

// ChangeFilter drops watch events that did not change file content.
type ChangeFilter interface {
	Seed(paths []string)
	Changed(paths []string) []string
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       *pipeline.Runner
	verifier     Verifier
	watcher      ports.Watcher
	changes      ChangeFilter
	resolver     ports.InputResolver
	logger       ports.Logger
	telemetry    ports.Telemetry
	root         string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	runner *pipeline.Runner,
	verifier Verifier,
	w ports.Watcher,
	changes ChangeFilter,
	resolver ports.InputResolver,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		verifier:     verifier,
		watcher:      w,
		changes:      changes,
		resolver:     resolver,
		logger:       log,
		telemetry:    telemetry,
		root:         ".",
	}
}

// RunOptions configuration shared by all commands.
type RunOptions struct {
	ConfigPath string
	JSON       bool
}

// Run executes the named task.
func (a *App) Run(ctx context.Context, target string, opts RunOptions) error {
	cfg, err := a.load(opts)
	if err != nil {
		return err
	}

	res, err := a.runner.Run(ctx, cfg.Pipeline, target)
	a.reportSteps()
	if err != nil {
		if res == nil {
			return err
		}
		return errors.Join(domain.ErrPipelineFailed, err)
	}

	a.logger.Info(fmt.Sprintf("%s passed: %s", target, res.Order()))
	return nil
}

// Verify runs only the verification probe against the fixture.
func (a *App) Verify(ctx context.Context, opts RunOptions) error {
	cfg, err := a.load(opts)
	if err != nil {
		return err
	}

	vctx, vertex := a.telemetry.Record(ctx, "verify")
	err = a.verifier.Verify(vctx, cfg.Probe)
	vertex.Complete(err)
	a.reportSteps()
	if err != nil {
		a.logger.Error(err)
		return errors.Join(domain.ErrPipelineFailed, err)
	}

	a.logger.Info(fmt.Sprintf("%s: no lint errors", cfg.Probe.Files))
	return nil
}

// Watch runs target once and again whenever a watched file changes content,
// until ctx is done. Runs never overlap. Step failures are logged and do not
// end the loop.
func (a *App) Watch(ctx context.Context, target string, opts RunOptions) error {
	cfg, err := a.load(opts)
	if err != nil {
		return err
	}
	plan, err := cfg.Pipeline.Plan(target)
	if err != nil {
		return err
	}

	a.changes.Seed(a.watchedFiles(cfg, plan, opts.ConfigPath))

	if err := a.watcher.Start(ctx, a.root, ignoredPaths(plan)); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(cfg.Watch.Debounce, func(paths []string) {
		changed := a.changes.Changed(paths)
		if len(changed) == 0 {
			return
		}
		a.logger.Info("changed: " + summarize(changed))
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info(fmt.Sprintf("watching for changes, running %s", target))
	a.runOnce(ctx, cfg, target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			if next, err := a.configLoader.Load(opts.ConfigPath); err != nil {
				a.logger.Error(err)
			} else {
				cfg = next
			}
			a.runOnce(ctx, cfg, target)
		}
	}
}

func (a *App) runOnce(ctx context.Context, cfg *domain.Config, target string) {
	res, err := a.runner.Run(ctx, cfg.Pipeline, target)
	a.reportSteps()
	switch {
	case err != nil && res == nil:
		a.logger.Error(err)
	case err == nil:
		a.logger.Info(fmt.Sprintf("%s passed: %s", target, res.Order()))
	}
}

// reportSteps logs one line per step recorded since the previous report.
// Failed steps carry the tail of their error output.
func (a *App) reportSteps() {
	for _, step := range a.telemetry.Drain() {
		took := step.Duration.Round(time.Millisecond)
		switch {
		case step.Failed():
			msg := fmt.Sprintf("%s failed after %s", step.Name, took)
			if len(step.Stderr) > 0 {
				msg += "\n    " + strings.Join(step.Stderr, "\n    ")
			}
			a.logger.Warn(msg)
		case !step.Done:
			a.logger.Warn(step.Name + " interrupted")
		default:
			msg := fmt.Sprintf("%s done in %s", step.Name, took)
			if step.Note != "" {
				msg += ": " + step.Note
			}
			a.logger.Info(msg)
		}
	}
}

func (a *App) load(opts RunOptions) (*domain.Config, error) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(opts.JSON)
	}
	return a.configLoader.Load(opts.ConfigPath)
}

// watchedFiles lists the files whose current content is the baseline for
// change detection: lint sources, the fixture and the config file.
func (a *App) watchedFiles(cfg *domain.Config, plan []domain.Task, configPath string) []string {
	if configPath == "" {
		configPath = domain.ConfigFileName
	}
	files := []string{filepath.Clean(configPath), filepath.Clean(cfg.Probe.Files)}
	if cfg.Probe.ConfigFile != "" {
		files = append(files, filepath.Clean(cfg.Probe.ConfigFile))
	}
	for _, task := range plan {
		if task.Kind != domain.KindLint {
			continue
		}
		if task.Lint.ConfigFile != "" {
			files = append(files, filepath.Clean(task.Lint.ConfigFile))
		}
		if resolved, err := a.resolver.ResolveInputs(task.Lint.Src, a.root); err == nil {
			files = append(files, resolved...)
		}
	}
	return files
}

// ignoredPaths are the paths the plan itself writes to.
func ignoredPaths(plan []domain.Task) []string {
	var ignores []string
	for _, task := range plan {
		switch task.Kind {
		case domain.KindClean:
			ignores = append(ignores, task.Clean.Paths...)
		case domain.KindLint:
			ignores = append(ignores, task.Lint.OutputFile)
		}
	}
	return ignores
}

func summarize(paths []string) string {
	const maxShown = 3
	if len(paths) <= maxShown {
		return strings.Join(paths, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(paths[:maxShown], ", "), len(paths)-maxShown)
}
