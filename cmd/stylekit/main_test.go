package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stylekit/internal/adapters/telemetry/progrock"
	"go.trai.ch/stylekit/internal/adapters/watcher"
	"go.trai.ch/stylekit/internal/app"
	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/stylekit/internal/core/ports/mocks"
	"go.trai.ch/stylekit/internal/engine/pipeline"
	"go.trai.ch/stylekit/internal/engine/probe"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	loader  *mocks.MockConfigLoader
	logger  *mocks.MockLogger
	cleaner *mocks.MockCleaner
}

func newProvider(t *testing.T) (ComponentProvider, *testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		loader:  mocks.NewMockConfigLoader(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		cleaner: mocks.NewMockCleaner(ctrl),
	}
	linter := mocks.NewMockLinter(ctrl)
	resolver := mocks.NewMockInputResolver(ctrl)
	telemetry := progrock.New()

	application := app.New(
		deps.loader,
		pipeline.NewRunner(deps.cleaner, linter, resolver, mocks.NewMockTestRunner(ctrl), deps.logger, telemetry),
		probe.New(linter),
		mocks.NewMockWatcher(ctrl),
		watcher.NewHashCache(mocks.NewMockHasher(ctrl)),
		resolver,
		deps.logger,
		telemetry,
	)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return app.NewComponents(application, deps.logger, telemetry), func() {}, nil
	}
	return provider, deps
}

func cleanOnly(t *testing.T) *domain.Config {
	t.Helper()
	p := domain.NewPipeline()
	if err := p.AddTask(domain.NewCleanTask(domain.TaskClean, domain.DefaultScratchDir)); err != nil {
		t.Fatal(err)
	}
	return &domain.Config{Pipeline: p}
}

func TestRun_Version(t *testing.T) {
	provider, _ := newProvider(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_Success(t *testing.T) {
	provider, deps := newProvider(t)

	deps.loader.EXPECT().Load(domain.ConfigFileName).Return(cleanOnly(t), nil)
	deps.cleaner.EXPECT().Clean(gomock.Any(), gomock.Any()).Return(nil)
	deps.logger.EXPECT().Info("clean passed: clean")
	deps.logger.EXPECT().Info(gomock.Any())

	exitCode := run(context.Background(), []string{"run", "clean"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_PipelineFailureIsNotLoggedTwice(t *testing.T) {
	provider, deps := newProvider(t)

	deps.loader.EXPECT().Load(gomock.Any()).Return(cleanOnly(t), nil)
	deps.cleaner.EXPECT().Clean(gomock.Any(), gomock.Any()).Return(domain.ErrCleanFailed)
	deps.logger.EXPECT().Error(gomock.Any()).Times(1)
	deps.logger.EXPECT().Warn(gomock.Any())

	exitCode := run(context.Background(), []string{"run", "clean"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_ConfigErrorIsLogged(t *testing.T) {
	provider, deps := newProvider(t)

	deps.loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrConfigParseFailed)
	deps.logger.EXPECT().Error(domain.ErrConfigParseFailed)

	exitCode := run(context.Background(), nil, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
