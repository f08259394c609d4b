package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/stylekit/internal/core/ports"
	"go.trai.ch/stylekit/internal/core/ports/mocks"
	"go.trai.ch/stylekit/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type runnerMocks struct {
	cleaner   *mocks.MockCleaner
	linter    *mocks.MockLinter
	resolver  *mocks.MockInputResolver
	tests     *mocks.MockTestRunner
	logger    *mocks.MockLogger
	telemetry *mocks.MockTelemetry
	vertex    *mocks.MockVertex
}

func newRunner(t *testing.T) (*pipeline.Runner, *runnerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &runnerMocks{
		cleaner:   mocks.NewMockCleaner(ctrl),
		linter:    mocks.NewMockLinter(ctrl),
		resolver:  mocks.NewMockInputResolver(ctrl),
		tests:     mocks.NewMockTestRunner(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		vertex:    mocks.NewMockVertex(ctrl),
	}

	m.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, m.vertex
		}).AnyTimes()
	m.vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	m.vertex.EXPECT().Complete(gomock.Any()).AnyTimes()

	r := pipeline.NewRunner(m.cleaner, m.linter, m.resolver, m.tests, m.logger, m.telemetry)
	return r, m
}

func defaultPipeline(t *testing.T, failOnError bool) *domain.Pipeline {
	t.Helper()
	p := domain.NewPipeline()
	require.NoError(t, p.AddTask(domain.NewCleanTask(domain.TaskClean, "test/tmp")))
	require.NoError(t, p.AddTask(domain.NewLintTask(domain.TaskLint, domain.ReportOptions{
		LintOptions: domain.LintOptions{ConfigFile: ".stylelintrc"},
		OutputFile:  "test/tmp/output/report.txt",
		FailOnError: failOnError,
		Src:         []string{"test/output/output.{css,scss}"},
	})))
	require.NoError(t, p.AddTask(domain.NewRunTestsTask(domain.TaskRunTests, domain.TestOptions{})))
	require.NoError(t, p.AddTask(domain.NewCompositeTask(domain.TaskTest, domain.TaskClean, domain.TaskLint, domain.TaskRunTests)))
	require.NoError(t, p.AddTask(domain.NewAliasTask(domain.TaskDefault, domain.TaskTest)))
	return p
}

func result(res domain.TestResult) <-chan domain.TestResult {
	ch := make(chan domain.TestResult, 1)
	ch <- res
	close(ch)
	return ch
}

func TestRunner_Run_Default(t *testing.T) {
	r, m := newRunner(t)
	files := []string{"test/output/output.scss"}

	gomock.InOrder(
		m.cleaner.EXPECT().Clean(gomock.Any(), []string{"test/tmp"}).Return(nil),
		m.resolver.EXPECT().ResolveInputs([]string{"test/output/output.{css,scss}"}, ".").Return(files, nil),
		m.linter.EXPECT().Report(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, opts domain.ReportOptions) (*domain.ReportOutcome, error) {
				assert.Equal(t, files, opts.Files)
				assert.Equal(t, ".stylelintrc", opts.ConfigFile)
				assert.Equal(t, ".", opts.Dir)
				return &domain.ReportOutcome{OutputFile: opts.OutputFile}, nil
			}),
		m.tests.EXPECT().Run(gomock.Any(), gomock.Any(), ".").Return(result(domain.TestResult{Success: true})),
	)

	res, err := r.Run(context.Background(), defaultPipeline(t, false), domain.TaskDefault)
	require.NoError(t, err)
	assert.True(t, res.Success())
	assert.Equal(t, "clean -> lint -> run-tests", res.Order())
}

func TestRunner_Run_LintProblemsAreAdvisory(t *testing.T) {
	r, m := newRunner(t)

	m.cleaner.EXPECT().Clean(gomock.Any(), gomock.Any()).Return(nil)
	m.resolver.EXPECT().ResolveInputs(gomock.Any(), gomock.Any()).Return([]string{"a.scss"}, nil)
	m.linter.EXPECT().Report(gomock.Any(), gomock.Any()).Return(&domain.ReportOutcome{
		OutputFile: "test/tmp/output/report.txt",
		ExitCode:   2,
		Errored:    true,
	}, nil)
	m.logger.EXPECT().Warn("lint problems found, see test/tmp/output/report.txt")
	m.tests.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(result(domain.TestResult{Success: true}))

	res, err := r.Run(context.Background(), defaultPipeline(t, false), domain.TaskTest)
	require.NoError(t, err)
	assert.Equal(t, "clean -> lint -> run-tests", res.Order())
}

func TestRunner_Run_FailOnError(t *testing.T) {
	r, m := newRunner(t)

	m.cleaner.EXPECT().Clean(gomock.Any(), gomock.Any()).Return(nil)
	m.resolver.EXPECT().ResolveInputs(gomock.Any(), gomock.Any()).Return([]string{"a.scss"}, nil)
	m.linter.EXPECT().Report(gomock.Any(), gomock.Any()).Return(&domain.ReportOutcome{Errored: true}, nil)
	m.logger.EXPECT().Error(gomock.Any())

	res, err := r.Run(context.Background(), defaultPipeline(t, true), domain.TaskTest)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLintFailed.Error())
	assert.False(t, res.Success())
	assert.Equal(t, domain.StepFailed, res.Steps[1].Status)
	assert.Equal(t, domain.StepSkipped, res.Steps[2].Status)
}

func TestRunner_Run_CleanFailureHalts(t *testing.T) {
	r, m := newRunner(t)

	m.cleaner.EXPECT().Clean(gomock.Any(), gomock.Any()).Return(domain.ErrCleanFailed)
	m.logger.EXPECT().Error(gomock.Any())

	res, err := r.Run(context.Background(), defaultPipeline(t, false), domain.TaskDefault)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCleanFailed.Error())
	assert.ErrorContains(t, err, domain.ErrTaskExecutionFailed.Error())
	assert.Equal(t, "clean", res.Order())
	assert.Equal(t, domain.StepSkipped, res.Steps[1].Status)
	assert.Equal(t, domain.StepSkipped, res.Steps[2].Status)
}

func TestRunner_Run_LinterFailureIsFatal(t *testing.T) {
	r, m := newRunner(t)

	m.cleaner.EXPECT().Clean(gomock.Any(), gomock.Any()).Return(nil)
	m.resolver.EXPECT().ResolveInputs(gomock.Any(), gomock.Any()).Return([]string{"a.scss"}, nil)
	m.linter.EXPECT().Report(gomock.Any(), gomock.Any()).Return(nil, domain.ErrLinterFailed)
	m.logger.EXPECT().Error(gomock.Any())

	_, err := r.Run(context.Background(), defaultPipeline(t, false), domain.TaskDefault)
	assert.ErrorContains(t, err, domain.ErrLinterFailed.Error())
}

func TestRunner_Run_TestsFailed(t *testing.T) {
	r, m := newRunner(t)

	m.tests.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(result(domain.TestResult{
		Success: false,
		Cases:   []domain.CaseResult{{Suite: "report", Name: "should not contain any messages"}},
	}))
	m.logger.EXPECT().Error(gomock.Any())

	res, err := r.Run(context.Background(), defaultPipeline(t, false), domain.TaskRunTests)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrTestsFailed.Error())
	assert.False(t, res.Success())
}

var errRunnerCrashed = zerr.New("runner crashed")

func TestRunner_Run_TestRunnerError(t *testing.T) {
	r, m := newRunner(t)

	m.tests.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(result(domain.TestResult{Err: errRunnerCrashed}))
	m.logger.EXPECT().Error(gomock.Any())

	_, err := r.Run(context.Background(), defaultPipeline(t, false), domain.TaskRunTests)
	assert.ErrorContains(t, err, domain.ErrTestRunnerFailed.Error())
	assert.ErrorContains(t, err, errRunnerCrashed.Error())
}

func TestRunner_Run_Canceled(t *testing.T) {
	r, m := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.cleaner.EXPECT().Clean(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, []string) error {
		cancel()
		return nil
	})

	res, err := r.Run(ctx, defaultPipeline(t, false), domain.TaskDefault)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.StepCompleted, res.Steps[0].Status)
	assert.Equal(t, domain.StepSkipped, res.Steps[1].Status)
}

func TestRunner_Run_UnknownTarget(t *testing.T) {
	r, _ := newRunner(t)

	res, err := r.Run(context.Background(), defaultPipeline(t, false), "deploy")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorContains(t, err, domain.ErrTaskNotFound.Error())
}

func TestRunner_Run_InputNotFound(t *testing.T) {
	r, m := newRunner(t)

	m.resolver.EXPECT().ResolveInputs(gomock.Any(), gomock.Any()).Return(nil, domain.ErrInputNotFound)
	m.logger.EXPECT().Error(gomock.Any())

	_, err := r.Run(context.Background(), defaultPipeline(t, false), domain.TaskLint)
	assert.ErrorContains(t, err, domain.ErrInputNotFound.Error())
}
