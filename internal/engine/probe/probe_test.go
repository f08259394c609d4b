package probe_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylekit/internal/core/domain"
	"go.trai.ch/stylekit/internal/core/ports/mocks"
	"go.trai.ch/stylekit/internal/engine/probe"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func probeOptions() domain.ProbeOptions {
	return domain.ProbeOptions{
		Linter: domain.LinterSettings{Command: domain.DefaultLinterCommand()},
		Files:  domain.DefaultFixture,
		Syntax: domain.DefaultSyntax,
	}
}

func TestProbe_CleanFixturePasses(t *testing.T) {
	ctrl := gomock.NewController(t)
	linter := mocks.NewMockLinter(ctrl)

	linter.EXPECT().Lint(gomock.Any(), domain.LintOptions{
		Linter: domain.LinterSettings{Command: domain.DefaultLinterCommand()},
		Files:  []string{domain.DefaultFixture},
		Syntax: domain.DefaultSyntax,
		Cache:  false,
	}).Return(&domain.LintResult{Errored: false}, nil)

	require.NoError(t, probe.New(linter).Verify(t.Context(), probeOptions()))
}

func TestProbe_ErroredFixtureFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	linter := mocks.NewMockLinter(ctrl)

	linter.EXPECT().Lint(gomock.Any(), gomock.Any()).Return(&domain.LintResult{
		Errored: true,
		Results: []domain.FileResult{{
			Source:  domain.DefaultFixture,
			Errored: true,
			Warnings: []domain.Warning{{
				Line: 3, Column: 5, Rule: "color-no-invalid-hex", Severity: domain.SeverityError,
				Text: "Unexpected invalid hex color",
			}},
		}},
	}, nil)

	err := probe.New(linter).Verify(t.Context(), probeOptions())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrReportErrored.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	meta := zErr.Metadata()
	assert.Equal(t, 1, meta["errors"])
	assert.Equal(t, "test/output/output.scss:3:5 Unexpected invalid hex color (color-no-invalid-hex)", meta["findings"])
}

func TestProbe_FindingsAreCapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	linter := mocks.NewMockLinter(ctrl)

	warnings := make([]domain.Warning, 7)
	for i := range warnings {
		warnings[i] = domain.Warning{Line: i + 1, Column: 1, Severity: domain.SeverityError, Text: fmt.Sprintf("problem %d", i)}
	}
	linter.EXPECT().Lint(gomock.Any(), gomock.Any()).Return(&domain.LintResult{
		Errored: true,
		Results: []domain.FileResult{{Source: "a.scss", Errored: true, Warnings: warnings}},
	}, nil)

	err := probe.New(linter).Verify(t.Context(), probeOptions())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Contains(t, zErr.Metadata()["findings"], "... and 2 more")
}

func TestProbe_LinterErrorSurfacedVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	linter := mocks.NewMockLinter(ctrl)

	linterErr := zerr.With(domain.ErrLinterFailed, "stderr", "Error: ENOENT: no such file or directory")
	linter.EXPECT().Lint(gomock.Any(), gomock.Any()).Return(nil, linterErr)

	err := probe.New(linter).Verify(t.Context(), probeOptions())
	assert.Same(t, linterErr, err)
}

func TestProbe_Case(t *testing.T) {
	ctrl := gomock.NewController(t)
	linter := mocks.NewMockLinter(ctrl)
	linter.EXPECT().Lint(gomock.Any(), gomock.Any()).Return(&domain.LintResult{}, nil)

	tc := probe.New(linter).Case(probeOptions())
	assert.Equal(t, "report › should not contain any messages", tc.FullName())
	require.NoError(t, tc.Run(t.Context()))
}
