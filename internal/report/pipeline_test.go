package report_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"numerology/internal/advisor"
	mockadvisor "numerology/internal/advisor/mock"
	"numerology/internal/report"
	"numerology/pkg/domain"
	"numerology/pkg/logger"
	"numerology/pkg/serrors"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func annInput() domain.Input {
	return domain.Input{
		FullName:  "Ann",
		BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
	}
}

func newRunner(t *testing.T, adv advisor.Advisor) report.Runner {
	t.Helper()

	return report.New(adv, nil, report.Options{
		OutputDir:   t.TempDir(),
		ChartWidth:  640,
		ChartHeight: 480,
	})
}

func TestRun_endToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	adv := mockadvisor.NewMockAdvisor(ctrl)

	// Ann / 1990-05-15: lifePath 3, expression 11, soulUrge 1, personality 1.
	// Each advice kind must receive its own indicator.
	adv.EXPECT().Advice(gomock.Any(), advisor.KindCareer, 3).Return("career text", nil)
	adv.EXPECT().Advice(gomock.Any(), advisor.KindRelationship, 1).Return("relationship text", nil)
	adv.EXPECT().Advice(gomock.Any(), advisor.KindActionSteps, 11).Return("action text", nil)

	r := newRunner(t, adv)
	res, err := r.Run(context.Background(), annInput())
	require.NoError(t, err)

	require.Equal(t, domain.Profile{
		LifePath:    3,
		Expression:  11,
		SoulUrge:    1,
		Personality: 1,
	}, res.Report.Profile)

	// advice texts are packaged unchanged
	require.Equal(t, domain.AdviceBundle{
		Career:       "career text",
		Relationship: "relationship text",
		ActionSteps:  "action text",
	}, res.Report.Advice)

	require.Equal(t, "Ann", res.Report.Input.FullName)
	require.False(t, res.Report.CreatedAt.IsZero())

	// chart PNG rendered
	require.True(t, strings.HasPrefix(string(res.ChartPNG), "\x89PNG"), "expected PNG chart bytes")

	// document written and readable
	b, err := os.ReadFile(res.DocumentPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(b), "%PDF-"))
}

func TestRun_adviceFailureAbortsPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	adv := mockadvisor.NewMockAdvisor(ctrl)

	svcErr := serrors.With(serrors.ErrService, "upstream down")
	adv.EXPECT().Advice(gomock.Any(), advisor.KindCareer, gomock.Any()).
		Return("", svcErr)
	// the other two calls race with cancellation; allow but don't require them
	adv.EXPECT().Advice(gomock.Any(), advisor.KindRelationship, gomock.Any()).
		Return("fine", nil).AnyTimes()
	adv.EXPECT().Advice(gomock.Any(), advisor.KindActionSteps, gomock.Any()).
		Return("fine", nil).AnyTimes()

	outputDir := t.TempDir()
	r := report.New(adv, nil, report.Options{OutputDir: outputDir, ChartWidth: 640, ChartHeight: 480})

	res, err := r.Run(context.Background(), annInput())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrService)
	require.Nil(t, res, "no partial report on advice failure")

	// nothing rendered
	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRun_renderFailureKeepsComputedSections(t *testing.T) {
	ctrl := gomock.NewController(t)
	adv := mockadvisor.NewMockAdvisor(ctrl)

	adv.EXPECT().Advice(gomock.Any(), advisor.KindCareer, 3).Return("career text", nil)
	adv.EXPECT().Advice(gomock.Any(), advisor.KindRelationship, 1).Return("relationship text", nil)
	adv.EXPECT().Advice(gomock.Any(), advisor.KindActionSteps, 11).Return("action text", nil)

	// an output directory nested under a regular file cannot be created, so
	// document rendering fails after the numbers and advice are in hand
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	r := report.New(adv, nil, report.Options{
		OutputDir:   filepath.Join(blocker, "reports"),
		ChartWidth:  640,
		ChartHeight: 480,
	})

	res, err := r.Run(context.Background(), annInput())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrRender)

	// only the render step is lost
	require.NotNil(t, res)
	require.Equal(t, domain.Profile{
		LifePath:    3,
		Expression:  11,
		SoulUrge:    1,
		Personality: 1,
	}, res.Report.Profile)
	require.Equal(t, domain.AdviceBundle{
		Career:       "career text",
		Relationship: "relationship text",
		ActionSteps:  "action text",
	}, res.Report.Advice)
	require.True(t, strings.HasPrefix(string(res.ChartPNG), "\x89PNG"), "chart rendered before the failure")
	require.Empty(t, res.DocumentPath)
}

func TestRun_degenerateEmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	adv := mockadvisor.NewMockAdvisor(ctrl)

	// empty name: expression, soulUrge, personality all reduce the zero sum
	adv.EXPECT().Advice(gomock.Any(), advisor.KindCareer, gomock.Any()).Return("a", nil)
	adv.EXPECT().Advice(gomock.Any(), advisor.KindRelationship, 0).Return("b", nil)
	adv.EXPECT().Advice(gomock.Any(), advisor.KindActionSteps, 0).Return("c", nil)

	r := newRunner(t, adv)
	res, err := r.Run(context.Background(), domain.Input{
		FullName:  "",
		BirthDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err, "degenerate zero sums must not fail the pipeline")
	require.Zero(t, res.Report.Profile.Expression)
	require.Zero(t, res.Report.Profile.SoulUrge)
	require.Zero(t, res.Report.Profile.Personality)
}

func TestDocumentPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	adv := mockadvisor.NewMockAdvisor(ctrl)
	adv.EXPECT().Advice(gomock.Any(), gomock.Any(), gomock.Any()).Return("x", nil).Times(3)

	r := newRunner(t, adv)
	res, err := r.Run(context.Background(), annInput())
	require.NoError(t, err)

	path, err := r.DocumentPath(context.Background(), res.Report.ID)
	require.NoError(t, err)
	require.Equal(t, res.DocumentPath, path)

	_, err = r.DocumentPath(context.Background(), domain.NewReportID())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestAssemble(t *testing.T) {
	in := annInput()
	profile := domain.Profile{LifePath: 3, Expression: 11, SoulUrge: 1, Personality: 1}
	advice := domain.AdviceBundle{Career: "c", Relationship: "r", ActionSteps: "a"}

	rep := report.Assemble(in, profile, advice)
	require.Equal(t, in, rep.Input)
	require.Equal(t, profile, rep.Profile)
	require.Equal(t, advice, rep.Advice)
	require.NotEqual(t, domain.ReportID{}, rep.ID)
	require.WithinDuration(t, time.Now(), rep.CreatedAt, time.Minute)
}
