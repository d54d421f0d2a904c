package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pr-dashboard/internal/domain/layout"
	"pr-dashboard/internal/domain/models"
	chart_port "pr-dashboard/internal/domain/ports/output/charts"
	"pr-dashboard/internal/domain/services"
	"pr-dashboard/internal/infrastructure/charts"
	"pr-dashboard/internal/infrastructure/logger"
	"pr-dashboard/internal/infrastructure/pdf"
	"pr-dashboard/internal/utils"
	"pr-dashboard/mocks"
)

const author = "{6f1c2a4e-1b7d-4f0e-9a51-3c2d8e7b9f10}"

var generatedAt = time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

func days(v float64) *float64 { return &v }

func query() models.PRQuery {
	return models.PRQuery{
		Author:       author,
		From:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:           time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Repositories: []string{"webcore"},
	}
}

// strongContributor scores 8.7: speed 10, quality 8, activity 8.
func strongContributor() *models.Dashboard {
	var records []models.PullRequest
	for i := 0; i < 15; i++ {
		pr := models.PullRequest{ID: int64(i + 1), Title: "PR", State: models.PRStateOpen, Comments: 3, Commits: 2}
		if i < 10 {
			pr.State = models.PRStateMerged
			pr.DaysToMerge = days(1.5)
		}
		records = append(records, pr)
	}
	return &models.Dashboard{Query: query(), Records: records, Summary: services.Aggregate(records)}
}

func readySurface(t *testing.T, name string) *mocks.Surface {
	ready := make(chan struct{})
	close(ready)

	s := mocks.NewSurface(t)
	s.EXPECT().Name().Return(name).Maybe()
	s.EXPECT().Ready().Return(ready).Maybe()
	s.EXPECT().Rasterize().Return(models.RasterImage{Name: name, Data: []byte{0x89, 'P', 'N', 'G'}, Width: 3, Height: 2}, nil).Maybe()
	return s
}

type deps struct {
	dashboard *mocks.DashboardInputPort
	charts    *mocks.ChartRenderer
	renderer  *mocks.DocumentRenderer
}

func newTestService(t *testing.T, timeout time.Duration) (*Service, deps) {
	d := deps{
		dashboard: mocks.NewDashboardInputPort(t),
		charts:    mocks.NewChartRenderer(t),
		renderer:  mocks.NewDocumentRenderer(t),
	}
	svc := newService(d.dashboard, d.charts, d.renderer, Options{ChartReadyTimeout: timeout}, logger.New("test"), func() time.Time { return generatedAt })
	return svc, d
}

func TestReportService_Generate(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t, time.Second)
	dash := strongContributor()

	d.dashboard.EXPECT().Query(ctx, query()).Return(dash, nil)
	d.dashboard.EXPECT().FindMember(ctx, author).Return(&models.Member{UUID: author, DisplayName: "Jane Doe"}, nil)
	d.charts.EXPECT().Surfaces(dash.Records).Return([]chart_port.Surface{readySurface(t, "a"), readySurface(t, "b")})
	d.renderer.EXPECT().Measurer().Return(layout.FixedWidthMeasurer{})
	d.renderer.EXPECT().ContentType().Return("application/pdf")

	var rendered *models.ReportDocument
	d.renderer.EXPECT().Render(mock.Anything).RunAndReturn(func(doc *models.ReportDocument) ([]byte, error) {
		rendered = doc
		return []byte("%PDF-1.3"), nil
	})

	rep, err := svc.Generate(ctx, query())
	require.NoError(t, err)

	require.NotEmpty(t, rep.ID)
	require.Equal(t, "Jane Doe_Evaluation_Report_2024-02-01.pdf", rep.FileName)
	require.Equal(t, "application/pdf", rep.ContentType)
	require.Equal(t, []byte("%PDF-1.3"), rep.Content)
	require.Equal(t, 8.7, rep.Score.Value)
	require.Equal(t, "Strong Contributor!", rep.Score.Label)
	require.Equal(t, services.Suggest(dash.Summary), rep.Suggestions)

	var charts, scoreLines int
	for _, p := range rendered.Pages {
		for _, b := range p.Blocks {
			switch b.Tag {
			case layout.TagChart:
				charts++
			case layout.TagScore:
				scoreLines++
				require.Equal(t, "Overall Score: 8.7/10 - Strong Contributor!", b.Text)
			}
		}
	}
	require.Equal(t, 2, charts)
	require.Equal(t, 1, scoreLines)
}

func TestReportService_GenerateUnknownMember(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"not found", utils.ErrMemberNotFound},
		{"upstream down", utils.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, d := newTestService(t, time.Second)
			dash := strongContributor()

			d.dashboard.EXPECT().Query(ctx, mock.Anything).Return(dash, nil)
			d.dashboard.EXPECT().FindMember(ctx, author).Return(nil, tt.err)
			d.charts.EXPECT().Surfaces(mock.Anything).Return(nil)
			d.renderer.EXPECT().Measurer().Return(layout.FixedWidthMeasurer{})
			d.renderer.EXPECT().ContentType().Return("application/pdf")
			d.renderer.EXPECT().Render(mock.Anything).Return([]byte("pdf"), nil)

			rep, err := svc.Generate(ctx, query())
			require.NoError(t, err)
			require.Equal(t, "Unknown_Evaluation_Report_2024-02-01.pdf", rep.FileName)
		})
	}
}

func TestReportService_GenerateNoData(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t, time.Second)

	d.dashboard.EXPECT().Query(ctx, mock.Anything).Return(&models.Dashboard{Query: query()}, nil)

	rep, err := svc.Generate(ctx, query())
	require.ErrorIs(t, err, utils.ErrNoData)
	require.Nil(t, rep)
}

func TestReportService_GenerateQueryError(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t, time.Second)

	d.dashboard.EXPECT().Query(ctx, mock.Anything).Return(nil, utils.ErrUpstream)

	_, err := svc.Generate(ctx, query())
	require.ErrorIs(t, err, utils.ErrUpstream)
}

func TestReportService_GenerateFailures(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name  string
		setup func(t *testing.T, d deps)
	}{
		{
			name: "rasterize fails",
			setup: func(t *testing.T, d deps) {
				ready := make(chan struct{})
				close(ready)
				s := mocks.NewSurface(t)
				s.EXPECT().Ready().Return(ready)
				s.EXPECT().Rasterize().Return(models.RasterImage{}, boom)
				d.charts.EXPECT().Surfaces(mock.Anything).Return([]chart_port.Surface{s})
			},
		},
		{
			name: "chart never ready",
			setup: func(t *testing.T, d deps) {
				s := mocks.NewSurface(t)
				s.EXPECT().Ready().Return(make(chan struct{}))
				s.EXPECT().Name().Return("stuck")
				d.charts.EXPECT().Surfaces(mock.Anything).Return([]chart_port.Surface{s})
			},
		},
		{
			name: "empty chart image",
			setup: func(t *testing.T, d deps) {
				ready := make(chan struct{})
				close(ready)
				s := mocks.NewSurface(t)
				s.EXPECT().Ready().Return(ready)
				s.EXPECT().Rasterize().Return(models.RasterImage{Name: "empty"}, nil)
				d.charts.EXPECT().Surfaces(mock.Anything).Return([]chart_port.Surface{s})
				d.renderer.EXPECT().Measurer().Return(layout.FixedWidthMeasurer{})
			},
		},
		{
			name: "render fails",
			setup: func(t *testing.T, d deps) {
				d.charts.EXPECT().Surfaces(mock.Anything).Return(nil)
				d.renderer.EXPECT().Measurer().Return(layout.FixedWidthMeasurer{})
				d.renderer.EXPECT().Render(mock.Anything).Return(nil, boom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, d := newTestService(t, 50*time.Millisecond)
			d.dashboard.EXPECT().Query(ctx, mock.Anything).Return(strongContributor(), nil)
			d.dashboard.EXPECT().FindMember(ctx, author).Return(&models.Member{DisplayName: "Jane"}, nil)
			tt.setup(t, d)

			rep, err := svc.Generate(ctx, query())
			require.ErrorIs(t, err, utils.ErrReportGeneration)
			require.Nil(t, rep)
		})
	}
}

func TestReportService_GenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	svc, d := newTestService(t, time.Minute)

	s := mocks.NewSurface(t)
	s.EXPECT().Ready().Return(make(chan struct{}))
	s.EXPECT().Name().Return("slow")

	d.dashboard.EXPECT().Query(ctx, mock.Anything).Return(strongContributor(), nil)
	d.dashboard.EXPECT().FindMember(ctx, author).Return(&models.Member{DisplayName: "Jane"}, nil)
	d.charts.EXPECT().Surfaces(mock.Anything).Run(func([]models.PullRequest) { cancel() }).Return([]chart_port.Surface{s})

	_, err := svc.Generate(ctx, query())
	require.ErrorIs(t, err, utils.ErrReportGeneration)
	require.ErrorIs(t, err, context.Canceled)
}

func TestReportService_Chart(t *testing.T) {
	ctx := context.Background()
	svc, d := newTestService(t, time.Second)
	dash := strongContributor()

	other := mocks.NewSurface(t)
	other.EXPECT().Name().Return("commits-per-pr")

	d.dashboard.EXPECT().Query(ctx, mock.Anything).Return(dash, nil).Twice()
	d.charts.EXPECT().Surfaces(dash.Records).Return([]chart_port.Surface{other, readySurface(t, "days-to-merge")}).Twice()

	img, err := svc.Chart(ctx, query(), "days-to-merge")
	require.NoError(t, err)
	require.Equal(t, "days-to-merge", img.Name)

	_, err = svc.Chart(ctx, query(), "burndown")
	require.ErrorIs(t, err, utils.ErrChartNotFound)
}

func TestReportService_GenerateSingleMergedPR(t *testing.T) {
	ctx := context.Background()
	records := []models.PullRequest{
		{ID: 1, Title: "Fix login redirect", State: models.PRStateMerged, Commits: 2, Comments: 1, DaysToMerge: days(1.5)},
		{ID: 2, Title: "Draft settings page", State: models.PRStateOpen, Commits: 1},
	}
	dash := &models.Dashboard{Query: query(), Records: records, Summary: services.Aggregate(records)}

	dashboard := mocks.NewDashboardInputPort(t)
	dashboard.EXPECT().Query(ctx, query()).Return(dash, nil)
	dashboard.EXPECT().FindMember(ctx, author).Return(&models.Member{UUID: author, DisplayName: "Jane Doe"}, nil)

	svc := newService(dashboard, charts.NewRendererWithSize(600, 400), pdf.NewRenderer("pr-dashboard"),
		Options{ChartReadyTimeout: 10 * time.Second}, logger.New("test"), func() time.Time { return generatedAt })

	rep, err := svc.Generate(ctx, query())
	require.NoError(t, err)
	require.Equal(t, pdf.ContentType, rep.ContentType)
	require.True(t, bytes.HasPrefix(rep.Content, []byte("%PDF-")))

	img, err := svc.Chart(ctx, query(), charts.DaysToMerge)
	require.NoError(t, err)
	require.NotEmpty(t, img.Data)
}
