package report

import (
	"context"
	"errors"
	"fmt"
	"pr-dashboard/internal/domain/layout"
	"pr-dashboard/internal/domain/models"
	"pr-dashboard/internal/domain/ports/input"
	ports "pr-dashboard/internal/domain/ports/output"
	chart_port "pr-dashboard/internal/domain/ports/output/charts"
	document_port "pr-dashboard/internal/domain/ports/output/document"
	"pr-dashboard/internal/domain/services"
	"pr-dashboard/internal/utils"
	"time"
)

const (
	unknownEmployee     = "Unknown"
	defaultReadyTimeout = 10 * time.Second
)

type Options struct {
	Branding          string
	ChartReadyTimeout time.Duration
}

type Service struct {
	dashboard    input.DashboardInputPort
	charts       chart_port.ChartRenderer
	renderer     document_port.Renderer
	branding     string
	readyTimeout time.Duration
	log          ports.Logger
	now          func() time.Time
}

func NewService(dashboard input.DashboardInputPort, charts chart_port.ChartRenderer, renderer document_port.Renderer, opts Options, log ports.Logger) input.ReportInputPort {
	return newService(dashboard, charts, renderer, opts, log, time.Now)
}

func newService(dashboard input.DashboardInputPort, charts chart_port.ChartRenderer, renderer document_port.Renderer, opts Options, log ports.Logger, now func() time.Time) *Service {
	if opts.ChartReadyTimeout <= 0 {
		opts.ChartReadyTimeout = defaultReadyTimeout
	}
	return &Service{
		dashboard:    dashboard,
		charts:       charts,
		renderer:     renderer,
		branding:     opts.Branding,
		readyTimeout: opts.ChartReadyTimeout,
		log:          log,
		now:          now,
	}
}

// Generate builds the evaluation report for a query. Nothing is returned unless
// every stage succeeds.
func (s *Service) Generate(ctx context.Context, q models.PRQuery) (*models.Report, error) {
	d, err := s.dashboard.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	if d.Summary.TotalPRs == 0 {
		return nil, utils.ErrNoData
	}

	employee := s.employeeName(ctx, d.Query.Author)
	log := s.log.With("author", d.Query.Author, "employee", employee)

	score := services.Score(d.Summary)
	suggestions := services.Suggest(d.Summary)

	images, err := s.rasterize(ctx, s.charts.Surfaces(d.Records))
	if err != nil {
		log.Error("chart rasterization failed", "err", err)
		return nil, fmt.Errorf("%w: %w", utils.ErrReportGeneration, err)
	}

	doc, err := layout.NewEngine(s.renderer.Measurer()).Layout(layout.Input{
		Employee:     employee,
		DateRange:    d.Query.DateRange(),
		Repositories: d.Query.Repositories,
		Records:      d.Records,
		Summary:      d.Summary,
		Score:        score,
		Suggestions:  suggestions,
		Charts:       images,
		GeneratedAt:  s.now(),
		Branding:     s.branding,
	})
	if err != nil {
		log.Error("report layout failed", "err", err)
		return nil, fmt.Errorf("%w: layout: %w", utils.ErrReportGeneration, err)
	}

	content, err := s.renderer.Render(doc)
	if err != nil {
		log.Error("report rendering failed", "err", err)
		return nil, fmt.Errorf("%w: render: %w", utils.ErrReportGeneration, err)
	}

	report := &models.Report{
		ID:          utils.NewReportID(),
		FileName:    doc.FileName,
		ContentType: s.renderer.ContentType(),
		Content:     content,
		Summary:     d.Summary,
		Score:       score,
		Suggestions: suggestions,
	}
	log.Info("report generated", "report_id", report.ID, "pages", len(doc.Pages), "bytes", len(content), "score", score.Value)
	return report, nil
}

// Chart renders a single named chart for the query.
func (s *Service) Chart(ctx context.Context, q models.PRQuery, name string) (*models.RasterImage, error) {
	d, err := s.dashboard.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	for _, surface := range s.charts.Surfaces(d.Records) {
		if surface.Name() != name {
			continue
		}
		images, err := s.rasterize(ctx, []chart_port.Surface{surface})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", utils.ErrReportGeneration, err)
		}
		return &images[0], nil
	}
	return nil, fmt.Errorf("%w: %s", utils.ErrChartNotFound, name)
}

func (s *Service) employeeName(ctx context.Context, author string) string {
	m, err := s.dashboard.FindMember(ctx, author)
	if err != nil {
		if !errors.Is(err, utils.ErrMemberNotFound) {
			s.log.Warn("member lookup failed", "author", author, "err", err)
		}
		return unknownEmployee
	}
	if m.DisplayName == "" {
		return unknownEmployee
	}
	return m.DisplayName
}

// rasterize waits until every surface reports it has finished drawing, then
// captures it. All surfaces share one deadline.
func (s *Service) rasterize(ctx context.Context, surfaces []chart_port.Surface) ([]models.RasterImage, error) {
	timer := time.NewTimer(s.readyTimeout)
	defer timer.Stop()

	images := make([]models.RasterImage, 0, len(surfaces))
	for _, surface := range surfaces {
		select {
		case <-surface.Ready():
		case <-ctx.Done():
			return nil, fmt.Errorf("chart %s: %w", surface.Name(), ctx.Err())
		case <-timer.C:
			return nil, fmt.Errorf("chart %s not ready after %s", surface.Name(), s.readyTimeout)
		}

		img, err := surface.Rasterize()
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}
