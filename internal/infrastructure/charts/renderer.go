package charts

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"pr-dashboard/internal/domain/layout"
	"pr-dashboard/internal/domain/models"
	chart_port "pr-dashboard/internal/domain/ports/output/charts"
	"sync"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	StateDistribution = "state-distribution"
	CommitsPerPR      = "commits-per-pr"
	DaysToMerge       = "days-to-merge"
)

// Names lists the charts in the order they appear in a report.
var Names = []string{StateDistribution, CommitsPerPR, DaysToMerge}

const (
	// 3:2, same aspect as the chart slot on the report page.
	defaultWidth  = 1200
	defaultHeight = 800

	maxChartPRs     = 10
	maxLabelRunes   = 20
	axisHeadroom    = 1.1
	minAxisMaximum  = 1.0
	lineStrokeWidth = 3.0
	lineDotWidth    = 5.0
)

var (
	colorMerged   = drawing.ColorFromHex("10B981")
	colorOpen     = drawing.ColorFromHex("6B7280")
	colorDeclined = drawing.ColorFromHex("EF4444")
	borderMerged  = drawing.ColorFromHex("059669")
	borderOpen    = drawing.ColorFromHex("4B5563")
	borderDecline = drawing.ColorFromHex("DC2626")
	colorCommits  = drawing.ColorFromHex("3B82F6")
	colorDays     = drawing.ColorFromHex("F59E0B")
)

type Renderer struct {
	width  int
	height int
}

var _ chart_port.ChartRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{width: defaultWidth, height: defaultHeight}
}

func NewRendererWithSize(width, height int) *Renderer {
	if width <= 0 || height <= 0 {
		return NewRenderer()
	}
	return &Renderer{width: width, height: height}
}

// Surfaces starts drawing every chart that has data for prs. Charts without
// data points are left out.
func (r *Renderer) Surfaces(prs []models.PullRequest) []chart_port.Surface {
	var out []chart_port.Surface
	if s := r.stateDistribution(prs); s != nil {
		out = append(out, s)
	}
	if s := r.commitsPerPR(prs); s != nil {
		out = append(out, s)
	}
	if s := r.daysToMerge(prs); s != nil {
		out = append(out, s)
	}
	return out
}

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

type surface struct {
	name   string
	width  int
	height int
	ready  chan struct{}

	mu   sync.Mutex
	data []byte
	err  error
}

func (s *surface) Name() string { return s.name }

func (s *surface) Ready() <-chan struct{} { return s.ready }

func (s *surface) Rasterize() (models.RasterImage, error) {
	select {
	case <-s.ready:
	default:
		return models.RasterImage{}, fmt.Errorf("chart %s is not ready", s.name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return models.RasterImage{}, fmt.Errorf("render chart %s: %w", s.name, s.err)
	}
	return models.RasterImage{
		Name:   s.name,
		Data:   append([]byte(nil), s.data...),
		Width:  s.width,
		Height: s.height,
	}, nil
}

func (r *Renderer) draw(name string, c renderable) *surface {
	s := &surface{name: name, width: r.width, height: r.height, ready: make(chan struct{})}
	go func() {
		defer close(s.ready)
		var buf bytes.Buffer
		err := c.Render(chart.PNG, &buf)

		s.mu.Lock()
		s.data, s.err = buf.Bytes(), err
		s.mu.Unlock()
	}()
	return s
}

func (r *Renderer) stateDistribution(prs []models.PullRequest) *surface {
	var merged, open, declined float64
	for _, pr := range prs {
		switch pr.State {
		case models.PRStateMerged:
			merged++
		case models.PRStateOpen:
			open++
		case models.PRStateDeclined:
			declined++
		}
	}

	var values []chart.Value
	add := func(label string, n float64, fill, stroke drawing.Color) {
		if n > 0 {
			values = append(values, chart.Value{
				Label: label,
				Value: n,
				Style: chart.Style{FillColor: fill, StrokeColor: stroke, StrokeWidth: 2},
			})
		}
	}
	add("Merged", merged, colorMerged, borderMerged)
	add("Open", open, colorOpen, borderOpen)
	add("Declined", declined, colorDeclined, borderDecline)
	if len(values) == 0 {
		return nil
	}

	return r.draw(StateDistribution, chart.PieChart{
		Title:  "PR State Distribution",
		Width:  r.width,
		Height: r.height,
		Values: values,
	})
}

func (r *Renderer) commitsPerPR(prs []models.PullRequest) *surface {
	if len(prs) == 0 {
		return nil
	}
	if len(prs) > maxChartPRs {
		prs = prs[:maxChartPRs]
	}

	bars := make([]chart.Value, 0, len(prs))
	var top float64
	for _, pr := range prs {
		v := float64(pr.Commits)
		top = math.Max(top, v)
		bars = append(bars, chart.Value{
			Label: layout.TruncateTitle(pr.Title, maxLabelRunes),
			Value: v,
			Style: chart.Style{FillColor: colorCommits, StrokeColor: colorCommits},
		})
	}

	return r.draw(CommitsPerPR, chart.BarChart{
		Title:      "Commits per PR",
		Width:      r.width,
		Height:     r.height,
		BarWidth:   r.width / 20,
		BarSpacing: r.width / 30,
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: axisMax(top)},
		},
		Bars: bars,
	})
}

func (r *Renderer) daysToMerge(prs []models.PullRequest) *surface {
	var xs, ys []float64
	var ticks []chart.Tick
	var top float64
	for _, pr := range prs {
		if len(xs) == maxChartPRs {
			break
		}
		if !pr.IsMerged() || pr.DaysToMerge == nil {
			continue
		}
		x := float64(len(xs) + 1)
		xs = append(xs, x)
		ys = append(ys, *pr.DaysToMerge)
		top = math.Max(top, *pr.DaysToMerge)
		ticks = append(ticks, chart.Tick{Value: x, Label: fmt.Sprintf("PR %d", len(xs))})
	}
	if len(xs) == 0 {
		return nil
	}
	// go-chart derives the x range from the ticks, so unlabeled end ticks keep
	// it wider than a single point.
	edge := float64(len(xs) + 1)
	ticks = append([]chart.Tick{{Value: 0}}, append(ticks, chart.Tick{Value: edge})...)

	style := chart.Style{
		StrokeColor: colorDays,
		StrokeWidth: lineStrokeWidth,
		DotColor:    colorDays,
		DotWidth:    lineDotWidth,
	}
	// The area fill needs a segment to close against the axis.
	if len(xs) > 1 {
		style.FillColor = colorDays.WithAlpha(50)
	}

	return r.draw(DaysToMerge, chart.Chart{
		Title:  "Days to Merge",
		Width:  r.width,
		Height: r.height,
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: edge},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  "Days",
			Range: &chart.ContinuousRange{Min: 0, Max: axisMax(top)},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Days to Merge",
				XValues: xs,
				YValues: ys,
				Style:   style,
			},
		},
	})
}

func axisMax(v float64) float64 {
	return math.Max(v*axisHeadroom, minAxisMaximum)
}
