package layout

import (
	"fmt"
	"pr-dashboard/internal/domain/models"
	"pr-dashboard/internal/domain/services"
	"strconv"
	"strings"
	"time"
)

// A4 portrait, millimetres.
const (
	PageWidth    = 210.0
	PageHeight   = 297.0
	MarginTop    = 20.0
	MarginBottom = 20.0
	MarginLeft   = 20.0
	BulletIndent = 25.0
	ScoreIndent  = 16.0

	ChartWidth   = 150.0
	ChartHeight  = 100.0
	chartSpacing = 15.0

	MaxTableRows  = 20
	MaxTitleRunes = 30

	lineHeight    = 5.0
	bulletAdvance = 7.0
	rowHeight     = 8.0
	rowAdvance    = 6.0
)

const DefaultBranding = "PR Dashboard - Performance Analytics"

// Block tags, used to tell sections apart in the laid out document.
const (
	TagCover        = "cover"
	TagHeading      = "heading"
	TagSummary      = "summary"
	TagMetric       = "metric"
	TagChart        = "chart"
	TagEvaluation   = "evaluation"
	TagScore        = "score"
	TagSuggestion   = "suggestion"
	TagDetailHeader = "detail-header"
	TagDetailTitle  = "detail-title"
	TagDetailCell   = "detail-cell"
)

var (
	tableHeaders = []string{"Title", "State", "Commits", "Comments", "Days to Merge"}
	columnWidths = []float64{80, 25, 20, 25, 30}

	fontTitle   = models.Font{Size: 24, Bold: true}
	fontCover   = models.Font{Size: 16}
	fontFooter  = models.Font{Size: 12}
	fontBody    = models.Font{Size: 12}
	fontScore   = models.Font{Size: 15, Bold: true}
	fontTable   = models.Font{Size: 10}
	fontTableHd = models.Font{Size: 10, Bold: true}
)

const contentWidth = PageWidth - 2*MarginLeft

type Input struct {
	Employee     string
	DateRange    string
	Repositories []string
	Records      []models.PullRequest
	Summary      models.Summary
	Score        models.Score
	Suggestions  []string
	Charts       []models.RasterImage
	GeneratedAt  time.Time
	Branding     string
}

// Engine composes the evaluation report into positioned pages.
type Engine struct {
	measurer Measurer
}

func NewEngine(m Measurer) *Engine {
	if m == nil {
		m = FixedWidthMeasurer{}
	}
	return &Engine{measurer: m}
}

func (e *Engine) Layout(in Input) (*models.ReportDocument, error) {
	for i, img := range in.Charts {
		if len(img.Data) == 0 {
			return nil, fmt.Errorf("chart %d (%s) has no image data", i, img.Name)
		}
	}
	if in.GeneratedAt.IsZero() {
		in.GeneratedAt = time.Now()
	}
	if in.Branding == "" {
		in.Branding = DefaultBranding
	}

	c := &canvas{
		m:   e.measurer,
		doc: &models.ReportDocument{Width: PageWidth, Height: PageHeight, FileName: FileName(in.Employee, in.GeneratedAt)},
	}

	c.cover(in)
	c.executiveSummary(in)
	c.keyMetrics(in.Summary)
	c.charts(in.Charts)
	c.evaluation(in)
	c.detailTable(in.Records)

	return c.doc, nil
}

type canvas struct {
	m   Measurer
	doc *models.ReportDocument
	y   float64
}

func (c *canvas) addPage() {
	c.doc.Pages = append(c.doc.Pages, models.Page{})
	c.y = MarginTop
}

// ensure starts a new page when a block of height h would run into the bottom margin.
func (c *canvas) ensure(h float64) {
	if c.y+h > PageHeight-MarginBottom {
		c.addPage()
	}
}

func (c *canvas) place(b models.Block) {
	page := &c.doc.Pages[len(c.doc.Pages)-1]
	page.Blocks = append(page.Blocks, b)
}

func (c *canvas) text(tag, text string, x, y float64, font models.Font, color models.Color) {
	c.place(models.Block{Kind: models.BlockText, Tag: tag, X: x, Y: y, Text: text, Font: font, Color: color})
}

func (c *canvas) centered(tag, text string, y float64, font models.Font, color models.Color) {
	x := (PageWidth - c.m.StringWidth(text, font)) / 2
	c.text(tag, text, x, y, font, color)
}

func (c *canvas) heading(text string, size, advance float64) {
	c.text(TagHeading, text, MarginLeft, c.y, models.Font{Size: size, Bold: true}, models.ColorBlack)
	c.y += advance
}

// lines places pre-wrapped lines at the cursor without moving it.
func (c *canvas) lines(tag string, lines []string, x float64, font models.Font) {
	for i, l := range lines {
		c.text(tag, l, x, c.y+float64(i)*lineHeight, font, models.ColorBlack)
	}
}

func (c *canvas) cover(in Input) {
	c.addPage()
	c.centered(TagCover, "Employee Evaluation Report", 40, fontTitle, models.ColorBlack)

	y := 60.0
	c.centered(TagCover, "Employee: "+in.Employee, y, fontCover, models.ColorBlack)
	y += 15
	c.centered(TagCover, "Period: "+in.DateRange, y, fontCover, models.ColorBlack)
	y += 15
	repos := Wrap(c.m, "Repositories: "+strings.Join(in.Repositories, ", "), fontCover, contentWidth)
	for i, l := range repos {
		if i > 0 {
			y += bulletAdvance
		}
		c.centered(TagCover, l, y, fontCover, models.ColorBlack)
	}
	y += 15
	c.centered(TagCover, "Generated on: "+in.GeneratedAt.Format("January 2, 2006"), y, fontCover, models.ColorBlack)

	c.centered(TagCover, in.Branding, PageHeight-20, fontFooter, models.ColorGray)
}

func (c *canvas) executiveSummary(in Input) {
	c.addPage()
	c.heading("Executive Summary", 18, 15)

	s := in.Summary
	narrative := fmt.Sprintf(
		"This report analyzes %s's pull request activity from %s. "+
			"During this period, %s contributed %d pull requests across %d repositories, "+
			"with %d successfully merged PRs (%.1f%% merge rate). "+
			"The average time to merge was %.1f days, indicating %s development velocity.",
		in.Employee, in.DateRange,
		in.Employee, s.TotalPRs, len(in.Repositories),
		s.MergedPRs, services.MergeRate(s),
		s.AvgDaysToMerge, services.VelocityAdjective(s.AvgDaysToMerge),
	)

	wrapped := Wrap(c.m, narrative, fontBody, contentWidth)
	c.ensure(float64(len(wrapped)) * lineHeight)
	c.lines(TagSummary, wrapped, MarginLeft, fontBody)
	c.y += float64(len(wrapped))*lineHeight + 10
}

func metricLines(s models.Summary) []string {
	return []string{
		fmt.Sprintf("Total Pull Requests: %d", s.TotalPRs),
		fmt.Sprintf("Merged PRs: %d (%.1f%%)", s.MergedPRs, services.MergeRate(s)),
		fmt.Sprintf("Open PRs: %d", s.OpenPRs),
		fmt.Sprintf("Declined PRs: %d", s.DeclinedPRs),
		fmt.Sprintf("Total Commits: %d", s.TotalCommits),
		fmt.Sprintf("Total Comments: %d", s.TotalComments),
		fmt.Sprintf("Average Days to Merge: %.1f days", s.AvgDaysToMerge),
	}
}

func (c *canvas) keyMetrics(s models.Summary) {
	metrics := metricLines(s)
	c.ensure(15 + float64(len(metrics))*bulletAdvance)
	c.heading("Key Performance Metrics", 16, 15)

	for _, m := range metrics {
		c.text(TagMetric, "• "+m, BulletIndent, c.y, fontBody, models.ColorBlack)
		c.y += bulletAdvance
	}
}

func (c *canvas) charts(images []models.RasterImage) {
	for i := range images {
		img := images[i]
		c.ensure(ChartHeight)
		c.place(models.Block{
			Kind:   models.BlockImage,
			Tag:    TagChart,
			X:      (PageWidth - ChartWidth) / 2,
			Y:      c.y,
			Width:  ChartWidth,
			Height: ChartHeight,
			Image:  &img,
		})
		c.y += ChartHeight + chartSpacing
	}
}

func (c *canvas) evaluation(in Input) {
	c.addPage()
	c.heading("Employee Evaluation", 18, 20)

	s := in.Summary
	mergeRate := services.MergeRate(s)
	perPR := services.CommentsPerPR(s)

	var quality []string
	quality = append(quality, Wrap(c.m, fmt.Sprintf("Merge Rate: %.1f%% - %s", mergeRate, services.QualityTier(mergeRate)), fontBody, contentWidth)...)
	quality = append(quality, Wrap(c.m, fmt.Sprintf("Comments per PR: %.1f - %s", perPR, services.EngagementTier(perPR)), fontBody, contentWidth)...)
	c.ensure(10 + float64(len(quality))*lineHeight)
	c.heading("PR Quality Assessment", 14, 10)
	c.lines(TagEvaluation, quality, MarginLeft, fontBody)
	c.y += float64(len(quality))*lineHeight + 10

	c.ensure(10 + lineHeight)
	c.heading("Development Speed", 14, 10)
	c.text(TagEvaluation, fmt.Sprintf("Average Days to Merge: %.1f days - %s", s.AvgDaysToMerge, services.SpeedTier(s.AvgDaysToMerge)),
		MarginLeft, c.y, fontBody, models.ColorBlack)
	c.y += 15

	c.ensure(lineHeight * 2)
	c.text(TagScore, scoreLine(in.Score), ScoreIndent, c.y, fontScore, models.ColorGreen)
	c.y += 20

	c.ensure(20)
	c.heading("Suggestions for Improvement", 14, 10)
	for _, suggestion := range in.Suggestions {
		wrapped := Wrap(c.m, "• "+suggestion, fontBody, PageWidth-BulletIndent-MarginLeft)
		c.ensure(max(10, float64(len(wrapped))*lineHeight))
		c.lines(TagSuggestion, wrapped, BulletIndent, fontBody)
		c.y += bulletAdvance + float64(len(wrapped)-1)*lineHeight
	}
}

func scoreLine(score models.Score) string {
	if !score.Sufficient {
		return "Overall Score: N/A - " + score.Label
	}
	return fmt.Sprintf("Overall Score: %s/10 - %s", strconv.FormatFloat(score.Value, 'f', -1, 64), score.Label)
}

func (c *canvas) detailTable(records []models.PullRequest) {
	c.addPage()
	c.heading("Detailed PR List", 16, 15)

	xs := make([]float64, len(columnWidths))
	x := MarginLeft
	for i, w := range columnWidths {
		xs[i] = x
		x += w
	}

	for i, h := range tableHeaders {
		c.text(TagDetailHeader, h, xs[i], c.y, fontTableHd, models.ColorBlack)
	}
	c.y += rowHeight

	if len(records) > MaxTableRows {
		records = records[:MaxTableRows]
	}
	for _, pr := range records {
		c.ensure(rowHeight)
		for i, cell := range rowCells(pr) {
			tag := TagDetailCell
			if i == 0 {
				tag = TagDetailTitle
			}
			c.text(tag, cell, xs[i], c.y, fontTable, models.ColorBlack)
		}
		c.y += rowAdvance
	}
}

func rowCells(pr models.PullRequest) []string {
	days := "—"
	if pr.DaysToMerge != nil {
		days = strconv.FormatFloat(*pr.DaysToMerge, 'f', -1, 64)
	}
	return []string{
		TruncateTitle(pr.Title, MaxTitleRunes),
		string(pr.State),
		strconv.Itoa(pr.Commits),
		strconv.Itoa(pr.Comments),
		days,
	}
}
