package layout_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"pr-dashboard/internal/domain/layout"
	"pr-dashboard/internal/domain/models"
	"pr-dashboard/internal/domain/services"

	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2024, 3, 31, 15, 4, 5, 0, time.UTC)

func makeRecords(n int) []models.PullRequest {
	out := make([]models.PullRequest, 0, n)
	for i := 0; i < n; i++ {
		pr := models.PullRequest{
			ID:       int64(i + 1),
			Title:    fmt.Sprintf("PR number %d", i+1),
			State:    models.PRStateOpen,
			Comments: i % 4,
			Commits:  i%3 + 1,
		}
		if i%2 == 0 {
			d := float64(i%5) + 0.5
			pr.State = models.PRStateMerged
			pr.DaysToMerge = &d
		}
		out = append(out, pr)
	}
	return out
}

func makeInput(records []models.PullRequest, charts int) layout.Input {
	summary := services.Aggregate(records)
	images := make([]models.RasterImage, charts)
	for i := range images {
		images[i] = models.RasterImage{Name: fmt.Sprintf("chart-%d", i), Data: []byte{0x89, 'P', 'N', 'G'}, Width: 600, Height: 400}
	}
	return layout.Input{
		Employee:     "Jane Doe",
		DateRange:    "2024-01-01 to 2024-03-31",
		Repositories: []string{"webcore", "zenit"},
		Records:      records,
		Summary:      summary,
		Score:        services.Score(summary),
		Suggestions:  services.Suggest(summary),
		Charts:       images,
		GeneratedAt:  generatedAt,
	}
}

func blocksWithTag(doc *models.ReportDocument, tag string) []models.Block {
	var out []models.Block
	for _, p := range doc.Pages {
		for _, b := range p.Blocks {
			if b.Tag == tag {
				out = append(out, b)
			}
		}
	}
	return out
}

func pageIndexOf(doc *models.ReportDocument, text string) int {
	for i, p := range doc.Pages {
		for _, b := range p.Blocks {
			if b.Text == text {
				return i
			}
		}
	}
	return -1
}

func newEngine() *layout.Engine {
	return layout.NewEngine(layout.FixedWidthMeasurer{CharWidth: 0.5})
}

func TestLayout_DetailTableRendersAtMostTwentyRows(t *testing.T) {
	doc, err := newEngine().Layout(makeInput(makeRecords(25), 0))
	require.NoError(t, err)

	rows := blocksWithTag(doc, layout.TagDetailTitle)
	require.Len(t, rows, layout.MaxTableRows)
	require.Equal(t, "PR number 1", rows[0].Text)
	require.Equal(t, "PR number 20", rows[19].Text)

	headers := blocksWithTag(doc, layout.TagDetailHeader)
	require.Len(t, headers, 5)
	require.Equal(t, []float64{20, 100, 125, 145, 170}, []float64{headers[0].X, headers[1].X, headers[2].X, headers[3].X, headers[4].X})
}

func TestLayout_TruncatesLongTitles(t *testing.T) {
	records := makeRecords(2)
	records[0].Title = strings.Repeat("abcdefghij", 4)
	records[1].Title = strings.Repeat("x", 30)

	doc, err := newEngine().Layout(makeInput(records, 0))
	require.NoError(t, err)

	rows := blocksWithTag(doc, layout.TagDetailTitle)
	require.Len(t, rows, 2)
	require.Equal(t, strings.Repeat("abcdefghij", 3)+"...", rows[0].Text)
	require.Equal(t, strings.Repeat("x", 30), rows[1].Text)
}

func TestLayout_DaysToMergeCell(t *testing.T) {
	d := 2.5
	records := []models.PullRequest{
		{ID: 1, Title: "merged", State: models.PRStateMerged, DaysToMerge: &d, Commits: 3, Comments: 1},
		{ID: 2, Title: "open", State: models.PRStateOpen},
	}
	doc, err := newEngine().Layout(makeInput(records, 0))
	require.NoError(t, err)

	var cells []string
	for _, b := range blocksWithTag(doc, layout.TagDetailCell) {
		cells = append(cells, b.Text)
	}
	require.Equal(t, []string{"MERGED", "3", "1", "2.5", "OPEN", "0", "0", "—"}, cells)
}

func TestLayout_SectionsStartOnTheirOwnPages(t *testing.T) {
	doc, err := newEngine().Layout(makeInput(makeRecords(10), 0))
	require.NoError(t, err)
	require.Len(t, doc.Pages, 4)

	require.Equal(t, 0, pageIndexOf(doc, "Employee Evaluation Report"))
	require.Equal(t, 1, pageIndexOf(doc, "Executive Summary"))
	require.Equal(t, 1, pageIndexOf(doc, "Key Performance Metrics"))
	require.Equal(t, 2, pageIndexOf(doc, "Employee Evaluation"))
	require.Equal(t, 3, pageIndexOf(doc, "Detailed PR List"))
	require.Equal(t, "Jane Doe_Evaluation_Report_2024-03-31.pdf", doc.FileName)
}

func TestLayout_CoverPage(t *testing.T) {
	doc, err := newEngine().Layout(makeInput(makeRecords(3), 0))
	require.NoError(t, err)

	var texts []string
	for _, b := range blocksWithTag(doc, layout.TagCover) {
		texts = append(texts, b.Text)
		require.InDelta(t, layout.PageWidth/2, b.X+layout.FixedWidthMeasurer{CharWidth: 0.5}.StringWidth(b.Text, b.Font)/2, 1e-9, "cover text must be centred")
	}
	require.Equal(t, []string{
		"Employee Evaluation Report",
		"Employee: Jane Doe",
		"Period: 2024-01-01 to 2024-03-31",
		"Repositories: webcore, zenit",
		"Generated on: March 31, 2024",
		layout.DefaultBranding,
	}, texts)
}

func TestLayout_ExecutiveSummaryIsWrapped(t *testing.T) {
	measurer := layout.FixedWidthMeasurer{CharWidth: 0.5}
	doc, err := layout.NewEngine(measurer).Layout(makeInput(makeRecords(10), 0))
	require.NoError(t, err)

	lines := blocksWithTag(doc, layout.TagSummary)
	require.Greater(t, len(lines), 1)

	var joined []string
	for _, l := range lines {
		require.LessOrEqual(t, measurer.StringWidth(l.Text, l.Font), layout.PageWidth-2*layout.MarginLeft)
		joined = append(joined, l.Text)
	}
	text := strings.Join(joined, " ")
	require.Contains(t, text, "This report analyzes Jane Doe's pull request activity from 2024-01-01 to 2024-03-31.")
	require.Contains(t, text, "contributed 10 pull requests across 2 repositories")
	require.Contains(t, text, "with 5 successfully merged PRs (50.0% merge rate)")
	require.Contains(t, text, "indicating efficient development velocity.")
}

func TestLayout_KeyMetrics(t *testing.T) {
	doc, err := newEngine().Layout(makeInput(makeRecords(10), 0))
	require.NoError(t, err)

	metrics := blocksWithTag(doc, layout.TagMetric)
	require.Len(t, metrics, 7)
	require.Equal(t, "• Total Pull Requests: 10", metrics[0].Text)
	require.Equal(t, "• Merged PRs: 5 (50.0%)", metrics[1].Text)
	for i := 1; i < len(metrics); i++ {
		require.InDelta(t, 7.0, metrics[i].Y-metrics[i-1].Y, 1e-9)
	}
}

func TestLayout_ChartsBreakPages(t *testing.T) {
	doc, err := newEngine().Layout(makeInput(makeRecords(10), 5))
	require.NoError(t, err)

	charts := blocksWithTag(doc, layout.TagChart)
	require.Len(t, charts, 5)
	for _, c := range charts {
		require.Equal(t, models.BlockImage, c.Kind)
		require.NotNil(t, c.Image)
		require.InDelta(t, (layout.PageWidth-layout.ChartWidth)/2, c.X, 1e-9)
		require.LessOrEqual(t, c.Y+c.Height, layout.PageHeight-layout.MarginBottom)
	}
	require.Greater(t, len(doc.Pages), 4)
	require.Equal(t, len(doc.Pages)-2, pageIndexOf(doc, "Employee Evaluation"))
}

func TestLayout_EvaluationSection(t *testing.T) {
	in := makeInput(nil, 0)
	in.Summary = models.Summary{TotalPRs: 10, MergedPRs: 9, OpenPRs: 1, AvgDaysToMerge: 1.5, TotalComments: 30, TotalCommits: 50}
	in.Score = services.Score(in.Summary)
	in.Suggestions = services.Suggest(in.Summary)

	doc, err := newEngine().Layout(in)
	require.NoError(t, err)

	var eval []string
	for _, b := range blocksWithTag(doc, layout.TagEvaluation) {
		eval = append(eval, b.Text)
	}
	require.Equal(t, []string{
		"Merge Rate: 90.0% - Excellent",
		"Comments per PR: 3.0 - Good collaboration",
		"Average Days to Merge: 1.5 days - Very Fast",
	}, eval)

	score := blocksWithTag(doc, layout.TagScore)
	require.Len(t, score, 1)
	require.Equal(t, "Overall Score: 8.7/10 - Strong Contributor!", score[0].Text)
	require.Equal(t, models.ColorGreen, score[0].Color)

	suggestions := blocksWithTag(doc, layout.TagSuggestion)
	require.Len(t, suggestions, 2)
	require.Equal(t, "• "+services.SuggestMaintain, suggestions[0].Text)
}

func TestLayout_NoDataScore(t *testing.T) {
	in := makeInput(nil, 0)
	doc, err := newEngine().Layout(in)
	require.NoError(t, err)

	score := blocksWithTag(doc, layout.TagScore)
	require.Equal(t, "Overall Score: N/A - Insufficient Data", score[0].Text)
	require.Empty(t, blocksWithTag(doc, layout.TagDetailTitle))
}

func TestLayout_RejectsEmptyChart(t *testing.T) {
	in := makeInput(makeRecords(2), 1)
	in.Charts[0].Data = nil

	_, err := newEngine().Layout(in)
	require.Error(t, err)
}

func TestLayout_ContentStaysAboveBottomMargin(t *testing.T) {
	in := makeInput(makeRecords(25), 3)
	in.Suggestions = []string{
		services.SuggestMergeRate, services.SuggestPRSize, services.SuggestEngagement, services.SuggestBacklog,
	}
	doc, err := newEngine().Layout(in)
	require.NoError(t, err)

	for i, p := range doc.Pages {
		for _, b := range p.Blocks {
			require.LessOrEqual(t, b.Y+b.Height, layout.PageHeight-layout.MarginBottom, "page %d block %q", i, b.Text)
		}
	}
}
