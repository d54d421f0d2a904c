package layout

import (
	"pr-dashboard/internal/domain/models"
	"strings"
	"time"
)

// FileName is "{employee}_Evaluation_Report_{YYYY-MM-DD}.pdf".
func FileName(employee string, at time.Time) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "\"", "", "\n", " ").Replace(strings.TrimSpace(employee))
	if safe == "" {
		safe = "Unknown"
	}
	return safe + "_Evaluation_Report_" + at.Format(models.DateLayout) + ".pdf"
}

// TruncateTitle shortens titles longer than max runes and marks the cut with "...".
func TruncateTitle(title string, max int) string {
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	return string(runes[:max]) + "..."
}
