package services

import "pr-dashboard/internal/domain/models"

const (
	SuggestMergeRate  = "Focus on improving PR quality to increase merge rate."
	SuggestPRSize     = "Work on reducing PR size for faster review cycles."
	SuggestEngagement = "Engage more in code reviews and discussions."
	SuggestBacklog    = "Reduce open PR backlog by focusing on completion."
	SuggestMaintain   = "Continue maintaining excellent performance standards."
	SuggestMentoring  = "Consider mentoring junior developers."
	SuggestNoActivity = "No pull request activity in the selected period."
)

// Suggest runs every threshold rule in a fixed order and collects the ones that fire.
// When none fire the two positive suggestions are returned instead.
func Suggest(s models.Summary) []string {
	if s.TotalPRs <= 0 {
		return []string{SuggestNoActivity}
	}

	var out []string
	if MergeRate(s) < 70 {
		out = append(out, SuggestMergeRate)
	}
	if s.AvgDaysToMerge > 7 {
		out = append(out, SuggestPRSize)
	}
	if CommentsPerPR(s) < 2 {
		out = append(out, SuggestEngagement)
	}
	if s.OpenPRs > 5 {
		out = append(out, SuggestBacklog)
	}

	if len(out) == 0 {
		return []string{SuggestMaintain, SuggestMentoring}
	}
	return out
}
