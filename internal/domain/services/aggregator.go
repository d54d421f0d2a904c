package services

import "pr-dashboard/internal/domain/models"

// Aggregate reduces records into a Summary. It is total: an empty list yields
// a zero Summary with AvgDaysToMerge 0.
func Aggregate(records []models.PullRequest) models.Summary {
	var (
		s          models.Summary
		mergedDays float64
		mergedWith int
	)

	s.TotalPRs = len(records)
	for _, pr := range records {
		s.TotalComments += pr.Comments
		s.TotalCommits += pr.Commits

		switch pr.State {
		case models.PRStateMerged:
			s.MergedPRs++
			if pr.DaysToMerge != nil {
				mergedDays += *pr.DaysToMerge
				mergedWith++
			}
		case models.PRStateOpen:
			s.OpenPRs++
		case models.PRStateDeclined:
			s.DeclinedPRs++
		}
	}

	if mergedWith > 0 {
		s.AvgDaysToMerge = mergedDays / float64(mergedWith)
	}
	return s
}
