package services

import (
	"math"
	"pr-dashboard/internal/domain/models"
)

const (
	LabelOutstanding  = "Outstanding Contributor!"
	LabelStrong       = "Strong Contributor!"
	LabelGood         = "Good Contributor"
	LabelSatisfactory = "Satisfactory Performance"
	LabelNeedsWork    = "Needs Improvement"
	LabelNoData       = "Insufficient Data"
)

// NoDataScore is returned for summaries without pull requests.
var NoDataScore = models.Score{Value: 0, Label: LabelNoData, Sufficient: false}

// MergeRate is the merged share of all pull requests, in percent. Zero when there are none.
func MergeRate(s models.Summary) float64 {
	if s.TotalPRs == 0 {
		return 0
	}
	return float64(s.MergedPRs) / float64(s.TotalPRs) * 100
}

// CommentsPerPR is zero when there are no pull requests.
func CommentsPerPR(s models.Summary) float64 {
	if s.TotalPRs == 0 {
		return 0
	}
	return float64(s.TotalComments) / float64(s.TotalPRs)
}

// Score rates a contributor on speed, quality and activity, 4.0 to 10.0 rounded
// to one decimal. Summaries with no pull requests get NoDataScore.
func Score(s models.Summary) models.Score {
	if s.TotalPRs <= 0 {
		return NoDataScore
	}

	mean := float64(speedScore(s.AvgDaysToMerge)+qualityScore(MergeRate(s))+activityScore(s.TotalPRs)) / 3
	value := roundHalfUp(mean, 1)

	return models.Score{Value: value, Label: ScoreLabel(value), Sufficient: true}
}

func ScoreLabel(score float64) string {
	switch {
	case score >= 9:
		return LabelOutstanding
	case score >= 8:
		return LabelStrong
	case score >= 7:
		return LabelGood
	case score >= 6:
		return LabelSatisfactory
	default:
		return LabelNeedsWork
	}
}

func speedScore(avgDays float64) int {
	switch {
	case avgDays < 2:
		return 10
	case avgDays < 5:
		return 8
	case avgDays < 10:
		return 6
	default:
		return 4
	}
}

func qualityScore(mergeRate float64) int {
	switch {
	case mergeRate > 80:
		return 10
	case mergeRate > 60:
		return 8
	default:
		return 6
	}
}

func activityScore(total int) int {
	switch {
	case total > 20:
		return 10
	case total > 10:
		return 8
	default:
		return 6
	}
}

// SpeedTier shares its thresholds with the speed sub-score.
func SpeedTier(avgDays float64) string {
	switch {
	case avgDays < 2:
		return "Very Fast"
	case avgDays < 5:
		return "Fast"
	case avgDays < 10:
		return "Moderate"
	default:
		return "Slow"
	}
}

func QualityTier(mergeRate float64) string {
	switch {
	case mergeRate > 80:
		return "Excellent"
	case mergeRate > 60:
		return "Good"
	default:
		return "Needs Improvement"
	}
}

func EngagementTier(commentsPerPR float64) string {
	switch {
	case commentsPerPR < 2:
		return "Low engagement"
	case commentsPerPR < 5:
		return "Good collaboration"
	default:
		return "High engagement"
	}
}

// VelocityAdjective describes the merge speed in the executive summary.
func VelocityAdjective(avgDays float64) string {
	if avgDays < 3 {
		return "efficient"
	}
	return "moderate"
}

func roundHalfUp(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Floor(v*scale+0.5) / scale
}
