package dto

import (
	"pr-dashboard/internal/domain/models"
	"time"
)

type PRDTO struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	State        string     `json:"state"`
	Repository   string     `json:"repository"`
	CreatedOn    time.Time  `json:"created_on"`
	MergedOn     *time.Time `json:"merged_on,omitempty"`
	Comments     int        `json:"comments"`
	Commits      int        `json:"commits"`
	Link         string     `json:"link"`
	TargetBranch string     `json:"target_branch,omitempty"`
	SourceBranch string     `json:"source_branch,omitempty"`
	DaysToMerge  *float64   `json:"days_to_merge,omitempty"`
	MergedBy     string     `json:"merged_by,omitempty"`
}

func ToPRDTO(pr models.PullRequest) PRDTO {
	return PRDTO{
		ID:           pr.ID,
		Title:        pr.Title,
		State:        string(pr.State),
		Repository:   pr.Repository,
		CreatedOn:    pr.CreatedOn,
		MergedOn:     pr.MergedOn,
		Comments:     pr.Comments,
		Commits:      pr.Commits,
		Link:         pr.Link,
		TargetBranch: pr.TargetBranch,
		SourceBranch: pr.SourceBranch,
		DaysToMerge:  pr.DaysToMerge,
		MergedBy:     pr.MergedBy,
	}
}

type SummaryDTO struct {
	TotalPRs       int     `json:"total_prs"`
	TotalComments  int     `json:"total_comments"`
	TotalCommits   int     `json:"total_commits"`
	MergedPRs      int     `json:"merged_prs"`
	OpenPRs        int     `json:"open_prs"`
	DeclinedPRs    int     `json:"declined_prs"`
	AvgDaysToMerge float64 `json:"avg_days_to_merge"`
}

func ToSummaryDTO(s models.Summary) SummaryDTO {
	return SummaryDTO(s)
}

type MemberDTO struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username,omitempty"`
}

func ToMemberDTO(m models.Member) MemberDTO {
	return MemberDTO{UUID: m.UUID, DisplayName: m.DisplayName, Username: m.Username}
}
