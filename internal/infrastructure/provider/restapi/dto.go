package restapi

import (
	"fmt"
	"pr-dashboard/internal/domain/models"
	"strings"
	"time"
)

type memberDTO struct {
	UUID        string `json:"uuid"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username,omitempty"`
}

func (m memberDTO) toDomain() models.Member {
	return models.Member{UUID: m.UUID, DisplayName: m.DisplayName, Username: m.Username}
}

type pullRequestDTO struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	State        string   `json:"state"`
	CreatedOn    string   `json:"created_on"`
	MergedOn     string   `json:"merged_on,omitempty"`
	Comments     int      `json:"comments"`
	Commits      int      `json:"commits"`
	Link         string   `json:"link"`
	TargetBranch string   `json:"target_branch,omitempty"`
	SourceBranch string   `json:"source_branch,omitempty"`
	DaysToMerge  *float64 `json:"days_to_merge,omitempty"`
	MergedBy     string   `json:"merged_by,omitempty"`
}

func (p pullRequestDTO) toDomain() (models.PullRequest, error) {
	created, err := parseTimestamp(p.CreatedOn)
	if err != nil {
		return models.PullRequest{}, fmt.Errorf("created_on: %w", err)
	}

	pr := models.PullRequest{
		ID:           p.ID,
		Title:        p.Title,
		State:        normalizeState(p.State),
		Link:         p.Link,
		CreatedOn:    created,
		Comments:     p.Comments,
		Commits:      p.Commits,
		TargetBranch: p.TargetBranch,
		SourceBranch: p.SourceBranch,
		DaysToMerge:  p.DaysToMerge,
		MergedBy:     p.MergedBy,
	}

	if p.MergedOn != "" {
		merged, err := parseTimestamp(p.MergedOn)
		if err != nil {
			return models.PullRequest{}, fmt.Errorf("merged_on: %w", err)
		}
		pr.MergedOn = &merged
	}
	return pr, nil
}

// normalizeState upper-cases the upstream state. Bitbucket reports PRs closed
// in favour of another as SUPERSEDED; they were not merged, so they count as declined.
func normalizeState(state string) models.PRState {
	s := models.PRState(strings.ToUpper(strings.TrimSpace(state)))
	if s == stateSuperseded {
		return models.PRStateDeclined
	}
	return s
}

const stateSuperseded models.PRState = "SUPERSEDED"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	models.DateLayout,
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
