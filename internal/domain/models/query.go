package models

import "time"

const DateLayout = "2006-01-02"

// PRQuery is a dashboard query: one author across one or more repositories.
type PRQuery struct {
	Author       string
	From         time.Time
	To           time.Time
	Repositories []string
	State        PRState
	TargetBranch string
}

// DateRange renders the period the way it appears on reports.
func (q PRQuery) DateRange() string {
	return q.From.Format(DateLayout) + " to " + q.To.Format(DateLayout)
}

// Filter narrows the query down to a single repository.
func (q PRQuery) Filter(repo string) PRFilter {
	return PRFilter{
		Author:       q.Author,
		From:         q.From,
		To:           q.To,
		Repository:   repo,
		State:        q.State,
		TargetBranch: q.TargetBranch,
	}
}

// PRFilter is the per-repository request sent to the upstream provider.
type PRFilter struct {
	Author       string
	From         time.Time
	To           time.Time
	Repository   string
	State        PRState
	TargetBranch string
}
