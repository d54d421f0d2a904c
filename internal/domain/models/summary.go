package models

// Summary holds aggregate statistics over a pull request list.
type Summary struct {
	TotalPRs       int
	TotalComments  int
	TotalCommits   int
	MergedPRs      int
	OpenPRs        int
	DeclinedPRs    int
	AvgDaysToMerge float64
}

type Score struct {
	Value      float64
	Label      string
	Sufficient bool
}

// Dashboard is what both the interactive view and the exported report are built from.
type Dashboard struct {
	Query   PRQuery
	Records []PullRequest
	Summary Summary
}
