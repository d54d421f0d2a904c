package models

import (
	"time"
)

type PRState string

const (
	PRStateOpen     PRState = "OPEN"
	PRStateMerged   PRState = "MERGED"
	PRStateDeclined PRState = "DECLINED"
)

var PRStates = []PRState{PRStateOpen, PRStateMerged, PRStateDeclined}

func (s PRState) Valid() bool {
	switch s {
	case PRStateOpen, PRStateMerged, PRStateDeclined:
		return true
	}
	return false
}

// PullRequest is a single pull request as reported by the upstream provider.
// DaysToMerge is only set for merged pull requests, and even then upstream may omit it.
type PullRequest struct {
	ID           int64
	Title        string
	State        PRState
	Link         string
	CreatedOn    time.Time
	MergedOn     *time.Time
	DaysToMerge  *float64
	Comments     int
	Commits      int
	TargetBranch string
	SourceBranch string
	MergedBy     string
	Repository   string
}

func (p PullRequest) IsMerged() bool {
	return p.State == PRStateMerged
}
