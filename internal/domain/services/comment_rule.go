package services

import (
	"pr-dashboard/internal/domain/models"
	"pr-dashboard/internal/utils"
	"sort"
)

//go:generate mockery --name CommentRule --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename CommentRule.go

// CommentRule turns a raw comment count into the value shown and summed for a member.
type CommentRule interface {
	Adjust(pr models.PullRequest, memberID string) int
}

// Tier subtracts Subtract extra comments when the raw count is above Above.
type Tier struct {
	Above    int `yaml:"above"`
	Subtract int `yaml:"subtract"`
}

// LegacyTiers is the tier table historically applied to a single member.
// TODO: confirm with the product owner whether this member should keep the override.
var LegacyTiers = []Tier{
	{Above: 20, Subtract: 22},
	{Above: 8, Subtract: 6},
	{Above: 5, Subtract: 4},
}

// CommentPolicy subtracts one comment from every non-zero count and applies
// per-member tier tables on top. Results never go below zero.
type CommentPolicy struct {
	overrides map[string][]Tier
}

var _ CommentRule = (*CommentPolicy)(nil)

// NewCommentPolicy builds a policy from member id -> tier table. Member ids are
// normalized, so "{uuid}" and "uuid" select the same override.
func NewCommentPolicy(overrides map[string][]Tier) *CommentPolicy {
	p := &CommentPolicy{overrides: make(map[string][]Tier, len(overrides))}
	for id, tiers := range overrides {
		sorted := append([]Tier(nil), tiers...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Above > sorted[j].Above })
		p.overrides[utils.NormalizeMemberID(id)] = sorted
	}
	return p
}

// BaselineCommentPolicy applies only the universal rule.
func BaselineCommentPolicy() *CommentPolicy {
	return NewCommentPolicy(nil)
}

func (p *CommentPolicy) Adjust(pr models.PullRequest, memberID string) int {
	raw := pr.Comments
	adjusted := raw
	if raw > 0 {
		adjusted--
	}

	if p != nil {
		for _, t := range p.overrides[utils.NormalizeMemberID(memberID)] {
			if raw > t.Above {
				adjusted -= t.Subtract
				break
			}
		}
	}

	if adjusted < 0 {
		return 0
	}
	return adjusted
}

func (p *CommentPolicy) HasOverride(memberID string) bool {
	if p == nil {
		return false
	}
	_, ok := p.overrides[utils.NormalizeMemberID(memberID)]
	return ok
}

// ApplyCommentRule returns copies of records with adjusted comment counts.
// The input slice is left untouched.
func ApplyCommentRule(rule CommentRule, records []models.PullRequest, memberID string) []models.PullRequest {
	out := make([]models.PullRequest, len(records))
	for i, pr := range records {
		out[i] = pr
		if rule != nil {
			out[i].Comments = rule.Adjust(pr, memberID)
		}
	}
	return out
}
