package githubapi

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"pr-dashboard/internal/domain/models"
	provider_port "pr-dashboard/internal/domain/ports/output/provider"
	"strings"
	"time"

	"github.com/google/go-github/v56/github"
	"golang.org/x/oauth2"
)

const perPage = 100

// Client serves members and pull requests of a GitHub organization. Members are
// identified by their login.
type Client struct {
	gh  *github.Client
	org string
}

var _ provider_port.PRProvider = (*Client)(nil)

// NewClient authenticates with token when one is given. An empty baseURL targets github.com.
func NewClient(ctx context.Context, org, token, baseURL string) (*Client, error) {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	}
	if baseURL != "" {
		return NewClientWithBaseURL(baseURL, org, hc)
	}
	return &Client{gh: github.NewClient(hc), org: org}, nil
}

// NewClientWithBaseURL points the client at a GitHub Enterprise or test server.
func NewClientWithBaseURL(baseURL, org string, hc *http.Client) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse github base url: %w", err)
	}
	gh := github.NewClient(hc)
	gh.BaseURL = u
	return &Client{gh: gh, org: org}, nil
}

func (c *Client) ListMembers(ctx context.Context) ([]models.Member, error) {
	opt := &github.ListMembersOptions{ListOptions: github.ListOptions{PerPage: perPage}}

	var members []models.Member
	for {
		users, resp, err := c.gh.Organizations.ListMembers(ctx, c.org, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list members of %s: %w", c.org, err)
		}
		for _, u := range users {
			name := u.GetName()
			if name == "" {
				name = u.GetLogin()
			}
			members = append(members, models.Member{UUID: u.GetLogin(), DisplayName: name, Username: u.GetLogin()})
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return members, nil
}

// ListPullRequests walks the repository's pull requests newest first and stops
// once it passes filter.From. Detail calls fill in comment and commit counts.
func (c *Client) ListPullRequests(ctx context.Context, filter models.PRFilter) ([]models.PullRequest, error) {
	opt := &github.PullRequestListOptions{
		State:       apiState(filter.State),
		Base:        filter.TargetBranch,
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	end := filter.To.Add(24*time.Hour - time.Nanosecond)

	var out []models.PullRequest
	for {
		prs, resp, err := c.gh.PullRequests.List(ctx, c.org, filter.Repository, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests for %s: %w", filter.Repository, err)
		}

		stop := false
		for _, pr := range prs {
			created := pr.GetCreatedAt().Time
			if created.Before(filter.From) {
				stop = true
				break
			}
			if created.After(end) || !strings.EqualFold(pr.GetUser().GetLogin(), filter.Author) {
				continue
			}
			if filter.State != "" && stateOf(pr) != filter.State {
				continue
			}

			full, _, err := c.gh.PullRequests.Get(ctx, c.org, filter.Repository, pr.GetNumber())
			if err != nil {
				return nil, fmt.Errorf("failed to get pull request %s#%d: %w", filter.Repository, pr.GetNumber(), err)
			}
			out = append(out, toDomain(full))
		}

		if stop || resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return out, nil
}

func apiState(s models.PRState) string {
	switch s {
	case models.PRStateOpen:
		return "open"
	case models.PRStateMerged, models.PRStateDeclined:
		return "closed"
	}
	return "all"
}

func stateOf(pr *github.PullRequest) models.PRState {
	switch {
	case pr.MergedAt != nil:
		return models.PRStateMerged
	case pr.GetState() == "closed":
		return models.PRStateDeclined
	}
	return models.PRStateOpen
}

func toDomain(pr *github.PullRequest) models.PullRequest {
	out := models.PullRequest{
		ID:           int64(pr.GetNumber()),
		Title:        pr.GetTitle(),
		State:        stateOf(pr),
		Link:         pr.GetHTMLURL(),
		CreatedOn:    pr.GetCreatedAt().Time,
		Comments:     pr.GetComments() + pr.GetReviewComments(),
		Commits:      pr.GetCommits(),
		TargetBranch: pr.GetBase().GetRef(),
		SourceBranch: pr.GetHead().GetRef(),
		MergedBy:     pr.GetMergedBy().GetLogin(),
	}
	if pr.MergedAt != nil {
		merged := pr.GetMergedAt().Time
		out.MergedOn = &merged
		days := math.Round(merged.Sub(out.CreatedOn).Hours()/24*10) / 10
		out.DaysToMerge = &days
	}
	return out
}
