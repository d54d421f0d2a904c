package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"pr-dashboard/internal/domain/models"
	provider_port "pr-dashboard/internal/domain/ports/output/provider"
	"strings"
	"time"
)

// maxErrorBody caps how much of a failed response ends up in the error message.
const maxErrorBody = 512

// HTTPClient allows swapping the transport in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client reads members and pull requests from the PR analytics REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient HTTPClient
}

var _ provider_port.PRProvider = (*Client)(nil)

func NewClient(baseURL, token string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

func (c *Client) ListMembers(ctx context.Context) ([]models.Member, error) {
	var members []memberDTO
	if err := c.doRequest(ctx, c.baseURL+"/api/members", &members); err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	out := make([]models.Member, 0, len(members))
	for _, m := range members {
		out = append(out, m.toDomain())
	}
	return out, nil
}

func (c *Client) ListPullRequests(ctx context.Context, filter models.PRFilter) ([]models.PullRequest, error) {
	params := url.Values{}
	params.Set("author", filter.Author)
	params.Set("from", filter.From.Format(models.DateLayout))
	params.Set("to", filter.To.Format(models.DateLayout))
	params.Set("repo", filter.Repository)
	if filter.State != "" {
		params.Set("state", string(filter.State))
	}
	if filter.TargetBranch != "" {
		params.Set("target_branch", filter.TargetBranch)
	}

	var prs []pullRequestDTO
	if err := c.doRequest(ctx, c.baseURL+"/api/prs?"+params.Encode(), &prs); err != nil {
		return nil, fmt.Errorf("failed to get pull requests for %s: %w", filter.Repository, err)
	}

	out := make([]models.PullRequest, 0, len(prs))
	for _, p := range prs {
		pr, err := p.toDomain()
		if err != nil {
			return nil, fmt.Errorf("pull request %d in %s: %w", p.ID, filter.Repository, err)
		}
		out = append(out, pr)
	}
	return out, nil
}

func (c *Client) doRequest(ctx context.Context, url string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
