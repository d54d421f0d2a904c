package dashboard

import (
	"context"
	"fmt"
	"pr-dashboard/internal/domain/models"
	"pr-dashboard/internal/domain/ports/input"
	ports "pr-dashboard/internal/domain/ports/output"
	provider_port "pr-dashboard/internal/domain/ports/output/provider"
	"pr-dashboard/internal/domain/services"
	"pr-dashboard/internal/utils"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches caps parallel upstream requests per query.
const maxConcurrentFetches = 5

type Service struct {
	provider     provider_port.PRProvider
	rule         services.CommentRule
	repositories []string
	log          ports.Logger
}

func NewService(provider provider_port.PRProvider, rule services.CommentRule, repositories []string, log ports.Logger) input.DashboardInputPort {
	return &Service{
		provider:     provider,
		rule:         rule,
		repositories: append([]string(nil), repositories...),
		log:          log,
	}
}

func (s *Service) ListMembers(ctx context.Context) ([]models.Member, error) {
	members, err := s.provider.ListMembers(ctx)
	if err != nil {
		s.log.Error("failed to list members", "err", err)
		return nil, fmt.Errorf("%w: list members: %w", utils.ErrUpstream, err)
	}
	return members, nil
}

func (s *Service) FindMember(ctx context.Context, id string) (*models.Member, error) {
	members, err := s.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	want := utils.NormalizeMemberID(id)
	for i := range members {
		if utils.NormalizeMemberID(members[i].UUID) == want {
			m := members[i]
			return &m, nil
		}
	}
	return nil, utils.ErrMemberNotFound
}

func (s *Service) ListRepositories(_ context.Context) ([]string, error) {
	return append([]string(nil), s.repositories...), nil
}

// Query fetches every selected repository concurrently. One failed repository
// fails the whole query; records keep the repository selection order.
func (s *Service) Query(ctx context.Context, q models.PRQuery) (*models.Dashboard, error) {
	q.Repositories = utils.SplitList(q.Repositories)
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	log := s.log.With("author", q.Author, "period", q.DateRange())
	results := make([][]models.PullRequest, len(q.Repositories))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, repo := range q.Repositories {
		g.Go(func() error {
			prs, err := s.provider.ListPullRequests(gctx, q.Filter(repo))
			if err != nil {
				log.Error("failed to fetch pull requests", "repo", repo, "err", err)
				return fmt.Errorf("%w: repository %s: %w", utils.ErrUpstream, repo, err)
			}
			for j := range prs {
				prs[j].Repository = repo
			}
			results[i] = prs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Records outside OPEN, MERGED and DECLINED are dropped so the state
	// counts always add up to the total.
	var records []models.PullRequest
	for _, prs := range results {
		for _, pr := range prs {
			if !pr.State.Valid() {
				log.Warn("skipping pull request with unknown state", "id", pr.ID, "repo", pr.Repository, "state", pr.State)
				continue
			}
			records = append(records, pr)
		}
	}

	records = services.ApplyCommentRule(s.rule, records, q.Author)
	summary := services.Aggregate(records)
	log.Debug("dashboard query", "repos", len(q.Repositories), "prs", summary.TotalPRs)

	return &models.Dashboard{Query: q, Records: records, Summary: summary}, nil
}

func validateQuery(q models.PRQuery) error {
	switch {
	case q.Author == "":
		return fmt.Errorf("%w: author is required", utils.ErrInvalidArgument)
	case len(q.Repositories) == 0:
		return fmt.Errorf("%w: at least one repository is required", utils.ErrInvalidArgument)
	case q.From.IsZero() || q.To.IsZero():
		return fmt.Errorf("%w: from and to dates are required", utils.ErrInvalidArgument)
	case q.From.After(q.To):
		return fmt.Errorf("%w: from date is after to date", utils.ErrInvalidArgument)
	case q.State != "" && !q.State.Valid():
		return fmt.Errorf("%w: unknown state %q", utils.ErrInvalidArgument, q.State)
	}
	return nil
}
