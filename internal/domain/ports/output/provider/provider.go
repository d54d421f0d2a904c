package provider

import (
	"context"
	"pr-dashboard/internal/domain/models"
)

//go:generate mockery --name PRProvider --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename PRProvider.go

// PRProvider is the upstream source of members and pull requests.
type PRProvider interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
	ListPullRequests(ctx context.Context, filter models.PRFilter) ([]models.PullRequest, error)
}
