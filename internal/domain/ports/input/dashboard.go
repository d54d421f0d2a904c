package input

import (
	"context"
	"pr-dashboard/internal/domain/models"
)

//go:generate mockery --name DashboardInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename DashboardInputPort.go

type DashboardInputPort interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
	FindMember(ctx context.Context, id string) (*models.Member, error)
	ListRepositories(ctx context.Context) ([]string, error)
	Query(ctx context.Context, q models.PRQuery) (*models.Dashboard, error)
}
