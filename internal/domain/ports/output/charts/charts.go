package charts

import "pr-dashboard/internal/domain/models"

//go:generate mockery --name ChartRenderer --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename ChartRenderer.go
//go:generate mockery --name Surface --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename Surface.go

// Surface is a chart being drawn. Ready is closed once drawing has finished;
// Rasterize must only be called after that.
type Surface interface {
	Name() string
	Ready() <-chan struct{}
	Rasterize() (models.RasterImage, error)
}

type ChartRenderer interface {
	Surfaces(prs []models.PullRequest) []Surface
}
