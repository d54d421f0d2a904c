package input

import (
	"context"
	"pr-dashboard/internal/domain/models"
)

//go:generate mockery --name ReportInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename ReportInputPort.go

type ReportInputPort interface {
	Generate(ctx context.Context, q models.PRQuery) (*models.Report, error)
	Chart(ctx context.Context, q models.PRQuery, name string) (*models.RasterImage, error)
}
