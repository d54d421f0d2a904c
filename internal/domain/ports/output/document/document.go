package document

import (
	"pr-dashboard/internal/domain/layout"
	"pr-dashboard/internal/domain/models"
)

//go:generate mockery --name Renderer --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename DocumentRenderer.go --structname DocumentRenderer

// Renderer serializes a laid out report. Measurer returns font metrics matching
// what Render will draw; a fresh Measurer is returned on every call.
type Renderer interface {
	Measurer() layout.Measurer
	Render(doc *models.ReportDocument) ([]byte, error)
	ContentType() string
}
