package pdf

import (
	"bytes"
	"fmt"
	"pr-dashboard/internal/domain/layout"
	"pr-dashboard/internal/domain/models"
	document_port "pr-dashboard/internal/domain/ports/output/document"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	ContentType = "application/pdf"
	fontFamily  = "Helvetica"
)

type Renderer struct {
	creator string
	now     func() time.Time
}

var _ document_port.Renderer = (*Renderer)(nil)

func NewRenderer(creator string) *Renderer {
	return &Renderer{creator: creator, now: time.Now}
}

func (r *Renderer) ContentType() string { return ContentType }

func (r *Renderer) Measurer() layout.Measurer {
	pdf := fpdf.New("P", "mm", "A4", "")
	return &measurer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func (r *Renderer) Render(doc *models.ReportDocument) ([]byte, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, fmt.Errorf("render pdf: document has no pages")
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: doc.Width, Ht: doc.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(r.now())
	pdf.SetCreator(r.creator, true)
	pdf.SetTitle(doc.FileName, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	images := 0
	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, b := range page.Blocks {
			switch b.Kind {
			case models.BlockText:
				setFont(pdf, b.Font)
				pdf.SetTextColor(int(b.Color.R), int(b.Color.G), int(b.Color.B))
				pdf.Text(b.X, b.Y, tr(b.Text))
			case models.BlockImage:
				if b.Image == nil || len(b.Image.Data) == 0 {
					return nil, fmt.Errorf("render pdf: image block %q has no data", b.Tag)
				}
				images++
				name := fmt.Sprintf("%s-%d", b.Image.Name, images)
				opts := fpdf.ImageOptions{ImageType: "PNG"}
				pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(b.Image.Data))
				pdf.ImageOptions(name, b.X, b.Y, b.Width, b.Height, false, opts, 0, "")
			default:
				return nil, fmt.Errorf("render pdf: unknown block kind %d", b.Kind)
			}
			if err := pdf.Error(); err != nil {
				return nil, fmt.Errorf("render pdf: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func setFont(pdf *fpdf.Fpdf, f models.Font) {
	style := ""
	if f.Bold {
		style = "B"
	}
	pdf.SetFont(fontFamily, style, f.Size)
}

// measurer uses the same core font metrics the renderer draws with.
// It is not safe for concurrent use.
type measurer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (m *measurer) StringWidth(text string, font models.Font) float64 {
	setFont(m.pdf, font)
	return m.pdf.GetStringWidth(m.tr(text))
}
