package models

type BlockKind int

const (
	BlockText BlockKind = iota
	BlockImage
)

type Font struct {
	Size float64
	Bold bool
}

type Color struct {
	R, G, B uint8
}

var (
	ColorBlack = Color{}
	ColorGray  = Color{R: 100, G: 100, B: 100}
	ColorGreen = Color{G: 150}
)

// RasterImage is a pre-rendered PNG chart.
type RasterImage struct {
	Name   string
	Data   []byte
	Width  int
	Height int
}

// Block is a positioned element on a page. Coordinates are in millimetres,
// Y of a text block is its baseline.
type Block struct {
	Kind   BlockKind
	Tag    string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Text   string
	Font   Font
	Color  Color
	Image  *RasterImage
}

type Page struct {
	Blocks []Block
}

type ReportDocument struct {
	Width    float64
	Height   float64
	FileName string
	Pages    []Page
}

// Report is a finished, serialized evaluation document.
type Report struct {
	ID          string
	FileName    string
	ContentType string
	Content     []byte
	Summary     Summary
	Score       Score
	Suggestions []string
}
