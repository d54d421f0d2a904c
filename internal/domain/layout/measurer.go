package layout

import (
	"pr-dashboard/internal/domain/models"
	"strings"
	"unicode"
)

// Measurer reports the rendered width of text in millimetres.
type Measurer interface {
	StringWidth(text string, font models.Font) float64
}

// FixedWidthMeasurer treats every rune as CharWidth points wide at size 1.
type FixedWidthMeasurer struct {
	CharWidth float64
}

const ptToMM = 25.4 / 72

func (m FixedWidthMeasurer) StringWidth(text string, font models.Font) float64 {
	w := m.CharWidth
	if w == 0 {
		w = 0.5
	}
	return float64(len([]rune(text))) * w * font.Size * ptToMM
}

// Wrap splits text into lines no wider than maxWidth. Explicit newlines are kept
// as line breaks; words longer than a full line are broken by rune.
func Wrap(m Measurer, text string, font models.Font, maxWidth float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(m, paragraph, font, maxWidth)...)
	}
	return lines
}

func wrapParagraph(m Measurer, paragraph string, font models.Font, maxWidth float64) []string {
	words := strings.FieldsFunc(paragraph, unicode.IsSpace)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines   []string
		current string
	)
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.StringWidth(candidate, font) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
		for m.StringWidth(current, font) > maxWidth {
			head, tail := splitToWidth(m, current, font, maxWidth)
			lines = append(lines, head)
			current = tail
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func splitToWidth(m Measurer, word string, font models.Font, maxWidth float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && m.StringWidth(string(runes[:n+1]), font) <= maxWidth {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
