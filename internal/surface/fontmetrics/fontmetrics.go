// Package fontmetrics measures texts without a rendering engine, using the fixed 7x13
// bitmap face scaled to the requested font size.
package fontmetrics

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/slok/delorean/internal/surface"
)

const (
	defaultFontSize = 10
	boldFactor      = 1.1
)

// BasicMeasurer is a surface.TextMeasurer based on basicfont.Face7x13.
type BasicMeasurer struct {
	face *basicfont.Face
}

// NewBasicMeasurer returns a new BasicMeasurer.
func NewBasicMeasurer() BasicMeasurer {
	return BasicMeasurer{face: basicfont.Face7x13}
}

var _ surface.TextMeasurer = BasicMeasurer{}

// MeasureText returns the width and height in pixels of text drawn with f.
func (m BasicMeasurer) MeasureText(text string, f surface.Font) (width, height float64) {
	size := f.Size
	if size <= 0 {
		size = defaultFontSize
	}

	adv := font.MeasureString(m.face, text).Ceil()
	// Glyphs missing from the face take the regular advance.
	for _, r := range text {
		if _, ok := m.face.GlyphAdvance(r); !ok {
			adv += m.face.Advance
		}
	}

	scale := size / float64(m.face.Height)
	width = float64(adv) * scale
	if isBold(f.Weight) {
		width *= boldFactor
	}

	metrics := m.face.Metrics()
	height = float64((metrics.Ascent + metrics.Descent).Ceil()) * scale

	return width, height
}

func isBold(weight string) bool {
	switch strings.ToLower(weight) {
	case "bold", "bolder", "600", "700", "800", "900":
		return true
	}
	return false
}
