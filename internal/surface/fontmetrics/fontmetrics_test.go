package fontmetrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/delorean/internal/surface"
	"github.com/slok/delorean/internal/surface/fontmetrics"
)

func TestBasicMeasurer(t *testing.T) {
	tests := map[string]struct {
		text      string
		font      surface.Font
		expWidth  float64
		expHeight float64
	}{
		"An empty text should not have width.": {
			text:      "",
			font:      surface.Font{Size: 13},
			expWidth:  0,
			expHeight: 13,
		},

		"A text at the face size should measure 7px per glyph.": {
			text:      "01/02",
			font:      surface.Font{Size: 13},
			expWidth:  35,
			expHeight: 13,
		},

		"A text at a bigger size should be scaled.": {
			text:      "12",
			font:      surface.Font{Size: 26},
			expWidth:  28,
			expHeight: 26,
		},

		"Bold texts should be wider.": {
			text:      "1234567890",
			font:      surface.Font{Size: 13, Weight: "bold"},
			expWidth:  77,
			expHeight: 13,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			m := fontmetrics.NewBasicMeasurer()
			w, h := m.MeasureText(test.text, test.font)

			assert.InDelta(test.expWidth, w, 0.001)
			assert.InDelta(test.expHeight, h, 0.001)
		})
	}
}
