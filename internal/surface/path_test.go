package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/delorean/internal/surface"
)

func TestPathDataString(t *testing.T) {
	tests := map[string]struct {
		path    func() surface.PathData
		expPath string
	}{
		"An empty path should be empty.": {
			path:    func() surface.PathData { return nil },
			expPath: "",
		},

		"Straight segments should be rendered as move and line commands.": {
			path: func() surface.PathData {
				return surface.PathData{}.
					MoveTo(surface.Point{X: 10, Y: 20}).
					LineTo(surface.Point{X: 30.4, Y: 40.6})
			},
			expPath: "M10,20L30,41",
		},

		"Curved segments should be rendered as cubic commands.": {
			path: func() surface.PathData {
				return surface.PathData{}.
					MoveTo(surface.Point{X: 0, Y: 0}).
					CurveTo(surface.Point{X: 5, Y: 0}, surface.Point{X: 15, Y: 10}, surface.Point{X: 20, Y: 10})
			},
			expPath: "M0,0C5,0 15,10 20,10",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expPath, test.path().String())
		})
	}
}
