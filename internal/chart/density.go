package chart

import "github.com/slok/delorean/internal/surface"

// SegmentStyle is how consecutive points of a series are joined.
type SegmentStyle int

const (
	// SegmentStraight joins points with straight lines.
	SegmentStraight SegmentStyle = iota
	// SegmentCurved joins points with horizontal tangent cubic curves.
	SegmentCurved
)

func (s SegmentStyle) String() string {
	switch s {
	case SegmentCurved:
		return "curved"
	default:
		return "straight"
	}
}

// DensityTier is the bucket of point counts that selects the line and marker styles.
type DensityTier struct {
	Name    string
	Segment SegmentStyle
	// Tension is the length of the curve control handles as a ratio of the slot width.
	Tension        float64
	PointSize      float64
	PointSizeHover float64
	StrokeWidth    float64
}

const (
	sparseMaxPoints = 45
	mediumMaxPoints = 90
)

// DensityTierFor returns the density tier of a chart with points time points.
func DensityTierFor(points int, cfg Config) DensityTier {
	switch {
	case points <= sparseMaxPoints:
		return DensityTier{
			Name:           "sparse",
			Segment:        SegmentCurved,
			Tension:        0.5,
			PointSize:      cfg.PointSize,
			PointSizeHover: cfg.PointSizeHover,
			StrokeWidth:    cfg.StrokeWidth,
		}
	case points <= mediumMaxPoints:
		return DensityTier{
			Name:           "medium",
			Segment:        SegmentStraight,
			PointSize:      3,
			PointSizeHover: 5,
			StrokeWidth:    cfg.StrokeWidthDense,
		}
	default:
		return DensityTier{
			Name:           "dense",
			Segment:        SegmentStraight,
			PointSize:      0,
			PointSizeHover: 3,
			StrokeWidth:    cfg.StrokeWidthDense,
		}
	}
}

// joinPoints returns the path of a series for the tier segment style.
func (t DensityTier) joinPoints(points []surface.Point, slotWidth float64) surface.PathData {
	path := make(surface.PathData, 0, len(points))
	handle := t.Tension * slotWidth
	for i, p := range points {
		if i == 0 {
			path = path.MoveTo(p)
			continue
		}

		prev := points[i-1]
		switch t.Segment {
		case SegmentCurved:
			path = path.CurveTo(
				surface.Point{X: prev.X + handle, Y: prev.Y},
				surface.Point{X: p.X - handle, Y: p.Y},
				p,
			)
		default:
			path = path.LineTo(p)
		}
	}

	return path
}
