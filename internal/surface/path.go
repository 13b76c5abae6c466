package surface

import (
	"math"
	"strconv"
	"strings"
)

// SegmentKind is the kind of a path command.
type SegmentKind int

const (
	// SegmentMove starts a new subpath without drawing.
	SegmentMove SegmentKind = iota
	// SegmentLine draws a straight line.
	SegmentLine
	// SegmentCurve draws a cubic Bézier curve.
	SegmentCurve
)

// Point is a surface coordinate.
type Point struct {
	X float64
	Y float64
}

// PathCommand is a single path command. Curves carry both control points and the end
// point, the rest only the end point.
type PathCommand struct {
	Kind     SegmentKind
	Control1 Point
	Control2 Point
	To       Point
}

// PathData is an ordered list of path commands.
type PathData []PathCommand

// MoveTo appends a move command.
func (p PathData) MoveTo(to Point) PathData {
	return append(p, PathCommand{Kind: SegmentMove, To: to})
}

// LineTo appends a straight line command.
func (p PathData) LineTo(to Point) PathData {
	return append(p, PathCommand{Kind: SegmentLine, To: to})
}

// CurveTo appends a cubic Bézier command.
func (p PathData) CurveTo(c1, c2, to Point) PathData {
	return append(p, PathCommand{Kind: SegmentCurve, Control1: c1, Control2: c2, To: to})
}

// String returns the SVG path data with coordinates rounded to pixels.
func (p PathData) String() string {
	var b strings.Builder
	for _, c := range p {
		switch c.Kind {
		case SegmentMove:
			b.WriteString("M")
			writePoint(&b, c.To)
		case SegmentLine:
			b.WriteString("L")
			writePoint(&b, c.To)
		case SegmentCurve:
			b.WriteString("C")
			writePoint(&b, c.Control1)
			b.WriteString(" ")
			writePoint(&b, c.Control2)
			b.WriteString(" ")
			writePoint(&b, c.To)
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(strconv.Itoa(Round(p.X)))
	b.WriteString(",")
	b.WriteString(strconv.Itoa(Round(p.Y)))
}

// Round rounds a coordinate to the nearest pixel.
func Round(v float64) int {
	return int(math.Round(v))
}
