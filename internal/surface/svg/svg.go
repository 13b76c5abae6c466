package svg

import (
	"fmt"
	"html"
	"io"
	"slices"
	"sort"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/slok/delorean/internal/surface"
	"github.com/slok/delorean/internal/surface/fontmetrics"
	commonerrors "github.com/slok/delorean/pkg/common/errors"
)

// SurfaceConfig is the SVG surface configuration.
type SurfaceConfig struct {
	// Measurer measures texts, by default a basic bitmap font measurer.
	Measurer surface.TextMeasurer
	// Interactive embeds the hover script and the tooltip element on the document.
	Interactive bool
	// Title is the optional document title.
	Title string
}

func (c *SurfaceConfig) defaults() error {
	if c.Measurer == nil {
		c.Measurer = fontmetrics.NewBasicMeasurer()
	}

	return nil
}

type elementKind int

const (
	kindPath elementKind = iota
	kindCircle
	kindRect
	kindLine
	kindText
)

type element struct {
	id    surface.ID
	kind  elementKind
	geom  [4]float64
	path  surface.PathData
	text  string
	font  surface.Font
	attrs surface.Attrs
}

// Surface is an in-memory SVG surface, it's written as an SVG document with WriteTo.
type Surface struct {
	cfg      SurfaceConfig
	width    float64
	height   float64
	elements []*element
	nextID   surface.ID
}

// NewSurface returns a new SVG surface.
func NewSurface(cfg SurfaceConfig) (*Surface, error) {
	err := cfg.defaults()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Surface{cfg: cfg}, nil
}

var _ surface.Surface = &Surface{}

func (s *Surface) Size(width, height float64) {
	s.width = width
	s.height = height
}

func (s *Surface) Clear() {
	s.elements = nil
}

func (s *Surface) MeasureText(text string, font surface.Font) (width, height float64) {
	return s.cfg.Measurer.MeasureText(text, font)
}

func (s *Surface) Path(d surface.PathData, attrs surface.Attrs) surface.ID {
	return s.add(&element{kind: kindPath, path: slices.Clone(d), attrs: attrs})
}

func (s *Surface) Circle(cx, cy, r float64, attrs surface.Attrs) surface.ID {
	return s.add(&element{kind: kindCircle, geom: [4]float64{cx, cy, r}, attrs: attrs})
}

func (s *Surface) Rect(x, y, width, height float64, attrs surface.Attrs) surface.ID {
	return s.add(&element{kind: kindRect, geom: [4]float64{x, y, width, height}, attrs: attrs})
}

func (s *Surface) Line(x1, y1, x2, y2 float64, attrs surface.Attrs) surface.ID {
	return s.add(&element{kind: kindLine, geom: [4]float64{x1, y1, x2, y2}, attrs: attrs})
}

func (s *Surface) Text(x, y float64, text string, font surface.Font, attrs surface.Attrs) surface.ID {
	return s.add(&element{kind: kindText, geom: [4]float64{x, y}, text: text, font: font, attrs: attrs})
}

func (s *Surface) add(e *element) surface.ID {
	s.nextID++
	e.id = s.nextID

	// Own a copy, callers reuse their attribute maps.
	attrs := make(surface.Attrs, len(e.attrs))
	for k, v := range e.attrs {
		attrs[k] = v
	}
	e.attrs = attrs

	s.elements = append(s.elements, e)
	return e.id
}

// SetAttr sets an attribute of an element, the radius of circles (`r`) updates its geometry.
func (s *Surface) SetAttr(id surface.ID, key, value string) {
	i := s.index(id)
	if i < 0 {
		return
	}

	e := s.elements[i]
	if e.kind == kindCircle && key == "r" {
		if r, err := strconv.ParseFloat(value, 64); err == nil {
			e.geom[2] = r
		}
		return
	}
	e.attrs[key] = value
}

// Attr returns an attribute of a drawn element.
func (s *Surface) Attr(id surface.ID, key string) (string, bool) {
	i := s.index(id)
	if i < 0 {
		return "", false
	}

	e := s.elements[i]
	if e.kind == kindCircle && key == "r" {
		return strconv.FormatFloat(e.geom[2], 'f', -1, 64), true
	}
	v, ok := e.attrs[key]
	return v, ok
}

func (s *Surface) InsertAfter(id, ref surface.ID) {
	if id == ref {
		return
	}
	e, ok := s.remove(id)
	if !ok {
		return
	}

	i := s.index(ref)
	if i < 0 {
		s.elements = append(s.elements, e)
		return
	}
	s.elements = slices.Insert(s.elements, i+1, e)
}

func (s *Surface) ToFront(id surface.ID) {
	if e, ok := s.remove(id); ok {
		s.elements = append(s.elements, e)
	}
}

func (s *Surface) ToBack(id surface.ID) {
	if e, ok := s.remove(id); ok {
		s.elements = slices.Insert(s.elements, 0, e)
	}
}

func (s *Surface) index(id surface.ID) int {
	return slices.IndexFunc(s.elements, func(e *element) bool { return e.id == id })
}

func (s *Surface) remove(id surface.ID) (*element, bool) {
	i := s.index(id)
	if i < 0 {
		return nil, false
	}
	e := s.elements[i]
	s.elements = slices.Delete(s.elements, i, i+1)
	return e, true
}

// Order returns the element IDs in stacking order, bottom first.
func (s *Surface) Order() []surface.ID {
	ids := make([]surface.ID, 0, len(s.elements))
	for _, e := range s.elements {
		ids = append(ids, e.id)
	}
	return ids
}

// WriteTo writes the SVG document.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, fmt.Errorf("missing writer: %w", commonerrors.ErrBackendUnavailable)
	}

	cw := &countWriter{w: w}
	canvas := svgo.New(cw)
	canvas.Start(surface.Round(s.width), surface.Round(s.height))
	if s.cfg.Title != "" {
		canvas.Title(s.cfg.Title)
	}

	for _, e := range s.elements {
		attrs := attrList(e.attrs)
		switch e.kind {
		case kindPath:
			canvas.Path(e.path.String(), attrs...)
		case kindCircle:
			canvas.Circle(surface.Round(e.geom[0]), surface.Round(e.geom[1]), surface.Round(e.geom[2]), attrs...)
		case kindRect:
			canvas.Rect(surface.Round(e.geom[0]), surface.Round(e.geom[1]), surface.Round(e.geom[2]), surface.Round(e.geom[3]), attrs...)
		case kindLine:
			canvas.Line(surface.Round(e.geom[0]), surface.Round(e.geom[1]), surface.Round(e.geom[2]), surface.Round(e.geom[3]), attrs...)
		case kindText:
			canvas.Text(surface.Round(e.geom[0]), surface.Round(e.geom[1]), e.text, append(fontAttrs(e.font), attrs...)...)
		}
	}

	if s.cfg.Interactive {
		writeInteraction(canvas)
	}

	canvas.End()

	return cw.n, cw.err
}

func fontAttrs(f surface.Font) []string {
	attrs := []string{}
	if f.Size > 0 {
		attrs = append(attrs, attr("font-size", strconv.FormatFloat(f.Size, 'f', -1, 64)+"px"))
	}
	if f.Family != "" {
		attrs = append(attrs, attr("font-family", f.Family))
	}
	if f.Weight != "" {
		attrs = append(attrs, attr("font-weight", f.Weight))
	}
	return attrs
}

// attrList returns the attributes in svgo `key="value"` form sorted by key, so the output is stable.
func attrList(attrs surface.Attrs) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	l := make([]string, 0, len(keys))
	for _, k := range keys {
		l = append(l, attr(k, attrs[k]))
	}
	return l
}

// attr escapes v as an attribute value, new lines are kept as character references
// because XML parsers normalize raw new lines in attributes to spaces.
func attr(k, v string) string {
	v = strings.ReplaceAll(html.EscapeString(v), "\n", "&#10;")
	return fmt.Sprintf(`%s="%s"`, k, v)
}

type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
