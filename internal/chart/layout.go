package chart

import (
	"fmt"
	"math"
	"time"

	"github.com/slok/delorean/internal/dataset"
	"github.com/slok/delorean/internal/surface"
	commonerrors "github.com/slok/delorean/pkg/common/errors"
)

const (
	// yHeadroom is how much the Y axis labels range goes above the observed maximum.
	yHeadroom = 1.33
	// xLabelBottomOffset is the distance of the X axis labels to the bottom edge.
	xLabelBottomOffset = 8
	// yLabelGap is the gap between the Y axis labels and the plot.
	yLabelGap = 4
)

// Scene is the laid out chart, ready to be drawn. It's rebuilt in full on every render.
type Scene struct {
	Width      float64
	Height     float64
	PlotLeft   float64
	PlotWidth  float64
	PlotHeight float64
	Baseline   float64
	// XScale is the slot width.
	XScale float64
	// YScale is the pixels per value unit.
	YScale float64
	Max    float64
	Tier   DensityTier

	Series    []SeriesLayout
	Slots     []Slot
	XLabels   []Label
	YLabels   []Label
	Gridlines []Gridline

	Tooltips bool
}

// SeriesLayout is a laid out series.
type SeriesLayout struct {
	Index  int
	Label  string
	Color  string
	Path   surface.PathData
	Points []surface.Point
}

// Slot is the horizontal segment of the plot of a time point.
type Slot struct {
	Index     int
	Date      time.Time
	DateLabel string
	// X and Width are the slot horizontal span, the hit region goes from 0 to the baseline.
	X      float64
	Width  float64
	Values []float64

	TooltipLines  []string
	TooltipWidth  float64
	TooltipHeight float64
}

// Label is an axis label.
type Label struct {
	// Index is the slot index for X labels and the band number for Y labels.
	Index int
	X     float64
	Y     float64
	Text  string
	Value float64
}

// GridlineKind is the orientation of a gridline.
type GridlineKind int

const (
	GridlineVertical GridlineKind = iota
	GridlineHorizontal
	// GridlineTop is the horizontal line of the observed maximum at the top of the plot.
	GridlineTop
)

// Gridline is a background guide line.
type Gridline struct {
	Kind GridlineKind
	From surface.Point
	To   surface.Point
}

// Layout computes the chart scene of ds. It doesn't draw anything, measurer is only used
// to size the labels and the tooltips.
func Layout(ds *dataset.Dataset, cfg Config, measurer surface.TextMeasurer) (*Scene, error) {
	if measurer == nil {
		return nil, fmt.Errorf("text measurer is required: %w", commonerrors.ErrBackendUnavailable)
	}
	if ds == nil || ds.Len() == 0 {
		return nil, fmt.Errorf("nothing to lay out: %w", commonerrors.ErrEmptyDataset)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := ds.Len()
	s := &Scene{
		Width:      cfg.Width,
		Height:     cfg.Height,
		PlotLeft:   cfg.PlotLeft(),
		PlotWidth:  cfg.PlotWidth(),
		PlotHeight: cfg.PlotHeight(),
		Baseline:   cfg.Baseline(),
		Max:        ds.Max(),
		Tier:       DensityTierFor(n, cfg),
		Tooltips:   cfg.EnableTooltips,
	}
	s.XScale = s.PlotWidth / float64(n)
	// Without positive values everything sits on the baseline.
	if s.Max > 0 {
		s.YScale = s.PlotHeight / s.Max
	}

	err := s.layoutSlots(ds, cfg, measurer)
	if err != nil {
		return nil, err
	}
	s.layoutSeries(ds, cfg)
	s.layoutXLabels(cfg, measurer)
	s.layoutYLabels(cfg)
	s.layoutGridlines(cfg)

	return s, nil
}

// ValueY returns the Y of a value, negative values are clamped to the baseline.
func (s *Scene) ValueY(v float64) float64 {
	if v < 0 {
		v = 0
	}
	return s.Baseline - s.YScale*v
}

// SlotCenter returns the X of the points of slot i.
func (s *Scene) SlotCenter(i int) float64 {
	return s.PlotLeft + s.XScale*float64(i) + s.XScale/2
}

func (s *Scene) layoutSlots(ds *dataset.Dataset, cfg Config, measurer surface.TextMeasurer) error {
	s.Slots = make([]Slot, 0, ds.Len())
	tooltipFont := surface.Font{Size: tooltipFontSize}
	for i := 0; i < ds.Len(); i++ {
		e := ds.Entry(i)
		dateLabel, err := FormatDate(e.Date, cfg.DateFormat)
		if err != nil {
			return fmt.Errorf("%w: %s", commonerrors.ErrInvalidConfig, err)
		}

		slot := Slot{
			Index:     i,
			Date:      e.Date,
			DateLabel: dateLabel,
			X:         s.PlotLeft + s.XScale*float64(i),
			Width:     s.XScale,
			Values:    e.Values,
		}

		if s.Tooltips {
			slot.TooltipLines = append(slot.TooltipLines, dateLabel)
			for j, v := range e.Values {
				slot.TooltipLines = append(slot.TooltipLines, fmt.Sprintf("%s: %s", cfg.LineLabel(j), DisplayValue(v, 2)))
			}
			for _, l := range slot.TooltipLines {
				w, h := measurer.MeasureText(l, tooltipFont)
				slot.TooltipWidth = math.Max(slot.TooltipWidth, w)
				slot.TooltipHeight += h * tooltipLineHeight
			}
			slot.TooltipWidth += 2 * tooltipPaddingX
			slot.TooltipHeight += 2 * tooltipPaddingY
		}

		s.Slots = append(s.Slots, slot)
	}

	return nil
}

func (s *Scene) layoutSeries(ds *dataset.Dataset, cfg Config) {
	s.Series = make([]SeriesLayout, 0, ds.Arity())
	for j := 0; j < ds.Arity(); j++ {
		values := ds.Series(j)
		points := make([]surface.Point, 0, len(values))
		for i, v := range values {
			points = append(points, surface.Point{X: s.SlotCenter(i), Y: s.ValueY(v)})
		}

		s.Series = append(s.Series, SeriesLayout{
			Index:  j,
			Label:  cfg.LineLabel(j),
			Color:  cfg.LineColor(j),
			Path:   s.Tier.joinPoints(points, s.XScale),
			Points: points,
		})
	}
}

// layoutXLabels samples the dates so the labels don't collide: it measures the widest
// label, gets how many of them fit in the plot and labels every Nth point.
func (s *Scene) layoutXLabels(cfg Config, measurer surface.TextMeasurer) {
	font := textStyleFont(cfg.TextDate)
	var labelWidth float64
	for _, slot := range s.Slots {
		w, _ := measurer.MeasureText(slot.DateLabel, font)
		labelWidth = math.Max(labelWidth, w)
	}

	stride := xLabelStride(len(s.Slots), s.PlotWidth, labelWidth+cfg.LabelSpacing)

	s.XLabels = nil
	y := s.Height - xLabelBottomOffset
	for i, slot := range s.Slots {
		if i%stride != 0 {
			continue
		}
		s.XLabels = append(s.XLabels, Label{
			Index: i,
			X:     s.SlotCenter(i),
			Y:     y,
			Text:  slot.DateLabel,
		})
	}
}

// xLabelStride returns every how many points a label is drawn.
func xLabelStride(points int, plotWidth, labelWidth float64) int {
	if labelWidth <= 0 {
		return 1
	}

	fitting := math.Floor(plotWidth / labelWidth)
	if fitting < 1 {
		fitting = 1
	}

	stride := int(math.Round(float64(points) / fitting))
	if stride < 1 {
		return 1
	}
	return stride
}

// layoutYLabels labels label_display_count values from the bottom up. The step splits the
// maximum with headroom in label_display_count+1 bands, capped so the top label never goes
// over the maximum and every label fits in the plot.
func (s *Scene) layoutYLabels(cfg Config) {
	s.YLabels = nil
	if s.Max <= 0 || cfg.LabelDisplayCount <= 0 {
		return
	}

	step := math.Min(
		s.Max*yHeadroom/float64(cfg.LabelDisplayCount+1),
		s.Max/float64(cfg.LabelDisplayCount),
	)
	x := s.PlotLeft - yLabelGap
	for k := 1; k <= cfg.LabelDisplayCount; k++ {
		v := step * float64(k)
		s.YLabels = append(s.YLabels, Label{
			Index: k,
			X:     x,
			Y:     s.ValueY(v),
			Text:  DisplayValue(math.Round(v), 0),
			Value: v,
		})
	}
}

func (s *Scene) layoutGridlines(cfg Config) {
	s.Gridlines = nil
	right := s.PlotLeft + s.PlotWidth

	if cfg.GridX {
		for _, l := range s.XLabels {
			s.Gridlines = append(s.Gridlines, Gridline{
				Kind: GridlineVertical,
				From: surface.Point{X: l.X, Y: cfg.MarginTop},
				To:   surface.Point{X: l.X, Y: s.Baseline},
			})
		}
	}

	if cfg.GridY {
		for _, l := range s.YLabels {
			s.Gridlines = append(s.Gridlines, Gridline{
				Kind: GridlineHorizontal,
				From: surface.Point{X: s.PlotLeft, Y: l.Y},
				To:   surface.Point{X: right, Y: l.Y},
			})
		}

		// The maximum always lands on the top of the plot, give it its own line unless a
		// band label is already there.
		top := s.ValueY(s.Max)
		if s.Max > 0 && !s.hasHorizontalGridlineAt(top) {
			s.Gridlines = append(s.Gridlines, Gridline{
				Kind: GridlineTop,
				From: surface.Point{X: s.PlotLeft, Y: top},
				To:   surface.Point{X: right, Y: top},
			})
		}
	}
}

func (s *Scene) hasHorizontalGridlineAt(y float64) bool {
	for _, g := range s.Gridlines {
		if g.Kind == GridlineHorizontal && math.Abs(g.From.Y-y) < 0.5 {
			return true
		}
	}
	return false
}

func textStyleFont(t TextStyle) surface.Font {
	return surface.Font{Size: t.FontSize, Family: t.FontFamily, Weight: t.FontWeight}
}
