package chart

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/slok/delorean/internal/dataset"
	"github.com/slok/delorean/internal/log"
	"github.com/slok/delorean/internal/surface"
	commonerrors "github.com/slok/delorean/pkg/common/errors"
)

// ChartConfig is the chart configuration.
type ChartConfig struct {
	// Surface is where the chart is drawn.
	Surface surface.Surface
	Dataset *dataset.Dataset
	// Options are the chart rendering options, they are used as they are, merge any
	// overrides over DefaultConfig before.
	Options Config
	Logger  log.Logger
}

func (c *ChartConfig) defaults() error {
	if c.Surface == nil {
		return fmt.Errorf("surface is required: %w", commonerrors.ErrBackendUnavailable)
	}

	if c.Dataset == nil || c.Dataset.Len() == 0 {
		return fmt.Errorf("dataset is required: %w", commonerrors.ErrEmptyDataset)
	}

	if err := c.Options.Validate(); err != nil {
		return err
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "chart.Chart"})

	return nil
}

// Chart is a time series line chart bound to a drawing surface.
// A Chart is not safe for concurrent use.
type Chart struct {
	surface surface.Surface
	dataset *dataset.Dataset
	cfg     Config
	logger  log.Logger

	interaction *Interaction
}

// New binds a chart to its surface, the surface is cleared and sized to the chart dimensions.
func New(config ChartConfig) (*Chart, error) {
	err := config.defaults()
	if err != nil {
		return nil, fmt.Errorf("invalid chart configuration: %w", err)
	}

	config.Surface.Clear()
	config.Surface.Size(config.Options.Width, config.Options.Height)

	return &Chart{
		surface: config.Surface,
		dataset: config.Dataset,
		cfg:     config.Options,
		logger:  config.Logger,
	}, nil
}

// Render lays out and draws the chart. The surface is not cleared, rendering twice draws
// the chart twice.
func (c *Chart) Render(ctx context.Context) (*Scene, error) {
	scene, err := Layout(c.dataset, c.cfg, c.surface)
	if err != nil {
		return nil, fmt.Errorf("could not lay out chart: %w", err)
	}

	logger := c.logger.WithCtxValues(ctx).WithValues(log.Kv{
		"points": len(scene.Slots),
		"series": len(scene.Series),
		"tier":   scene.Tier.Name,
	})

	steps := []struct {
		name string
		draw func(*Scene)
	}{
		{name: "x-axis", draw: c.drawXAxis},
		{name: "chart", draw: c.drawChart},
		{name: "y-axis", draw: c.drawYAxis},
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("render interrupted before %s: %w", step.name, err)
		}
		step.draw(scene)
	}

	logger.Debugf("Chart rendered")

	return scene, nil
}

// Interaction returns the hover interaction of the last render, nil if the chart has not
// been rendered yet.
func (c *Chart) Interaction() *Interaction {
	return c.interaction
}

func (c *Chart) drawXAxis(s *Scene) {
	font := textStyleFont(c.cfg.TextDate)
	attrs := surface.Attrs{"text-anchor": "middle"}
	if c.cfg.TextDate.Fill != "" {
		attrs["fill"] = c.cfg.TextDate.Fill
	}

	for _, l := range s.XLabels {
		id := c.surface.Text(l.X, l.Y, l.Text, font, attrs)
		c.surface.ToBack(id)
	}

	c.drawGridlines(s, GridlineVertical)
}

func (c *Chart) drawChart(s *Scene) {
	markers := make([][]surface.ID, len(s.Slots))

	for _, series := range s.Series {
		pathID := c.surface.Path(series.Path, surface.Attrs{
			"fill":            "none",
			"stroke":          series.Color,
			"stroke-width":    formatFloat(s.Tier.StrokeWidth),
			"stroke-linejoin": "round",
		})

		// Markers stay right above their line so later lines cover them.
		ref := pathID
		for i, p := range series.Points {
			id := c.surface.Circle(p.X, p.Y, s.Tier.PointSize, surface.Attrs{
				"class":                 surface.ClassPoint,
				"fill":                  series.Color,
				"stroke":                "#FFFFFF",
				surface.AttrSlot:        strconv.Itoa(i),
				surface.AttrRadius:      formatFloat(s.Tier.PointSize),
				surface.AttrRadiusHover: formatFloat(s.Tier.PointSizeHover),
			})
			c.surface.InsertAfter(id, ref)
			ref = id
			markers[i] = append(markers[i], id)
		}
	}

	for _, slot := range s.Slots {
		attrs := surface.Attrs{
			"class":          surface.ClassSlot,
			"fill":           "#FFFFFF",
			"opacity":        "0",
			"stroke":         "none",
			surface.AttrSlot: strconv.Itoa(slot.Index),
		}
		if s.Tooltips {
			attrs[surface.AttrTooltip] = strings.Join(slot.TooltipLines, "\n")
		}
		c.surface.Rect(slot.X, 0, slot.Width, s.Baseline, attrs)
	}

	c.interaction = newInteraction(c.surface, s, markers)
}

func (c *Chart) drawYAxis(s *Scene) {
	font := textStyleFont(c.cfg.TextMetric)
	font.Weight = "bold"
	attrs := surface.Attrs{
		"fill":        c.cfg.AxisColor,
		"text-anchor": "end",
	}

	for _, l := range s.YLabels {
		id := c.surface.Text(l.X, l.Y, l.Text, font, attrs)
		c.surface.ToFront(id)
	}

	c.drawGridlines(s, GridlineHorizontal, GridlineTop)
}

// drawGridlines draws the gridlines of the kinds below everything else.
func (c *Chart) drawGridlines(s *Scene, kinds ...GridlineKind) {
	attrs := surface.Attrs{
		"stroke":       c.cfg.GridColor,
		"stroke-width": "1",
	}

	for _, g := range s.Gridlines {
		if !slices.Contains(kinds, g.Kind) {
			continue
		}
		id := c.surface.Line(g.From.X, g.From.Y, g.To.X, g.To.Y, attrs)
		c.surface.ToBack(id)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
