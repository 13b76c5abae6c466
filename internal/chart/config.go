package chart

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"

	commonerrors "github.com/slok/delorean/pkg/common/errors"
)

// TextStyle is the style of a group of texts.
type TextStyle struct {
	FontSize   float64 `yaml:"font_size" validate:"gt=0"`
	FontFamily string  `yaml:"font_family"`
	FontWeight string  `yaml:"font_weight"`
	Fill       string  `yaml:"fill" validate:"omitempty,iscolor"`
}

// Config are the chart rendering options. A Config is a value: it's built once per chart
// (DefaultConfig + Merge) and never mutated while rendering.
type Config struct {
	Width        float64 `yaml:"width" validate:"gt=0"`
	Height       float64 `yaml:"height" validate:"gt=0"`
	MarginLeft   float64 `yaml:"margin_left" validate:"gte=0"`
	MarginBottom float64 `yaml:"margin_bottom" validate:"gte=0"`
	MarginTop    float64 `yaml:"margin_top" validate:"gte=0"`

	// LineColors is the palette, one color per series (cycled if there are more series).
	LineColors []string `yaml:"line_colors" validate:"required,dive,iscolor"`
	// LineLabels are the series names shown on the tooltips.
	LineLabels []string `yaml:"line_labels"`

	// DateFormat is the strftime format of the X axis labels.
	DateFormat string `yaml:"date_format" validate:"required"`
	// LabelDisplayCount is the number of Y axis labels.
	LabelDisplayCount int `yaml:"label_display_count" validate:"gte=0"`
	// LabelOffset is the reserved left gutter where the Y axis labels are drawn.
	LabelOffset float64 `yaml:"label_offset" validate:"gte=0"`
	// LabelSpacing is the minimum gap between X axis labels.
	LabelSpacing float64 `yaml:"label_spacing" validate:"gte=0"`

	TextDate   TextStyle `yaml:"text_date"`
	TextMetric TextStyle `yaml:"text_metric"`

	StrokeWidth      float64 `yaml:"stroke_width" validate:"gt=0"`
	StrokeWidthDense float64 `yaml:"stroke_width_dense" validate:"gt=0"`
	PointSize        float64 `yaml:"point_size" validate:"gte=0"`
	PointSizeHover   float64 `yaml:"point_size_hover" validate:"gte=0"`

	GridX     bool   `yaml:"grid_x"`
	GridY     bool   `yaml:"grid_y"`
	GridColor string `yaml:"grid_color" validate:"iscolor"`
	AxisColor string `yaml:"axis_color" validate:"iscolor"`

	EnableTooltips bool `yaml:"enable_tooltips"`
}

// DefaultConfig returns the default chart options.
func DefaultConfig() Config {
	return Config{
		Width:             698,
		Height:            200,
		MarginLeft:        5,
		MarginBottom:      20,
		MarginTop:         5,
		LineColors:        []string{"#4da74d", "#afd8f8", "#edc240", "#cb4b4b", "#9440ed"},
		DateFormat:        "%m/%d",
		LabelDisplayCount: 3,
		LabelOffset:       40,
		LabelSpacing:      8,
		TextDate: TextStyle{
			FontSize: 10,
			Fill:     "#333333",
		},
		TextMetric: TextStyle{
			FontSize:   13,
			FontFamily: "Trebuchet MS, Arial, Helvetica, sans-serif",
			FontWeight: "bold",
		},
		StrokeWidth:      4,
		StrokeWidthDense: 2,
		PointSize:        5,
		PointSizeHover:   7,
		GridColor:        "#e5e5e5",
		AxisColor:        "#AFAFAF",
	}
}

// Merge returns a copy of c with the YAML (or JSON) overrides applied. Nested style groups
// are merged field by field and the line colors index by index, so `line_colors: ["#000"]`
// only replaces the first color.
func (c Config) Merge(overrides []byte) (Config, error) {
	merged := c.clone()
	if len(bytes.TrimSpace(overrides)) == 0 {
		return merged, nil
	}

	err := yaml.UnmarshalStrict(overrides, &merged)
	if err != nil {
		return Config{}, fmt.Errorf("could not load configuration overrides: %w", err)
	}

	if len(merged.LineColors) < len(c.LineColors) {
		merged.LineColors = append(merged.LineColors, c.LineColors[len(merged.LineColors):]...)
	}

	return merged, nil
}

func (c Config) clone() Config {
	c.LineColors = slices.Clone(c.LineColors)
	c.LineLabels = slices.Clone(c.LineLabels)
	return c
}

// Validate validates the configuration.
func (c Config) Validate() error {
	err := configValidate.Struct(c)
	if err != nil {
		return fmt.Errorf("%w: %s", commonerrors.ErrInvalidConfig, err)
	}

	return nil
}

// PlotLeft is the X where the plot starts, after the left margin and the Y labels gutter.
func (c Config) PlotLeft() float64 { return c.MarginLeft + c.LabelOffset }

// PlotWidth is the width available for the slots.
func (c Config) PlotWidth() float64 { return c.Width - c.PlotLeft() }

// Baseline is the Y of the zero value.
func (c Config) Baseline() float64 { return c.Height - c.MarginBottom }

// PlotHeight is the height available for the values.
func (c Config) PlotHeight() float64 { return c.Baseline() - c.MarginTop }

// LineColor returns the color of the series j.
func (c Config) LineColor(j int) string {
	return c.LineColors[j%len(c.LineColors)]
}

// LineLabel returns the name of the series j.
func (c Config) LineLabel(j int) string {
	if j < len(c.LineLabels) && c.LineLabels[j] != "" {
		return c.LineLabels[j]
	}
	return fmt.Sprintf("Series %d", j+1)
}

var configValidate = func() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validatePlotArea, Config{})
	return v
}()

// validatePlotArea checks the margins leave room to plot something.
func validatePlotArea(sl validator.StructLevel) {
	c, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}

	if c.PlotWidth() <= 0 {
		sl.ReportError(c.Width, "Width", "Width", "plot_width", "")
	}
	if c.PlotHeight() <= 0 {
		sl.ReportError(c.Height, "Height", "Height", "plot_height", "")
	}
	if c.PointSizeHover < c.PointSize {
		sl.ReportError(c.PointSizeHover, "PointSizeHover", "PointSizeHover", "gtefield_point_size", "")
	}
}
