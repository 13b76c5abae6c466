package chart

import (
	"fmt"
	"math"
	"slices"

	"github.com/slok/delorean/internal/surface"
)

const (
	tooltipFontSize   = 11
	tooltipLineHeight = 1.2
	tooltipPaddingX   = 6
	tooltipPaddingY   = 4
	// tooltipOffset is the distance from the pointer to the tooltip.
	tooltipOffset = 10
)

// Tooltip is the box shown next to the pointer while hovering a slot.
type Tooltip struct {
	Slot   int
	X      float64
	Y      float64
	Width  float64
	Height float64
	Lines  []string
}

// Interaction is the hover state of a rendered chart: hovering a slot enlarges its point
// markers and, with tooltips enabled, shows the slot values next to the pointer.
type Interaction struct {
	surface surface.Surface
	scene   *Scene
	// markers are the point marker IDs by slot.
	markers [][]surface.ID
	active  int
	tooltip *Tooltip
}

func newInteraction(s surface.Surface, scene *Scene, markers [][]surface.ID) *Interaction {
	return &Interaction{
		surface: s,
		scene:   scene,
		markers: markers,
		active:  -1,
	}
}

// Enter marks slot as hovered, any other hovered slot is left first.
func (i *Interaction) Enter(slot int) error {
	if err := i.checkSlot(slot); err != nil {
		return err
	}
	if i.active == slot {
		return nil
	}
	if i.active >= 0 {
		_ = i.Leave(i.active)
	}

	i.resize(slot, i.scene.Tier.PointSizeHover)
	i.active = slot
	return nil
}

// Leave reverts the slot markers to their regular size and hides the tooltip.
func (i *Interaction) Leave(slot int) error {
	if err := i.checkSlot(slot); err != nil {
		return err
	}

	i.resize(slot, i.scene.Tier.PointSize)
	if i.active == slot {
		i.active = -1
		i.tooltip = nil
	}
	return nil
}

// Move places the slot tooltip next to the pointer at (px, py), entering the slot if it
// was not hovered. Without tooltips it returns nil.
func (i *Interaction) Move(slot int, px, py float64) (*Tooltip, error) {
	if err := i.Enter(slot); err != nil {
		return nil, err
	}
	if !i.scene.Tooltips {
		return nil, nil
	}

	s := i.scene.Slots[slot]
	x, y := placeTooltip(px, py, s.TooltipWidth, s.TooltipHeight, i.scene.Width, i.scene.Height)
	i.tooltip = &Tooltip{
		Slot:   slot,
		X:      x,
		Y:      y,
		Width:  s.TooltipWidth,
		Height: s.TooltipHeight,
		Lines:  slices.Clone(s.TooltipLines),
	}

	return i.tooltip, nil
}

// Tooltip returns the visible tooltip, nil when hidden.
func (i *Interaction) Tooltip() *Tooltip { return i.tooltip }

// Active returns the hovered slot.
func (i *Interaction) Active() (slot int, ok bool) { return i.active, i.active >= 0 }

// MarkerRadius returns the current radius of the marker of series on slot.
func (i *Interaction) MarkerRadius(slot, series int) (float64, error) {
	if err := i.checkSlot(slot); err != nil {
		return 0, err
	}
	if series < 0 || series >= len(i.markers[slot]) {
		return 0, fmt.Errorf("series %d out of range [0, %d)", series, len(i.markers[slot]))
	}

	if i.active == slot {
		return i.scene.Tier.PointSizeHover, nil
	}
	return i.scene.Tier.PointSize, nil
}

func (i *Interaction) resize(slot int, r float64) {
	for _, id := range i.markers[slot] {
		i.surface.SetAttr(id, "r", formatFloat(r))
	}
}

func (i *Interaction) checkSlot(slot int) error {
	if slot < 0 || slot >= len(i.markers) {
		return fmt.Errorf("slot %d out of range [0, %d)", slot, len(i.markers))
	}
	return nil
}

// placeTooltip puts the tooltip up and right of the pointer, flipping it to the left or
// below when it overflows, and finally clamps it inside the chart.
func placeTooltip(px, py, w, h, width, height float64) (x, y float64) {
	x = px + tooltipOffset
	y = py - tooltipOffset - h
	if x+w > width {
		x = px - tooltipOffset - w
	}
	if y < 0 {
		y = py + tooltipOffset
	}

	x = math.Max(0, math.Min(x, width-w))
	y = math.Max(0, math.Min(y, height-h))
	return x, y
}
