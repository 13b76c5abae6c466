package surface

// ID identifies an element drawn on a surface.
type ID int

// Attrs are the presentation attributes of an element (SVG attribute names).
type Attrs map[string]string

// Font describes how a text is drawn and measured.
type Font struct {
	Size   float64
	Family string
	Weight string
}

// TextMeasurer knows the pixel size a text will take once drawn.
type TextMeasurer interface {
	MeasureText(text string, font Font) (width, height float64)
}

//go:generate mockery --case underscore --output surfacemock --outpkg surfacemock --name Surface

// Surface is a fixed size vector drawing context. Elements are stacked in creation order
// unless they are moved with the z-order methods.
type Surface interface {
	TextMeasurer

	// Size sets the surface dimensions in pixels.
	Size(width, height float64)
	// Clear removes all the drawn elements.
	Clear()

	Path(d PathData, attrs Attrs) ID
	Circle(cx, cy, r float64, attrs Attrs) ID
	Rect(x, y, width, height float64, attrs Attrs) ID
	Line(x1, y1, x2, y2 float64, attrs Attrs) ID
	Text(x, y float64, text string, font Font, attrs Attrs) ID

	// SetAttr sets an attribute of an already drawn element.
	SetAttr(id ID, key, value string)

	// InsertAfter moves id so it's stacked right above ref.
	InsertAfter(id, ref ID)
	// ToFront moves id on top of every other element.
	ToFront(id ID)
	// ToBack moves id below every other element.
	ToBack(id ID)
}

// Hover interaction conventions shared by the drawing code and the backends that
// implement interactivity.
const (
	// ClassPoint marks point markers.
	ClassPoint = "delorean-point"
	// ClassSlot marks the invisible hit region of a slot.
	ClassSlot = "delorean-slot"
	// AttrSlot is the slot index of a point marker or a hit region.
	AttrSlot = "data-slot"
	// AttrRadius is the regular radius of a point marker.
	AttrRadius = "data-r"
	// AttrRadiusHover is the radius of a point marker while its slot is hovered.
	AttrRadiusHover = "data-r-hover"
	// AttrTooltip holds the new line separated tooltip lines of a slot.
	AttrTooltip = "data-tooltip"
)
