package styles

import (
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/plotstyles/pkg/color"
)

// Well-known descriptor keys.
const (
	KeyColor           = "color"
	KeyLineStyle       = "linestyle"
	KeyLineWidth       = "linewidth"
	KeyMarker          = "marker"
	KeyMarkerSize      = "markersize"
	KeyMarkerEdgeColor = "markeredgecolor"
	KeyMarkerEdgeWidth = "markeredgewidth"
	KeyFaceColor       = "facecolor"
	KeyEdgeColor       = "edgecolor"
	KeyAlpha           = "alpha"
	KeyClipOn          = "clip_on"
)

// Dash patterns understood by most drawing backends.
const (
	DashSolid   = "-"
	DashDashed  = "--"
	DashDotted  = ":"
	DashDashDot = "-."
	DashNone    = "none"
)

// Descriptor maps attribute names to values. Validity of keys and values is
// up to the drawing code; the generators only fill in the well-known keys.
type Descriptor map[string]any

// Clone returns a shallow copy of d.
func (d Descriptor) Clone() Descriptor {
	if d == nil {
		return Descriptor{}
	}
	return maps.Clone(d)
}

// With returns a copy of d with the keys of overrides replaced.
func (d Descriptor) With(overrides Descriptor) Descriptor {
	c := d.Clone()
	maps.Copy(c, overrides)
	return c
}

// Keys returns the attribute names in sorted order.
func (d Descriptor) Keys() []string {
	return slices.Sorted(maps.Keys(d))
}

// Color returns the colour stored under key, accepting color.Color and string values.
func (d Descriptor) Color(key string) (color.Color, bool) {
	switch v := d[key].(type) {
	case color.Color:
		return v, true
	case string:
		return color.Color(v), true
	}
	return "", false
}

// Float returns the number stored under key.
func (d Descriptor) Float(key string) (float64, bool) {
	switch v := d[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Polygon styles for [Polygon] shapes.
const (
	PolygonRegular  = 0
	PolygonStar     = 1
	PolygonAsterisk = 2
)

// Shape is a marker symbol: a named glyph such as "o", "s" or "D", or a
// regular polygon given by its number of sides, style and rotation.
type Shape struct {
	Glyph string
	Sides int
	Style int
	Angle float64
}

// Glyph returns the named marker symbol g.
func Glyph(g string) Shape { return Shape{Glyph: g} }

// Polygon returns a regular polygon marker with the given number of sides,
// polygon style and rotation in degrees.
func Polygon(sides, style int, angle float64) Shape {
	return Shape{Sides: sides, Style: style, Angle: angle}
}

// String returns the glyph, or "(sides,style,angle)" for polygons.
func (s Shape) String() string {
	if s.Glyph != "" {
		return s.Glyph
	}
	return fmt.Sprintf("(%d,%d,%g)", s.Sides, s.Style, s.Angle)
}

// MarshalText encodes the shape as its String form.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Marker pairs a shape with a factor that scales the base marker size.
type Marker struct {
	Shape Shape
	Scale float64
}

// Circle is the plain circular marker at unit scale.
var Circle = Marker{Shape: Glyph("o"), Scale: 1}

// NewMarker returns the glyph marker g scaled by scale.
func NewMarker(g string, scale float64) Marker {
	return Marker{Shape: Glyph(g), Scale: scale}
}

// Style returns a copy of base with the keys of overrides replaced.
// The copy is independent of base: editing one never changes the other.
func Style(base Descriptor, overrides Descriptor) Descriptor {
	return base.With(overrides)
}
