// Package color provides the colour values, palettes and colour adjustment
// used by the style generators.
//
// A [Color] is an opaque value handed through to the drawing code. Only the
// [Adjuster] interprets it, and only when a generator or duplicator needs a
// lighter or darker variant.
//
// # Adjustment
//
// [Adjuster.Lighter] and [Adjuster.Darker] take a blend amount where 1 leaves
// the colour unchanged and 0 yields pure white (Lighter) or pure black
// (Darker). Edge factors use the extended range [0, 2]:
//
//	Lighter(c, 0)   // white
//	Lighter(c, 1)   // c
//	Lighter(c, 2)   // black
//
// [Blender] is the default implementation. It parses "#rgb"/"#rrggbb" hex
// strings and SVG colour names and blends in RGB space.
package color

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/plotstyles/pkg/errors"
)

// Color is an opaque colour value: a hex string or a colour name understood
// by the drawing code.
type Color string

// String returns the colour as given.
func (c Color) String() string { return string(c) }

// None is the colour value that disables an edge or face.
const None Color = "none"

// Adjuster produces lighter and darker variants of a colour.
type Adjuster interface {
	// Lighter blends c towards white. amount 1 returns c unchanged, 0 returns
	// white, and amounts above 1 darken (Lighter(c, a) == Darker(c, 2-a)).
	Lighter(c Color, amount float64) (Color, error)
	// Darker blends c towards black. amount 1 returns c unchanged, 0 returns
	// black, and amounts above 1 lighten (Darker(c, a) == Lighter(c, 2-a)).
	Darker(c Color, amount float64) (Color, error)
}

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0, G: 0, B: 0}
)

// Blender is the default [Adjuster]. It blends linearly in RGB space.
type Blender struct{}

// Lighter implements [Adjuster].
func (b Blender) Lighter(c Color, amount float64) (Color, error) {
	if amount == 1 {
		return c, nil
	}
	if amount > 1 {
		return b.Darker(c, 2-amount)
	}
	return blend(c, white, amount)
}

// Darker implements [Adjuster].
func (b Blender) Darker(c Color, amount float64) (Color, error) {
	if amount == 1 {
		return c, nil
	}
	if amount > 1 {
		return b.Lighter(c, 2-amount)
	}
	return blend(c, black, amount)
}

// blend mixes c with target so that amount 1 keeps c and amount 0 yields target.
func blend(c Color, target colorful.Color, amount float64) (Color, error) {
	base, err := Parse(c)
	if err != nil {
		return "", err
	}
	amount = max(0, amount)
	return Color(base.BlendRgb(target, 1-amount).Clamped().Hex()), nil
}

// Parse converts a hex string or SVG colour name into RGB components.
func Parse(c Color) (colorful.Color, error) {
	s := strings.TrimSpace(string(c))
	if strings.HasPrefix(s, "#") {
		col, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid hex colour %q", s)
		}
		return col, nil
	}
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		col, _ := colorful.MakeColor(rgba)
		return col, nil
	}
	return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor, "unknown colour %q", s)
}

// Hex normalises c to "#rrggbb". Colour names are resolved first.
func Hex(c Color) (Color, error) {
	col, err := Parse(c)
	if err != nil {
		return "", err
	}
	return Color(col.Hex()), nil
}

var _ Adjuster = Blender{}
