package color

import (
	"maps"
	"slices"

	"github.com/matzehuels/plotstyles/pkg/errors"
)

// DefaultPalette is the palette used when none is configured.
const DefaultPalette = "muted"

// Palette maps colour names to colour values.
type Palette map[string]Color

// Get returns the colour registered under name.
func (p Palette) Get(name string) (Color, error) {
	c, ok := p[name]
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidColor, "palette has no colour %q", name)
	}
	return c, nil
}

// Resolve returns the palette colour for s, or s itself when the palette has
// no such entry (hex strings and colour names pass through).
func (p Palette) Resolve(s string) Color {
	if c, ok := p[s]; ok {
		return c
	}
	return Color(s)
}

// Names returns the colour names in sorted order.
func (p Palette) Names() []string {
	return slices.Sorted(maps.Keys(p))
}

// Clone returns an independent copy of p.
func (p Palette) Clone() Palette {
	return maps.Clone(p)
}

var palettes = map[string]Palette{
	"muted": {
		"red":        "#C02717",
		"orange":     "#F78017",
		"yellow":     "#F0D730",
		"lightgreen": "#AAB71B",
		"green":      "#478010",
		"darkgreen":  "#007030",
		"cyan":       "#40A787",
		"lightblue":  "#3C8CCC",
		"blue":       "#2060A7",
		"purple":     "#53379B",
		"magenta":    "#873770",
		"pink":       "#D03050",
		"white":      "#FFFFFF",
		"gray":       "#A7A7A7",
		"black":      "#000000",
	},
	"vivid": {
		"red":        "#D71000",
		"orange":     "#FF9000",
		"yellow":     "#FFF700",
		"lightgreen": "#B0FF00",
		"green":      "#30D700",
		"darkgreen":  "#208A00",
		"cyan":       "#00F0B4",
		"lightblue":  "#00B0FF",
		"blue":       "#0020BF",
		"purple":     "#B000FF",
		"magenta":    "#F000B0",
		"pink":       "#FF70B0",
		"white":      "#FFFFFF",
		"gray":       "#A0A0A0",
		"black":      "#000000",
	},
	"plain": {
		"red":        "#D62728",
		"orange":     "#FF7F0E",
		"yellow":     "#BCBD22",
		"lightgreen": "#98DF8A",
		"green":      "#2CA02C",
		"darkgreen":  "#1B6E1B",
		"cyan":       "#17BECF",
		"lightblue":  "#AEC7E8",
		"blue":       "#1F77B4",
		"purple":     "#9467BD",
		"magenta":    "#E377C2",
		"pink":       "#F7B6D2",
		"white":      "#FFFFFF",
		"gray":       "#7F7F7F",
		"black":      "#000000",
	},
}

// Lookup returns a copy of the built-in palette called name.
func Lookup(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownPalette, "unknown palette %q (available: %v)", name, PaletteNames())
	}
	return p.Clone(), nil
}

// PaletteNames returns the names of the built-in palettes in sorted order.
func PaletteNames() []string {
	return slices.Sorted(maps.Keys(palettes))
}
