package styles

import (
	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/param"
)

// GenericGroup is one entry of the generic style catalog.
type GenericGroup struct {
	Name   string // style name, e.g. "A1"
	Color  string // palette colour name
	Marker Marker // marker of the major tier
}

// GenericGroups is the catalog generated by [Generator.GenericStyles]:
// warm colours A1-A3, blues and purples B1-B5, greens and cyan C1-C4.
var GenericGroups = []GenericGroup{
	{"A1", "red", NewMarker("o", 1.0)},
	{"A2", "orange", NewMarker("p", 1.1)},
	{"A3", "yellow", NewMarker("h", 1.1)},
	{"B1", "blue", Marker{Polygon(3, PolygonStar, 60), 1.25}},
	{"B2", "purple", Marker{Polygon(3, PolygonStar, 0), 1.25}},
	{"B3", "magenta", Marker{Polygon(3, PolygonStar, 90), 1.25}},
	{"B4", "lightblue", Marker{Polygon(3, PolygonStar, 30), 1.25}},
	{"B5", "pink", Marker{Polygon(3, PolygonStar, 0), 1.25}},
	{"C1", "lightgreen", NewMarker("s", 0.9)},
	{"C2", "green", NewMarker("D", 0.85)},
	{"C3", "darkgreen", NewMarker("*", 1.6)},
	{"C4", "cyan", Marker{Polygon(4, PolygonStar, 45), 1.4}},
}

// GenericSpec configures [Generator.GenericStyles].
type GenericSpec struct {
	Palette string // built-in palette name; default color.DefaultPalette
	Tiers   Tiers  // zero value means the tiers of DefaultGenericSpec
}

// DefaultGenericSpec returns the defaults of the generic styles.
func DefaultGenericSpec() GenericSpec {
	return GenericSpec{
		Palette: color.DefaultPalette,
		Tiers: Tiers{
			LWThick:     1.7,
			LWThin:      0.8,
			MarkerLarge: 6.5,
			MarkerSmall: 4.0,
			MEC:         0.0,
			MEW:         0.8,
			FillAlpha:   0.4,
		},
	}
}

// GenericStyles generates the full family of line, point, linepoint and fill
// styles for every entry of [GenericGroups] using colours of spec.Palette,
// and records the palette in reg. Usage afterwards:
//
//	reg.Style("lsA1")   // major line only
//	reg.Style("lsB2m")  // minor line only
//	reg.Style("psA2")   // markers only
//	reg.Style("lpsC3")  // markers with connecting lines
//	reg.Style("fsA3a")  // transparent fill
func (g *Generator) GenericStyles(reg *Registry, spec GenericSpec) error {
	if err := requireRegistry(reg); err != nil {
		return err
	}
	name := spec.Palette
	if name == "" {
		name = color.DefaultPalette
	}
	palette, err := color.Lookup(name)
	if err != nil {
		return err
	}

	names := make([]string, len(GenericGroups))
	colors := make([]color.Color, len(GenericGroups))
	markers := make([]Marker, len(GenericGroups))
	for i, gg := range GenericGroups {
		c, err := palette.Get(gg.Color)
		if err != nil {
			return err
		}
		names[i], colors[i], markers[i] = gg.Name, c, gg.Marker
	}

	if err := g.LinePointFillStyles(reg, LinePointFillSpec{
		Names:   param.Seq(names...),
		Colors:  param.Seq(colors...),
		Dashes:  param.Scalar(DashSolid),
		Markers: param.Seq(markers...),
		Tiers:   spec.Tiers.or(DefaultGenericSpec().Tiers),
	}); err != nil {
		return err
	}
	reg.SetPalette(name, palette)
	g.logger.Debug("generated generic styles", "palette", name, "groups", len(names), "styles", reg.Len())
	return nil
}
