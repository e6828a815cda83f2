package styles

import (
	"maps"

	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/param"
)

// PointSpec describes a batch of marker styles.
type PointSpec struct {
	Prefix string
	Names  param.Param[string]
	Suffix param.Param[string] // repeats cyclically; default ""
	Colors param.Param[color.Color]
	Dashes param.Param[string]  // connecting line; default "none"
	Widths param.Param[float64] // connecting line width; default 0
	// Markers broadcast over the outer sequence; each Marker is one value.
	Markers param.Param[Marker] // default Circle
	Sizes   param.Param[float64] // base marker size, scaled per marker; default 5
	// EdgeColors is the lightness passed to Adjuster.Lighter together with
	// the face colour: 0 white, 1 same as face, 2 black. Default 0.
	EdgeColors param.Param[float64]
	EdgeWidths param.Param[float64] // default 1
	Extra      Descriptor
}

func (s PointSpec) withDefaults() PointSpec {
	s.Suffix = s.Suffix.Or(param.Scalar(""))
	s.Dashes = s.Dashes.Or(param.Scalar(DashNone))
	s.Widths = s.Widths.Or(param.Scalar(0.0))
	s.Markers = s.Markers.Or(param.Scalar(Circle))
	s.Sizes = s.Sizes.Or(param.Scalar(5.0))
	s.EdgeColors = s.EdgeColors.Or(param.Scalar(0.0))
	s.EdgeWidths = s.EdgeWidths.Or(param.Scalar(1.0))
	return s
}

// PointStyles generates one marker style per index and registers it under
// Prefix+name+suffix and in the (Prefix, suffix) group.
//
//	gen.PointStyles(reg, styles.PointSpec{
//	    Prefix:  "ps",
//	    Names:   param.Scalar("Reds%d"),
//	    Suffix:  param.Scalar("c"),
//	    Colors:  param.Seq[color.Color]("red", "orange", "yellow"),
//	    Sizes:   param.Scalar(8.0),
//	})
//
// registers psReds1c, psReds2c and psReds3c with filled circles and white edges.
func (g *Generator) PointStyles(reg *Registry, spec PointSpec) error {
	if err := requireRegistry(reg); err != nil {
		return err
	}
	entries, err := g.planPoints(spec)
	if err != nil {
		return err
	}
	g.commit(reg, entries)
	return nil
}

func (g *Generator) planPoints(spec PointSpec) ([]entry, error) {
	spec = spec.withDefaults()
	n := param.Count(spec.Names, spec.Suffix, spec.Colors, spec.Dashes, spec.Widths,
		spec.Markers, spec.Sizes, spec.EdgeColors, spec.EdgeWidths)
	if err := checkFields(n,
		field{"names", spec.Names},
		field{"colors", spec.Colors},
		field{"dashes", spec.Dashes},
		field{"widths", spec.Widths},
		field{"markers", spec.Markers},
		field{"sizes", spec.Sizes},
		field{"edge colors", spec.EdgeColors},
		field{"edge widths", spec.EdgeWidths},
	); err != nil {
		return nil, err
	}
	if err := spec.Suffix.CheckCyclic("suffix"); err != nil {
		return nil, err
	}

	entries := make([]entry, 0, n)
	for k := range n {
		name, err := formatName(spec.Names, k, n)
		if err != nil {
			return nil, err
		}
		suffix, _ := spec.Suffix.ResolveCyclic(k)
		c := spec.Colors.MustResolve(k, n)
		edge, err := g.adjuster.Lighter(c, spec.EdgeColors.MustResolve(k, n))
		if err != nil {
			return nil, err
		}
		mk := spec.Markers.MustResolve(k, n)
		d := Descriptor{
			KeyColor:           c,
			KeyLineStyle:       spec.Dashes.MustResolve(k, n),
			KeyLineWidth:       spec.Widths.MustResolve(k, n),
			KeyMarker:          mk.Shape,
			KeyMarkerSize:      mk.Scale * spec.Sizes.MustResolve(k, n),
			KeyMarkerEdgeColor: edge,
			KeyMarkerEdgeWidth: spec.EdgeWidths.MustResolve(k, n),
		}
		maps.Copy(d, spec.Extra)
		entries = append(entries, entry{prefix: spec.Prefix, name: name, suffix: suffix, d: d})
	}
	return entries, nil
}
