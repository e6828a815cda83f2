package styles

import (
	"maps"

	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/param"
)

// LineSpec describes a batch of line styles.
type LineSpec struct {
	Prefix string
	Names  param.Param[string]
	Suffix param.Param[string] // repeats cyclically; default ""
	Colors param.Param[color.Color]
	Dashes param.Param[string]  // default "-"
	Widths param.Param[float64] // default 1
	Extra  Descriptor           // added to every descriptor, overriding computed keys
}

func (s LineSpec) withDefaults() LineSpec {
	s.Suffix = s.Suffix.Or(param.Scalar(""))
	s.Dashes = s.Dashes.Or(param.Scalar(DashSolid))
	s.Widths = s.Widths.Or(param.Scalar(1.0))
	return s
}

// LineStyles generates one line style per index and registers it under
// Prefix+name+suffix and in the (Prefix, suffix) group.
//
//	gen.LineStyles(reg, styles.LineSpec{
//	    Prefix: "ls",
//	    Names:  param.Scalar("Male"),
//	    Colors: param.Scalar[color.Color]("blue"),
//	    Widths: param.Scalar(2.0),
//	})
//
// registers lsMale = {color: blue, linestyle: "-", linewidth: 2}.
func (g *Generator) LineStyles(reg *Registry, spec LineSpec) error {
	if err := requireRegistry(reg); err != nil {
		return err
	}
	entries, err := g.planLines(spec)
	if err != nil {
		return err
	}
	g.commit(reg, entries)
	return nil
}

func (g *Generator) planLines(spec LineSpec) ([]entry, error) {
	spec = spec.withDefaults()
	n := param.Count(spec.Names, spec.Suffix, spec.Colors, spec.Dashes, spec.Widths)
	if err := checkFields(n,
		field{"names", spec.Names},
		field{"colors", spec.Colors},
		field{"dashes", spec.Dashes},
		field{"widths", spec.Widths},
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
		d := Descriptor{
			KeyColor:     spec.Colors.MustResolve(k, n),
			KeyLineStyle: spec.Dashes.MustResolve(k, n),
			KeyLineWidth: spec.Widths.MustResolve(k, n),
		}
		maps.Copy(d, spec.Extra)
		entries = append(entries, entry{prefix: spec.Prefix, name: name, suffix: suffix, d: d})
	}
	return entries, nil
}
