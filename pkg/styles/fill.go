package styles

import (
	"maps"

	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/errors"
	"github.com/matzehuels/plotstyles/pkg/param"
)

// Fill variants, in the order of FillSpec.Suffixes.
const (
	FillEdge  = iota // filled, with edge colour and edge width
	FillSolid        // filled, no edge
	FillAlpha        // filled, no edge, transparent
)

// Suffix returns a pointer to s for use in FillSpec.Suffixes.
func Suffix(s string) *string { return &s }

// FillSpec describes a batch of fill styles.
type FillSpec struct {
	Prefix string
	Names  param.Param[string]
	// Suffixes holds up to three suffixes for the FillEdge, FillSolid and
	// FillAlpha variants of every name; a nil entry skips that variant.
	// With exactly one suffix a single descriptor is generated that carries
	// edge colour, edge width and alpha. Default: one empty suffix.
	Suffixes   []*string
	Colors     param.Param[color.Color]
	EdgeColors param.Param[float64] // lightness for Adjuster.Lighter; default 1
	EdgeWidths param.Param[float64] // default 0
	Alphas     param.Param[float64] // default 1
	Extra      Descriptor           // variant keys take precedence over Extra
}

func (s FillSpec) withDefaults() FillSpec {
	if len(s.Suffixes) == 0 {
		s.Suffixes = []*string{Suffix("")}
	}
	s.EdgeColors = s.EdgeColors.Or(param.Scalar(1.0))
	s.EdgeWidths = s.EdgeWidths.Or(param.Scalar(0.0))
	s.Alphas = s.Alphas.Or(param.Scalar(1.0))
	return s
}

// FillStyles generates fill styles and registers them under
// Prefix+name+suffix and in the (Prefix, suffix) groups.
//
//	gen.FillStyles(reg, styles.FillSpec{
//	    Prefix:     "fs",
//	    Names:      param.Scalar("PSD"),
//	    Suffixes:   []*string{styles.Suffix(""), styles.Suffix("s"), styles.Suffix("a")},
//	    Colors:     param.Scalar[color.Color]("green"),
//	    EdgeColors: param.Scalar(2.0),
//	    EdgeWidths: param.Scalar(0.5),
//	    Alphas:     param.Scalar(0.4),
//	})
//
// registers fsPSD (black edge, width 0.5), fsPSDs (no edge) and fsPSDa
// (no edge, alpha 0.4).
func (g *Generator) FillStyles(reg *Registry, spec FillSpec) error {
	if err := requireRegistry(reg); err != nil {
		return err
	}
	entries, err := g.planFills(spec)
	if err != nil {
		return err
	}
	g.commit(reg, entries)
	return nil
}

func (g *Generator) planFills(spec FillSpec) ([]entry, error) {
	spec = spec.withDefaults()
	if len(spec.Suffixes) > 3 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "at most 3 fill suffixes, got %d", len(spec.Suffixes))
	}
	single := len(spec.Suffixes) == 1
	n := param.Count(spec.Names, spec.Colors, spec.EdgeColors, spec.EdgeWidths, spec.Alphas)
	if err := checkFields(n,
		field{"names", spec.Names},
		field{"colors", spec.Colors},
		field{"edge colors", spec.EdgeColors},
		field{"edge widths", spec.EdgeWidths},
		field{"alphas", spec.Alphas},
	); err != nil {
		return nil, err
	}

	var entries []entry
	for k := range n {
		name, err := formatName(spec.Names, k, n)
		if err != nil {
			return nil, err
		}
		c := spec.Colors.MustResolve(k, n)
		alpha := spec.Alphas.MustResolve(k, n)
		planned := len(entries)
		for variant, suffix := range spec.Suffixes {
			if suffix == nil {
				continue
			}
			d := Descriptor{KeyFaceColor: c}
			maps.Copy(d, spec.Extra)
			switch variant {
			case FillEdge:
				edge, err := g.adjuster.Lighter(c, spec.EdgeColors.MustResolve(k, n))
				if err != nil {
					return nil, err
				}
				d[KeyEdgeColor] = edge
				d[KeyLineWidth] = spec.EdgeWidths.MustResolve(k, n)
				if single {
					d[KeyAlpha] = alpha
				}
			case FillSolid:
				d[KeyEdgeColor] = color.None
			case FillAlpha:
				d[KeyEdgeColor] = color.None
				d[KeyAlpha] = alpha
			}
			entries = append(entries, entry{prefix: spec.Prefix, name: name, suffix: *suffix, d: d})
		}
		if len(entries) == planned {
			// every variant skipped; the name is still registered
			entries = append(entries, entry{name: name})
		}
	}
	return entries, nil
}
