package styles

import (
	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/param"
)

// Roles of a [LinePointSpec], in the order of its Prefixes.
const (
	RoleLine      = iota // line without markers
	RolePoint            // markers without connecting line
	RoleLinePoint        // markers connected by lines
)

// LinePointSpec describes line, point and linepoint styles sharing names,
// colours and markers. An empty prefix disables the corresponding role.
type LinePointSpec struct {
	Prefixes   [3]string // indexed by RoleLine, RolePoint, RoleLinePoint
	Names      param.Param[string]
	Suffix     param.Param[string]
	Colors     param.Param[color.Color]
	Dashes     param.Param[string]
	Widths     param.Param[float64]
	Markers    param.Param[Marker]
	Sizes      param.Param[float64]
	EdgeColors param.Param[float64]
	EdgeWidths param.Param[float64] // default 1
	Extra      Descriptor
}

// LinePointStyles generates line styles with Prefixes[RoleLine], point
// styles without connecting lines with Prefixes[RolePoint], and point styles
// connected by the given dashes and widths with Prefixes[RoleLinePoint].
// Either all roles are registered or, on error, none.
func (g *Generator) LinePointStyles(reg *Registry, spec LinePointSpec) error {
	if err := requireRegistry(reg); err != nil {
		return err
	}
	entries, err := g.planLinePoints(spec)
	if err != nil {
		return err
	}
	g.commit(reg, entries)
	return nil
}

func (g *Generator) planLinePoints(spec LinePointSpec) ([]entry, error) {
	var entries []entry
	if p := spec.Prefixes[RoleLine]; p != "" {
		e, err := g.planLines(LineSpec{
			Prefix: p,
			Names:  spec.Names,
			Suffix: spec.Suffix,
			Colors: spec.Colors,
			Dashes: spec.Dashes,
			Widths: spec.Widths,
			Extra:  spec.Extra,
		})
		if err != nil {
			return nil, err
		}
		entries = append(entries, e...)
	}
	point := PointSpec{
		Names:      spec.Names,
		Suffix:     spec.Suffix,
		Colors:     spec.Colors,
		Markers:    spec.Markers,
		Sizes:      spec.Sizes,
		EdgeColors: spec.EdgeColors,
		EdgeWidths: spec.EdgeWidths,
		Extra:      spec.Extra,
	}
	if p := spec.Prefixes[RolePoint]; p != "" {
		ps := point
		ps.Prefix = p
		ps.Dashes = param.Scalar(DashNone)
		ps.Widths = param.Scalar(0.0)
		e, err := g.planPoints(ps)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e...)
	}
	if p := spec.Prefixes[RoleLinePoint]; p != "" {
		lps := point
		lps.Prefix = p
		lps.Dashes = spec.Dashes
		lps.Widths = spec.Widths
		e, err := g.planPoints(lps)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e...)
	}
	return entries, nil
}

// Tiers holds the emphasis parameters of a line/point/fill family.
type Tiers struct {
	LWThick     float64 // line width of major lines
	LWThin      float64 // line width of minor lines
	MarkerLarge float64 // marker size of major and circular markers
	MarkerSmall float64 // marker size of minor markers
	MEC         float64 // edge lightness of markers and fills (0 white, 1 face colour, 2 black)
	MEW         float64 // edge width of markers and fills
	FillAlpha   float64 // alpha of transparent fills
}

// or returns def if t is the zero value.
func (t Tiers) or(def Tiers) Tiers {
	if t == (Tiers{}) {
		return def
	}
	return t
}

// DefaultTiers returns the default emphasis parameters.
func DefaultTiers() Tiers {
	return Tiers{
		LWThick:     2.0,
		LWThin:      1.0,
		MarkerLarge: 7.5,
		MarkerSmall: 5.5,
		MEC:         0.5,
		MEW:         1.0,
		FillAlpha:   0.4,
	}
}

// LinePointFillSpec describes complete style families, one per name.
type LinePointFillSpec struct {
	Names   param.Param[string]
	Colors  param.Param[color.Color]
	Dashes  param.Param[string] // default "-"
	Markers param.Param[Marker] // markers of the major tier; default Circle
	Tiers   Tiers               // zero value means DefaultTiers
}

// Family prefixes and suffixes used by [Generator.LinePointFillStyles].
const (
	PrefixLine      = "ls"
	PrefixPoint     = "ps"
	PrefixLinePoint = "lps"
	PrefixFill      = "fs"

	SuffixMajor    = ""
	SuffixCircular = "c"
	SuffixMinor    = "m"
	SuffixSolid    = "s"
	SuffixAlpha    = "a"
)

// FamilySize is the number of descriptors LinePointFillStyles generates per name.
const FamilySize = 11

// LinePointFillStyles generates, for every name (here "Female"):
//
//   - major line (lsFemale) and minor line (lsFemalem)
//   - major point (psFemale), major circular point (psFemalec) and
//     minor circular point (psFemalem)
//   - the same three as linepoint styles (lpsFemale, lpsFemalec, lpsFemalem)
//   - fill with edge (fsFemale), solid fill (fsFemales) and
//     transparent fill (fsFemalea)
//
// Either all families are registered or, on error, none.
func (g *Generator) LinePointFillStyles(reg *Registry, spec LinePointFillSpec) error {
	if err := requireRegistry(reg); err != nil {
		return err
	}
	dashes := spec.Dashes.Or(param.Scalar(DashSolid))
	markers := spec.Markers.Or(param.Scalar(Circle))
	t := spec.Tiers.or(DefaultTiers())
	tier := func(prefixes [3]string, suffix string, lw float64, mk param.Param[Marker], size float64) LinePointSpec {
		return LinePointSpec{
			Prefixes:   prefixes,
			Names:      spec.Names,
			Suffix:     param.Scalar(suffix),
			Colors:     spec.Colors,
			Dashes:     dashes,
			Widths:     param.Scalar(lw),
			Markers:    mk,
			Sizes:      param.Scalar(size),
			EdgeColors: param.Scalar(t.MEC),
			EdgeWidths: param.Scalar(t.MEW),
		}
	}
	circle := param.Scalar(Circle)
	all := [3]string{PrefixLine, PrefixPoint, PrefixLinePoint}
	tiers := []LinePointSpec{
		tier(all, SuffixMajor, t.LWThick, markers, t.MarkerLarge),
		tier([3]string{"", PrefixPoint, PrefixLinePoint}, SuffixCircular, t.LWThick, circle, t.MarkerLarge),
		tier(all, SuffixMinor, t.LWThin, circle, t.MarkerSmall),
	}

	var entries []entry
	for _, ts := range tiers {
		e, err := g.planLinePoints(ts)
		if err != nil {
			return err
		}
		entries = append(entries, e...)
	}
	e, err := g.planFills(FillSpec{
		Prefix:     PrefixFill,
		Names:      spec.Names,
		Suffixes:   []*string{Suffix(SuffixMajor), Suffix(SuffixSolid), Suffix(SuffixAlpha)},
		Colors:     spec.Colors,
		EdgeColors: param.Scalar(t.MEC),
		EdgeWidths: param.Scalar(t.MEW),
		Alphas:     param.Scalar(t.FillAlpha),
	})
	if err != nil {
		return err
	}
	entries = append(entries, e...)

	g.commit(reg, entries)
	return nil
}
