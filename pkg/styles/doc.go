// Package styles generates and catalogs plotting style descriptors.
//
// # Overview
//
// A [Descriptor] is a bundle of presentation attributes (color, linewidth,
// marker, facecolor, alpha, ...) that chart-drawing code applies in one call.
// Instead of spelling out those attributes at every call site, styles are
// generated once, given functional names, and looked up from a [Registry]:
//
//	reg := styles.NewRegistry()
//	gen := styles.NewGenerator()
//	if err := gen.GenericStyles(reg, styles.DefaultGenericSpec()); err != nil {
//	    return err
//	}
//	ls, _ := reg.Style("lsA1")   // major line of group A1
//	fs, _ := reg.Style("fsB2a")  // transparent fill of group B2
//
// # Broadcasting
//
// Every generator accepts [param.Param] values that are either scalars or
// sequences. One call produces as many descriptors as the longest sequence:
//
//	gen.LineStyles(reg, styles.LineSpec{
//	    Prefix: "ls",
//	    Names:  param.Seq("Red", "Green"),
//	    Colors: param.Seq[color.Color]("red", "green"),
//	    Dashes: param.Scalar("-"),
//	    Widths: param.Seq(1.0, 2.0),
//	})
//
// registers lsRed and lsGreen. Sequences of any other length than 1 or the
// replication count fail with LENGTH_MISMATCH before anything is registered.
// The suffix parameter is the one exception: it repeats cyclically.
//
// # Naming
//
// Descriptors are stored under prefix+name+suffix and in the group of their
// (prefix, suffix) pair. The conventional prefixes are
//
//   - ls: line styles
//   - ps: point (marker) styles
//   - lps: markers connected by lines
//   - fs: fill styles
//
// and the conventional suffixes "" (major), "m" (minor), "c" (circular
// marker), "s" (solid fill without edge) and "a" (transparent fill).
//
// # Duplicating
//
// [Style], [LighterStyles], [DarkerStyles] and [LighterDarkerStyles] copy an
// existing descriptor into a colour gradient without touching any Registry.
package styles
