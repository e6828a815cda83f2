// Package pkg provides the core libraries for plotstyles.
//
// # Overview
//
// Plotstyles generates named style descriptors for chart-drawing code: small
// attribute maps (colour, line width, dash pattern, marker, fill alpha, edge
// treatment) that a plotting call can splat into its keyword arguments. One
// generator call with mixed scalar and sequence arguments expands into many
// consistent, uniquely named descriptors. The pkg directory is organized into
// these areas:
//
//  1. [param] - Scalar/sequence parameters and broadcasting
//  2. [color] - Colour values, palettes and lightness adjustment
//  3. [styles] - Descriptors, the registry and all generators
//  4. [config] - TOML themes and presets
//  5. [export] and [api] - Encoders and the HTTP catalog
//
// # Architecture
//
// The typical data flow:
//
//	Theme (preset or TOML file)
//	         ↓
//	    [config] package (palette + emphasis tiers + extra groups)
//	         ↓
//	    [styles] package (generators broadcast parameters, register descriptors)
//	         ↓
//	    [styles.Registry] (names, groups, keys)
//	         ↓
//	    JSON/TOML export, HTTP catalog, CLI views
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/plotstyles/pkg/color"
//	    "github.com/matzehuels/plotstyles/pkg/param"
//	    "github.com/matzehuels/plotstyles/pkg/styles"
//	)
//
//	reg := styles.NewRegistry()
//	gen := styles.NewGenerator()
//
//	// 1. The generic catalog: A1-A3, B1-B5, C1-C4 in 11 variants each
//	_ = gen.GenericStyles(reg, styles.DefaultGenericSpec())
//
//	// 2. A custom family
//	_ = gen.LineStyles(reg, styles.LineSpec{
//	    Prefix: "ls",
//	    Names:  param.Scalar("Reds%d"),
//	    Colors: param.Seq[color.Color]("#fcbba1", "#fb6a4a", "#cb181d"),
//	    Widths: param.Scalar(2.0),
//	})
//
//	// 3. Look up
//	d, _ := reg.Style("lsReds2")
//
// # Naming
//
// A descriptor is addressed by prefix + name + suffix. Prefixes name the kind
// (ls line, ps point, lps linepoint, fs fill), suffixes the variant (m minor,
// c circular marker, s solid fill, a transparent fill).
//
// # Errors
//
// All packages return [errors.Error] values with machine-readable codes such
// as LENGTH_MISMATCH or UNKNOWN_COLOR_KEY.
package pkg
