package config

import (
	"maps"
	"slices"

	"github.com/matzehuels/plotstyles/pkg/errors"
	"github.com/matzehuels/plotstyles/pkg/styles"
)

// Preset names.
const (
	PresetScreen = "screen" // slides and monitors: vivid colours, heavy lines
	PresetPaper  = "paper"  // printed figures: muted colours, thin lines
	PresetSketch = "sketch" // drafts: heavy lines with small markers
)

// DefaultPreset is the preset used when neither a preset nor a file is given.
const DefaultPreset = PresetPaper

type preset struct {
	palette    string
	tiers      styles.Tiers
	spineWidth float64
}

var presets = map[string]preset{
	PresetScreen: {
		palette: "vivid",
		tiers: styles.Tiers{
			LWThick: 2.5, LWThin: 1.5,
			MarkerLarge: 10.0, MarkerSmall: 6.5,
			MEC: 0.0, MEW: 1.5, FillAlpha: 0.4,
		},
		spineWidth: 1.0,
	},
	PresetPaper: {
		palette: "muted",
		tiers: styles.Tiers{
			LWThick: 1.7, LWThin: 0.8,
			MarkerLarge: 6.5, MarkerSmall: 4.0,
			MEC: 0.0, MEW: 0.8, FillAlpha: 0.4,
		},
		spineWidth: 0.8,
	},
	PresetSketch: {
		palette: "vivid",
		tiers: styles.Tiers{
			LWThick: 3.0, LWThin: 1.8,
			MarkerLarge: 6.5, MarkerSmall: 4.0,
			MEC: 0.0, MEW: 0.8, FillAlpha: 0.4,
		},
		spineWidth: 1.8,
	},
}

// PresetNames returns the available preset names in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}

// Preset returns the named theme. Besides the generic styles every preset
// defines the lines lsSpine (axes), lsGrid (grid lines) and lsMarker
// (reference lines).
func Preset(name string) (*Config, error) {
	p, ok := presets[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown preset %q (available: %v)", name, PresetNames())
	}
	c := &Config{Palette: p.palette}
	c.SetTiers(p.tiers)
	unclipped := map[string]any{styles.KeyClipOn: false}
	c.Lines = []Line{
		{Name: "Spine", Color: "black", Dash: styles.DashSolid, Width: p.spineWidth, Extra: unclipped},
		{Name: "Grid", Color: "gray", Dash: styles.DashDashed, Width: p.tiers.LWThin},
		{Name: "Marker", Color: "black", Dash: styles.DashSolid, Width: p.tiers.LWThick, Extra: maps.Clone(unclipped)},
	}
	return c, nil
}
