// Package config loads plot style themes from TOML files.
//
// A theme selects a palette, sets the emphasis tiers of the generic styles
// and may add further style families and plain line styles:
//
//	palette = "vivid"
//	lw_thick = 2.5
//	lw_thin = 1.5
//	marker_large = 10.0
//	marker_small = 6.5
//	mec = 0.0
//	mew = 1.5
//	fill_alpha = 0.4
//
//	[[group]]
//	name = "Male"
//	color = "blue"
//	marker = "s"
//
//	[[line]]
//	name = "Spine"
//	color = "black"
//	width = 1.0
//
// Keys left out keep the values of [Default]. Colours are palette names or
// any colour understood by [color.Parse].
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/errors"
	"github.com/matzehuels/plotstyles/pkg/param"
	"github.com/matzehuels/plotstyles/pkg/styles"
)

// Defaults for optional group and line keys.
const (
	DefaultDash        = styles.DashSolid
	DefaultMarker      = "o"
	DefaultMarkerScale = 1.0
	DefaultLineWidth   = 1.0
)

// Config is a style theme.
type Config struct {
	Palette     string  `toml:"palette"`
	LWThick     float64 `toml:"lw_thick"`
	LWThin      float64 `toml:"lw_thin"`
	MarkerLarge float64 `toml:"marker_large"`
	MarkerSmall float64 `toml:"marker_small"`
	MEC         float64 `toml:"mec"`
	MEW         float64 `toml:"mew"`
	FillAlpha   float64 `toml:"fill_alpha"`

	Groups []Group `toml:"group"`
	Lines  []Line  `toml:"line"`
}

// Group adds a line/point/linepoint/fill family like those of the generic styles.
type Group struct {
	Name        string  `toml:"name"`
	Color       string  `toml:"color"`
	Dash        string  `toml:"dash,omitempty"`
	Marker      string  `toml:"marker,omitempty"`
	MarkerScale float64 `toml:"marker_scale,omitempty"`
}

// Line adds a plain line style with prefix "ls". Extra attributes such as
// clip_on are copied into the descriptor as given:
//
//	[[line]]
//	name = "Spine"
//	color = "black"
//	extra = { clip_on = false }
type Line struct {
	Name  string         `toml:"name"`
	Color string         `toml:"color"`
	Dash  string         `toml:"dash,omitempty"`
	Width float64        `toml:"width,omitempty"`
	Extra map[string]any `toml:"extra,omitempty"`
}

// Default returns the theme of the generic styles without extras.
func Default() *Config {
	spec := styles.DefaultGenericSpec()
	c := &Config{Palette: spec.Palette}
	c.SetTiers(spec.Tiers)
	return c
}

// Tiers returns the emphasis parameters of c.
func (c *Config) Tiers() styles.Tiers {
	return styles.Tiers{
		LWThick:     c.LWThick,
		LWThin:      c.LWThin,
		MarkerLarge: c.MarkerLarge,
		MarkerSmall: c.MarkerSmall,
		MEC:         c.MEC,
		MEW:         c.MEW,
		FillAlpha:   c.FillAlpha,
	}
}

// SetTiers replaces the emphasis parameters of c.
func (c *Config) SetTiers(t styles.Tiers) {
	c.LWThick = t.LWThick
	c.LWThin = t.LWThin
	c.MarkerLarge = t.MarkerLarge
	c.MarkerSmall = t.MarkerSmall
	c.MEC = t.MEC
	c.MEW = t.MEW
	c.FillAlpha = t.FillAlpha
}

// Load reads and parses the theme file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return c, nil
}

// Parse decodes a TOML theme on top of [Default] and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode theme")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks palette, tiers, groups and lines.
func (c *Config) Validate() error {
	palette, err := color.Lookup(c.Palette)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette")
	}
	for name, v := range map[string]float64{
		"lw_thick": c.LWThick, "lw_thin": c.LWThin,
		"marker_large": c.MarkerLarge, "marker_small": c.MarkerSmall,
		"mew": c.MEW,
	} {
		if v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be negative, got %g", name, v)
		}
	}
	if c.MEC < 0 || c.MEC > 2 {
		return errors.New(errors.ErrCodeInvalidConfig, "mec must be within [0, 2], got %g", c.MEC)
	}
	if c.FillAlpha < 0 || c.FillAlpha > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "fill_alpha must be within [0, 1], got %g", c.FillAlpha)
	}

	seen := make(map[string]bool)
	for i, g := range c.Groups {
		if g.Name == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "group %d has no name", i+1)
		}
		if seen[g.Name] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate group %q", g.Name)
		}
		seen[g.Name] = true
		if err := checkColor(palette, g.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "group %q", g.Name)
		}
		if _, err := ParseShape(g.Marker); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "group %q", g.Name)
		}
	}
	for i, l := range c.Lines {
		if l.Name == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "line %d has no name", i+1)
		}
		if err := checkColor(palette, l.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "line %q", l.Name)
		}
		if l.Width < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "line %q width must not be negative", l.Name)
		}
		if _, ok := l.Extra[""]; ok {
			return errors.New(errors.ErrCodeInvalidConfig, "line %q has an empty extra key", l.Name)
		}
	}
	return nil
}

func checkColor(p color.Palette, s string) error {
	if s == "" {
		return errors.New(errors.ErrCodeInvalidColor, "color is not set")
	}
	_, err := color.Parse(p.Resolve(s))
	return err
}

// ParseShape parses a marker glyph ("o", "s", "D", ...) or a polygon written
// as "(sides,style,angle)". The empty string is [DefaultMarker].
func ParseShape(s string) (styles.Shape, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return styles.Glyph(DefaultMarker), nil
	}
	if !strings.HasPrefix(s, "(") {
		return styles.Glyph(s), nil
	}
	var sides, style int
	var angle float64
	if _, err := fmt.Sscanf(s, "(%d,%d,%g)", &sides, &style, &angle); err != nil || sides < 3 {
		return styles.Shape{}, errors.New(errors.ErrCodeInvalidInput, "invalid polygon marker %q", s)
	}
	return styles.Polygon(sides, style, angle), nil
}

// Build registers the generic styles, the groups and the lines of c into reg.
func (c *Config) Build(gen *styles.Generator, reg *styles.Registry) error {
	if err := c.Validate(); err != nil {
		return err
	}
	tiers := c.Tiers()
	if err := gen.GenericStyles(reg, styles.GenericSpec{Palette: c.Palette, Tiers: tiers}); err != nil {
		return err
	}
	palette, err := color.Lookup(c.Palette)
	if err != nil {
		return err
	}

	if len(c.Groups) > 0 {
		var (
			names   []string
			colors  []color.Color
			dashes  []string
			markers []styles.Marker
		)
		for _, g := range c.Groups {
			shape, _ := ParseShape(g.Marker)
			scale := g.MarkerScale
			if scale == 0 {
				scale = DefaultMarkerScale
			}
			names = append(names, g.Name)
			colors = append(colors, palette.Resolve(g.Color))
			dashes = append(dashes, or(g.Dash, DefaultDash))
			markers = append(markers, styles.Marker{Shape: shape, Scale: scale})
		}
		if err := gen.LinePointFillStyles(reg, styles.LinePointFillSpec{
			Names:   param.Seq(names...),
			Colors:  param.Seq(colors...),
			Dashes:  param.Seq(dashes...),
			Markers: param.Seq(markers...),
			Tiers:   tiers,
		}); err != nil {
			return err
		}
	}

	// Extra is shared by all indices of a LineSpec, so lines go one by one.
	for _, l := range c.Lines {
		w := l.Width
		if w == 0 {
			w = DefaultLineWidth
		}
		if err := gen.LineStyles(reg, styles.LineSpec{
			Prefix: styles.PrefixLine,
			Names:  param.Seq(l.Name),
			Colors: param.Scalar(palette.Resolve(l.Color)),
			Dashes: param.Scalar(or(l.Dash, DefaultDash)),
			Widths: param.Scalar(w),
			Extra:  styles.Descriptor(l.Extra),
		}); err != nil {
			return err
		}
	}
	return nil
}

func or(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
