package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/errors"
	"github.com/matzehuels/plotstyles/pkg/styles"
)

const sampleTheme = `
palette = "vivid"
lw_thick = 2.5
marker_large = 10.0

[[group]]
name = "Male"
color = "blue"
marker = "s"
marker_scale = 1.2

[[group]]
name = "Female"
color = "#cc3366"
dash = "--"
marker = "(5,1,0)"

[[line]]
name = "Spine"
color = "black"
width = 0.5
extra = { clip_on = false, zorder = 3 }
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if c.Palette != "vivid" || c.LWThick != 2.5 || c.MarkerLarge != 10.0 {
		t.Errorf("Parse() = %+v", c)
	}
	// unset keys keep their defaults
	if c.LWThin != 0.8 || c.FillAlpha != 0.4 {
		t.Errorf("defaults lost: lw_thin %v, fill_alpha %v", c.LWThin, c.FillAlpha)
	}
	if len(c.Groups) != 2 || c.Groups[1].Dash != "--" {
		t.Errorf("Groups = %+v", c.Groups)
	}
	if len(c.Lines) != 1 || c.Lines[0].Width != 0.5 {
		t.Errorf("Lines = %+v", c.Lines)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `palette = `},
		{"unknown key", `colour = "red"`},
		{"unknown group key", "[[group]]\nname = \"A\"\ncolor = \"red\"\nsize = 3"},
		{"unknown palette", `palette = "neon"`},
		{"negative width", `lw_thick = -1.0`},
		{"mec range", `mec = 2.5`},
		{"alpha range", `fill_alpha = 1.5`},
		{"group without name", "[[group]]\ncolor = \"red\""},
		{"group without color", "[[group]]\nname = \"A\""},
		{"group bad color", "[[group]]\nname = \"A\"\ncolor = \"notacolour\""},
		{"group bad polygon", "[[group]]\nname = \"A\"\ncolor = \"red\"\nmarker = \"(x,1,0)\""},
		{"duplicate group", "[[group]]\nname = \"A\"\ncolor = \"red\"\n[[group]]\nname = \"A\"\ncolor = \"blue\""},
		{"line without name", "[[line]]\ncolor = \"red\""},
		{"line empty extra key", "[[line]]\nname = \"A\"\ncolor = \"red\"\nextra = { \"\" = 1 }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Parse() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte(sampleTheme), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Palette != "vivid" {
		t.Errorf("Palette = %q, want vivid", c.Palette)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestBuild(t *testing.T) {
	c, err := Parse([]byte(sampleTheme))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	reg := styles.NewRegistry()
	if err := c.Build(styles.NewGenerator(), reg); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if want := (12+2)*styles.FamilySize + 1; reg.Len() != want {
		t.Errorf("Len() = %d, want %d", reg.Len(), want)
	}

	vivid, _ := color.Lookup("vivid")
	male, _ := reg.Style("psMale")
	if male[styles.KeyColor] != vivid["blue"] || male[styles.KeyMarker] != styles.Glyph("s") {
		t.Errorf("psMale = %v", male)
	}
	if male[styles.KeyMarkerSize] != 1.2*10.0 {
		t.Errorf("psMale markersize = %v, want %v", male[styles.KeyMarkerSize], 1.2*10.0)
	}
	female, _ := reg.Style("lpsFemale")
	if female[styles.KeyColor] != color.Color("#cc3366") || female[styles.KeyLineStyle] != "--" {
		t.Errorf("lpsFemale = %v", female)
	}
	if female[styles.KeyMarker] != styles.Polygon(5, 1, 0) {
		t.Errorf("lpsFemale marker = %v", female[styles.KeyMarker])
	}
	spine, _ := reg.Style("lsSpine")
	if spine[styles.KeyColor] != vivid["black"] || spine[styles.KeyLineWidth] != 0.5 {
		t.Errorf("lsSpine = %v", spine)
	}
	if spine[styles.KeyClipOn] != false || spine["zorder"] != int64(3) {
		t.Errorf("lsSpine extras = %v", spine)
	}

	names := reg.Names()
	if got := names[len(names)-3:]; !slices.Equal(got, []string{"Male", "Female", "Spine"}) {
		t.Errorf("last names = %v", got)
	}
}

func TestPresets(t *testing.T) {
	if got := PresetNames(); !slices.Equal(got, []string{"paper", "screen", "sketch"}) {
		t.Errorf("PresetNames() = %v", got)
	}
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			c, err := Preset(name)
			if err != nil {
				t.Fatalf("Preset() error: %v", err)
			}
			reg := styles.NewRegistry()
			if err := c.Build(styles.NewGenerator(), reg); err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if want := 12*styles.FamilySize + 3; reg.Len() != want {
				t.Errorf("Len() = %d, want %d", reg.Len(), want)
			}
			for _, key := range []string{"lsSpine", "lsGrid", "lsMarker"} {
				if _, ok := reg.Style(key); !ok {
					t.Errorf("Style(%q) not found", key)
				}
			}
			grid, _ := reg.Style("lsGrid")
			if grid[styles.KeyLineStyle] != styles.DashDashed || grid[styles.KeyLineWidth] != c.LWThin {
				t.Errorf("lsGrid = %v", grid)
			}
			if _, ok := grid[styles.KeyClipOn]; ok {
				t.Errorf("lsGrid = %v, want clipped", grid)
			}
			for _, key := range []string{"lsSpine", "lsMarker"} {
				d, _ := reg.Style(key)
				if d[styles.KeyClipOn] != false {
					t.Errorf("%s clip_on = %v, want false", key, d[styles.KeyClipOn])
				}
			}
		})
	}
}

func TestPresetScreen(t *testing.T) {
	c, _ := Preset(PresetScreen)
	if c.Palette != "vivid" || c.LWThick != 2.5 || c.MarkerLarge != 10.0 || c.MEW != 1.5 {
		t.Errorf("screen = %+v", c)
	}
	if c.Lines[0].Width != 1.0 {
		t.Errorf("spine width = %v, want 1", c.Lines[0].Width)
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("poster")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Preset(poster) error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want styles.Shape
	}{
		{"", styles.Glyph("o")},
		{"D", styles.Glyph("D")},
		{"(3,1,60)", styles.Polygon(3, 1, 60)},
		{" (4,0,22.5) ", styles.Polygon(4, 0, 22.5)},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if err != nil {
			t.Errorf("ParseShape(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseShape("(2,1,0)"); err == nil {
		t.Error("ParseShape((2,1,0)) succeeded, want error")
	}
}
