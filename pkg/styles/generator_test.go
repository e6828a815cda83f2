package styles

import (
	"slices"
	"testing"

	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/errors"
	"github.com/matzehuels/plotstyles/pkg/param"
)

func TestLineStylesBroadcast(t *testing.T) {
	reg := NewRegistry()
	err := NewGenerator().LineStyles(reg, LineSpec{
		Prefix: "ls",
		Names:  param.Seq("A", "B"),
		Colors: param.Seq[color.Color]("red", "green"),
		Dashes: param.Scalar(DashDashed),
		Widths: param.Seq(1.0, 2.0),
	})
	if err != nil {
		t.Fatalf("LineStyles() error: %v", err)
	}

	tests := []struct {
		key   string
		color color.Color
		width float64
	}{
		{"lsA", "red", 1},
		{"lsB", "green", 2},
	}
	for _, tt := range tests {
		d, ok := reg.Style(tt.key)
		if !ok {
			t.Fatalf("Style(%q) not found", tt.key)
		}
		if d[KeyColor] != tt.color {
			t.Errorf("%s color = %v, want %v", tt.key, d[KeyColor], tt.color)
		}
		if d[KeyLineStyle] != DashDashed || d[KeyLineWidth] != tt.width {
			t.Errorf("%s = %v, want dashed width %g", tt.key, d, tt.width)
		}
	}
	if got := reg.Names(); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("Names() = %v, want [A B]", got)
	}
	if got := reg.GroupNames("ls", ""); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("GroupNames(ls) = %v, want [A B]", got)
	}
}

func TestLineStylesDefaultsAndExtra(t *testing.T) {
	reg := NewRegistry()
	err := NewGenerator().LineStyles(reg, LineSpec{
		Prefix: "ls",
		Names:  param.Scalar("Male"),
		Colors: param.Scalar[color.Color]("blue"),
		Extra:  Descriptor{KeyLineWidth: 3.0, "zorder": 2},
	})
	if err != nil {
		t.Fatalf("LineStyles() error: %v", err)
	}
	d, _ := reg.Style("lsMale")
	if d[KeyLineStyle] != DashSolid {
		t.Errorf("linestyle = %v, want %q", d[KeyLineStyle], DashSolid)
	}
	if d[KeyLineWidth] != 3.0 {
		t.Errorf("linewidth = %v, want extra value 3", d[KeyLineWidth])
	}
	if d["zorder"] != 2 {
		t.Errorf("zorder = %v, want 2", d["zorder"])
	}
}

func TestLineStylesTemplateNames(t *testing.T) {
	reg := NewRegistry()
	err := NewGenerator().LineStyles(reg, LineSpec{
		Prefix: "ls",
		Names:  param.Scalar("Reds%d"),
		Suffix: param.Scalar("m"),
		Colors: param.Seq[color.Color]("#ff0000", "#cc0000", "#990000"),
	})
	if err != nil {
		t.Fatalf("LineStyles() error: %v", err)
	}
	want := []string{"Reds1", "Reds2", "Reds3"}
	if got := reg.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	d, ok := reg.Style("lsReds3m")
	if !ok || d[KeyColor] != color.Color("#990000") {
		t.Errorf("Style(lsReds3m) = %v, %v", d, ok)
	}
}

func TestLineStylesCyclicSuffix(t *testing.T) {
	reg := NewRegistry()
	err := NewGenerator().LineStyles(reg, LineSpec{
		Prefix: "ls",
		Names:  param.Seq("A", "B", "C"),
		Suffix: param.Seq("", "m"),
		Colors: param.Scalar[color.Color]("black"),
	})
	if err != nil {
		t.Fatalf("LineStyles() error: %v", err)
	}
	for _, key := range []string{"lsA", "lsBm", "lsC"} {
		if _, ok := reg.Style(key); !ok {
			t.Errorf("Style(%q) not found", key)
		}
	}
}

func TestLineStylesErrors(t *testing.T) {
	tests := []struct {
		name string
		spec LineSpec
		code errors.Code
	}{
		{
			name: "length mismatch",
			spec: LineSpec{
				Prefix: "ls",
				Names:  param.Seq("A", "B", "C"),
				Colors: param.Seq[color.Color]("red", "green"),
			},
			code: errors.ErrCodeLengthMismatch,
		},
		{
			name: "empty sequence",
			spec: LineSpec{
				Prefix: "ls",
				Names:  param.Seq[string](),
				Colors: param.Scalar[color.Color]("red"),
			},
			code: errors.ErrCodeLengthMismatch,
		},
		{
			name: "missing colors",
			spec: LineSpec{Prefix: "ls", Names: param.Scalar("A")},
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "bad template",
			spec: LineSpec{
				Prefix: "ls",
				Names:  param.Scalar("Reds%d%d"),
				Colors: param.Seq[color.Color]("red", "green"),
			},
			code: errors.ErrCodeInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			err := NewGenerator().LineStyles(reg, tt.spec)
			if !errors.Is(err, tt.code) {
				t.Fatalf("LineStyles() error = %v, want %s", err, tt.code)
			}
			if reg.Len() != 0 || len(reg.Names()) != 0 {
				t.Errorf("registry modified after error: %v", reg.Keys())
			}
		})
	}
}

func TestGeneratorNilRegistry(t *testing.T) {
	err := NewGenerator().LineStyles(nil, LineSpec{Names: param.Scalar("A"), Colors: param.Scalar[color.Color]("red")})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("LineStyles(nil) error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestGeneratorIdempotent(t *testing.T) {
	spec := LineSpec{
		Prefix: "ls",
		Names:  param.Seq("A", "B"),
		Colors: param.Seq[color.Color]("red", "green"),
	}
	reg := NewRegistry()
	gen := NewGenerator()
	for range 2 {
		if err := gen.LineStyles(reg, spec); err != nil {
			t.Fatalf("LineStyles() error: %v", err)
		}
	}
	if got := reg.Names(); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("Names() = %v, want [A B]", got)
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want 2", reg.Len())
	}
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		names param.Param[string]
		k, n  int
		want  string
	}{
		{param.Seq("A", "B"), 1, 2, "B"},
		{param.Scalar("Reds%d"), 0, 3, "Reds1"},
		{param.Scalar("Reds%d"), 2, 3, "Reds3"},
		{param.Scalar("Fixed"), 2, 3, "Fixed"},
		{param.Seq("50%"), 0, 1, "50%"},
	}
	for _, tt := range tests {
		reg := NewRegistry()
		got, err := ResolveName(reg, tt.names, tt.k, tt.n)
		if err != nil {
			t.Errorf("ResolveName(%v, %d, %d) error: %v", tt.names, tt.k, tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveName(%v, %d, %d) = %q, want %q", tt.names, tt.k, tt.n, got, tt.want)
		}
		if !reg.HasName(tt.want) {
			t.Errorf("ResolveName() did not register %q", tt.want)
		}
	}
}

func TestPointStyles(t *testing.T) {
	reg := NewRegistry()
	err := NewGenerator().PointStyles(reg, PointSpec{
		Prefix:     "ps",
		Names:      param.Seq("A", "B"),
		Colors:     param.Scalar[color.Color]("red"),
		Markers:    param.Seq(NewMarker("s", 2), Marker{Polygon(3, PolygonStar, 60), 0.5}),
		Sizes:      param.Scalar(4.0),
		EdgeColors: param.Seq(0.0, 2.0),
	})
	if err != nil {
		t.Fatalf("PointStyles() error: %v", err)
	}

	a, _ := reg.Style("psA")
	if a[KeyMarker] != Glyph("s") || a[KeyMarkerSize] != 8.0 {
		t.Errorf("psA marker = %v size %v, want s size 8", a[KeyMarker], a[KeyMarkerSize])
	}
	if a[KeyMarkerEdgeColor] != color.Color("#ffffff") {
		t.Errorf("psA edge = %v, want white", a[KeyMarkerEdgeColor])
	}
	if a[KeyLineStyle] != DashNone || a[KeyLineWidth] != 0.0 || a[KeyMarkerEdgeWidth] != 1.0 {
		t.Errorf("psA defaults = %v", a)
	}

	b, _ := reg.Style("psB")
	if b[KeyMarker] != Polygon(3, PolygonStar, 60) || b[KeyMarkerSize] != 2.0 {
		t.Errorf("psB marker = %v size %v", b[KeyMarker], b[KeyMarkerSize])
	}
	if b[KeyMarkerEdgeColor] != color.Color("#000000") {
		t.Errorf("psB edge = %v, want black", b[KeyMarkerEdgeColor])
	}
}

func TestPointStylesInvalidColor(t *testing.T) {
	reg := NewRegistry()
	err := NewGenerator().PointStyles(reg, PointSpec{
		Prefix: "ps",
		Names:  param.Seq("A", "B"),
		Colors: param.Seq[color.Color]("red", "notacolour"),
	})
	if !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Fatalf("PointStyles() error = %v, want %s", err, errors.ErrCodeInvalidColor)
	}
	if reg.Len() != 0 || len(reg.Names()) != 0 {
		t.Errorf("registry modified after error: %v", reg.Keys())
	}
}

func TestFillStylesVariants(t *testing.T) {
	reg := NewRegistry()
	err := NewGenerator().FillStyles(reg, FillSpec{
		Prefix:     "fs",
		Names:      param.Scalar("PSD"),
		Suffixes:   []*string{Suffix(""), Suffix("s"), Suffix("a")},
		Colors:     param.Scalar[color.Color]("green"),
		EdgeColors: param.Scalar(2.0),
		EdgeWidths: param.Scalar(0.5),
		Alphas:     param.Scalar(0.4),
	})
	if err != nil {
		t.Fatalf("FillStyles() error: %v", err)
	}

	tests := []struct {
		key  string
		want Descriptor
	}{
		{"fsPSD", Descriptor{KeyFaceColor: color.Color("green"), KeyEdgeColor: color.Color("#000000"), KeyLineWidth: 0.5}},
		{"fsPSDs", Descriptor{KeyFaceColor: color.Color("green"), KeyEdgeColor: color.None}},
		{"fsPSDa", Descriptor{KeyFaceColor: color.Color("green"), KeyEdgeColor: color.None, KeyAlpha: 0.4}},
	}
	for _, tt := range tests {
		d, ok := reg.Style(tt.key)
		if !ok {
			t.Fatalf("Style(%q) not found", tt.key)
		}
		if len(d) != len(tt.want) {
			t.Errorf("%s = %v, want %v", tt.key, d, tt.want)
			continue
		}
		for k, v := range tt.want {
			if d[k] != v {
				t.Errorf("%s[%s] = %v, want %v", tt.key, k, d[k], v)
			}
		}
	}
}

func TestFillStylesSkippedVariant(t *testing.T) {
	reg := NewRegistry()
	err := NewGenerator().FillStyles(reg, FillSpec{
		Prefix:   "fs",
		Names:    param.Seq("A", "B"),
		Suffixes: []*string{nil, Suffix("s"), Suffix("a")},
		Colors:   param.Seq[color.Color]("red", "blue"),
	})
	if err != nil {
		t.Fatalf("FillStyles() error: %v", err)
	}
	want := []string{"fsAa", "fsAs", "fsBa", "fsBs"}
	if got := reg.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if _, ok := reg.Group("fs", ""); ok {
		t.Error("edge variant registered, want skipped")
	}
}

func TestFillStylesSingleSuffix(t *testing.T) {
	reg := NewRegistry()
	err := NewGenerator().FillStyles(reg, FillSpec{
		Prefix: "fs",
		Names:  param.Scalar("A"),
		Colors: param.Scalar[color.Color]("red"),
		Alphas: param.Scalar(0.3),
	})
	if err != nil {
		t.Fatalf("FillStyles() error: %v", err)
	}
	d, _ := reg.Style("fsA")
	if d[KeyEdgeColor] != color.Color("red") || d[KeyLineWidth] != 0.0 || d[KeyAlpha] != 0.3 {
		t.Errorf("fsA = %v, want edge red, width 0, alpha 0.3", d)
	}
}

func TestFillStylesAllSkipped(t *testing.T) {
	reg := NewRegistry()
	err := NewGenerator().FillStyles(reg, FillSpec{
		Prefix:   "fs",
		Names:    param.Scalar("A"),
		Suffixes: []*string{nil, nil},
		Colors:   param.Scalar[color.Color]("red"),
	})
	if err != nil {
		t.Fatalf("FillStyles() error: %v", err)
	}
	if reg.Len() != 0 || !reg.HasName("A") {
		t.Errorf("Len() = %d, HasName(A) = %v, want 0, true", reg.Len(), reg.HasName("A"))
	}
}

func TestFillStylesTooManySuffixes(t *testing.T) {
	err := NewGenerator().FillStyles(NewRegistry(), FillSpec{
		Prefix:   "fs",
		Names:    param.Scalar("A"),
		Suffixes: []*string{Suffix(""), Suffix("s"), Suffix("a"), Suffix("x")},
		Colors:   param.Scalar[color.Color]("red"),
	})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("FillStyles() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}
