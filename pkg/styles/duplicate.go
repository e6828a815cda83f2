package styles

import (
	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/errors"
)

// ColorKey returns the key holding the colour of d: "color" if present,
// otherwise "facecolor".
func ColorKey(d Descriptor) (string, error) {
	for _, k := range []string{KeyColor, KeyFaceColor} {
		if _, ok := d[k]; ok {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeUnknownColorKey, "descriptor has neither %q nor %q", KeyColor, KeyFaceColor)
}

// LighterStyles returns n copies of base with increasingly lighter colours.
// Copy 0 is the lightest and copy n-1 equals base.
func LighterStyles(adj color.Adjuster, base Descriptor, n int) ([]Descriptor, error) {
	return gradient(base, n, func(k int) float64 {
		return float64(k+1) / float64(n)
	}, adj.Lighter)
}

// DarkerStyles returns n copies of base with increasingly darker colours.
// Copy 0 is the darkest and copy n-1 equals base.
func DarkerStyles(adj color.Adjuster, base Descriptor, n int) ([]Descriptor, error) {
	return gradient(base, n, func(k int) float64 {
		return float64(k+1) / float64(n)
	}, adj.Darker)
}

// LighterDarkerStyles returns n copies of base ranging from lighter to
// darker colours, symmetric around base. For odd n the middle copy equals
// base; for even n no copy does.
func LighterDarkerStyles(adj color.Adjuster, base Descriptor, n int) ([]Descriptor, error) {
	half := (n + 1) / 2
	return gradient(base, n, func(k int) float64 {
		return 1 + (float64(k)-float64(n-1)/2)/float64(half)
	}, adj.Lighter)
}

func gradient(base Descriptor, n int, lightness func(k int) float64, adjust func(color.Color, float64) (color.Color, error)) ([]Descriptor, error) {
	if n < 1 {
		return nil, errors.New(errors.ErrCodeDegenerateCount, "gradient needs at least one style, got %d", n)
	}
	key, err := ColorKey(base)
	if err != nil {
		return nil, err
	}
	c, ok := base.Color(key)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidColor, "%s is %T, not a colour", key, base[key])
	}
	if n == 1 {
		return []Descriptor{base.Clone()}, nil
	}
	out := make([]Descriptor, n)
	for k := range n {
		adjusted, err := adjust(c, lightness(k))
		if err != nil {
			return nil, err
		}
		out[k] = base.With(Descriptor{key: adjusted})
	}
	return out, nil
}
