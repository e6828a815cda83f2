package styles

import (
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/plotstyles/pkg/color"
)

// GroupKey identifies the group of descriptors sharing a prefix and suffix,
// e.g. {Prefix: "ls", Suffix: "m"} for all minor line styles.
type GroupKey struct {
	Prefix string
	Suffix string
}

// String returns prefix+suffix, the conventional group name.
func (k GroupKey) String() string { return k.Prefix + k.Suffix }

// Registry holds generated descriptors and the names they were generated for.
//
// A Registry is owned by the caller and passed to every generator call.
// It is not safe for concurrent writes; independent call sites should each
// use their own Registry.
type Registry struct {
	names       []string
	seen        map[string]struct{}
	styles      map[string]Descriptor
	groups      map[GroupKey]map[string]Descriptor
	paletteName string
	palette     color.Palette
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		seen:   make(map[string]struct{}),
		styles: make(map[string]Descriptor),
		groups: make(map[GroupKey]map[string]Descriptor),
	}
}

// addName appends name to the ordered name list unless it is already there.
func (r *Registry) addName(name string) {
	if _, ok := r.seen[name]; ok {
		return
	}
	r.seen[name] = struct{}{}
	r.names = append(r.names, name)
}

// put stores d under prefix+name+suffix and in the (prefix, suffix) group.
// A later put for the same key replaces the earlier descriptor.
func (r *Registry) put(prefix, name, suffix string, d Descriptor) {
	gk := GroupKey{Prefix: prefix, Suffix: suffix}
	g, ok := r.groups[gk]
	if !ok {
		g = make(map[string]Descriptor)
		r.groups[gk] = g
	}
	g[name] = d
	r.styles[prefix+name+suffix] = d
}

// Names returns the registered group names in first-seen order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// HasName reports whether name has been registered.
func (r *Registry) HasName(name string) bool {
	_, ok := r.seen[name]
	return ok
}

// Style returns a copy of the descriptor stored under key (prefix+name+suffix).
func (r *Registry) Style(key string) (Descriptor, bool) {
	d, ok := r.styles[key]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// Lookup returns a copy of the descriptor for name in the (prefix, suffix) group.
func (r *Registry) Lookup(prefix, name, suffix string) (Descriptor, bool) {
	d, ok := r.groups[GroupKey{Prefix: prefix, Suffix: suffix}][name]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// Group returns a copy of the name → descriptor mapping of the (prefix, suffix) group.
func (r *Registry) Group(prefix, suffix string) (map[string]Descriptor, bool) {
	g, ok := r.groups[GroupKey{Prefix: prefix, Suffix: suffix}]
	if !ok {
		return nil, false
	}
	out := make(map[string]Descriptor, len(g))
	for name, d := range g {
		out[name] = d.Clone()
	}
	return out, true
}

// GroupNames returns the names present in the (prefix, suffix) group, in
// registration order.
func (r *Registry) GroupNames(prefix, suffix string) []string {
	g := r.groups[GroupKey{Prefix: prefix, Suffix: suffix}]
	var names []string
	for _, name := range r.names {
		if _, ok := g[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Groups returns all group keys sorted by prefix, then suffix.
func (r *Registry) Groups() []GroupKey {
	keys := slices.Collect(maps.Keys(r.groups))
	slices.SortFunc(keys, func(a, b GroupKey) int {
		if c := strings.Compare(a.Prefix, b.Prefix); c != 0 {
			return c
		}
		return strings.Compare(a.Suffix, b.Suffix)
	})
	return keys
}

// Keys returns all descriptor keys in sorted order.
func (r *Registry) Keys() []string {
	return slices.Sorted(maps.Keys(r.styles))
}

// Len returns the number of addressable descriptors.
func (r *Registry) Len() int { return len(r.styles) }

// SetPalette records the palette the registered styles were generated from.
func (r *Registry) SetPalette(name string, p color.Palette) {
	r.paletteName = name
	r.palette = p.Clone()
}

// Palette returns the recorded palette name and a copy of its colours.
// Both are empty when no palette was recorded.
func (r *Registry) Palette() (string, color.Palette) {
	return r.paletteName, r.palette.Clone()
}
