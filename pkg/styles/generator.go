package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/errors"
	"github.com/matzehuels/plotstyles/pkg/param"
)

// Generator builds descriptors and registers them into a caller-supplied
// [Registry]. A Generator holds no descriptors itself and may be shared by
// call sites that use different registries.
type Generator struct {
	adjuster color.Adjuster
	logger   *log.Logger
}

// Option configures a [Generator].
type Option func(*Generator)

// WithAdjuster sets the colour adjuster used for edge colours.
// The default is [color.Blender].
func WithAdjuster(a color.Adjuster) Option {
	return func(g *Generator) {
		if a != nil {
			g.adjuster = a
		}
	}
}

// WithLogger sets the logger for debug output. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator returns a Generator configured by opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		adjuster: color.Blender{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Adjuster returns the colour adjuster in use.
func (g *Generator) Adjuster() color.Adjuster { return g.adjuster }

// entry is a descriptor planned for registration.
type entry struct {
	prefix, name, suffix string
	d                    Descriptor
}

// commit registers planned entries. Planning never touches the registry, so
// a failed call leaves it unchanged. Entries without a descriptor only
// register their name.
func (g *Generator) commit(reg *Registry, entries []entry) {
	for _, e := range entries {
		reg.addName(e.name)
		if e.d != nil {
			reg.put(e.prefix, e.name, e.suffix, e.d)
		}
	}
	if len(entries) > 0 {
		g.logger.Debug("registered styles", "count", len(entries), "first", entries[0].prefix+entries[0].name+entries[0].suffix)
	}
}

// ResolveName returns the name for index k of n and registers it in reg.
//
// A sequence is indexed directly. A scalar containing '%' is a template
// formatted with k+1 ("Reds%d" → "Reds1", "Reds2", ...). Any other scalar is
// used as is for every index.
func ResolveName(reg *Registry, names param.Param[string], k, n int) (string, error) {
	name, err := formatName(names, k, n)
	if err != nil {
		return "", err
	}
	reg.addName(name)
	return name, nil
}

func formatName(names param.Param[string], k, n int) (string, error) {
	name, err := names.Resolve(k, n)
	if err != nil {
		return "", err
	}
	if names.IsSeq() || !strings.Contains(name, "%") {
		return name, nil
	}
	out := fmt.Sprintf(name, k+1)
	if strings.Contains(out, "%!") {
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid name template %q", name)
	}
	return out, nil
}

type checker interface {
	Check(name string, n int) error
}

type field struct {
	name string
	p    checker
}

func checkFields(n int, fields ...field) error {
	for _, f := range fields {
		if err := f.p.Check(f.name, n); err != nil {
			return err
		}
	}
	return nil
}

func requireRegistry(reg *Registry) error {
	if reg == nil {
		return errors.New(errors.ErrCodeInvalidInput, "registry is nil")
	}
	return nil
}
