// Package export encodes the contents of a style registry as JSON or TOML.
//
// Both formats carry the same document: the palette the styles were generated
// from, the registered names in registration order, and one entry per
// (prefix, suffix) group sorted by prefix, then suffix. Within a group the
// styles follow the name order.
//
//	data, err := export.JSON(reg, export.WithPrefixes("ls", "fs"))
package export

import (
	"bytes"
	"encoding/json"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/errors"
	"github.com/matzehuels/plotstyles/pkg/styles"
)

// Format names accepted by [Encode].
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// DefaultIndent is the indentation of both formats.
const DefaultIndent = "  "

// Option configures an export.
type Option func(*exporter)

type exporter struct {
	prefixes []string
	indent   string
}

// WithPrefixes restricts the export to groups with one of the given prefixes.
func WithPrefixes(prefixes ...string) Option {
	return func(e *exporter) { e.prefixes = prefixes }
}

// WithIndent sets the indentation string. The empty string produces compact JSON.
func WithIndent(indent string) Option { return func(e *exporter) { e.indent = indent } }

// Document is the exported form of a registry.
type Document struct {
	Palette string                 `json:"palette,omitempty" toml:"palette,omitempty"`
	Colors  map[string]color.Color `json:"colors,omitempty" toml:"colors,omitempty"`
	Names   []string               `json:"names" toml:"names"`
	Groups  []Group                `json:"groups" toml:"group"`
}

// Group holds the styles of one (prefix, suffix) group.
type Group struct {
	Prefix string  `json:"prefix" toml:"prefix"`
	Suffix string  `json:"suffix" toml:"suffix"`
	Styles []Style `json:"styles" toml:"style"`
}

// Style is one descriptor with its name and registry key.
type Style struct {
	Name  string            `json:"name" toml:"name"`
	Key   string            `json:"key" toml:"key"`
	Attrs styles.Descriptor `json:"attrs" toml:"attrs"`
}

// Build collects the document for reg.
func Build(reg *styles.Registry, opts ...Option) Document {
	e := newExporter(opts)
	return e.document(reg)
}

func newExporter(opts []Option) *exporter {
	e := &exporter{indent: DefaultIndent}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *exporter) document(reg *styles.Registry) Document {
	name, palette := reg.Palette()
	doc := Document{
		Palette: name,
		Colors:  palette,
		Names:   reg.Names(),
		Groups:  []Group{},
	}
	for _, gk := range reg.Groups() {
		if len(e.prefixes) > 0 && !slices.Contains(e.prefixes, gk.Prefix) {
			continue
		}
		g := Group{Prefix: gk.Prefix, Suffix: gk.Suffix}
		for _, n := range reg.GroupNames(gk.Prefix, gk.Suffix) {
			d, _ := reg.Lookup(gk.Prefix, n, gk.Suffix)
			g.Styles = append(g.Styles, Style{Name: n, Key: gk.Prefix + n + gk.Suffix, Attrs: d})
		}
		doc.Groups = append(doc.Groups, g)
	}
	return doc
}

// JSON encodes reg as a JSON document.
func JSON(reg *styles.Registry, opts ...Option) ([]byte, error) {
	e := newExporter(opts)
	doc := e.document(reg)
	var (
		data []byte
		err  error
	)
	if e.indent == "" {
		data, err = json.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", e.indent)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return data, nil
}

// TOML encodes reg as a TOML document.
func TOML(reg *styles.Registry, opts ...Option) ([]byte, error) {
	e := newExporter(opts)
	doc := e.document(reg)
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = e.indent
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
	}
	return buf.Bytes(), nil
}

// Encode dispatches to [JSON] or [TOML] by format name.
func Encode(format string, reg *styles.Registry, opts ...Option) ([]byte, error) {
	switch format {
	case FormatJSON:
		return JSON(reg, opts...)
	case FormatTOML:
		return TOML(reg, opts...)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want %s or %s)", format, FormatJSON, FormatTOML)
}
