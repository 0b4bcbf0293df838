// Package document reads thumbnail documents: a background image, the
// output geometry, extra fonts and the annotation layers to draw.
//
// Documents are YAML; JSON documents are accepted as well since JSON is a
// subset of YAML. A minimal document:
//
//	background: photo.jpg
//	layers:
//	  - id: title
//	    text: BIG NEWS
//	    fontSize: 96
//	    preset: extreme
//
// Layer fields that are not given take the defaults of
// thumbnail.NewAnnotation.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/thumbnail"
	"github.com/gogpu/thumbnail/text"
)

// Errors returned while loading documents.
var (
	// ErrNoBackground is returned when a document names no background.
	ErrNoBackground = errors.New("document: no background")

	// ErrUnknownPreset is returned for a layer preset that does not exist.
	ErrUnknownPreset = errors.New("document: unknown preset")

	// ErrUnknownAnchor is returned for an output anchor other than
	// "baseline" or "middle".
	ErrUnknownAnchor = errors.New("document: unknown vertical anchor")
)

// Document is a complete thumbnail description.
type Document struct {
	// Background is the background image path, relative to the document.
	Background string `yaml:"background"`

	Output Output `yaml:"output,omitempty"`

	// Fonts are registered on top of the bundled Go fonts.
	Fonts []Font `yaml:"fonts,omitempty"`

	// Layers are drawn in order; later layers cover earlier ones.
	Layers []Layer `yaml:"layers"`

	dir string
}

// Output describes the exported image.
type Output struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	File   string `yaml:"file,omitempty"`

	// Anchor is "baseline" (default) or "middle".
	Anchor string `yaml:"anchor,omitempty"`
}

// Font registers a font file under a family name and style.
type Font struct {
	Family string `yaml:"family"`
	Bold   bool   `yaml:"bold,omitempty"`
	Italic bool   `yaml:"italic,omitempty"`
	Path   string `yaml:"path"`
}

// Layer is one annotation. Preset, when set, names a built-in emphasis
// style applied over the layer's own stroke and shadow settings.
type Layer struct {
	thumbnail.TextAnnotation `yaml:",inline"`

	Preset string `yaml:"preset,omitempty"`
}

// UnmarshalYAML decodes a layer over the editor defaults.
func (l *Layer) UnmarshalYAML(n *yaml.Node) error {
	type plain Layer
	p := plain{TextAnnotation: thumbnail.NewAnnotation("")}
	if err := n.Decode(&p); err != nil {
		return err
	}
	*l = Layer(p)
	return nil
}

// Load reads and parses the document at path. Relative paths inside the
// document are resolved against the directory containing it.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	doc.dir = filepath.Dir(path)
	return doc, nil
}

// Parse parses a document. Relative paths are resolved against the
// current directory.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("document: parse: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks references that can be checked without reading files.
func (d *Document) Validate() error {
	if strings.TrimSpace(d.Background) == "" {
		return ErrNoBackground
	}
	if _, err := d.anchor(); err != nil {
		return err
	}
	for i, l := range d.Layers {
		if l.Preset == "" {
			continue
		}
		if _, ok := thumbnail.LookupPreset(l.Preset); !ok {
			return fmt.Errorf("%w %q in layer %d", ErrUnknownPreset, l.Preset, i+1)
		}
	}
	for i, f := range d.Fonts {
		if strings.TrimSpace(f.Family) == "" || f.Path == "" {
			return fmt.Errorf("document: font %d needs a family and a path", i+1)
		}
	}
	return nil
}

// Dir returns the directory relative paths are resolved against.
func (d *Document) Dir() string {
	if d.dir == "" {
		return "."
	}
	return d.dir
}

// Resolve returns path made absolute against the document directory.
func (d *Document) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(d.Dir(), path)
}

// BackgroundPath returns the resolved background path.
func (d *Document) BackgroundPath() string {
	return d.Resolve(d.Background)
}

// OutputPath returns the resolved output path, defaulting to
// thumbnail.DefaultFilename next to the document.
func (d *Document) OutputPath() string {
	if d.Output.File == "" {
		return d.Resolve(thumbnail.DefaultFilename)
	}
	return d.Resolve(d.Output.File)
}

// Annotations returns the layers as annotations with presets applied.
// Layers without an ID are named "layer-N" after their position.
func (d *Document) Annotations() []thumbnail.TextAnnotation {
	out := make([]thumbnail.TextAnnotation, 0, len(d.Layers))
	for i, l := range d.Layers {
		a := l.TextAnnotation
		if a.ID == "" {
			a.ID = fmt.Sprintf("layer-%d", i+1)
		}
		if p, ok := thumbnail.LookupPreset(l.Preset); ok {
			p.Apply(&a)
		}
		out = append(out, a)
	}
	return out
}

// Registry returns the bundled font registry extended with the document's
// fonts.
func (d *Document) Registry() (*text.Registry, error) {
	reg := text.NewDefaultRegistry()
	for _, f := range d.Fonts {
		path := d.Resolve(f.Path)
		data, err := os.ReadFile(path) //nolint:gosec // font paths come from the document
		if err != nil {
			return nil, fmt.Errorf("document: font %s: %w", f.Family, err)
		}
		style := text.Style{Bold: f.Bold, Italic: f.Italic}
		if err := reg.RegisterData(f.Family, style, data); err != nil {
			return nil, fmt.Errorf("document: font %s (%s): %w", f.Family, path, err)
		}
	}
	return reg, nil
}

// Options returns the compositor options the document asks for. The font
// registry is included when the document registers fonts.
func (d *Document) Options() ([]thumbnail.Option, error) {
	var opts []thumbnail.Option
	if d.Output.Width != 0 || d.Output.Height != 0 {
		w, h := d.Output.Width, d.Output.Height
		if w == 0 {
			w = thumbnail.DefaultWidth
		}
		if h == 0 {
			h = thumbnail.DefaultHeight
		}
		opts = append(opts, thumbnail.WithSize(w, h))
	}

	anchor, err := d.anchor()
	if err != nil {
		return nil, err
	}
	opts = append(opts, thumbnail.WithVerticalAnchor(anchor))

	if len(d.Fonts) > 0 {
		reg, err := d.Registry()
		if err != nil {
			return nil, err
		}
		opts = append(opts, thumbnail.WithFonts(reg))
	}
	return opts, nil
}

func (d *Document) anchor() (thumbnail.VerticalAnchor, error) {
	switch strings.ToLower(strings.TrimSpace(d.Output.Anchor)) {
	case "", "baseline", "alphabetic":
		return thumbnail.AnchorBaseline, nil
	case "middle":
		return thumbnail.AnchorMiddle, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownAnchor, d.Output.Anchor)
	}
}
