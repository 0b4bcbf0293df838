package thumbnail

import (
	"fmt"
	"strings"
)

// Alignment selects how an annotation's anchor relates to its text box.
type Alignment uint8

const (
	// AlignLeft places the anchor on the left edge of the text.
	AlignLeft Alignment = iota

	// AlignCenter places the anchor on the horizontal center of the text.
	AlignCenter

	// AlignRight places the anchor on the right edge of the text.
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// ParseAlignment parses "left", "center" or "right" (case-insensitive).
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "start":
		return AlignLeft, nil
	case "center", "centre", "middle":
		return AlignCenter, nil
	case "right", "end":
		return AlignRight, nil
	default:
		return 0, fmt.Errorf("thumbnail: unknown alignment %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	if a > AlignRight {
		return nil, fmt.Errorf("thumbnail: invalid alignment %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(b []byte) error {
	v, err := ParseAlignment(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// anchorFactor returns the fraction of the text width that lies left of
// the anchor.
func (a Alignment) anchorFactor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// Position is a point expressed in percent of the canvas size.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Shadow configures an annotation's drop shadow. Lengths are in reference
// units. The shadow alpha is the annotation opacity times
// ShadowAlphaFactor.
type Shadow struct {
	Enabled bool    `yaml:"enabled"`
	Blur    float64 `yaml:"blur"`
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
	Color   string  `yaml:"color"`
}

// TextAnnotation is one positioned, styled text layer. The order of
// annotations in a list is their paint order: later entries cover earlier
// ones.
type TextAnnotation struct {
	// ID identifies the annotation; it must be unique within a list.
	ID string `yaml:"id"`

	// Text is the content. Empty text still occupies a slot.
	Text string `yaml:"text"`

	// Position is the anchor in percent of the canvas, each axis in [0, 100].
	Position Position `yaml:"position"`

	// FontSize is in reference units and scaled with the output width.
	FontSize float64 `yaml:"fontSize"`

	// FontFamily is a CSS-like family list such as "Impact, sans-serif".
	FontFamily string `yaml:"fontFamily"`

	// Color is the fill color as "#RRGGBB".
	Color string `yaml:"color"`

	// Opacity in [0, 1] multiplies every paint of the annotation.
	Opacity float64 `yaml:"opacity"`

	Bold      bool `yaml:"bold"`
	Italic    bool `yaml:"italic"`
	Underline bool `yaml:"underline"`

	// Align selects how Position relates to the text box horizontally.
	Align Alignment `yaml:"align"`

	// StrokeWidth draws an outline of twice this width; 0 disables it.
	StrokeWidth float64 `yaml:"strokeWidth"`
	StrokeColor string  `yaml:"strokeColor"`

	Shadow Shadow `yaml:"shadow"`

	// LetterSpacing is added after every glyph and may be negative.
	LetterSpacing float64 `yaml:"letterSpacing"`
}

// Defaults used by NewAnnotation.
const (
	DefaultText        = "Your Text Here"
	DefaultFontSize    = 48
	DefaultFontFamily  = "Inter"
	DefaultColor       = "#FFFFFF"
	DefaultStrokeColor = "#000000"
	DefaultShadowColor = "#000000"
)

// NewAnnotation returns an annotation with the editor's defaults: centered
// bold white text with a thin black outline and a soft drop shadow.
func NewAnnotation(id string) TextAnnotation {
	return TextAnnotation{
		ID:          id,
		Text:        DefaultText,
		Position:    Position{X: 50, Y: 50},
		FontSize:    DefaultFontSize,
		FontFamily:  DefaultFontFamily,
		Color:       DefaultColor,
		Opacity:     1,
		Bold:        true,
		Align:       AlignCenter,
		StrokeWidth: 1,
		StrokeColor: DefaultStrokeColor,
		Shadow: Shadow{
			Enabled: true,
			Blur:    4,
			OffsetX: 2,
			OffsetY: 2,
			Color:   DefaultShadowColor,
		},
	}
}

// ValidateAnnotations checks that every annotation has a non-empty ID and
// that IDs are unique.
func ValidateAnnotations(annotations []TextAnnotation) error {
	seen := make(map[string]int, len(annotations))
	for i, a := range annotations {
		if a.ID == "" {
			return fmt.Errorf("%w: annotation %d", ErrEmptyID, i)
		}
		if j, ok := seen[a.ID]; ok {
			return fmt.Errorf("%w: %q at %d and %d", ErrDuplicateID, a.ID, j, i)
		}
		seen[a.ID] = i
	}
	return nil
}
