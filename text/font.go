package text

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is a parsed TTF or OTF font file. The same data is parsed twice:
// once by golang.org/x/image/font/sfnt for outlines and metrics, and once
// by go-text/typesetting for shaping. Glyph IDs agree between the two
// because both index the same glyph table.
//
// Font is immutable and safe for concurrent use.
type Font struct {
	name   string
	sfnt   *sfnt.Font
	shaper *gotext.Font
}

// ParseFont parses font data. The data slice is copied internally and can
// be reused after this call.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	data = bytes.Clone(data)

	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	f := &Font{sfnt: sf, shaper: face.Font}
	if name, err := sf.Name(nil, sfnt.NameIDFull); err == nil {
		f.name = name
	}
	return f, nil
}

// Name returns the full font name from the name table, if any.
func (f *Font) Name() string {
	return f.name
}

// Family returns the family name from the name table, if any.
func (f *Font) Family() string {
	name, err := f.sfnt.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Metrics returns the font metrics at size pixels per em.
func (f *Font) Metrics(size float64) Metrics {
	var buf sfnt.Buffer

	m, err := f.sfnt.Metrics(&buf, toFixed(size), xfont.HintingNone)
	if err != nil {
		return Metrics{}
	}

	return Metrics{
		Ascent:    fromFixed(m.Ascent),
		Descent:   fromFixed(m.Descent),
		LineGap:   fromFixed(m.Height) - fromFixed(m.Ascent) - fromFixed(m.Descent),
		CapHeight: fromFixed(m.CapHeight),
	}
}

// toFixed converts a float64 to fixed.Int26_6.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fromFixed converts fixed.Int26_6 to float64.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
