package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// Glyph is one positioned glyph of a Run.
type Glyph struct {
	// ID is the glyph index in the font.
	ID uint16

	// X and Y locate the glyph origin relative to the run origin on the
	// baseline. Y grows downwards.
	X, Y float64

	// Advance is the horizontal advance including letter spacing.
	Advance float64
}

// Run is a single line of shaped text. Glyphs are in visual order, so
// drawing them left to right reproduces the text for both left-to-right
// and right-to-left scripts.
type Run struct {
	// Text is the NFC-normalized source string.
	Text string

	// Font is the font the run was shaped with.
	Font *Font

	// Size is the font size in pixels per em.
	Size float64

	// Glyphs are the positioned glyphs in visual order.
	Glyphs []Glyph

	// Advance is the total horizontal advance, letter spacing included.
	// It is the width used for alignment and underlines.
	Advance float64

	// Metrics are the font metrics at Size.
	Metrics Metrics

	// RTL is set when the text is predominantly right-to-left.
	RTL bool

	// Oblique is the horizontal shear applied to outlines, used to
	// synthesize italics. Zero draws upright glyphs.
	Oblique float64
}

// Shaper converts strings to glyph runs using go-text/typesetting's
// HarfBuzz implementation.
//
// Shaper is safe for concurrent use. HarfbuzzShaper instances keep
// internal buffers and are pooled; go-text faces are created per call
// because font.Face is not safe for concurrent use.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a new Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

var defaultShaper = NewShaper()

// Shape shapes s with the package default shaper.
func Shape(s string, f *Font, size, letterSpacing float64) *Run {
	return defaultShaper.Shape(s, f, size, letterSpacing)
}

// Shape converts s into a Run at size pixels per em. letterSpacing is added
// after every glyph, the last one included, and may be negative.
func (sh *Shaper) Shape(s string, f *Font, size, letterSpacing float64) *Run {
	s = norm.NFC.String(s)
	run := &Run{Text: s, Font: f, Size: size}
	if f == nil || size <= 0 {
		return run
	}
	run.Metrics = f.Metrics(size)

	runes := []rune(s)
	if len(runes) == 0 {
		return run
	}
	run.RTL = isRTL(s)

	dir := di.DirectionLTR
	if run.RTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      gotext.NewFace(f.shaper),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := sh.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	sh.pool.Put(hb)

	run.Glyphs = make([]Glyph, 0, len(output.Glyphs))
	var x float64
	for _, g := range output.Glyphs {
		adv := fromFixed(g.Advance) + letterSpacing
		run.Glyphs = append(run.Glyphs, Glyph{
			ID: uint16(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16-bit
			X:  x + fromFixed(g.XOffset),
			// go-text offsets are y-up; runs are y-down.
			Y:       -fromFixed(g.YOffset),
			Advance: adv,
		})
		x += adv
	}
	run.Advance = x

	return run
}

// isRTL reports whether most of s lies in right-to-left bidi runs.
func isRTL(s string) bool {
	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return false
	}

	ordering, err := p.Order()
	if err != nil {
		return false
	}

	// run.Pos() returns RUNE indices (start, end inclusive)
	var rtl, ltr int
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		n := end - start + 1
		if run.Direction() == bidi.RightToLeft {
			rtl += n
		} else {
			ltr += n
		}
	}
	return rtl > ltr
}

// detectScript returns the script of the first non-space rune. Thumbnail
// captions are short single-script strings, so one script per run is
// enough.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
