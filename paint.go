package thumbnail

import (
	"fmt"
	"math"

	"github.com/gogpu/thumbnail/text"
)

// ShadowAlphaFactor scales the annotation opacity to give the shadow alpha.
const ShadowAlphaFactor = 0.8

// Underline geometry in reference units.
const (
	UnderlineOffset = 5
	UnderlineWidth  = 2
)

// Upper bounds for annotation lengths in reference units. Larger values
// are clamped and reported as DegradedValue.
const (
	MaxFontSize      = 1000
	MaxStrokeWidth   = 100
	MaxShadowBlur    = 100
	MaxShadowOffset  = ReferenceWidth
	MaxLetterSpacing = 1000
)

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// ShadowPaint is a fully resolved drop shadow. Lengths are in pixels.
type ShadowPaint struct {
	Color   RGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// Paint is the complete paint descriptor of a single draw call. Surfaces
// hold no paint state between calls, so nothing set for one call can leak
// into another.
type Paint struct {
	// Color is the color of the shape itself.
	Color RGBA

	// Shadow, when non-nil, is painted under the shape.
	Shadow *ShadowPaint
}

// StrokePaint is a Paint for outlining text.
type StrokePaint struct {
	Paint

	// Width is the full line width in pixels, centered on the outline.
	Width float64
}

// UnderlinePaint is a resolved underline segment. The segment runs from
// X0 to X1 at height Y; Width is the line thickness.
type UnderlinePaint struct {
	Paint

	X0, X1 float64
	Y      float64
	Width  float64
}

// Plan is the immutable drawing recipe for one annotation: the shaped text,
// where it goes, and the descriptor of every draw call in paint order
// (stroke, fill, underline).
type Plan struct {
	// ID is the annotation ID.
	ID string

	// Anchor is the annotation position resolved to pixels.
	Anchor Point

	// Origin is the pen origin on the baseline after alignment.
	Origin Point

	// Run is the shaped text.
	Run *text.Run

	// Font reports how the font family and style were resolved.
	Font text.Resolution

	// Stroke is nil when the stroke is disabled.
	Stroke *StrokePaint

	// Fill paints the glyphs.
	Fill Paint

	// Underline is nil unless the annotation is underlined.
	Underline *UnderlinePaint

	// Degraded lists the substitutions made while planning.
	Degraded []RenderDegraded
}

// planner resolves annotations into plans for one output size.
type planner struct {
	fonts  *text.Registry
	shaper *text.Shaper
	width  int
	height int
	scale  float64
	anchor VerticalAnchor
}

// plan resolves a into a Plan. Errors are returned only when no font can
// be resolved at all; every other problem is substituted and recorded.
func (p *planner) plan(a TextAnnotation) (*Plan, error) {
	pl := &Plan{ID: a.ID}
	degrade := func(kind DegradedKind, field, format string, args ...any) {
		pl.Degraded = append(pl.Degraded, RenderDegraded{
			ID:     a.ID,
			Kind:   kind,
			Field:  field,
			Detail: fmt.Sprintf(format, args...),
		})
	}

	// Values out of range are clamped rather than rejected.
	opacity := a.Opacity
	if math.IsNaN(opacity) || opacity < 0 || opacity > 1 {
		opacity = clamp01(opacity)
		degrade(DegradedValue, "opacity", "%v clamped to %v", a.Opacity, opacity)
	}
	px, okX := clampRange(a.Position.X, 0, 100)
	py, okY := clampRange(a.Position.Y, 0, 100)
	if !okX || !okY {
		degrade(DegradedValue, "position", "(%v, %v) clamped to (%v, %v)", a.Position.X, a.Position.Y, px, py)
	}
	size := a.FontSize
	if math.IsNaN(size) || size <= 0 {
		size = DefaultFontSize
		degrade(DegradedValue, "fontSize", "%v replaced by %v", a.FontSize, size)
	} else if size > MaxFontSize {
		size = MaxFontSize
		degrade(DegradedValue, "fontSize", "%v clamped to %v", a.FontSize, size)
	}
	strokeWidth, ok := clampRange(a.StrokeWidth, 0, MaxStrokeWidth)
	if !ok {
		degrade(DegradedValue, "strokeWidth", "%v clamped to %v", a.StrokeWidth, strokeWidth)
	}
	spacing, ok := clampRange(a.LetterSpacing, -MaxLetterSpacing, MaxLetterSpacing)
	if !ok {
		degrade(DegradedValue, "letterSpacing", "%v clamped to %v", a.LetterSpacing, spacing)
	}

	// Anchor.
	pl.Anchor = Point{
		X: px / 100 * float64(p.width),
		Y: py / 100 * float64(p.height),
	}

	// Font.
	style := text.Style{Bold: a.Bold, Italic: a.Italic}
	font, res, err := p.fonts.Resolve(a.FontFamily, style)
	if err != nil {
		return nil, fmt.Errorf("thumbnail: annotation %q: %w", a.ID, err)
	}
	pl.Font = res
	if res.Fallback {
		degrade(DegradedFont, "fontFamily", "%q not registered, using %q", a.FontFamily, res.Family)
	}
	if res.MissingBold {
		degrade(DegradedStyle, "bold", "%q has no bold face, using %s", res.Family, res.Style)
	}

	run := p.shaper.Shape(a.Text, font, size*p.scale, spacing*p.scale)
	run.Oblique = res.Oblique()
	pl.Run = run

	// Alignment.
	pl.Origin = Point{
		X: pl.Anchor.X - run.Advance*a.Align.anchorFactor(),
		Y: pl.Anchor.Y,
	}
	if p.anchor == AnchorMiddle {
		pl.Origin.Y += (run.Metrics.Ascent - run.Metrics.Descent) / 2
	}

	// Colors.
	fill, err := HexWithOpacity(a.Color, opacity)
	if err != nil {
		fill = White.WithAlpha(opacity)
		degrade(DegradedColor, "color", "%q replaced by %s", a.Color, White.Hex())
	}
	pl.Fill = Paint{Color: fill}

	if a.Shadow.Enabled {
		sc, err := HexWithOpacity(a.Shadow.Color, opacity*ShadowAlphaFactor)
		if err != nil {
			sc = Black.WithAlpha(opacity * ShadowAlphaFactor)
			degrade(DegradedColor, "shadow.color", "%q replaced by %s", a.Shadow.Color, Black.Hex())
		}
		blur, ok := clampRange(a.Shadow.Blur, 0, MaxShadowBlur)
		if !ok {
			degrade(DegradedValue, "shadow.blur", "%v clamped to %v", a.Shadow.Blur, blur)
		}
		ox, okX := clampRange(a.Shadow.OffsetX, -MaxShadowOffset, MaxShadowOffset)
		oy, okY := clampRange(a.Shadow.OffsetY, -MaxShadowOffset, MaxShadowOffset)
		if !okX || !okY {
			degrade(DegradedValue, "shadow.offset", "(%v, %v) clamped to (%v, %v)", a.Shadow.OffsetX, a.Shadow.OffsetY, ox, oy)
		}
		// One shadow descriptor is shared by every draw call of the plan,
		// like a single canvas paint state.
		pl.Fill.Shadow = &ShadowPaint{
			Color:   sc,
			Blur:    blur * p.scale,
			OffsetX: ox * p.scale,
			OffsetY: oy * p.scale,
		}
	}

	if strokeWidth > 0 {
		stroke, err := HexWithOpacity(a.StrokeColor, opacity)
		if err != nil {
			stroke = Black.WithAlpha(opacity)
			degrade(DegradedColor, "strokeColor", "%q replaced by %s", a.StrokeColor, Black.Hex())
		}
		pl.Stroke = &StrokePaint{
			Paint: Paint{Color: stroke, Shadow: pl.Fill.Shadow},
			Width: strokeWidth * 2 * p.scale,
		}
	}

	if a.Underline {
		pl.Underline = &UnderlinePaint{
			Paint: Paint{Color: fill, Shadow: pl.Fill.Shadow},
			X0:    pl.Origin.X,
			X1:    pl.Origin.X + run.Advance,
			Y:     pl.Origin.Y + UnderlineOffset*p.scale,
			Width: UnderlineWidth * p.scale,
		}
	}

	return pl, nil
}

// clampRange restricts v to [lo, hi]. NaN maps to 0 when 0 is in range
// and to lo otherwise. ok is false when v had to change.
func clampRange(v, lo, hi float64) (clamped float64, ok bool) {
	switch {
	case math.IsNaN(v):
		return math.Max(lo, math.Min(0, hi)), false
	case v < lo:
		return lo, false
	case v > hi:
		return hi, false
	default:
		return v, true
	}
}
