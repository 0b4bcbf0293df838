package thumbnail

import (
	"image"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/thumbnail/internal/filter"
	"github.com/gogpu/thumbnail/text"
)

// Surface is an RGBA drawing target. Every draw call takes its complete
// paint as an argument; the surface keeps no paint state of its own.
type Surface struct {
	img *image.RGBA
}

// NewSurface creates a transparent surface with the given dimensions.
func NewSurface(width, height int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Image returns the underlying image. It is not copied.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// GetPixel returns the color of a single pixel.
func (s *Surface) GetPixel(x, y int) RGBA {
	if !image.Pt(x, y).In(s.img.Rect) {
		return Transparent
	}
	c := s.img.RGBAAt(x, y)
	if c.A == 0 {
		return Transparent
	}
	// Stored premultiplied; report straight alpha.
	a := float64(c.A)
	return RGBA{
		R: float64(c.R) / a,
		G: float64(c.G) / a,
		B: float64(c.B) / a,
		A: a / 255,
	}
}

// DrawBackground stretches src over the whole surface, replacing its
// contents. Aspect ratio is not preserved.
func (s *Surface) DrawBackground(src image.Image, scaler xdraw.Scaler) {
	if scaler == nil {
		scaler = xdraw.CatmullRom
	}
	scaler.Scale(s.img, s.img.Rect, src, src.Bounds(), xdraw.Src, nil)
}

// FillMask composites mask in the paint color, preceded by the paint's
// shadow if it has one.
func (s *Surface) FillMask(mask *image.Alpha, p Paint) {
	if mask == nil || mask.Rect.Empty() {
		return
	}
	if sh := p.Shadow; sh != nil && sh.Color.A > 0 {
		ds := sh.filter()
		if ds.ExpandBounds(mask.Rect).Overlaps(s.img.Rect) {
			s.compose(ds.Mask(mask), sh.Color)
		}
	}
	s.compose(mask, p.Color)
}

func (sh *ShadowPaint) filter() filter.DropShadow {
	return filter.DropShadow{OffsetX: sh.OffsetX, OffsetY: sh.OffsetY, Blur: sh.Blur}
}

// clip returns the region in which coverage drawn with p, after growing by
// reach pixels, can still affect the surface.
func (s *Surface) clip(p Paint, reach int) image.Rectangle {
	r := s.img.Rect.Inset(-reach)
	if sh := p.Shadow; sh != nil && sh.Color.A > 0 {
		ds := sh.filter()
		r = r.Union(s.img.Rect.Inset(-reach - filter.KernelHalfSize(ds.Sigma())).Sub(ds.Offset()))
	}
	return r
}

// compose blends c through mask with the source-over operator.
func (s *Surface) compose(mask *image.Alpha, c RGBA) {
	if c.A <= 0 {
		return
	}
	r := mask.Rect.Intersect(s.img.Rect)
	if r.Empty() {
		return
	}
	xdraw.DrawMask(s.img, r, image.NewUniform(c.NRGBA()), image.Point{}, mask, r.Min, xdraw.Over)
}

// DrawText fills run with its pen origin at (x, y) on the baseline.
func (s *Surface) DrawText(run *text.Run, x, y float64, p Paint) {
	if run == nil {
		return
	}
	s.FillMask(run.CoverageWithin(x, y, s.clip(p, 0)), p)
}

// StrokeText outlines run with its pen origin at (x, y). The line is
// centered on the glyph contours, half inside and half outside.
func (s *Surface) StrokeText(run *text.Run, x, y float64, p StrokePaint) {
	if run == nil || p.Width <= 0 {
		return
	}
	half := p.Width / 2
	mask := run.CoverageWithin(x, y, s.clip(p.Paint, filter.Reach(half)))
	s.FillMask(filter.Band(mask, half), p.Paint)
}

// DrawUnderline paints the underline segment with butt caps.
func (s *Surface) DrawUnderline(u UnderlinePaint) {
	if u.X1 <= u.X0 || u.Width <= 0 {
		return
	}
	c := s.clip(u.Paint, 1)
	x0 := math.Max(u.X0, float64(c.Min.X))
	x1 := math.Min(u.X1, float64(c.Max.X))
	y0 := math.Max(u.Y-u.Width/2, float64(c.Min.Y))
	y1 := math.Min(u.Y+u.Width/2, float64(c.Max.Y))
	if x1 <= x0 || y1 <= y0 {
		return
	}
	s.FillMask(rectCoverage(x0, y0, x1, y1), u.Paint)
}

// EncodePNG writes the surface to w as PNG.
func (s *Surface) EncodePNG(w io.Writer, level png.CompressionLevel) error {
	enc := png.Encoder{CompressionLevel: level}
	return enc.Encode(w, s.img)
}

// rectCoverage rasterizes the rectangle [x0,x1]×[y0,y1] with anti-aliased
// edges.
func rectCoverage(x0, y0, x1, y1 float64) *image.Alpha {
	bounds := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	)
	if bounds.Empty() {
		return image.NewAlpha(image.Rectangle{})
	}
	ox := float32(bounds.Min.X)
	oy := float32(bounds.Min.Y)
	fx0, fy0 := float32(x0)-ox, float32(y0)-oy
	fx1, fy1 := float32(x1)-ox, float32(y1)-oy

	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.MoveTo(fx0, fy0)
	z.LineTo(fx1, fy0)
	z.LineTo(fx1, fy1)
	z.LineTo(fx0, fy1)
	z.ClosePath()

	mask := image.NewAlpha(bounds)
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}
