package filter

import (
	"image"
	"math"
)

// DropShadow describes the coverage cast by a shape: its mask blurred and
// moved by a whole-pixel offset. Colorizing the result is left to the
// caller, which already owns the paint for the shape.
type DropShadow struct {
	// OffsetX is the horizontal shadow offset in pixels.
	OffsetX float64

	// OffsetY is the vertical shadow offset in pixels.
	OffsetY float64

	// Blur is the canvas-style blur amount. The Gaussian standard deviation
	// used is Blur/2.
	Blur float64
}

// Sigma returns the Gaussian standard deviation for the shadow blur.
func (s DropShadow) Sigma() float64 {
	if s.Blur <= 0 {
		return 0
	}
	return s.Blur / 2
}

// Offset returns the shadow offset snapped to whole pixels.
func (s DropShadow) Offset() image.Point {
	return image.Pt(int(math.Round(s.OffsetX)), int(math.Round(s.OffsetY)))
}

// Mask returns the shadow coverage for src.
// The algorithm:
//  1. Blur the coverage (sigma = Blur/2)
//  2. Offset the blurred coverage
func (s DropShadow) Mask(src *image.Alpha) *image.Alpha {
	if src == nil {
		return nil
	}
	return Translate(Blur(src, s.Sigma()), s.Offset())
}

// ExpandBounds returns the region covered by the shadow of a shape that
// occupies r.
func (s DropShadow) ExpandBounds(r image.Rectangle) image.Rectangle {
	return r.Inset(-KernelHalfSize(s.Sigma())).Add(s.Offset())
}

// Translate returns m moved by d. The result shares pixel storage with m.
func Translate(m *image.Alpha, d image.Point) *image.Alpha {
	if m == nil {
		return nil
	}
	return &image.Alpha{
		Pix:    m.Pix,
		Stride: m.Stride,
		Rect:   m.Rect.Add(d),
	}
}
