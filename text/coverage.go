package text

import (
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/vector"
)

// segment is an outline segment already placed in surface coordinates.
type segment struct {
	op   sfnt.SegmentOp
	args [3][2]float32
}

// outline returns the run's glyph outlines placed with the pen origin at
// (x, y) on the baseline, with the run's oblique shear applied. Glyphs
// without an outline (spaces, color bitmaps) contribute nothing. When clip
// is not empty, glyphs whose outline does not overlap it are dropped.
func (r *Run) outline(x, y float64, clip image.Rectangle) []segment {
	if r.Font == nil || len(r.Glyphs) == 0 {
		return nil
	}

	var (
		buf  sfnt.Buffer
		segs []segment
	)
	ppem := toFixed(r.Size)

	for _, g := range r.Glyphs {
		loaded, err := r.Font.sfnt.LoadGlyph(&buf, sfnt.GlyphIndex(g.ID), ppem, nil)
		if err != nil {
			// ErrNotFound and ErrColoredGlyph glyphs are skipped.
			continue
		}

		ox := x + g.X
		oy := y + g.Y
		start := len(segs)
		for _, s := range loaded {
			seg := segment{op: s.Op}
			for i := range s.Args {
				// sfnt coordinates are y-down relative to the glyph origin,
				// so points above the baseline have negative py.
				px := fromFixed(s.Args[i].X)
				py := fromFixed(s.Args[i].Y)
				seg.args[i] = [2]float32{
					float32(ox + px - r.Oblique*py),
					float32(oy + py),
				}
			}
			segs = append(segs, seg)
		}
		if !clip.Empty() && !outlineBounds(segs[start:]).Overlaps(clip) {
			segs = segs[:start]
		}
	}

	return segs
}

// pointCount returns how many args of a segment are meaningful.
func pointCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

func outlineBounds(segs []segment) image.Rectangle {
	if len(segs) == 0 {
		return image.Rectangle{}
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range segs {
		for i := 0; i < pointCount(s.op); i++ {
			px, py := float64(s.args[i][0]), float64(s.args[i][1])
			minX = math.Min(minX, px)
			minY = math.Min(minY, py)
			maxX = math.Max(maxX, px)
			maxY = math.Max(maxY, py)
		}
	}

	// One pixel of slack for anti-aliased edges.
	return image.Rect(
		int(math.Floor(minX))-1,
		int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1,
		int(math.Ceil(maxY))+1,
	)
}

// Coverage rasterizes the run with the pen origin at (x, y) on the
// baseline into an anti-aliased mask. The mask Rect is in the same
// coordinate space as (x, y). A run without outlines yields an empty mask.
func (r *Run) Coverage(x, y float64) *image.Alpha {
	return r.CoverageWithin(x, y, image.Rectangle{})
}

// CoverageWithin is like Coverage but skips glyphs lying entirely outside
// clip, which bounds the mask size for long or oversized runs. Glyphs
// crossing the clip edge are rasterized whole. An empty clip disables
// culling.
func (r *Run) CoverageWithin(x, y float64, clip image.Rectangle) *image.Alpha {
	segs := r.outline(x, y, clip)
	bounds := outlineBounds(segs)
	if bounds.Empty() {
		return image.NewAlpha(image.Rectangle{})
	}

	ox := float32(bounds.Min.X)
	oy := float32(bounds.Min.Y)
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())

	open := false
	for _, s := range segs {
		a := s.args
		switch s.op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(a[0][0]-ox, a[0][1]-oy)
			open = true
		case sfnt.SegmentOpLineTo:
			z.LineTo(a[0][0]-ox, a[0][1]-oy)
		case sfnt.SegmentOpQuadTo:
			z.QuadTo(a[0][0]-ox, a[0][1]-oy, a[1][0]-ox, a[1][1]-oy)
		case sfnt.SegmentOpCubeTo:
			z.CubeTo(a[0][0]-ox, a[0][1]-oy, a[1][0]-ox, a[1][1]-oy, a[2][0]-ox, a[2][1]-oy)
		}
	}
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(bounds)
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}
