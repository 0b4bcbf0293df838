package filter

import (
	"image"
	"math"
)

// diskTap is one offset of a disk-shaped structuring element. The weight is
// the anti-aliased coverage of the offset, in [0, 255].
type diskTap struct {
	dx, dy int
	w      uint32
}

// diskTaps returns the taps of a disk of radius r. Offsets whose distance
// lies within half a pixel of r get a fractional weight.
func diskTaps(r float64) []diskTap {
	reach := int(math.Ceil(r + 0.5))
	taps := make([]diskTap, 0, (2*reach+1)*(2*reach+1))
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			d := math.Hypot(float64(dx), float64(dy))
			cov := r + 0.5 - d
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			taps = append(taps, diskTap{dx: dx, dy: dy, w: uint32(math.Round(cov * 255))})
		}
	}
	return taps
}

// Reach returns how many pixels Dilate grows a mask for radius r.
func Reach(r float64) int {
	if r <= 0 {
		return 0
	}
	return int(math.Ceil(r + 0.5))
}

// at returns the coverage of m at (x, y) in mask space, zero outside.
func at(m *image.Alpha, x, y int) uint32 {
	if !(image.Point{X: x, Y: y}.In(m.Rect)) {
		return 0
	}
	return uint32(m.Pix[(y-m.Rect.Min.Y)*m.Stride+(x-m.Rect.Min.X)])
}

// Dilate grows the coverage of src by a disk of radius r. Each output pixel
// is the maximum of the weighted coverage under the disk. The result bounds
// grow by Reach(r) on every side.
func Dilate(src *image.Alpha, r float64) *image.Alpha {
	if src == nil {
		return nil
	}
	if r <= 0 || src.Rect.Empty() {
		return cloneAlpha(src)
	}

	taps := diskTaps(r)
	dst := image.NewAlpha(src.Rect.Inset(-Reach(r)))
	b := dst.Rect

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[(y-b.Min.Y)*dst.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			var best uint32
			for _, t := range taps {
				v := at(src, x-t.dx, y-t.dy)
				if v == 0 {
					continue
				}
				v = (v*t.w + 127) / 255
				if v > best {
					best = v
					if best == 255 {
						break
					}
				}
			}
			row[x-b.Min.X] = uint8(best)
		}
	}

	return dst
}

// Erode shrinks the coverage of src by a disk of radius r. Pixels outside
// src count as uncovered, so shapes touching the mask edge erode from it
// too. The result has the same bounds as src.
func Erode(src *image.Alpha, r float64) *image.Alpha {
	if src == nil {
		return nil
	}
	if r <= 0 || src.Rect.Empty() {
		return cloneAlpha(src)
	}

	taps := diskTaps(r)
	dst := image.NewAlpha(src.Rect)
	b := dst.Rect

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[(y-b.Min.Y)*dst.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if at(src, x, y) == 0 {
				continue
			}
			// Erosion is the complement of dilating the complement.
			var worst uint32
			for _, t := range taps {
				v := 255 - at(src, x-t.dx, y-t.dy)
				if v == 0 {
					continue
				}
				v = (v*t.w + 127) / 255
				if v > worst {
					worst = v
					if worst == 255 {
						break
					}
				}
			}
			row[x-b.Min.X] = uint8(255 - worst)
		}
	}

	return dst
}

// Band returns the coverage of an outline stroked with the given half
// width: everything within halfWidth of the shape edge, inside or out.
// The result bounds equal those of Dilate(src, halfWidth).
func Band(src *image.Alpha, halfWidth float64) *image.Alpha {
	if src == nil {
		return nil
	}
	if halfWidth <= 0 || src.Rect.Empty() {
		return image.NewAlpha(src.Rect)
	}

	outer := Dilate(src, halfWidth)
	inner := Erode(src, halfWidth)
	b := inner.Rect

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			in := uint32(inner.Pix[(y-b.Min.Y)*inner.Stride+(x-b.Min.X)])
			if in == 0 {
				continue
			}
			i := (y-outer.Rect.Min.Y)*outer.Stride + (x - outer.Rect.Min.X)
			out := uint32(outer.Pix[i])
			if in >= out {
				outer.Pix[i] = 0
			} else {
				outer.Pix[i] = uint8(out - in)
			}
		}
	}

	return outer
}
