package filter

import (
	"image"
)

// Blur returns src convolved with a Gaussian of standard deviation sigma.
// The result bounds grow by the kernel half-size on every side so that the
// blurred coverage is never clipped. Pixels outside src count as zero.
//
// A non-positive sigma returns a copy of src.
func Blur(src *image.Alpha, sigma float64) *image.Alpha {
	if src == nil {
		return nil
	}
	if sigma <= 0 || src.Rect.Empty() {
		return cloneAlpha(src)
	}

	kernel := CachedGaussianKernel(sigma)
	half := len(kernel) / 2

	dstRect := src.Rect.Inset(-half)
	width := dstRect.Dx()
	height := dstRect.Dy()
	srcW := src.Rect.Dx()
	srcH := src.Rect.Dy()

	// Horizontal pass: rows of src only, columns already expanded.
	temp := make([]float32, width*srcH)
	for y := 0; y < srcH; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+srcW]
		for x := 0; x < width; x++ {
			// x is in dst space; sx is the matching src column of kernel tap 0.
			sx := x - half - half
			var sum float32
			for k, weight := range kernel {
				kx := sx + k
				if kx < 0 || kx >= srcW {
					continue
				}
				sum += float32(row[kx]) * weight
			}
			temp[y*width+x] = sum
		}
	}

	// Vertical pass into the expanded destination.
	dst := image.NewAlpha(dstRect)
	for y := 0; y < height; y++ {
		sy := y - half - half
		for x := 0; x < width; x++ {
			var sum float32
			for k, weight := range kernel {
				ky := sy + k
				if ky < 0 || ky >= srcH {
					continue
				}
				sum += temp[ky*width+x] * weight
			}
			dst.Pix[y*dst.Stride+x] = clampUint8(sum)
		}
	}

	return dst
}

// cloneAlpha returns a deep copy of m with a tightly packed stride.
func cloneAlpha(m *image.Alpha) *image.Alpha {
	dst := image.NewAlpha(m.Rect)
	w := m.Rect.Dx()
	for y := 0; y < m.Rect.Dy(); y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], m.Pix[y*m.Stride:y*m.Stride+w])
	}
	return dst
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
