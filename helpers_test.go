package thumbnail

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

// solidImage returns an opaque w×h image filled with c.
func solidImage(w, h int, c RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := c.NRGBA()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, n)
		}
	}
	return img
}

// encodePNG encodes img for use as background bytes.
func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// decodePNG decodes composed output.
func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	return img
}

// plainAnnotation is left-aligned opaque white Go text with no stroke,
// shadow or underline.
func plainAnnotation(id, text string) TextAnnotation {
	return TextAnnotation{
		ID:         id,
		Text:       text,
		Position:   Position{X: 50, Y: 50},
		FontSize:   48,
		FontFamily: "Go",
		Color:      "#FFFFFF",
		Opacity:    1,
		Align:      AlignLeft,
	}
}

// changedColumns returns the span of columns in which a and b differ.
// ok is false when the images are identical.
func changedColumns(a, b image.Image) (minX, maxX int, ok bool) {
	r := a.Bounds()
	minX, maxX = r.Max.X, r.Min.X-1
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			r1, g1, b1, a1 := a.At(x, y).RGBA()
			r2, g2, b2, a2 := b.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	return minX, maxX, maxX >= minX
}
