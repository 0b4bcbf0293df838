package thumbnail

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidColor is returned when a color string is not of the form
// "#RRGGBB" or "RRGGBB".
var ErrInvalidColor = errors.New("thumbnail: invalid hex color")

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts the color to 8-bit non-premultiplied components, rounding
// to the nearest value.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// WithAlpha returns c with its alpha replaced by a, clamped to [0, 1].
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = clamp01(a)
	return c
}

// Hex returns the color as "#RRGGBB", ignoring alpha.
func (c RGBA) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// ParseHex parses a six-digit hex color. The leading '#' is optional and
// digits are case-insensitive. The result is opaque.
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	var v [3]uint32
	for i := range v {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		v[i] = hi<<4 | lo
	}

	return RGBA{
		R: float64(v[0]) / 255,
		G: float64(v[1]) / 255,
		B: float64(v[2]) / 255,
		A: 1,
	}, nil
}

// HexWithOpacity parses hex and sets its alpha to opacity. This is the one
// conversion used for every fill, stroke, shadow and underline color.
func HexWithOpacity(hex string, opacity float64) (RGBA, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return RGBA{}, err
	}
	return c.WithAlpha(opacity), nil
}

// hexDigit decodes a single hex digit.
func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}

// to8 converts a [0, 1] component to 8 bits.
func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

// clamp01 restricts a value to [0, 1]. NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
