package thumbnail

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{
			name:  "opaque black",
			c:     Black,
			wantR: 0, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "opaque white",
			c:     White,
			wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535,
		},
		{
			name:  "transparent",
			c:     Transparent,
			wantR: 0, wantG: 0, wantB: 0, wantA: 0,
		},
		{
			name:  "50% alpha red",
			c:     RGBA{1, 0, 0, 0.5},
			wantR: 32896, wantG: 0, wantB: 0, wantA: 32896,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FFFFFF", color.NRGBA{255, 255, 255, 255}},
		{"#000000", color.NRGBA{0, 0, 0, 255}},
		{"FF8000", color.NRGBA{255, 128, 0, 255}},
		{"#ff8000", color.NRGBA{255, 128, 0, 255}},
		{"#1a2B3c", color.NRGBA{0x1a, 0x2b, 0x3c, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			if got := c.NRGBA(); got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#FFF", "#FFFFFFF", "#GGGGGG", "red", "#12345z", "##FFFFF"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHex(in)
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
			}
		})
	}
}

func TestHexWithOpacity(t *testing.T) {
	tests := []struct {
		name    string
		opacity float64
		wantA   float64
	}{
		{"full", 1, 1},
		{"half", 0.5, 0.5},
		{"zero", 0, 0},
		{"above range", 1.5, 1},
		{"below range", -0.2, 0},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := HexWithOpacity("#FF0000", tt.opacity)
			if err != nil {
				t.Fatalf("HexWithOpacity error: %v", err)
			}
			if c.A != tt.wantA {
				t.Errorf("alpha = %v, want %v", c.A, tt.wantA)
			}
			if c.R != 1 || c.G != 0 || c.B != 0 {
				t.Errorf("rgb = (%v, %v, %v), want (1, 0, 0)", c.R, c.G, c.B)
			}
		})
	}

	if _, err := HexWithOpacity("nope", 1); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("HexWithOpacity(invalid) error = %v, want ErrInvalidColor", err)
	}
}

func TestRGBA_Hex(t *testing.T) {
	if got := RGB(1, 0.5, 0).Hex(); got != "#FF8000" {
		t.Errorf("Hex() = %q, want #FF8000", got)
	}
	c, _ := ParseHex("#abcdef")
	if got := c.WithAlpha(0.3).Hex(); got != "#ABCDEF" {
		t.Errorf("Hex() = %q, want #ABCDEF", got)
	}
}

func TestRGBA_NRGBAClamps(t *testing.T) {
	got := RGBA{R: 2, G: -1, B: 0.5, A: 1}.NRGBA()
	want := color.NRGBA{255, 0, 128, 255}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
