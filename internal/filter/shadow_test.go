package filter

import (
	"image"
	"testing"
)

func TestDropShadowSigma(t *testing.T) {
	tests := []struct {
		blur float64
		want float64
	}{
		{0, 0},
		{-3, 0},
		{4, 2},
		{9, 4.5},
	}

	for _, tt := range tests {
		if got := (DropShadow{Blur: tt.blur}).Sigma(); got != tt.want {
			t.Errorf("Sigma(blur=%v) = %v, want %v", tt.blur, got, tt.want)
		}
	}
}

func TestDropShadowOffsetRounds(t *testing.T) {
	s := DropShadow{OffsetX: 2.4, OffsetY: -1.6}
	if got, want := s.Offset(), image.Pt(2, -2); got != want {
		t.Errorf("Offset() = %v, want %v", got, want)
	}
}

func TestDropShadowMaskNoBlur(t *testing.T) {
	src := squareMask(image.Rect(0, 0, 10, 10), image.Rect(2, 2, 5, 5))
	s := DropShadow{OffsetX: 3, OffsetY: 4}

	got := s.Mask(src)
	if want := src.Rect.Add(image.Pt(3, 4)); got.Rect != want {
		t.Fatalf("Rect = %v, want %v", got.Rect, want)
	}
	if a := got.AlphaAt(5, 6).A; a != opaque {
		t.Errorf("shadow at (5,6) = %d, want %d", a, opaque)
	}
	if a := got.AlphaAt(2, 2).A; a != 0 {
		t.Errorf("shadow at (2,2) = %d, want 0", a)
	}
	// The source must stay untouched.
	if a := src.AlphaAt(2, 2).A; a != opaque {
		t.Errorf("source modified: (2,2) = %d", a)
	}
}

func TestDropShadowExpandBounds(t *testing.T) {
	s := DropShadow{OffsetX: 2, OffsetY: -3, Blur: 4}
	r := image.Rect(0, 0, 100, 50)

	half := KernelHalfSize(2)
	want := image.Rect(-half+2, -half-3, 100+half+2, 50+half-3)
	if got := s.ExpandBounds(r); got != want {
		t.Errorf("ExpandBounds() = %v, want %v", got, want)
	}

	m := s.Mask(squareMask(r, r))
	if m.Rect != want {
		t.Errorf("Mask().Rect = %v, want %v", m.Rect, want)
	}
}

func TestTranslateNil(t *testing.T) {
	if Translate(nil, image.Pt(1, 1)) != nil {
		t.Error("Translate(nil) should return nil")
	}
}
