package text

import (
	"image"
	"testing"
)

func TestCoverageBasic(t *testing.T) {
	f := testFont(t, Style{Bold: true})
	run := Shape("H", f, 64, 0)

	mask := run.Coverage(100, 200)
	if mask.Rect.Empty() {
		t.Fatal("Coverage() returned an empty mask")
	}
	if !mask.Rect.In(image.Rect(90, 120, 160, 210)) {
		t.Errorf("mask Rect = %v, want glyph near (100, 200)", mask.Rect)
	}

	// The left stem of a bold H covers the pixel just right of the origin
	// halfway up the cap height.
	capMid := 200 - int(run.Metrics.CapHeight/2)
	var found bool
	for x := 100; x < 115; x++ {
		if mask.AlphaAt(x, capMid).A == 0xff {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected a fully covered stem pixel")
	}

	// Nothing is drawn below the baseline for H.
	for x := mask.Rect.Min.X; x < mask.Rect.Max.X; x++ {
		if a := mask.AlphaAt(x, 203).A; a != 0 {
			t.Fatalf("coverage %d below the baseline at x=%d", a, x)
		}
	}
}

func TestCoverageWithinCullsGlyphs(t *testing.T) {
	f := testFont(t, Style{})
	run := Shape("MMMMMMMMMM", f, 40, 0)

	full := run.Coverage(0, 50)
	if got := run.CoverageWithin(0, 50, image.Rectangle{}).Rect; got != full.Rect {
		t.Errorf("empty clip Rect = %v, want %v", got, full.Rect)
	}

	clip := image.Rect(0, 0, 60, 100)
	culled := run.CoverageWithin(0, 50, clip)
	if culled.Rect.Empty() {
		t.Fatal("glyphs inside the clip were dropped")
	}
	if culled.Rect.Dx() >= full.Rect.Dx() {
		t.Errorf("culled width %d, want less than %d", culled.Rect.Dx(), full.Rect.Dx())
	}
	// Kept glyphs are unchanged.
	for y := culled.Rect.Min.Y; y < culled.Rect.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X && x < culled.Rect.Max.X; x++ {
			if culled.AlphaAt(x, y) != full.AlphaAt(x, y) {
				t.Fatalf("coverage at (%d, %d) changed by culling", x, y)
			}
		}
	}

	if m := run.CoverageWithin(0, 50, image.Rect(5000, 0, 5100, 100)); !m.Rect.Empty() {
		t.Errorf("clip beyond the run: Rect = %v, want empty", m.Rect)
	}
}

func TestCoverageWhitespace(t *testing.T) {
	f := testFont(t, Style{})

	for _, s := range []string{"", "   "} {
		run := Shape(s, f, 40, 0)
		if m := run.Coverage(0, 0); !m.Rect.Empty() {
			t.Errorf("Coverage(%q).Rect = %v, want empty", s, m.Rect)
		}
	}
}

func TestCoverageTranslation(t *testing.T) {
	f := testFont(t, Style{})
	run := Shape("x", f, 32, 0)

	a := run.Coverage(10, 40)
	b := run.Coverage(30, 60)

	if b.Rect != a.Rect.Add(image.Pt(20, 20)) {
		t.Fatalf("translated Rect = %v, want %v", b.Rect, a.Rect.Add(image.Pt(20, 20)))
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("integer translation changed coverage at %d", i)
		}
	}
}

func TestCoverageOblique(t *testing.T) {
	f := testFont(t, Style{})

	upright := Shape("l", f, 64, 0)
	slanted := Shape("l", f, 64, 0)
	slanted.Oblique = SyntheticOblique

	u := upright.Coverage(0, 100).Rect
	s := slanted.Coverage(0, 100).Rect

	// Shearing moves the top of the stem right.
	if s.Max.X <= u.Max.X {
		t.Errorf("slanted Max.X = %d, want > upright %d", s.Max.X, u.Max.X)
	}
}
