package filter

import (
	"image"
	"image/color"
)

// Test helper functions shared across filter tests.

// squareMask returns a mask covering r fully inside bounds.
func squareMask(bounds, r image.Rectangle) *image.Alpha {
	m := image.NewAlpha(bounds)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.SetAlpha(x, y, color.Alpha{A: opaque})
		}
	}
	return m
}

// totalCoverage sums every coverage value of m.
func totalCoverage(m *image.Alpha) int {
	var sum int
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			sum += int(m.AlphaAt(x, y).A)
		}
	}
	return sum
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
