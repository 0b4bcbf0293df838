// Package filter provides coverage-mask filters used by the compositor.
//
// All filters operate on *image.Alpha masks whose Rect is expressed in
// surface coordinates, so a filtered mask can be composited without any
// further translation:
//   - Gaussian blur (separable, zero padding outside the mask)
//   - Drop shadow (blur + whole-pixel offset)
//   - Dilation, erosion and the stroke band derived from them
//
// Filters never modify their input and always allocate a fresh result,
// which keeps concurrent compositions independent.
package filter
