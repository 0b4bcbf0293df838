// Package text turns annotation strings into rasterizable glyph runs.
//
// The pipeline has three stages:
//
//   - Registry: resolves a CSS-like family list and a bold/italic Style
//     to a parsed Font, falling back to a default family when nothing
//     matches
//   - Shaper: converts a string into a positioned glyph Run using
//     go-text/typesetting's HarfBuzz implementation (kerning, ligatures,
//     right-to-left scripts)
//   - Run.Coverage: rasterizes the glyph outlines of a Run into an
//     anti-aliased *image.Alpha mask with golang.org/x/image/vector
//
// # Example usage
//
//	reg := text.NewDefaultRegistry()
//	font, res, err := reg.Resolve("Inter, sans-serif", text.Style{Bold: true})
//	if err != nil {
//	    return err
//	}
//	run := text.Shape("Hello", font, 48, 0)
//	run.Oblique = res.Oblique()
//	mask := run.Coverage(100, 200)
//
// Fonts and registries are safe for concurrent use. Runs are immutable once
// shaped; Coverage allocates a fresh mask on every call.
package text
