// Package thumbnail renders video-platform thumbnails: styled text
// annotations composited over a background image and exported as PNG.
//
// # Overview
//
// A composition takes the encoded bytes of a background image and an
// ordered list of TextAnnotation values. The background is stretched to
// fill the output surface (1280×720 by default) and each annotation is
// drawn on top in list order, so later annotations cover earlier ones.
//
// # Quick Start
//
//	import "github.com/gogpu/thumbnail"
//
//	a := thumbnail.NewAnnotation("title")
//	a.Text = "BIG NEWS"
//	a.FontSize = 96
//
//	png, err := thumbnail.Compose(background, []thumbnail.TextAnnotation{a})
//	if err != nil {
//	    var de *thumbnail.DecodeError
//	    if errors.As(err, &de) {
//	        // the background is not an image
//	    }
//	    return err
//	}
//
// # Drawing Model
//
// Each annotation is resolved into an immutable Plan. Every draw call of a
// plan receives a complete paint descriptor, so no paint state is shared
// between annotations. Per annotation the paint order is:
//   - stroke (shadow first, when enabled)
//   - fill (shadow first, when enabled)
//   - underline (shadow first, when enabled)
//
// Opacity scales every paint of an annotation. Shadows use
// opacity × ShadowAlphaFactor as their alpha.
//
// # Coordinate System
//
// Annotation positions are percentages of the output size. By default the
// vertical position is the text baseline; see WithVerticalAnchor.
// Lengths (font size, stroke width, shadow blur and offsets, letter
// spacing) are expressed for a canvas ReferenceWidth pixels wide and are
// scaled with the output width.
//
// # Errors
//
// An undecodable background fails the whole composition with a
// *DecodeError. Annotation problems (unknown font family, missing bold
// face, malformed colors, out-of-range values) are substituted with safe
// defaults and reported as RenderDegraded values on the Result.
//
// # Logging
//
// The package is silent by default. Use SetLogger to receive debug and
// warning records through log/slog.
package thumbnail

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
