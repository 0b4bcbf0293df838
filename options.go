package thumbnail

import (
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/thumbnail/text"
)

// Standard thumbnail geometry.
const (
	// DefaultWidth and DefaultHeight are the video-platform thumbnail size.
	DefaultWidth  = 1280
	DefaultHeight = 720

	// ReferenceWidth is the canvas width in which annotation lengths are
	// expressed. Lengths scale by outputWidth/ReferenceWidth.
	ReferenceWidth = 1280

	// DefaultFilename is the conventional name of the exported file.
	DefaultFilename = "youtube-thumbnail.png"
)

// VerticalAnchor selects what the vertical anchor coordinate refers to.
type VerticalAnchor uint8

const (
	// AnchorBaseline puts the text baseline on the anchor.
	AnchorBaseline VerticalAnchor = iota

	// AnchorMiddle centers the ascent/descent box on the anchor.
	AnchorMiddle
)

// String returns the anchor name.
func (v VerticalAnchor) String() string {
	if v == AnchorMiddle {
		return "middle"
	}
	return "baseline"
}

// Option configures a Compositor during creation.
//
// Example:
//
//	// Default 1280x720 output with the bundled Go fonts
//	c := thumbnail.New()
//
//	// Full HD output with custom fonts
//	c := thumbnail.New(thumbnail.WithSize(1920, 1080), thumbnail.WithFonts(reg))
type Option func(*config)

// config holds compositor configuration.
type config struct {
	width, height  int
	referenceWidth float64
	fonts          *text.Registry
	anchor         VerticalAnchor
	compression    png.CompressionLevel
	scaler         xdraw.Interpolator
}

// defaultConfig returns the default compositor configuration.
func defaultConfig() config {
	return config{
		width:          DefaultWidth,
		height:         DefaultHeight,
		referenceWidth: ReferenceWidth,
		fonts:          nil, // Will be set to text.NewDefaultRegistry if nil
		anchor:         AnchorBaseline,
		compression:    png.DefaultCompression,
		scaler:         xdraw.CatmullRom,
	}
}

// WithSize sets the output dimensions in pixels. Non-positive values make
// every composition fail with ErrInvalidSize.
func WithSize(width, height int) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithReferenceWidth sets the canvas width annotation lengths are
// expressed in. Non-positive values are ignored.
func WithReferenceWidth(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.referenceWidth = w
		}
	}
}

// WithFonts sets the font registry used to resolve annotation families.
//
// Example:
//
//	reg := text.NewDefaultRegistry()
//	_ = reg.RegisterData("Impact", text.Style{}, impactTTF)
//	c := thumbnail.New(thumbnail.WithFonts(reg))
func WithFonts(reg *text.Registry) Option {
	return func(c *config) {
		c.fonts = reg
	}
}

// WithVerticalAnchor selects the vertical anchor interpretation.
func WithVerticalAnchor(a VerticalAnchor) Option {
	return func(c *config) {
		c.anchor = a
	}
}

// WithCompression sets the PNG compression level.
func WithCompression(level png.CompressionLevel) Option {
	return func(c *config) {
		c.compression = level
	}
}

// WithScaler sets the interpolator used to stretch the background.
// The default is CatmullRom.
func WithScaler(s xdraw.Interpolator) Option {
	return func(c *config) {
		if s != nil {
			c.scaler = s
		}
	}
}
