package thumbnail

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WEBP decoding

	"github.com/gogpu/thumbnail/text"
)

// Result is the output of a composition.
type Result struct {
	// PNG holds the encoded image.
	PNG []byte

	// Width and Height are the output dimensions in pixels.
	Width, Height int

	// Degraded lists the non-fatal substitutions made while rendering,
	// in annotation order.
	Degraded []RenderDegraded
}

// Compositor overlays text annotations on background images.
//
// A Compositor is immutable after New and safe for concurrent use. Each
// composition owns its own surface and masks.
type Compositor struct {
	cfg    config
	shaper *text.Shaper
}

// New creates a Compositor with the given options.
func New(opts ...Option) *Compositor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.fonts == nil {
		cfg.fonts = text.NewDefaultRegistry()
	}
	return &Compositor{cfg: cfg, shaper: text.NewShaper()}
}

// Width returns the output width in pixels.
func (c *Compositor) Width() int { return c.cfg.width }

// Height returns the output height in pixels.
func (c *Compositor) Height() int { return c.cfg.height }

// Fonts returns the font registry annotation families are resolved in.
func (c *Compositor) Fonts() *text.Registry { return c.cfg.fonts }

// Compose decodes background, draws annotations over it in list order and
// encodes the result as PNG.
//
// A background that cannot be decoded yields a *DecodeError and no
// output. Problems with individual annotations never abort the
// composition; they are reported in Result.Degraded.
func (c *Compositor) Compose(background []byte, annotations []TextAnnotation) (*Result, error) {
	if err := c.check(annotations); err != nil {
		return nil, err
	}
	img, err := Decode(background)
	if err != nil {
		return nil, err
	}
	return c.ComposeImage(img, annotations)
}

// ComposeImage is like Compose for an already decoded background.
func (c *Compositor) ComposeImage(background image.Image, annotations []TextAnnotation) (*Result, error) {
	start := time.Now()
	rgba, degraded, err := c.Render(background, annotations)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	s := &Surface{img: rgba}
	if err := s.EncodePNG(&buf, c.cfg.compression); err != nil {
		return nil, fmt.Errorf("thumbnail: encode png: %w", err)
	}

	Logger().Debug("thumbnail: composed",
		"width", c.cfg.width,
		"height", c.cfg.height,
		"annotations", len(annotations),
		"degraded", len(degraded),
		"bytes", buf.Len(),
		"elapsed", time.Since(start))

	return &Result{
		PNG:      buf.Bytes(),
		Width:    c.cfg.width,
		Height:   c.cfg.height,
		Degraded: degraded,
	}, nil
}

// Render draws background and annotations and returns the raw surface
// instead of encoded bytes.
func (c *Compositor) Render(background image.Image, annotations []TextAnnotation) (*image.RGBA, []RenderDegraded, error) {
	if err := c.check(annotations); err != nil {
		return nil, nil, err
	}
	if background == nil {
		return nil, nil, &DecodeError{Err: ErrEmptyImage}
	}

	s := NewSurface(c.cfg.width, c.cfg.height)
	s.DrawBackground(background, c.cfg.scaler)

	p := c.planner()
	var degraded []RenderDegraded
	for _, a := range annotations {
		pl, err := p.plan(a)
		if err != nil {
			return nil, nil, err
		}
		for _, d := range pl.Degraded {
			Logger().Warn("thumbnail: degraded render",
				"id", d.ID, "kind", d.Kind.String(), "field", d.Field, "detail", d.Detail)
		}
		degraded = append(degraded, pl.Degraded...)
		pl.Draw(s)
	}
	return s.Image(), degraded, nil
}

// Plan resolves a single annotation for this compositor's output size
// without drawing it.
func (c *Compositor) Plan(a TextAnnotation) (*Plan, error) {
	if c.cfg.width <= 0 || c.cfg.height <= 0 {
		return nil, ErrInvalidSize
	}
	return c.planner().plan(a)
}

// Draw paints the plan on s: the stroke first, then the fill, then the
// underline, each preceded by its shadow.
func (pl *Plan) Draw(s *Surface) {
	x, y := pl.Origin.X, pl.Origin.Y
	if pl.Stroke != nil {
		s.StrokeText(pl.Run, x, y, *pl.Stroke)
	}
	s.DrawText(pl.Run, x, y, pl.Fill)
	if pl.Underline != nil {
		s.DrawUnderline(*pl.Underline)
	}
}

func (c *Compositor) check(annotations []TextAnnotation) error {
	if c.cfg.width <= 0 || c.cfg.height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.cfg.width, c.cfg.height)
	}
	return ValidateAnnotations(annotations)
}

func (c *Compositor) planner() *planner {
	return &planner{
		fonts:  c.cfg.fonts,
		shaper: c.shaper,
		width:  c.cfg.width,
		height: c.cfg.height,
		scale:  float64(c.cfg.width) / c.cfg.referenceWidth,
		anchor: c.cfg.anchor,
	}
}

// Decode decodes an encoded background image. JPEG EXIF orientation is
// applied. Supported formats are JPEG, PNG, GIF, BMP, TIFF and WEBP.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Err: ErrEmptyImage}
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, &DecodeError{Err: ErrEmptyImage}
	}
	return img, nil
}

var defaultCompositor = New()

// Compose overlays annotations on background at 1280×720 with the bundled
// fonts and returns the PNG bytes.
func Compose(background []byte, annotations []TextAnnotation) ([]byte, error) {
	res, err := defaultCompositor.Compose(background, annotations)
	if err != nil {
		return nil, err
	}
	return res.PNG, nil
}

// IsDecodeError reports whether err is or wraps a *DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
