// Package upload validates background images before they are handed to
// the compositor: only JPEG, PNG and WEBP files up to MaxSize are
// accepted.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"slices"

	_ "golang.org/x/image/webp" // register WEBP
)

// MaxSize is the largest accepted upload in bytes (10 MB).
const MaxSize = 10 << 20

// Errors returned by Validate.
var (
	ErrEmpty             = errors.New("upload: empty file")
	ErrTooLarge          = errors.New("upload: file exceeds 10MB")
	ErrUnsupportedFormat = errors.New("upload: unsupported format (JPG, PNG or WEBP)")
)

// Formats lists the accepted image formats as reported by image.DecodeConfig.
var Formats = []string{"jpeg", "png", "webp"}

// Info describes an accepted upload.
type Info struct {
	Format string
	Width  int
	Height int
	Size   int
}

// Validate checks the size and format of an uploaded background. Only the
// image header is decoded.
func Validate(data []byte) (Info, error) {
	info := Info{Size: len(data)}
	if len(data) == 0 {
		return info, ErrEmpty
	}
	if len(data) > MaxSize {
		return info, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return info, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	if !slices.Contains(Formats, format) {
		return info, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	info.Format = format
	info.Width = cfg.Width
	info.Height = cfg.Height
	return info, nil
}
