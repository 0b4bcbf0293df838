package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFonts is returned when a registry has no usable family.
	ErrNoFonts = errors.New("text: registry has no fonts")

	// ErrUnknownFamily is returned when an alias or fallback names a
	// family that is not registered.
	ErrUnknownFamily = errors.New("text: unknown font family")
)
