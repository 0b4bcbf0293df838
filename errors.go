package thumbnail

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid compositor input.
var (
	// ErrInvalidSize is returned for non-positive output dimensions.
	ErrInvalidSize = errors.New("thumbnail: output size must be positive")

	// ErrDuplicateID is returned when two annotations share an ID.
	ErrDuplicateID = errors.New("thumbnail: duplicate annotation id")

	// ErrEmptyID is returned when an annotation has no ID.
	ErrEmptyID = errors.New("thumbnail: empty annotation id")

	// ErrEmptyImage is the cause of a DecodeError for empty input.
	ErrEmptyImage = errors.New("thumbnail: empty image data")
)

// DecodeError reports that the background image could not be decoded.
// It aborts the whole composition; no output is produced.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "thumbnail: decode background: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DegradedKind classifies a RenderDegraded condition.
type DegradedKind uint8

const (
	// DegradedFont means no requested font family was registered and the
	// fallback family was used.
	DegradedFont DegradedKind = iota + 1

	// DegradedStyle means the family lacks the requested weight.
	DegradedStyle

	// DegradedColor means a color string could not be parsed and a
	// default color was used.
	DegradedColor

	// DegradedValue means a numeric field was out of range and clamped or
	// replaced by its default.
	DegradedValue
)

func (k DegradedKind) String() string {
	switch k {
	case DegradedFont:
		return "font"
	case DegradedStyle:
		return "style"
	case DegradedColor:
		return "color"
	case DegradedValue:
		return "value"
	default:
		return "unknown"
	}
}

// RenderDegraded describes a non-fatal substitution made while rendering
// an annotation. The annotation is still drawn.
type RenderDegraded struct {
	// ID is the annotation the substitution applies to.
	ID string

	// Kind classifies the substitution.
	Kind DegradedKind

	// Field names the annotation field that was substituted.
	Field string

	// Detail describes what was requested and what was used instead.
	Detail string
}

func (d RenderDegraded) Error() string {
	return fmt.Sprintf("thumbnail: annotation %q: %s %s degraded: %s", d.ID, d.Field, d.Kind, d.Detail)
}
