package cpixel

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when an image does not have the dimensions the Converter was configured for.
	ErrDimensionMismatch = errors.New("image dimensions do not match converter settings")

	// ErrMalformedBitmap is returned when a bitmap's buffer length does not match its dimensions.
	ErrMalformedBitmap = errors.New("bitmap buffer does not match its dimensions")

	// ErrInvalidGlyphRamp is returned by NewGlyphRamp for empty ramps or glyphs that are not exactly one cell wide.
	ErrInvalidGlyphRamp = errors.New("invalid glyph ramp")
)

/*
DimensionMismatchError carries the configured and the submitted image dimensions. It matches ErrDimensionMismatch with errors.Is.
*/
type DimensionMismatchError struct {
	Want Dimensions
	Got  Dimensions
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", ErrDimensionMismatch, e.Want, e.Got)
}

func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}
