package fire

import (
	"errors"
	"fmt"
)

// Domain errors for fire simulation operations.
var (
	// ErrTerminalSize indicates the terminal dimensions could not be queried.
	ErrTerminalSize = errors.New("fire: terminal size unavailable")

	// ErrInvalidSize indicates a queried size with a non-positive dimension.
	ErrInvalidSize = errors.New("fire: invalid terminal size")

	// ErrWrite indicates a frame could not be written to the output stream.
	ErrWrite = errors.New("fire: frame write failed")

	// ErrPalette indicates a glyph palette too short or too long for the intensity range.
	ErrPalette = errors.New("fire: palette must hold between 3 and 256 glyphs")
)

// SizeError wraps a size failure with the dimensions that were reported.
type SizeError struct {
	Cols, Rows int
	Wrapped    error
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: %dx%d", e.Wrapped, e.Cols, e.Rows)
}

func (e *SizeError) Unwrap() error {
	return e.Wrapped
}
