package fire

import (
	"fmt"
	"unicode/utf8"
)

// DefaultGlyphs runs from blank (coldest) to '@' (hottest).
const DefaultGlyphs = ` ,;+ltgti!lI?/\|)(1}{][rcvzjftJUOQocxfXhqwWB8&%$#@`

// Palette maps an intensity to a glyph. Index 0 is cold, the last index is hottest.
type Palette []rune

// DefaultPalette returns the standard 50 glyph palette.
func DefaultPalette() Palette {
	return Palette(DefaultGlyphs)
}

// NewPalette validates glyphs and returns them as a palette. Glyphs are
// counted as runes, so multibyte characters are one glyph each.
func NewPalette(glyphs string) (Palette, error) {
	if err := validPalette(utf8.RuneCountInString(glyphs)); err != nil {
		return nil, err
	}
	return Palette(glyphs), nil
}

// validPalette checks that n glyphs leave a non-empty hot range and fit uint8.
func validPalette(n int) error {
	if n < 3 || n > 256 {
		return fmt.Errorf("%w: got %d", ErrPalette, n)
	}
	return nil
}

func (p Palette) Len() int { return len(p) }

// Max is the highest valid intensity.
func (p Palette) Max() uint8 { return uint8(len(p) - 1) }

// Glyph returns the glyph for intensity v, clamping to the hottest glyph.
func (p Palette) Glyph(v uint8) rune {
	if int(v) >= len(p) {
		return p[len(p)-1]
	}
	return p[v]
}

func (p Palette) String() string { return string(p) }
