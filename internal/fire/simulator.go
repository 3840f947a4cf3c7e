package fire

import (
	"bytes"
	"fmt"
	"io"
	"math/rand/v2"
	"time"
)

// Sizer reports the current terminal dimensions.
type Sizer interface {
	Size() (cols, rows int, err error)
}

// Option configures a Simulator at construction.
type Option func(*Simulator) error

// WithPalette replaces the default glyph palette.
func WithPalette(p Palette) Option {
	return func(s *Simulator) error {
		if err := validPalette(len(p)); err != nil {
			return err
		}
		s.palette = p
		return nil
	}
}

// WithSeed seeds the random source deterministically. A zero seed keeps the
// time based default.
func WithSeed(seed int64) Option {
	return func(s *Simulator) error {
		if seed != 0 {
			s.rng = newRand(seed)
		}
		return nil
	}
}

// WithRand supplies the random source directly.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulator) error {
		s.rng = r
		return nil
	}
}

// Simulator owns the intensity grid and the random source for one fire.
type Simulator struct {
	sizer   Sizer
	grid    Grid
	palette Palette
	rng     *rand.Rand
	buf     bytes.Buffer
}

// New sizes a grid to the terminal reported by sizer. A failed size query is
// a startup error.
func New(sizer Sizer, opts ...Option) (*Simulator, error) {
	s := &Simulator{
		sizer:   sizer,
		palette: DefaultPalette(),
		rng:     newRand(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	cols, rows, err := s.query()
	if err != nil {
		return nil, err
	}
	s.grid = NewGrid(cols, rows)
	return s, nil
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1))
}

func (s *Simulator) query() (int, int, error) {
	cols, rows, err := s.sizer.Size()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrTerminalSize, err)
	}
	if cols <= 0 || rows <= 0 {
		return 0, 0, &SizeError{Cols: cols, Rows: rows, Wrapped: ErrInvalidSize}
	}
	return cols, rows, nil
}

// Grid exposes the current grid. Callers must not modify it.
func (s *Simulator) Grid() Grid { return s.grid }

// Size returns the grid dimensions.
func (s *Simulator) Size() (cols, rows int) {
	return s.grid.Cols(), s.grid.Rows()
}

func (s *Simulator) Palette() Palette { return s.palette }

// Resize matches the grid to the terminal. Rows are added or removed at the
// top and columns at the left; new cells are cold.
func (s *Simulator) Resize() error {
	cols, rows, err := s.query()
	if err != nil {
		return err
	}

	for s.grid.Rows() < rows {
		s.grid = s.grid.growTop(s.grid.Cols())
	}
	for s.grid.Rows() > rows {
		s.grid = s.grid.shrinkTop()
	}

	width := s.grid.Cols()
	for ; width < cols; width++ {
		s.grid.growLeft()
	}
	for ; width > cols; width-- {
		s.grid.shrinkLeft()
	}
	return nil
}

// Seed scatters hot values and then gaps over the bottom row. Index draws may
// repeat.
func (s *Simulator) Seed() {
	if len(s.grid) == 0 {
		return
	}
	row := s.grid[len(s.grid)-1]
	width := len(row)
	if width == 0 {
		return
	}

	for i := 0; i < width; i++ {
		row[s.randomIndex(width)] = s.randomHeat()
	}
	for i := 0; i < width; i++ {
		row[s.randomIndex(width)] = 0
	}
}

// randomIndex draws from [0, width-1), or 0 when width is 1.
func (s *Simulator) randomIndex(width int) int {
	return int(s.rng.Float64() * float64(width-1))
}

// randomHeat draws from [1, len(palette)-2].
func (s *Simulator) randomHeat() uint8 {
	return uint8(s.rng.Float64()*float64(len(s.palette)-2)) + 1
}

// Calculate diffuses heat upward. The right-window sweep runs first and the
// left-window sweep reads its results. The seed row is never written.
func (s *Simulator) Calculate() {
	g := s.grid
	rows, cols := g.Rows(), g.Cols()
	if rows < 2 || cols < 2 {
		return
	}

	for i := 0; i < rows-1; i++ {
		cur, below := g[i], g[i+1]
		for j := 0; j < cols-1; j++ {
			cur[j] = average(cur[j], below[j], cur[j+1], below[j+1])
		}
	}
	for i := 0; i < rows-1; i++ {
		cur, below := g[i], g[i+1]
		for j := cols - 1; j > 0; j-- {
			cur[j] = average(cur[j], below[j], cur[j-1], below[j-1])
		}
	}
}

func average(a, b, c, d uint8) uint8 {
	return uint8((uint16(a) + uint16(b) + uint16(c) + uint16(d)) / 4)
}

// Render writes every row but the seed row and every column but the last two.
func (s *Simulator) Render(w io.Writer) error {
	s.buf.Reset()
	AppendFrame(&s.buf, s.grid, s.palette)
	if _, err := w.Write(s.buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// AppendFrame writes the visible part of g into buf, one line per row.
func AppendFrame(buf *bytes.Buffer, g Grid, p Palette) {
	visible := g.Cols() - 2
	for i := 0; i < g.Rows()-1; i++ {
		row := g[i]
		for j := 0; j < visible; j++ {
			buf.WriteRune(p.Glyph(row[j]))
		}
		buf.WriteByte('\n')
	}
}
