// Package screen draws the fire full screen through tcell with a true-colour
// heat ramp.
package screen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/asciifire/internal/fire"
	"github.com/san-kum/asciifire/internal/term"
)

// heatStops run from cold to white hot.
var heatStops = [][3]int32{
	{0x07, 0x07, 0x07},
	{0x57, 0x17, 0x07},
	{0x9f, 0x2f, 0x07},
	{0xdf, 0x57, 0x07},
	{0xcf, 0x7f, 0x0f},
	{0xbf, 0xa7, 0x27},
	{0xdf, 0xdf, 0x9f},
	{0xff, 0xff, 0xff},
}

// canvas is the part of tcell.Screen the draw pass needs.
type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Renderer owns a tcell screen and the simulator drawn on it.
type Renderer struct {
	scr    tcell.Screen
	sim    *fire.Simulator
	sizer  *term.Fixed
	styles []tcell.Style
}

// New initialises a tcell screen. sim must have been built on sizer.
func New(sim *fire.Simulator, sizer *term.Fixed) (*Renderer, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	scr.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	scr.HideCursor()
	scr.Clear()

	return &Renderer{
		scr:    scr,
		sim:    sim,
		sizer:  sizer,
		styles: heatStyles(sim.Palette()),
	}, nil
}

// Run animates until ctx is cancelled or the user presses q, Esc or ctrl+c.
func (r *Renderer) Run(ctx context.Context, interval time.Duration) error {
	defer r.scr.Fini()

	events := make(chan tcell.Event, 8)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := r.scr.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				r.scr.Sync()
				w, h := ev.Size()
				slog.Debug("screen resized", "cols", w, "rows", h)
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			}
		case <-ticker.C:
			if err := r.frame(); err != nil {
				return err
			}
		}
	}
}

func (r *Renderer) frame() error {
	w, h := r.scr.Size()
	if w < 1 || h < 1 {
		return nil
	}
	r.sizer.Set(w, h)
	if err := r.sim.Resize(); err != nil {
		return err
	}
	r.sim.Seed()
	r.sim.Calculate()
	r.scr.Clear()
	draw(r.scr, r.sim.Grid(), r.sim.Palette(), r.styles)
	r.scr.Show()
	return nil
}

// draw puts every visible cell on c: all rows but the seed row, all columns
// but the last two.
func draw(c canvas, g fire.Grid, p fire.Palette, styles []tcell.Style) {
	visible := g.Cols() - 2
	for y := 0; y < g.Rows()-1; y++ {
		for x := 0; x < visible; x++ {
			v := g[y][x]
			if v == 0 {
				continue
			}
			c.SetContent(x, y, p.Glyph(v), nil, styles[v])
		}
	}
}

// heatStyles precomputes one style per palette index.
func heatStyles(p fire.Palette) []tcell.Style {
	styles := make([]tcell.Style, p.Len())
	for i := range styles {
		r, g, b := heatRGB(uint8(i), p.Max())
		styles[i] = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.NewRGBColor(r, g, b))
	}
	return styles
}

// heatRGB interpolates v in [0,max] across heatStops.
func heatRGB(v, max uint8) (int32, int32, int32) {
	if max == 0 || v == 0 {
		s := heatStops[0]
		return s[0], s[1], s[2]
	}
	if v >= max {
		s := heatStops[len(heatStops)-1]
		return s[0], s[1], s[2]
	}
	pos := float64(v) / float64(max) * float64(len(heatStops)-1)
	i := int(pos)
	t := pos - float64(i)
	a, b := heatStops[i], heatStops[i+1]
	lerp := func(x, y int32) int32 { return x + int32(t*float64(y-x)) }
	return lerp(a[0], b[0]), lerp(a[1], b[1]), lerp(a[2], b[2])
}
