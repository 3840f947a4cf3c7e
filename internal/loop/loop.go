// Package loop drives a fire simulator frame by frame: clear, resize, seed,
// calculate, render, pause.
package loop

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/san-kum/asciifire/internal/fire"
)

// Frame is the per-frame surface of a simulator.
type Frame interface {
	Resize() error
	Seed()
	Calculate()
	Render(w io.Writer) error
	Grid() fire.Grid
}

// Screen clears previously rendered output.
type Screen interface {
	Clear(w io.Writer) error
}

type Metric interface {
	Name() string
	Observe(g fire.Grid, frame int)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(g fire.Grid, frame int)
}

type Config struct {
	// Interval is the pause after each frame; zero renders back to back.
	Interval time.Duration
	// Frames caps the run; zero runs until the context is cancelled.
	Frames int
}

type Result struct {
	Frames  int
	Elapsed time.Duration
	Metrics map[string]float64
}

type Loop struct {
	sim       Frame
	screen    Screen
	out       io.Writer
	metrics   []Metric
	observers []Observer
}

func New(sim Frame, screen Screen, out io.Writer) *Loop {
	return &Loop{
		sim:       sim,
		screen:    screen,
		out:       out,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (l *Loop) AddMetric(m Metric)     { l.metrics = append(l.metrics, m) }
func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

// Run renders frames until ctx is cancelled or cfg.Frames is reached.
// Cancellation is a normal exit. Resize and write failures abort the run.
func (l *Loop) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Interval < 0 {
		return nil, fmt.Errorf("interval must not be negative, got %v", cfg.Interval)
	}
	if cfg.Frames < 0 {
		return nil, fmt.Errorf("frames must not be negative, got %d", cfg.Frames)
	}

	for _, m := range l.metrics {
		m.Reset()
	}

	result := &Result{Metrics: make(map[string]float64)}
	start := time.Now()
	defer func() {
		result.Elapsed = time.Since(start)
		for _, m := range l.metrics {
			result.Metrics[m.Name()] = m.Value()
		}
	}()

	var pause *time.Timer
	if cfg.Interval > 0 {
		pause = time.NewTimer(cfg.Interval)
		pause.Stop()
		defer pause.Stop()
	}

	for cfg.Frames == 0 || result.Frames < cfg.Frames {
		select {
		case <-ctx.Done():
			return result, nil
		default:
		}

		if err := l.step(result.Frames); err != nil {
			slog.Debug("frame failed", "frame", result.Frames, "err", err)
			return result, err
		}
		result.Frames++

		if pause == nil {
			continue
		}
		pause.Reset(cfg.Interval)
		select {
		case <-ctx.Done():
			return result, nil
		case <-pause.C:
		}
	}
	return result, nil
}

func (l *Loop) step(frame int) error {
	if err := l.screen.Clear(l.out); err != nil {
		return fmt.Errorf("%w: %w", fire.ErrWrite, err)
	}
	if err := l.sim.Resize(); err != nil {
		return err
	}
	l.sim.Seed()
	l.sim.Calculate()
	if err := l.sim.Render(l.out); err != nil {
		return err
	}

	g := l.sim.Grid()
	for _, m := range l.metrics {
		m.Observe(g, frame)
	}
	for _, obs := range l.observers {
		obs.OnFrame(g, frame)
	}
	return nil
}
