package loop

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/asciifire/internal/fire"
	"github.com/san-kum/asciifire/internal/metrics"
	"github.com/san-kum/asciifire/internal/term"
)

type recordingScreen struct {
	clears int
}

func (r *recordingScreen) Clear(w io.Writer) error {
	r.clears++
	_, err := io.WriteString(w, "<clear>")
	return err
}

type countingObserver struct {
	frames []int
}

func (c *countingObserver) OnFrame(g fire.Grid, frame int) {
	c.frames = append(c.frames, frame)
}

func newSim(t *testing.T, sz *term.Fixed) *fire.Simulator {
	t.Helper()
	sim, err := fire.New(sz, fire.WithSeed(1))
	if err != nil {
		t.Fatalf("new sim: %v", err)
	}
	return sim
}

func TestRunFrameCap(t *testing.T) {
	sz := term.NewFixed(12, 6)
	screen := &recordingScreen{}
	var out bytes.Buffer

	l := New(newSim(t, sz), screen, &out)
	obs := &countingObserver{}
	l.AddObserver(obs)
	l.AddMetric(metrics.NewMeanHeat(fire.DefaultPalette().Max()))

	result, err := l.Run(context.Background(), Config{Frames: 5})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Frames != 5 {
		t.Errorf("expected 5 frames, got %d", result.Frames)
	}
	if screen.clears != 5 {
		t.Errorf("expected 5 clears, got %d", screen.clears)
	}
	if len(obs.frames) != 5 || obs.frames[4] != 4 {
		t.Errorf("unexpected observed frames %v", obs.frames)
	}
	if _, ok := result.Metrics["mean_heat"]; !ok {
		t.Error("expected mean_heat metric")
	}

	frames := strings.Split(out.String(), "<clear>")[1:]
	if len(frames) != 5 {
		t.Fatalf("expected 5 rendered frames, got %d", len(frames))
	}
	for i, f := range frames {
		if n := strings.Count(f, "\n"); n != 5 {
			t.Errorf("frame %d: expected 5 lines, got %d", i, n)
		}
	}
}

func TestRunTracksResize(t *testing.T) {
	sz := term.NewFixed(10, 5)
	sim := newSim(t, sz)
	l := New(sim, sz, io.Discard)

	if _, err := l.Run(context.Background(), Config{Frames: 1}); err != nil {
		t.Fatal(err)
	}
	sz.Set(8, 4)
	if _, err := l.Run(context.Background(), Config{Frames: 1}); err != nil {
		t.Fatal(err)
	}

	if cols, rows := sim.Size(); cols != 8 || rows != 4 {
		t.Errorf("expected 8x4, got %dx%d", cols, rows)
	}
}

func TestRunCancel(t *testing.T) {
	sz := term.NewFixed(10, 5)
	l := New(newSim(t, sz), sz, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result, err := l.Run(ctx, Config{Interval: 5 * time.Millisecond})
	if err != nil {
		t.Fatalf("expected clean exit on cancel, got %v", err)
	}
	if result.Frames == 0 {
		t.Error("expected at least one frame before cancel")
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunWriteFailure(t *testing.T) {
	sz := term.NewFixed(10, 5)
	l := New(newSim(t, sz), sz, brokenWriter{})

	result, err := l.Run(context.Background(), Config{})
	if !errors.Is(err, fire.ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
	if result.Frames != 0 {
		t.Errorf("expected 0 completed frames, got %d", result.Frames)
	}
}

func TestRunInvalidSize(t *testing.T) {
	sz := term.NewFixed(10, 5)
	l := New(newSim(t, sz), sz, io.Discard)
	sz.Set(0, 5)

	_, err := l.Run(context.Background(), Config{Frames: 3})
	if !errors.Is(err, fire.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	sz := term.NewFixed(10, 5)
	l := New(newSim(t, sz), sz, io.Discard)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative interval", Config{Interval: -time.Second}},
		{"negative frames", Config{Frames: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := l.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
