package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/asciifire/internal/config"
	"github.com/san-kum/asciifire/internal/fire"
	"github.com/san-kum/asciifire/internal/loop"
	"github.com/san-kum/asciifire/internal/metrics"
	"github.com/san-kum/asciifire/internal/storage"
	"github.com/san-kum/asciifire/internal/term"
)

// headless builds a simulator on a fixed size and a loop that discards output.
func headless(cfg *config.Config, c, r int) (*fire.Simulator, *loop.Loop, error) {
	opts, err := cfg.GetOptions()
	if err != nil {
		return nil, nil, err
	}
	sizer := term.NewFixed(c, r)
	sim, err := fire.New(sizer, opts...)
	if err != nil {
		return nil, nil, err
	}
	l := loop.New(sim, sizer, io.Discard)
	max := sim.Palette().Max()
	l.AddMetric(metrics.NewMeanHeat(max))
	l.AddMetric(metrics.NewPeakHeat())
	l.AddMetric(metrics.NewCoverage())
	return sim, l, nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sizes := [][2]int{{80, 24}, {160, 48}, {320, 96}}

	fmt.Printf("benchmarking %d frames per size\n\n", benchFrames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tFRAMES\tTIME\tFRAMES/SEC\tMEAN HEAT")

	for _, sz := range sizes {
		_, l, err := headless(cfg, sz[0], sz[1])
		if err != nil {
			return err
		}
		result, err := l.Run(cmd.Context(), loop.Config{Frames: benchFrames})
		if err != nil {
			return err
		}
		fps := float64(result.Frames) / result.Elapsed.Seconds()
		fmt.Fprintf(w, "%dx%d\t%d\t%v\t%.0f\t%.3f\n",
			sz[0], sz[1], result.Frames, result.Elapsed.Round(time.Microsecond), fps, result.Metrics["mean_heat"])
	}

	return w.Flush()
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sim, l, err := headless(cfg, cols, rows)
	if err != nil {
		return err
	}

	fmt.Printf("recording %d frames at %dx%d...\n", recordFrames, cols, rows)
	result, err := l.Run(cmd.Context(), loop.Config{Frames: recordFrames})
	if err != nil {
		return err
	}

	id, err := st.Save(storage.Snapshot{
		Seed:    cfg.Seed,
		Frames:  result.Frames,
		Palette: sim.Palette().String(),
		Metrics: result.Metrics,
	}, sim.Grid())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", result.Elapsed)
	fmt.Printf("snapshot id: %s\n", id)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	snaps, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSIZE\tFRAMES\tSEED\tMEAN HEAT")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%d\t%.3f\n",
			s.ID,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Cols, s.Rows,
			s.Frames,
			s.Seed,
			s.Metrics["mean_heat"],
		)
	}
	return w.Flush()
}

func showSnapshot(cmd *cobra.Command, args []string) error {
	id := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return err
	}
	g, err := st.LoadGrid(id)
	if err != nil {
		return err
	}

	p := fire.DefaultPalette()
	if meta.Palette != "" {
		if p, err = fire.NewPalette(meta.Palette); err != nil {
			return err
		}
	}
	for i, row := range g {
		for j, v := range row {
			if v > p.Max() {
				return fmt.Errorf("snapshot %s: cell (%d,%d) = %d exceeds palette", id, i, j, v)
			}
		}
	}

	var buf bytes.Buffer
	fire.AppendFrame(&buf, g, p)
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return err
	}

	if profile := heatProfile(g, p.Max()); len(profile) > 1 {
		graph := asciigraph.Plot(profile,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("mean heat by row (top to bottom)"),
		)
		fmt.Println()
		fmt.Println(graph)
	}

	fmt.Printf("\nsnapshot: %s (%dx%d, %d frames, seed %d)\n", meta.ID, meta.Cols, meta.Rows, meta.Frames, meta.Seed)
	return nil
}

// heatProfile is the normalised mean intensity of each visible row.
func heatProfile(g fire.Grid, max uint8) []float64 {
	if g.Rows() < 2 {
		return nil
	}
	profile := make([]float64, g.Rows()-1)
	for i := range profile {
		if len(g[i]) == 0 || max == 0 {
			continue
		}
		sum := 0
		for _, v := range g[i] {
			sum += int(v)
		}
		profile[i] = float64(sum) / float64(len(g[i])) / float64(max)
	}
	return profile
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tINTERVAL\tRENDERER\tTHEME\tGLYPHS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		glyphs := p.Palette
		if glyphs == "" {
			glyphs = "(default)"
		}
		fmt.Fprintf(w, "%s\t%v\t%s\t%s\t%q\n", name, p.Interval, p.Renderer, p.Theme, glyphs)
	}
	return w.Flush()
}
