package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/asciifire/internal/config"
	"github.com/san-kum/asciifire/internal/fire"
)

func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	f := cmd.Flags()
	f.DurationVar(&interval, "interval", config.DefaultInterval, "")
	f.Int64Var(&seed, "seed", 0, "")
	f.StringVar(&palette, "palette", "", "")
	f.StringVar(&theme, "theme", config.DefaultTheme, "")
	return cmd
}

func resetGlobals(t *testing.T) {
	t.Helper()
	preset, configFile = "", ""
	t.Cleanup(func() { preset, configFile = "", "" })
}

func TestResolveConfigPrecedence(t *testing.T) {
	resetGlobals(t)
	path := filepath.Join(t.TempDir(), "fire.yaml")
	if err := os.WriteFile(path, []byte("interval: 40ms\nseed: 5\ntheme: ice\nrenderer: plain\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newFlagCmd()
	if err := cmd.ParseFlags([]string{"--seed", "9"}); err != nil {
		t.Fatal(err)
	}
	preset = "slow"
	configFile = path

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if cfg.Interval != 40*time.Millisecond {
		t.Errorf("expected config file interval 40ms, got %v", cfg.Interval)
	}
	if cfg.Seed != 9 {
		t.Errorf("expected flag seed 9, got %d", cfg.Seed)
	}
	if cfg.Theme != "ice" {
		t.Errorf("expected config file theme ice, got %s", cfg.Theme)
	}
}

func TestResolveConfigPreset(t *testing.T) {
	resetGlobals(t)
	cmd := newFlagCmd()
	preset = "slow"

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.Interval != 80*time.Millisecond {
		t.Errorf("expected preset interval 80ms, got %v", cfg.Interval)
	}
}

func TestResolveConfigFileOverPreset(t *testing.T) {
	resetGlobals(t)
	path := filepath.Join(t.TempDir(), "fire.yaml")
	if err := os.WriteFile(path, []byte("seed: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newFlagCmd()
	preset = "blocks"
	configFile = path

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cfg.Seed != 4 {
		t.Errorf("expected seed 4 from file, got %d", cfg.Seed)
	}
	if cfg.Renderer != config.RendererTUI || cfg.Theme != "inferno" {
		t.Errorf("expected blocks preset values kept, got %+v", cfg)
	}
}

func TestResolveConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func()
		args  []string
	}{
		{"unknown preset", func() { preset = "bogus" }, nil},
		{"bad palette", func() {}, []string{"--palette", "#"}},
		{"zero interval", func() {}, []string{"--interval", "0s"}},
		{"unknown theme", func() {}, []string{"--theme", "lava"}},
		{"missing file", func() { configFile = "/nonexistent/fire.yaml" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			cmd := newFlagCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			tt.setup()
			if _, err := resolveConfig(cmd); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestHeatProfile(t *testing.T) {
	g := fire.Grid{
		{10, 10},
		{0, 5},
		{49, 49},
	}

	profile := heatProfile(g, 10)
	if len(profile) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(profile))
	}
	if profile[0] != 1.0 || profile[1] != 0.25 {
		t.Errorf("expected [1 0.25], got %v", profile)
	}

	if heatProfile(fire.Grid{{1}}, 10) != nil {
		t.Error("expected nil profile for seed-row-only grid")
	}
}
