package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"classic": {
		Interval: DefaultInterval, Theme: DefaultTheme, Renderer: RendererPlain,
	},
	"slow": {
		Interval: 80 * time.Millisecond, Theme: DefaultTheme, Renderer: RendererPlain,
	},
	"blocks": {
		Interval: DefaultInterval, Theme: "inferno", Renderer: RendererTUI,
		Palette: " .:-=+*#%@",
	},
	"ramp": {
		Interval: 50 * time.Millisecond, Theme: "mono", Renderer: RendererPlain,
		Palette: " .'`^\",:;Il!i><~+_-?][}{1)(|/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
