package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the fire from coldest to hottest and styles the stats pane.
type Theme struct {
	Name   string
	Ramp   []lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

// Available themes
var (
	ThemeEmber = Theme{
		Name: "ember",
		Ramp: []lipgloss.Color{
			"#1a0000", "#5a0a00", "#8f1d00", "#c23b00",
			"#e86100", "#ff8c00", "#ffb52e", "#ffdc73", "#fff6d5",
		},
		Accent: lipgloss.Color("#ff8c00"),
		Muted:  lipgloss.Color("#884422"),
	}

	ThemeInferno = Theme{
		Name: "inferno",
		Ramp: []lipgloss.Color{
			"#000004", "#1b0c41", "#4a0c6b", "#781c6d",
			"#a52c60", "#cf4446", "#ed6925", "#fb9b06", "#fcffa4",
		},
		Accent: lipgloss.Color("#ed6925"),
		Muted:  lipgloss.Color("#781c6d"),
	}

	ThemeIce = Theme{
		Name: "ice",
		Ramp: []lipgloss.Color{
			"#00050f", "#001a33", "#003366", "#0059b3",
			"#0077be", "#00a8cc", "#66d9ff", "#b3ecff", "#ffffff",
		},
		Accent: lipgloss.Color("#00a8cc"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeMono = Theme{
		Name: "mono",
		Ramp: []lipgloss.Color{
			"#111111", "#333333", "#555555", "#777777",
			"#999999", "#bbbbbb", "#dddddd", "#ffffff",
		},
		Accent: lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
	}

	// All available themes
	Themes = []Theme{
		ThemeEmber,
		ThemeInferno,
		ThemeIce,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to ember.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeEmber
}

// ThemeNames lists the theme names accepted by config validation.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// nextTheme returns the theme after name in Themes, wrapping around.
func nextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
