package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/asciifire/internal/fire"
)

const statsWidth = 34

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

func statsStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Muted).
		Padding(0, 1).
		Width(statsWidth - 1)
}

func headerStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Bold(true).MarginBottom(1)
}

// rampStyles builds one foreground style per theme colour.
func rampStyles(t Theme) []lipgloss.Style {
	styles := make([]lipgloss.Style, len(t.Ramp))
	for i, c := range t.Ramp {
		styles[i] = lipgloss.NewStyle().Foreground(c)
	}
	return styles
}

// bucket maps intensity v in [0,max] onto n colour buckets.
func bucket(v, max uint8, n int) int {
	if max == 0 {
		return 0
	}
	b := int(v) * n / (int(max) + 1)
	if b >= n {
		b = n - 1
	}
	return b
}

// colorFrame renders the visible part of g, grouping runs of cells that fall
// in the same colour bucket into one styled span.
func colorFrame(g fire.Grid, p fire.Palette, styles []lipgloss.Style) string {
	var b strings.Builder
	visible := max(g.Cols()-2, 0)
	run := make([]rune, 0, visible)
	for i := 0; i < g.Rows()-1; i++ {
		row := g[i]
		cur := -1
		for j := 0; j < visible; j++ {
			k := bucket(row[j], p.Max(), len(styles))
			if k != cur && len(run) > 0 {
				b.WriteString(styles[cur].Render(string(run)))
				run = run[:0]
			}
			cur = k
			run = append(run, p.Glyph(row[j]))
		}
		if len(run) > 0 {
			b.WriteString(styles[cur].Render(string(run)))
			run = run[:0]
		}
		b.WriteByte('\n')
	}
	return b.String()
}
