package metrics

import "github.com/san-kum/asciifire/internal/fire"

// Heat summarises the visible part of a grid: every row but the seed row.
type Heat struct {
	Mean     float64 // mean intensity normalised to [0,1]
	Peak     uint8
	Coverage float64 // fraction of visible cells above zero
}

// Measure computes Heat for g. max is the palette's highest intensity.
func Measure(g fire.Grid, max uint8) Heat {
	var h Heat
	rows := g.Rows() - 1
	if rows <= 0 || g.Cols() == 0 || max == 0 {
		return h
	}

	var sum, lit int
	for i := 0; i < rows; i++ {
		for _, v := range g[i] {
			sum += int(v)
			if v > 0 {
				lit++
			}
			if v > h.Peak {
				h.Peak = v
			}
		}
	}
	cells := float64(rows * g.Cols())
	h.Mean = float64(sum) / cells / float64(max)
	h.Coverage = float64(lit) / cells
	return h
}

type MeanHeat struct {
	name    string
	max     uint8
	samples int
	total   float64
}

func NewMeanHeat(max uint8) *MeanHeat {
	return &MeanHeat{name: "mean_heat", max: max}
}

func (m *MeanHeat) Name() string { return m.name }

func (m *MeanHeat) Observe(g fire.Grid, frame int) {
	m.total += Measure(g, m.max).Mean
	m.samples++
}

func (m *MeanHeat) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanHeat) Reset() {
	m.total = 0
	m.samples = 0
}

type PeakHeat struct {
	name string
	peak uint8
}

func NewPeakHeat() *PeakHeat {
	return &PeakHeat{name: "peak_heat"}
}

func (p *PeakHeat) Name() string { return p.name }

func (p *PeakHeat) Observe(g fire.Grid, frame int) {
	if h := Measure(g, 1); h.Peak > p.peak {
		p.peak = h.Peak
	}
}

func (p *PeakHeat) Value() float64 { return float64(p.peak) }

func (p *PeakHeat) Reset() { p.peak = 0 }

type Coverage struct {
	name    string
	samples int
	total   float64
}

func NewCoverage() *Coverage {
	return &Coverage{name: "coverage"}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) Observe(g fire.Grid, frame int) {
	c.total += Measure(g, 1).Coverage
	c.samples++
}

func (c *Coverage) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.total / float64(c.samples)
}

func (c *Coverage) Reset() {
	c.total = 0
	c.samples = 0
}

// History keeps the most recent values up to a fixed capacity.
type History struct {
	capacity int
	values   []float64
}

func NewHistory(capacity int) *History {
	return &History{capacity: capacity, values: make([]float64, 0, capacity)}
}

func (h *History) Push(v float64) {
	h.values = append(h.values, v)
	if len(h.values) > h.capacity {
		h.values = h.values[1:]
	}
}

func (h *History) Values() []float64 { return h.values }

func (h *History) Len() int { return len(h.values) }
