package fire

// Grid stores intensities indexed [row][column]. Row 0 is the top of the
// screen and the last row is the seed row.
type Grid [][]uint8

// NewGrid allocates a zeroed grid.
func NewGrid(cols, rows int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]uint8, cols)
	}
	return g
}

func (g Grid) Rows() int { return len(g) }

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for i, row := range g {
		c[i] = append([]uint8(nil), row...)
	}
	return c
}

// growTop prepends a zero row of the given width.
func (g Grid) growTop(cols int) Grid {
	g = append(g, nil)
	copy(g[1:], g)
	g[0] = make([]uint8, cols)
	return g
}

// shrinkTop drops the topmost row.
func (g Grid) shrinkTop() Grid {
	return g[1:]
}

// growLeft prepends a zero cell to every row.
func (g Grid) growLeft() {
	for i, row := range g {
		row = append(row, 0)
		copy(row[1:], row)
		row[0] = 0
		g[i] = row
	}
}

// shrinkLeft drops the leftmost cell of every row.
func (g Grid) shrinkLeft() {
	for i, row := range g {
		g[i] = row[1:]
	}
}
