package fire_test

import (
	"bytes"
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/asciifire/internal/fire"
)

type termStub struct{ cols, rows int }

func (t *termStub) Size() (int, int, error) { return t.cols, t.rows, nil }

// fill writes r*cols+c into every cell so cells can be traced across resizes.
func fill(g fire.Grid) {
	for r, row := range g {
		for c := range row {
			row[c] = uint8(r*len(row) + c)
		}
	}
}

// diffuse applies both sweeps to a copy of g.
func diffuse(g fire.Grid) fire.Grid {
	out := g.Clone()
	rows, cols := out.Rows(), out.Cols()
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			sum := int(out[i][j]) + int(out[i+1][j]) + int(out[i][j+1]) + int(out[i+1][j+1])
			out[i][j] = uint8(sum / 4)
		}
	}
	for i := 0; i < rows-1; i++ {
		for j := cols - 1; j > 0; j-- {
			sum := int(out[i][j]) + int(out[i+1][j]) + int(out[i][j-1]) + int(out[i+1][j-1])
			out[i][j] = uint8(sum / 4)
		}
	}
	return out
}

var _ = Describe("Simulator", func() {
	var (
		stub *termStub
		sim  *fire.Simulator
	)

	BeforeEach(func() {
		stub = &termStub{cols: 10, rows: 5}
		var err error
		sim, err = fire.New(stub, fire.WithRand(rand.New(rand.NewPCG(7, 11))))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Seed", func() {
		It("only mutates the last row", func() {
			fill(sim.Grid())
			before := sim.Grid().Clone()

			sim.Seed()

			g := sim.Grid()
			for r := 0; r < g.Rows()-1; r++ {
				Expect(g[r]).To(Equal(before[r]), "row %d", r)
			}
		})

		It("writes cold cells or hot values strictly inside the palette", func() {
			max := sim.Palette().Len() - 1
			for i := 0; i < 100; i++ {
				sim.Seed()
				for _, v := range sim.Grid()[4] {
					Expect(int(v)).To(SatisfyAny(Equal(0), BeNumerically("<", max)))
				}
			}
		})
	})

	Describe("Resize", func() {
		It("tracks the most recent size after any sequence of changes", func() {
			sizes := [][2]int{{12, 7}, {3, 2}, {40, 1}, {1, 30}, {10, 5}, {10, 5}, {80, 24}}
			for _, sz := range sizes {
				stub.cols, stub.rows = sz[0], sz[1]
				Expect(sim.Resize()).To(Succeed())

				cols, rows := sim.Size()
				Expect(cols).To(Equal(sz[0]))
				Expect(rows).To(Equal(sz[1]))
				Expect(sim.Grid()).To(HaveLen(sz[1]))
				for _, row := range sim.Grid() {
					Expect(row).To(HaveLen(sz[0]))
				}
			}
		})

		It("drops the topmost row and leftmost columns when shrinking", func() {
			fill(sim.Grid())
			before := sim.Grid().Clone()

			stub.cols, stub.rows = 8, 4
			Expect(sim.Resize()).To(Succeed())

			g := sim.Grid()
			Expect(g.Rows()).To(Equal(4))
			Expect(g.Cols()).To(Equal(8))
			for r := 0; r < 4; r++ {
				for c := 0; c < 8; c++ {
					Expect(g[r][c]).To(Equal(before[r+1][c+2]), "cell (%d,%d)", r, c)
				}
			}
			Expect(g[0][0]).To(Equal(uint8(12)), "first surviving cell was row 1 col 2")
		})

		It("adds cold cells at the top and left when growing", func() {
			sim.Grid()[4][0] = 9

			stub.cols, stub.rows = 11, 6
			Expect(sim.Resize()).To(Succeed())

			g := sim.Grid()
			Expect(g[0]).To(Equal(make([]uint8, 11)))
			Expect(g[5][0]).To(BeZero())
			Expect(g[5][1]).To(Equal(uint8(9)))
		})
	})

	Describe("a full frame", func() {
		It("keeps size, leaves the seed row alone and diffuses by averaging", func() {
			Expect(sim.Resize()).To(Succeed())
			sim.Seed()
			seeded := sim.Grid().Clone()

			sim.Calculate()

			g := sim.Grid()
			Expect(g.Cols()).To(Equal(10))
			Expect(g.Rows()).To(Equal(5))
			Expect(g[4]).To(Equal(seeded[4]))
			Expect(g).To(Equal(diffuse(seeded)))
		})

		It("keeps every cell inside the palette across many frames", func() {
			max := sim.Palette().Max()
			for i := 0; i < 200; i++ {
				sim.Seed()
				sim.Calculate()
				for _, row := range sim.Grid() {
					for _, v := range row {
						Expect(v).To(BeNumerically("<=", max))
					}
				}
			}

			var out bytes.Buffer
			Expect(sim.Render(&out)).To(Succeed())
			Expect(bytes.Count(out.Bytes(), []byte("\n"))).To(Equal(4))
		})
	})

	Describe("Render", func() {
		It("hides the seed row and the last two columns", func() {
			g := sim.Grid()
			for c := range g[0] {
				g[0][c] = sim.Palette().Max()
			}

			var out bytes.Buffer
			Expect(sim.Render(&out)).To(Succeed())

			lines := bytes.Split(bytes.TrimSuffix(out.Bytes(), []byte("\n")), []byte("\n"))
			Expect(lines).To(HaveLen(4))
			Expect(string(lines[0])).To(Equal("@@@@@@@@"))
			for _, line := range lines {
				Expect(line).To(HaveLen(8))
			}
		})
	})
})
