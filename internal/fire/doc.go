// Package fire implements the heat-diffusion core of the ASCII fire effect.
//
// A [Simulator] owns a grid of intensity values sized to the terminal and
// advances it one frame at a time:
//
//   - [Simulator.Resize]: match the grid to the current terminal size
//   - [Simulator.Seed]: scatter random heat and gaps across the bottom row
//   - [Simulator.Calculate]: diffuse heat upward with two averaging sweeps
//   - [Simulator.Render]: map intensities through the [Palette] to text
//
// # Example
//
//	sim, err := fire.New(term.New(os.Stdout))
//	if err != nil {
//	    return err
//	}
//	for {
//	    sim.Resize()
//	    sim.Seed()
//	    sim.Calculate()
//	    sim.Render(os.Stdout)
//	}
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. Drive each one from a single goroutine.
package fire
