// Package grid builds structured 2D unit cell grids whose output files
// feed the renderer. Grids carry one density per element, the design
// variable of the topology optimization pipeline this tool visualizes.
package grid

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// NumericalZero is the smallest density a grid stores. Void elements
// keep this floor instead of an exact zero so downstream solvers never
// see a singular stiffness contribution.
const NumericalZero = 1.e-9

// Quad4 is a structured grid of 4-node quadrilaterals covering a
// rectangular unit cell. Nodes and elements are numbered row-major from
// the bottom left, elements counterclockwise.
type Quad4 struct {
	Nx, Ny int     // cells per axis
	Lx, Ly float64 // physical extent per axis

	Nodes []r2.Vec
	EtoV  [][]int
	Rho   []float64
}

// NewQuad4 builds the grid geometry with all densities at the numerical
// floor.
func NewQuad4(nx, ny int, lx, ly float64) (*Quad4, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("grid resolution %dx%d: need at least one cell per axis", nx, ny)
	}
	if lx <= 0 || ly <= 0 {
		return nil, fmt.Errorf("grid size %gx%g: extents must be positive", lx, ly)
	}

	g := &Quad4{
		Nx: nx, Ny: ny,
		Lx: lx, Ly: ly,
		Nodes: make([]r2.Vec, (nx+1)*(ny+1)),
		EtoV:  make([][]int, nx*ny),
		Rho:   make([]float64, nx*ny),
	}

	dx, dy := lx/float64(nx), ly/float64(ny)
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			g.Nodes[g.NodeID(i, j)] = r2.Vec{X: float64(i) * dx, Y: float64(j) * dy}
		}
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			g.EtoV[g.ElementID(i, j)] = []int{
				g.NodeID(i, j),
				g.NodeID(i+1, j),
				g.NodeID(i+1, j+1),
				g.NodeID(i, j+1),
			}
		}
	}
	for e := range g.Rho {
		g.Rho[e] = NumericalZero
	}
	return g, nil
}

// NodeID maps node grid coordinates to the node index.
func (g *Quad4) NodeID(i, j int) int {
	return j*(g.Nx+1) + i
}

// ElementID maps cell grid coordinates to the element index.
func (g *Quad4) ElementID(i, j int) int {
	return j*g.Nx + i
}

// NumElements is the cell count.
func (g *Quad4) NumElements() int {
	return g.Nx * g.Ny
}

// NumNodes is the node count.
func (g *Quad4) NumNodes() int {
	return (g.Nx + 1) * (g.Ny + 1)
}

// Density reads the density of cell (i, j).
func (g *Quad4) Density(i, j int) float64 {
	return g.Rho[g.ElementID(i, j)]
}
