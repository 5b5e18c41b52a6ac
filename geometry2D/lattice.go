package geometry2D

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrDegenerateBoundary means a boundary-membership mask selected no
	// nodes, so the displacement jump across that boundary is undefined.
	ErrDegenerateBoundary = errors.New("degenerate boundary")
	// ErrShapeMismatch means a field array length disagrees with the
	// node or element count it must pair with.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// Tolerance controls the approximate-equality test that classifies a node
// as a member of a unit cell boundary. A coordinate a matches an extremum
// b when |a-b| is within Abs absolutely or within Rel relative to the
// larger magnitude.
type Tolerance struct {
	Abs float64
	Rel float64
}

// DefaultTolerance is adequate for meshes with extents of order one.
var DefaultTolerance = Tolerance{Abs: 1.e-8, Rel: 1.e-5}

func (tol Tolerance) Close(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, tol.Abs, tol.Rel)
}

// Lattice is the pair of translation vectors by which the unit cell
// repeats to tile the plane.
type Lattice struct {
	V1, V2 r2.Vec
}

// NewLattice derives the base lattice vectors from the axis-aligned
// extents of the undeformed nodes: V1 = (Lx, 0), V2 = (0, Ly).
func NewLattice(nodes []r2.Vec) Lattice {
	bb := NewBoundingBox(nodes)
	return Lattice{
		V1: r2.Vec{X: bb.Lx()},
		V2: r2.Vec{Y: bb.Ly()},
	}
}

// NewLatticeDeformed corrects the base lattice vectors by the mean
// displacement jump between opposite boundaries of the unit cell. Under
// periodic boundary conditions the deformed cell's true repeat vector is
// its geometric extent plus that jump; without the correction, tiled
// deformed cells show gaps or overlaps at the seams.
func NewLatticeDeformed(nodes, disp []r2.Vec, tol Tolerance) (Lattice, error) {
	if len(disp) != len(nodes) {
		return Lattice{}, fmt.Errorf("%d displacements for %d nodes: %w",
			len(disp), len(nodes), ErrShapeMismatch)
	}
	var (
		bb  = NewBoundingBox(nodes)
		lat = Lattice{V1: r2.Vec{X: bb.Lx()}, V2: r2.Vec{Y: bb.Ly()}}
	)

	coordX := func(p r2.Vec) float64 { return p.X }
	coordY := func(p r2.Vec) float64 { return p.Y }

	left, err := boundaryMean(nodes, disp, coordX, bb.XMin[0], tol, "left")
	if err != nil {
		return Lattice{}, err
	}
	right, err := boundaryMean(nodes, disp, coordX, bb.XMax[0], tol, "right")
	if err != nil {
		return Lattice{}, err
	}
	bottom, err := boundaryMean(nodes, disp, coordY, bb.XMin[1], tol, "bottom")
	if err != nil {
		return Lattice{}, err
	}
	top, err := boundaryMean(nodes, disp, coordY, bb.XMax[1], tol, "top")
	if err != nil {
		return Lattice{}, err
	}

	lat.V1 = lat.V1.Add(right.Sub(left))
	lat.V2 = lat.V2.Add(top.Sub(bottom))
	return lat, nil
}

// boundaryMean averages the displacement over the nodes whose coordinate
// matches the extremum within tolerance. An empty selection is fatal - a
// silent zero jump would hide a degenerate or mismatched mesh.
func boundaryMean(nodes, disp []r2.Vec, coord func(r2.Vec) float64,
	extremum float64, tol Tolerance, side string) (r2.Vec, error) {
	var ux, uy []float64
	for i, p := range nodes {
		if tol.Close(coord(p), extremum) {
			ux = append(ux, disp[i].X)
			uy = append(uy, disp[i].Y)
		}
	}
	if len(ux) == 0 {
		return r2.Vec{}, fmt.Errorf("no nodes on %s boundary within tolerance: %w",
			side, ErrDegenerateBoundary)
	}
	return r2.Vec{X: stat.Mean(ux, nil), Y: stat.Mean(uy, nil)}, nil
}
