package geometry2D

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Deform adds the displacement field to the node coordinates, 1:1 by
// index, then recenters the result on its centroid so the deformed cell
// sits at the origin regardless of rigid-body drift in the field. A nil
// field returns the nodes as they are, with no recentering.
func Deform(nodes, disp []r2.Vec) ([]r2.Vec, error) {
	if disp == nil {
		return nodes, nil
	}
	if len(disp) != len(nodes) {
		return nil, fmt.Errorf("%d displacements for %d nodes: %w",
			len(disp), len(nodes), ErrShapeMismatch)
	}

	deformed := make([]r2.Vec, len(nodes))
	for i := range nodes {
		deformed[i] = nodes[i].Add(disp[i])
	}
	c := Centroid(deformed)
	for i := range deformed {
		deformed[i] = deformed[i].Sub(c)
	}
	return deformed, nil
}

// Centroid is the arithmetic mean of a set of points.
func Centroid(points []r2.Vec) r2.Vec {
	var c r2.Vec
	for _, p := range points {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(points)))
}

// ScaleField returns a copy of the displacement field scaled by s, used
// to exaggerate or damp deformation for display. A nil field stays nil.
func ScaleField(disp []r2.Vec, s float64) []r2.Vec {
	if disp == nil {
		return nil
	}
	out := make([]r2.Vec, len(disp))
	for i, u := range disp {
		out[i] = u.Scale(s)
	}
	return out
}
