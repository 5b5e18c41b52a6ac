package geometry2D

import "gonum.org/v1/gonum/spatial/r2"

// BoundingBox is the axis-aligned bounding box of a set of 2D points.
type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

func NewBoundingBox(nodes []r2.Vec) (box *BoundingBox) {
	if len(nodes) == 0 {
		return nil
	}
	box = new(BoundingBox)
	box.XMin[0], box.XMin[1] = nodes[0].X, nodes[0].Y
	box.XMax[0], box.XMax[1] = nodes[0].X, nodes[0].Y
	for _, p := range nodes {
		if p.X < box.XMin[0] {
			box.XMin[0] = p.X
		}
		if p.X > box.XMax[0] {
			box.XMax[0] = p.X
		}
		if p.Y < box.XMin[1] {
			box.XMin[1] = p.Y
		}
		if p.Y > box.XMax[1] {
			box.XMax[1] = p.Y
		}
	}
	return box
}

func (bb *BoundingBox) Centroid() r2.Vec {
	return r2.Vec{
		X: 0.5 * (bb.XMax[0] + bb.XMin[0]),
		Y: 0.5 * (bb.XMax[1] + bb.XMin[1]),
	}
}

// Lx is the extent along x.
func (bb *BoundingBox) Lx() float64 {
	return bb.XMax[0] - bb.XMin[0]
}

// Ly is the extent along y.
func (bb *BoundingBox) Ly() float64 {
	return bb.XMax[1] - bb.XMin[1]
}
