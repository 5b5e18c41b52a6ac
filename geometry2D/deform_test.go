package geometry2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestDeform(t *testing.T) {
	nodes := unitSquare()
	disp := []r2.Vec{
		{X: 0.1, Y: 0},
		{X: -0.1, Y: 0.2},
		{X: 0.3, Y: -0.1},
		{X: 0.1, Y: 0.3},
	}

	deformed, err := Deform(nodes, disp)
	require.NoError(t, err)
	require.Len(t, deformed, 4)

	// Recentered: the mean of the deformed coordinates is the origin.
	c := Centroid(deformed)
	assert.InDelta(t, 0, c.X, 1.e-12)
	assert.InDelta(t, 0, c.Y, 1.e-12)

	// Relative geometry survives recentering.
	d01 := deformed[1].Sub(deformed[0])
	assert.InDelta(t, 1+(-0.1-0.1), d01.X, 1.e-12)
	assert.InDelta(t, 0.2, d01.Y, 1.e-12)
}

func TestDeformNoField(t *testing.T) {
	nodes := []r2.Vec{{X: 3, Y: 4}, {X: 5, Y: 6}}
	deformed, err := Deform(nodes, nil)
	require.NoError(t, err)
	// Without a field the coordinates pass through without recentering.
	assert.Equal(t, nodes, deformed)
}

func TestDeformShapeMismatch(t *testing.T) {
	_, err := Deform(unitSquare(), make([]r2.Vec, 2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestCentroid(t *testing.T) {
	c := Centroid(unitSquare())
	assert.Equal(t, r2.Vec{X: 0.5, Y: 0.5}, c)
}

func TestScaleField(t *testing.T) {
	disp := []r2.Vec{{X: 1, Y: -2}, {X: 0.5, Y: 0}}
	half := ScaleField(disp, 0.5)
	assert.Equal(t, []r2.Vec{{X: 0.5, Y: -1}, {X: 0.25, Y: 0}}, half)
	assert.Nil(t, ScaleField(nil, 0.5))
}

func TestBoundingBox(t *testing.T) {
	bb := NewBoundingBox([]r2.Vec{{X: -1, Y: 2}, {X: 3, Y: -4}, {X: 0, Y: 0}})
	require.NotNil(t, bb)
	assert.Equal(t, 4., bb.Lx())
	assert.Equal(t, 6., bb.Ly())
	assert.Equal(t, r2.Vec{X: 1, Y: -1}, bb.Centroid())

	assert.Nil(t, NewBoundingBox(nil))
}
