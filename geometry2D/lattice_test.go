package geometry2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func unitSquare() []r2.Vec {
	return []r2.Vec{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
}

func TestNewLattice(t *testing.T) {
	lat := NewLattice(unitSquare())
	assert.Equal(t, r2.Vec{X: 1, Y: 0}, lat.V1)
	assert.Equal(t, r2.Vec{X: 0, Y: 1}, lat.V2)
}

func TestNewLatticeRectangle(t *testing.T) {
	nodes := []r2.Vec{
		{X: -1, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 0.5},
		{X: -1, Y: 0.5},
		{X: 0.5, Y: 0.25}, // interior node, no influence on extents
	}
	lat := NewLattice(nodes)
	assert.Equal(t, r2.Vec{X: 3, Y: 0}, lat.V1)
	assert.Equal(t, r2.Vec{X: 0, Y: 0.5}, lat.V2)
}

func TestNewLatticeDeformed(t *testing.T) {
	t.Run("ZeroField", func(t *testing.T) {
		disp := make([]r2.Vec, 4)
		lat, err := NewLatticeDeformed(unitSquare(), disp, DefaultTolerance)
		require.NoError(t, err)
		assert.Equal(t, r2.Vec{X: 1, Y: 0}, lat.V1)
		assert.Equal(t, r2.Vec{X: 0, Y: 1}, lat.V2)
	})

	t.Run("RightBoundaryJump", func(t *testing.T) {
		// Right boundary nodes carry (0.2, 0); the jump stretches V1 and,
		// because top and bottom see the same mean, leaves V2 alone.
		disp := []r2.Vec{
			{X: 0, Y: 0},
			{X: 0.2, Y: 0},
			{X: 0.2, Y: 0},
			{X: 0, Y: 0},
		}
		lat, err := NewLatticeDeformed(unitSquare(), disp, DefaultTolerance)
		require.NoError(t, err)
		assert.InDelta(t, 1.2, lat.V1.X, 1.e-12)
		assert.InDelta(t, 0, lat.V1.Y, 1.e-12)
		assert.InDelta(t, 0, lat.V2.X, 1.e-12)
		assert.InDelta(t, 1, lat.V2.Y, 1.e-12)
	})

	t.Run("ShearJump", func(t *testing.T) {
		// A vertical offset between right and left shows up as the y
		// component of V1.
		disp := []r2.Vec{
			{X: 0, Y: 0},
			{X: 0, Y: 0.1},
			{X: 0, Y: 0.1},
			{X: 0, Y: 0},
		}
		lat, err := NewLatticeDeformed(unitSquare(), disp, DefaultTolerance)
		require.NoError(t, err)
		assert.InDelta(t, 1, lat.V1.X, 1.e-12)
		assert.InDelta(t, 0.1, lat.V1.Y, 1.e-12)
	})

	t.Run("NearBoundaryNodesCounted", func(t *testing.T) {
		// A node within tolerance of the extremum belongs to the boundary.
		nodes := append(unitSquare(), r2.Vec{X: 1 + 1.e-9, Y: 0.5})
		disp := []r2.Vec{
			{}, {X: 0.2}, {X: 0.2}, {}, {X: 0.2},
		}
		lat, err := NewLatticeDeformed(nodes, disp, DefaultTolerance)
		require.NoError(t, err)
		assert.InDelta(t, 1.2, lat.V1.X, 1.e-6)
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		_, err := NewLatticeDeformed(unitSquare(), make([]r2.Vec, 3), DefaultTolerance)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})
}

func TestNewLatticeDeformedDegenerateBoundary(t *testing.T) {
	// With a negative tolerance no node matches any extremum; the empty
	// mask must surface as an error, never as a silent zero jump.
	disp := make([]r2.Vec, 4)
	_, err := NewLatticeDeformed(unitSquare(), disp, Tolerance{Abs: -1, Rel: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerateBoundary)
	assert.Contains(t, err.Error(), "left")
}

func TestToleranceClose(t *testing.T) {
	tol := DefaultTolerance
	assert.True(t, tol.Close(1, 1))
	assert.True(t, tol.Close(1+1.e-9, 1))
	assert.True(t, tol.Close(0, 1.e-9))
	assert.False(t, tol.Close(1.01, 1))
	assert.False(t, tol.Close(0, 1.e-3))
}
