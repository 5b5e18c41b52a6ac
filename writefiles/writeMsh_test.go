package writefiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gocell/grid"
	"github.com/notargets/gocell/readfiles"
)

func TestSaveGridGolden(t *testing.T) {
	g, err := grid.NewQuad4(1, 1, 0.5, 1.0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cell.msh")
	require.NoError(t, SaveGrid(g, path, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `$MeshFormat
4.1 0 8
$EndMeshFormat

$Nodes
1 4 1 4
2 1 0 4
1
2
3
4
0 0 0
0.5 0 0
0 1 0
0.5 1 0
$EndNodes

$Elements
1 1 1 1
2 1 3 1
1 1 2 4 3
$EndElements
`
	assert.Equal(t, want, string(content))
}

func TestSaveGridAndFieldGolden(t *testing.T) {
	g, err := grid.NewQuad4(1, 1, 0.5, 1.0)
	require.NoError(t, err)
	require.NoError(t, g.SetDensities([]float64{0.75}))

	field := []r2.Vec{
		{X: 0.1, Y: -0.2},
		{X: 0, Y: 0},
		{X: 0.5, Y: 1},
		{X: 0, Y: 0},
	}

	path := filepath.Join(t.TempDir(), "cell.msh")
	require.NoError(t, SaveGridAndField(g, field, path, "Displacement"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `$MeshFormat
4.1 0 8
$EndMeshFormat

$Nodes
1 4 1 4
2 1 0 4
1
2
3
4
0 0 0
0.5 0 0
0 1 0
0.5 1 0
$EndNodes

$Elements
1 1 1 1
2 1 3 1
1 1 2 4 3
$EndElements

$ElementData
1
"Density"
0
3
0
1
1
1 0.75
$EndElementData

$NodeData
1
"Displacement"
0
3
0
3
4
1 0.1 -0.2 0
2 0 0 0
3 0.5 1 0
4 0 0 0
$EndNodeData
`
	assert.Equal(t, want, string(content))
}

// Densities at the numerical floor write out as true voids.
func TestSaveGridFloorsToZero(t *testing.T) {
	g, err := grid.NewQuad4(2, 1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetDensity(1, 0, 0.5))

	path := filepath.Join(t.TempDir(), "cell.msh")
	require.NoError(t, SaveGrid(g, path, true))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "\n1 0\n2 0.5\n")
}

func TestSaveGridExtension(t *testing.T) {
	g, err := grid.NewQuad4(1, 1, 1, 1)
	require.NoError(t, err)

	err = SaveGrid(g, filepath.Join(t.TempDir(), "cell.txt"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".msh")
}

func TestSaveGridAndFieldShape(t *testing.T) {
	g, err := grid.NewQuad4(1, 1, 1, 1)
	require.NoError(t, err)

	err = SaveGridAndField(g, make([]r2.Vec, 3), filepath.Join(t.TempDir(), "cell.msh"), "U")
	assert.Error(t, err)
}

// Whatever the writer produces, the reader hands back unchanged.
func TestRoundTrip(t *testing.T) {
	g, err := grid.NewQuad4(4, 2, 1, 0.5)
	require.NoError(t, err)
	require.NoError(t, g.SetDensities([]float64{
		0.1, 0.2, 0.3, 0.4,
		0.5, 0.625, 0.75, 1,
	}))

	field := make([]r2.Vec, g.NumNodes())
	samples := []r2.Vec{
		{X: 0.1, Y: -0.2},
		{X: 0, Y: 0.5},
		{X: -0.25, Y: 0.125},
		{X: 1, Y: 0},
	}
	for i := range field {
		field[i] = samples[i%len(samples)]
	}

	path := filepath.Join(t.TempDir(), "cell.msh")
	require.NoError(t, SaveGridAndField(g, field, path, "Displacement"))

	msh, err := readfiles.ReadMsh(path)
	require.NoError(t, err)

	assert.Equal(t, g.Nodes, msh.Nodes)
	assert.Equal(t, g.EtoV, msh.Elements)
	assert.Equal(t, g.Rho, msh.Densities)
	assert.Equal(t, field, msh.Displacements)
}
