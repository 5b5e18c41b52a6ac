// Package writefiles writes unit cell grids and result fields as Gmsh
// 4.1 ASCII files, the format the readfiles package parses. The section
// layout is fixed field for field, so files round-trip bit for bit
// through the rest of the pipeline.
package writefiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gocell/grid"
)

// SaveGrid writes the grid geometry, optionally followed by its density
// field, to a .msh file.
func SaveGrid(g *grid.Quad4, filename string, withDensities bool) error {
	sections := []string{
		headerSection(),
		nodesSection(g),
		elementsSection(g),
	}
	if withDensities {
		sections = append(sections, densitiesSection(g))
	}
	return writeSections(filename, sections)
}

// SaveGridAndField writes a self-contained results file: geometry,
// densities and one nodal vector field under the given name.
func SaveGridAndField(g *grid.Quad4, field []r2.Vec, filename, fieldName string) error {
	if len(field) != g.NumNodes() {
		return fmt.Errorf("%d field values for %d nodes", len(field), g.NumNodes())
	}
	sections := []string{
		headerSection(),
		nodesSection(g),
		elementsSection(g),
		densitiesSection(g),
		nodeFieldSection(field, fieldName),
	}
	return writeSections(filename, sections)
}

func writeSections(filename string, sections []string) error {
	if filepath.Ext(filename) != ".msh" {
		return fmt.Errorf("output file %q must have the .msh extension", filename)
	}
	content := strings.Join(sections, "\n\n") + "\n"
	return os.WriteFile(filename, []byte(content), 0644)
}

func headerSection() string {
	return "$MeshFormat\n4.1 0 8\n$EndMeshFormat"
}

// nodesSection writes one entity block of all nodes: the block header
// carries the surface dimension and tag, then node tags, then
// coordinates padded to 3D.
func nodesSection(g *grid.Quad4) string {
	var (
		sb = &strings.Builder{}
		n  = g.NumNodes()
	)
	fmt.Fprintf(sb, "$Nodes\n1 %d 1 %d\n2 1 0 %d\n", n, n, n)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(sb, "%d\n", i)
	}
	for _, p := range g.Nodes {
		fmt.Fprintf(sb, "%s %s 0\n", ftoa(p.X), ftoa(p.Y))
	}
	sb.WriteString("$EndNodes")
	return sb.String()
}

// elementsSection writes one entity block of 4-node quadrangles (Gmsh
// element type 3) with 1-based tags and connectivity.
func elementsSection(g *grid.Quad4) string {
	var (
		sb = &strings.Builder{}
		k  = g.NumElements()
	)
	fmt.Fprintf(sb, "$Elements\n1 %d 1 %d\n2 1 3 %d\n", k, k, k)
	for e, conn := range g.EtoV {
		fmt.Fprintf(sb, "%d", e+1)
		for _, v := range conn {
			fmt.Fprintf(sb, " %d", v+1)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("$EndElements")
	return sb.String()
}

// densitiesSection writes the per-element density field. Values at the
// numerical floor read back as true voids.
func densitiesSection(g *grid.Quad4) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "$ElementData\n1\n\"Density\"\n0\n3\n0\n1\n%d\n", g.NumElements())
	for e, rho := range g.Rho {
		if rho <= grid.NumericalZero {
			rho = 0
		}
		fmt.Fprintf(sb, "%d %s\n", e+1, ftoa(rho))
	}
	sb.WriteString("$EndElementData")
	return sb.String()
}

// nodeFieldSection writes a nodal vector field padded to 3 components.
func nodeFieldSection(field []r2.Vec, name string) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "$NodeData\n1\n%q\n0\n3\n0\n3\n%d\n", name, len(field))
	for i, u := range field {
		fmt.Fprintf(sb, "%d %s %s 0\n", i+1, ftoa(u.X), ftoa(u.Y))
	}
	sb.WriteString("$EndNodeData")
	return sb.String()
}

// ftoa matches the default stream formatting of the solver that
// originally produced these files.
func ftoa(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
