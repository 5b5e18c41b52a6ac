package render

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gocell/geometry2D"
)

// TileOptions configures the 3x3 tiling draw. The zero value of any
// field takes the documented default.
type TileOptions struct {
	// Tolerance classifies boundary nodes for the lattice jump
	// correction. Zero value means geometry2D.DefaultTolerance.
	Tolerance geometry2D.Tolerance
	// ViewScale sets the view window to +-ViewScale*l/2 around the
	// origin, where l is the undeformed cell extent per axis. The
	// default of 2 frames the 3x3 neighborhood.
	ViewScale float64
	// ContextScale multiplies the density of the 8 neighbor tiles
	// before the colormap lookup, rendering them lighter so the center
	// cell reads as the focus. Default 0.5.
	ContextScale float64
}

func (opts TileOptions) withDefaults() TileOptions {
	if opts.Tolerance == (geometry2D.Tolerance{}) {
		opts.Tolerance = geometry2D.DefaultTolerance
	}
	if opts.ViewScale <= 0 {
		opts.ViewScale = 2
	}
	if opts.ContextScale <= 0 {
		opts.ContextScale = 0.5
	}
	return opts
}

// DrawTiledMesh draws the unit cell mesh tiled 3x3 onto the panel: the
// deformed cell at the center, its eight periodic neighbors shifted by
// integer combinations of the lattice vectors and dimmed. Element fill
// and edge share one colormap lookup with zero edge width, so adjacent
// elements abut without outlines.
//
// The view window derives from the undeformed extents even when the
// displacement jump has changed the effective lattice vectors, so
// deformed tilings may show seams at the window edge. That is a display
// simplification carried over from the producing pipeline, kept as is.
func DrawTiledMesh(p *Panel, nodes []r2.Vec, elements [][]int,
	densities []float64, disp []r2.Vec, cmap Colormap, opts TileOptions) error {
	opts = opts.withDefaults()

	if len(nodes) == 0 {
		return fmt.Errorf("mesh has no nodes")
	}
	if len(densities) != len(elements) {
		return fmt.Errorf("%d densities for %d elements: %w",
			len(densities), len(elements), geometry2D.ErrShapeMismatch)
	}

	deformed, err := geometry2D.Deform(nodes, disp)
	if err != nil {
		return err
	}

	var lat geometry2D.Lattice
	if disp == nil {
		lat = geometry2D.NewLattice(nodes)
	} else if lat, err = geometry2D.NewLatticeDeformed(nodes, disp, opts.Tolerance); err != nil {
		return err
	}

	bb := geometry2D.NewBoundingBox(nodes)
	if bb.Lx() <= 0 || bb.Ly() <= 0 {
		return fmt.Errorf("mesh extents %g x %g cannot frame a view window", bb.Lx(), bb.Ly())
	}
	halfX := opts.ViewScale * bb.Lx() / 2
	halfY := opts.ViewScale * bb.Ly() / 2
	p.SetLimits(-halfX, halfX, -halfY, halfY)
	p.SetAspectEqual()
	p.SetAxisOff()

	poly := make([]r2.Vec, 0, 8)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			shift := lat.V1.Scale(float64(i)).Add(lat.V2.Scale(float64(j)))
			scale := opts.ContextScale
			if i == 0 && j == 0 {
				scale = 1.0
			}
			for e, conn := range elements {
				poly = poly[:0]
				for _, idx := range conn {
					if idx < 0 || idx >= len(deformed) {
						return fmt.Errorf("element %d references node %d, mesh has %d nodes",
							e, idx, len(deformed))
					}
					poly = append(poly, deformed[idx].Add(shift))
				}
				c := cmap.At(scale * densities[e])
				p.AddPolygon(poly, c, c, 0)
			}
		}
	}
	return nil
}
