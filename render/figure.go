package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// Figure and panel defaults, chosen for a two-row teaser figure at print
// resolution.
const (
	DefaultFigureWidth  = 6.4 // inches
	DefaultFigureHeight = 3.2 // inches
	DefaultDPI          = 200
)

// polygon is one filled element queued on a panel until export.
type polygon struct {
	xy        []r2.Vec
	fill      color.Color
	edge      color.Color
	edgeWidth float64
}

// Panel is one cell of a figure: a drawing surface with its own view
// limits collecting filled polygons. Drawing is retained - nothing is
// rasterized until the figure is exported - so a panel can be filled in
// any order and exported to more than one backend.
type Panel struct {
	polys []polygon

	xmin, xmax  float64
	ymin, ymax  float64
	hasLimits   bool
	aspectEqual bool
	axisOff     bool
}

// AddPolygon queues a filled polygon given by its vertices in world
// coordinates. The path is closed implicitly. An edgeWidth of zero means
// no outline is drawn.
func (p *Panel) AddPolygon(xy []r2.Vec, fill, edge color.Color, edgeWidth float64) {
	if len(xy) < 3 {
		return
	}
	own := make([]r2.Vec, len(xy))
	copy(own, xy)
	p.polys = append(p.polys, polygon{xy: own, fill: fill, edge: edge, edgeWidth: edgeWidth})
}

// SetLimits fixes the visible world window.
func (p *Panel) SetLimits(xmin, xmax, ymin, ymax float64) {
	p.xmin, p.xmax, p.ymin, p.ymax = xmin, xmax, ymin, ymax
	p.hasLimits = true
}

// SetAspectEqual makes one world unit measure the same number of pixels
// along both axes, letterboxing the window inside the panel cell.
func (p *Panel) SetAspectEqual() {
	p.aspectEqual = true
}

// SetAxisOff hides the frame drawn around the panel's window.
func (p *Panel) SetAxisOff() {
	p.axisOff = true
}

// limits returns the world window, fitting it to the queued content when
// the caller never fixed one.
func (p *Panel) limits() (xmin, xmax, ymin, ymax float64) {
	if p.hasLimits {
		return p.xmin, p.xmax, p.ymin, p.ymax
	}
	if len(p.polys) == 0 {
		return 0, 1, 0, 1
	}
	var pts []r2.Vec
	for _, poly := range p.polys {
		pts = append(pts, poly.xy...)
	}
	first := pts[0]
	xmin, xmax, ymin, ymax = first.X, first.X, first.Y, first.Y
	for _, q := range pts {
		if q.X < xmin {
			xmin = q.X
		}
		if q.X > xmax {
			xmax = q.X
		}
		if q.Y < ymin {
			ymin = q.Y
		}
		if q.Y > ymax {
			ymax = q.Y
		}
	}
	if xmax == xmin {
		xmax = xmin + 1
	}
	if ymax == ymin {
		ymax = ymin + 1
	}
	return
}

// Figure is a rows x cols grid of panels sharing one output canvas. Size
// is given in inches with a raster resolution in dots per inch, so the
// same figure can export to both raster and vector files.
type Figure struct {
	rows, cols    int
	width, height float64
	dpi           int
	panels        []*Panel
}

// NewFigure builds an empty figure grid. Non-positive size or resolution
// values take the package defaults.
func NewFigure(rows, cols int, width, height float64, dpi int) (*Figure, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("figure grid %dx%d: need at least one row and column", rows, cols)
	}
	if width <= 0 {
		width = DefaultFigureWidth
	}
	if height <= 0 {
		height = DefaultFigureHeight
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	fig := &Figure{
		rows:   rows,
		cols:   cols,
		width:  width,
		height: height,
		dpi:    dpi,
		panels: make([]*Panel, rows*cols),
	}
	for i := range fig.panels {
		fig.panels[i] = &Panel{}
	}
	return fig, nil
}

// Panel returns the panel at (row, col), row 0 at the top.
func (fig *Figure) Panel(row, col int) *Panel {
	if row < 0 || row >= fig.rows || col < 0 || col >= fig.cols {
		panic(fmt.Sprintf("panel (%d,%d) outside %dx%d figure", row, col, fig.rows, fig.cols))
	}
	return fig.panels[row*fig.cols+col]
}

// PixelSize is the raster canvas size implied by the figure size and
// resolution.
func (fig *Figure) PixelSize() (w, h int) {
	return int(fig.width*float64(fig.dpi) + 0.5), int(fig.height*float64(fig.dpi) + 0.5)
}

// cellRect is the pixel rectangle of the panel at index i.
func (fig *Figure) cellRect(i int) (x0, y0, w, h float64) {
	W, H := fig.PixelSize()
	row, col := i/fig.cols, i%fig.cols
	w = float64(W) / float64(fig.cols)
	h = float64(H) / float64(fig.rows)
	return float64(col) * w, float64(row) * h, w, h
}

// viewport maps world coordinates to pixel coordinates for one panel
// cell. World y points up, pixel y points down.
type viewport struct {
	sx, sy float64
	tx, ty float64
}

// newViewport fits the panel's world window into the pixel cell,
// preserving scale equality when the panel asks for it.
func newViewport(p *Panel, x0, y0, w, h float64) viewport {
	xmin, xmax, ymin, ymax := p.limits()
	sx := w / (xmax - xmin)
	sy := h / (ymax - ymin)
	if p.aspectEqual {
		if sy < sx {
			sx = sy
		} else {
			sy = sx
		}
	}
	cx, cy := 0.5*(xmin+xmax), 0.5*(ymin+ymax)
	return viewport{
		sx: sx,
		sy: sy,
		tx: x0 + 0.5*w - sx*cx,
		ty: y0 + 0.5*h + sy*cy,
	}
}

func (vp viewport) apply(q r2.Vec) (px, py float64) {
	return vp.tx + vp.sx*q.X, vp.ty - vp.sy*q.Y
}
