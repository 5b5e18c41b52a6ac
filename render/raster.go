package render

import (
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// WritePNG rasterizes the figure and saves it to path.
func (fig *Figure) WritePNG(path string) error {
	dc, err := fig.rasterize()
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// EncodePNG rasterizes the figure and encodes it onto w.
func (fig *Figure) EncodePNG(w io.Writer) error {
	dc, err := fig.rasterize()
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func (fig *Figure) rasterize() (*gg.Context, error) {
	W, H := fig.PixelSize()
	dc := gg.NewContext(W, H)
	dc.ClearWithColor(gg.White)
	for i, p := range fig.panels {
		x0, y0, w, h := fig.cellRect(i)
		if err := rasterizePanel(dc, p, x0, y0, w, h); err != nil {
			return nil, err
		}
	}
	return dc, nil
}

// rasterizePanel draws one panel's polygons into its pixel cell. Points
// are transformed to pixels before pathing so stroke widths stay in
// pixel units, and the cell clip keeps tiles that extend past the view
// window from bleeding into neighboring panels.
func rasterizePanel(dc *gg.Context, p *Panel, x0, y0, w, h float64) error {
	vp := newViewport(p, x0, y0, w, h)
	dc.Push()
	defer dc.Pop()
	dc.ClipRect(x0, y0, w, h)

	for _, poly := range p.polys {
		px, py := vp.apply(poly.xy[0])
		dc.MoveTo(px, py)
		for _, q := range poly.xy[1:] {
			px, py = vp.apply(q)
			dc.LineTo(px, py)
		}
		dc.ClosePath()
		dc.SetColor(poly.fill)
		if poly.edgeWidth > 0 {
			if err := dc.FillPreserve(); err != nil {
				return err
			}
			dc.SetColor(poly.edge)
			dc.SetLineWidth(poly.edgeWidth)
			if err := dc.Stroke(); err != nil {
				return err
			}
		} else if err := dc.Fill(); err != nil {
			return err
		}
	}

	if !p.axisOff {
		dc.SetColor(color.Black)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x0+0.5, y0+0.5, w-1, h-1)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}
