package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG exports the figure as a scalable vector file. The canvas uses
// the same pixel geometry as the raster export so the two agree visually.
func (fig *Figure) WriteSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	fig.encodeSVG(f)
	return f.Close()
}

func (fig *Figure) encodeSVG(w io.Writer) {
	W, H := fig.PixelSize()
	canvas := svg.New(w)
	canvas.Start(W, H)
	canvas.Rect(0, 0, W, H, "fill:white")

	for i, p := range fig.panels {
		x0, y0, cw, ch := fig.cellRect(i)
		clipID := fmt.Sprintf("panel%d", i)
		canvas.ClipPath(fmt.Sprintf(`id=%q`, clipID))
		canvas.Rect(round(x0), round(y0), round(cw), round(ch))
		canvas.ClipEnd()

		canvas.Group(fmt.Sprintf(`clip-path="url(#%s)"`, clipID))
		vp := newViewport(p, x0, y0, cw, ch)
		xs := make([]int, 0, 8)
		ys := make([]int, 0, 8)
		for _, poly := range p.polys {
			xs, ys = xs[:0], ys[:0]
			for _, q := range poly.xy {
				px, py := vp.apply(q)
				xs = append(xs, round(px))
				ys = append(ys, round(py))
			}
			style := "fill:" + rgbStyle(poly.fill)
			if poly.edgeWidth > 0 {
				style += fmt.Sprintf(";stroke:%s;stroke-width:%g",
					rgbStyle(poly.edge), poly.edgeWidth)
			}
			canvas.Polygon(xs, ys, style)
		}
		if !p.axisOff {
			canvas.Rect(round(x0), round(y0), round(cw), round(ch),
				"fill:none;stroke:black;stroke-width:1")
		}
		canvas.Gend()
	}
	canvas.End()
}

func rgbStyle(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("rgb(%d,%d,%d)", r>>8, g>>8, b>>8)
}

func round(v float64) int {
	return int(math.Round(v))
}
