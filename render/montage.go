package render

import (
	"github.com/gogpu/gg"
)

// SideBySide composes two finished panel images into one image twice as
// wide, left then right, and saves it to outPath. Inputs are expected to
// share dimensions; the canvas takes its size from the first.
func SideBySide(outPath, leftPath, rightPath string) error {
	left, err := gg.LoadImage(leftPath)
	if err != nil {
		return err
	}
	right, err := gg.LoadImage(rightPath)
	if err != nil {
		return err
	}

	w, h := left.Width(), left.Height()
	dc := gg.NewContext(2*w, h)
	dc.ClearWithColor(gg.White)
	dc.DrawImage(left, 0, 0)
	dc.DrawImage(right, float64(w), 0)
	return dc.SavePNG(outPath)
}

// TripleGrid composes three images into a 2x2 grid: the first vertically
// centered in the left column, the second and third stacked in the right
// column.
func TripleGrid(outPath, leftPath, topRightPath, bottomRightPath string) error {
	left, err := gg.LoadImage(leftPath)
	if err != nil {
		return err
	}
	topRight, err := gg.LoadImage(topRightPath)
	if err != nil {
		return err
	}
	bottomRight, err := gg.LoadImage(bottomRightPath)
	if err != nil {
		return err
	}

	w, h := left.Width(), left.Height()
	dc := gg.NewContext(2*w, 2*h)
	dc.ClearWithColor(gg.White)
	dc.DrawImage(left, 0, float64(h)/2)
	dc.DrawImage(topRight, float64(w), 0)
	dc.DrawImage(bottomRight, float64(w), float64(h))
	return dc.SavePNG(outPath)
}
