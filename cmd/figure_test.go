package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/gocell/InputParameters"
)

func TestFigureInput(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Teaser
Rows: 1
Cols: 2
FigureWidth: 6.4
FigureHeight: 3.2
DPI: 200
Panels:
  - Mesh: out/cell.msh
  - Mesh: out/cell.msh
    Displacement: out/ux.msh
    Scale: 0.5
`)
	dir := t.TempDir()
	paramsFile := filepath.Join(dir, "figure.yaml")
	if err = os.WriteFile(paramsFile, fileInput, 0644); err != nil {
		panic(err)
	}
	mf := &ModelFigure{ParamsFile: paramsFile}
	fp := processFigureInput(mf)
	assert.Equal(t, fp.Rows, 1)
	assert.Equal(t, fp.Cols, 2)
	assert.Equal(t, fp.Panels[1].Scale, 0.5)
	assert.Equal(t, fp.Panels[0].Displacement, "")
	fp.Print()
	assert.Equal(t, fp.DPI, 200)
}

func TestBuildColormap(t *testing.T) {
	stops := []InputParameters.ColorStop{
		{Position: 0, Color: "#ffffff"},
		{Position: 1, Color: "#9e5457"},
	}
	cmap, err := buildColormap(stops)
	if err != nil {
		panic(err)
	}
	r, g, b, _ := cmap.At(1).RGBA()
	assert.Equal(t, [3]uint32{r >> 8, g >> 8, b >> 8}, [3]uint32{0x9e, 0x54, 0x57})
	// No stops falls back to the density colormap
	cmap, err = buildColormap(nil)
	if err != nil {
		panic(err)
	}
	r, g, b, _ = cmap.At(0).RGBA()
	assert.Equal(t, [3]uint32{r >> 8, g >> 8, b >> 8}, [3]uint32{0xff, 0xff, 0xff})
	if _, err = buildColormap([]InputParameters.ColorStop{{Color: "brick"}}); err == nil {
		t.Errorf("expected an error for a bad hex color")
	}
}
