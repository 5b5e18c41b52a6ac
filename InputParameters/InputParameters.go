package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// ColorStop anchors a hex color at a position in [0,1] along the density
// colormap.
type ColorStop struct {
	Position float64 `yaml:"Position"`
	Color    string  `yaml:"Color"`
}

// PanelSpec describes one panel of the output figure: the results file
// to tile and, optionally, a displacement file with a scale factor
// applied to the field before deformation.
type PanelSpec struct {
	Mesh         string  `yaml:"Mesh"`
	Displacement string  `yaml:"Displacement"`
	Scale        float64 `yaml:"Scale"` // displacement scale, 0 means 1
}

// Parameters obtained from the YAML input file
type FigureParameters struct {
	Title        string      `yaml:"Title"`
	Rows         int         `yaml:"Rows"`
	Cols         int         `yaml:"Cols"`
	FigureWidth  float64     `yaml:"FigureWidth"`  // inches
	FigureHeight float64     `yaml:"FigureHeight"` // inches
	DPI          int         `yaml:"DPI"`
	ViewScale    float64     `yaml:"ViewScale"`
	ContextScale float64     `yaml:"ContextScale"`
	Colormap     []ColorStop `yaml:"Colormap"`
	Panels       []PanelSpec `yaml:"Panels"`
}

func (fp *FigureParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, fp)
}

func (fp *FigureParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", fp.Title)
	fmt.Printf("[%dx%d]\t\t\t= Panel Grid\n", fp.Rows, fp.Cols)
	fmt.Printf("%8.5f\t\t= FigureWidth\n", fp.FigureWidth)
	fmt.Printf("%8.5f\t\t= FigureHeight\n", fp.FigureHeight)
	fmt.Printf("[%d]\t\t\t\t= DPI\n", fp.DPI)
	fmt.Printf("%8.5f\t\t= ViewScale\n", fp.ViewScale)
	fmt.Printf("%8.5f\t\t= ContextScale\n", fp.ContextScale)
	for i, stop := range fp.Colormap {
		fmt.Printf("Colormap[%d] = %.3f %s\n", i, stop.Position, stop.Color)
	}
	for i, panel := range fp.Panels {
		fmt.Printf("Panels[%d] = %v\n", i, panel)
	}
}
