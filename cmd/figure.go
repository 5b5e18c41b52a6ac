/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/notargets/gocell/InputParameters"
	"github.com/notargets/gocell/geometry2D"
	"github.com/notargets/gocell/readfiles"
	"github.com/notargets/gocell/render"
)

type ModelFigure struct {
	ParamsFile string
	OutFile    string
	SVGFile    string
	Verbose    bool
}

// FigureCmd represents the figure command
var FigureCmd = &cobra.Command{
	Use:   "figure",
	Short: "Compose a multi panel figure of tiled unit cells from a YAML description",
	Long: `Reads a YAML figure description naming a grid of panels, each backed by a
results file and an optional displacement file, renders every panel as a 3x3
tiling of its unit cell and writes the composed figure as PNG and optionally
SVG. Panel colormaps and displacement scaling are set in the YAML file.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("figure called")
		mf := &ModelFigure{}
		if mf.ParamsFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		if mf.OutFile, err = cmd.Flags().GetString("outputFile"); err != nil {
			panic(err)
		}
		mf.SVGFile, _ = cmd.Flags().GetString("svg")
		mf.Verbose, _ = cmd.Flags().GetBool("verbose")
		fp := processFigureInput(mf)
		RunFigure(mf, fp)
	},
}

func processFigureInput(mf *ModelFigure) (fp *InputParameters.FigureParameters) {
	var (
		err      error
		willExit bool
	)
	if len(mf.ParamsFile) == 0 {
		err := fmt.Errorf("must supply a figure description file (-I, --inputParametersFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Unit Cell Teaser"
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
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(mf.ParamsFile); err != nil {
		panic(err)
	}
	fp = &InputParameters.FigureParameters{}
	if err = fp.Parse(data); err != nil {
		panic(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(FigureCmd)
	FigureCmd.Flags().StringP("inputParametersFile", "I", "",
		"YAML file describing the figure:\n\t- panel grid and size\n\t- results file per panel\n\t- colormap stops")
	FigureCmd.Flags().StringP("outputFile", "o", "figure.png", "output PNG file")
	FigureCmd.Flags().String("svg", "", "also write an SVG version to this path")
	FigureCmd.Flags().BoolP("verbose", "v", false, "print the figure description while rendering")
}

// RunFigure renders every panel of the described figure and writes it out
func RunFigure(mf *ModelFigure, fp *InputParameters.FigureParameters) {
	if mf.Verbose {
		fp.Print()
	}
	rows, cols := fp.Rows, fp.Cols
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = len(fp.Panels)
	}
	if len(fp.Panels) > rows*cols {
		fmt.Printf("error: %d panels do not fit a %d x %d grid\n",
			len(fp.Panels), rows, cols)
		os.Exit(1)
	}
	fig, err := render.NewFigure(rows, cols, fp.FigureWidth, fp.FigureHeight, fp.DPI)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	cmap, err := buildColormap(fp.Colormap)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	opts := render.TileOptions{
		ViewScale:    fp.ViewScale,
		ContextScale: fp.ContextScale,
	}
	for i, spec := range fp.Panels {
		if err = renderPanel(fig.Panel(i/cols, i%cols), spec, cmap, opts); err != nil {
			fmt.Printf("error in panel %d: %s\n", i, err.Error())
			os.Exit(1)
		}
		if mf.Verbose {
			fmt.Printf("panel %d: %s\n", i, spec.Mesh)
		}
	}
	if err = fig.WritePNG(mf.OutFile); err != nil {
		fmt.Printf("error writing %s: %s\n", mf.OutFile, err.Error())
		os.Exit(1)
	}
	if mf.Verbose {
		fmt.Printf("wrote %s\n", mf.OutFile)
	}
	if len(mf.SVGFile) != 0 {
		if err = fig.WriteSVG(mf.SVGFile); err != nil {
			fmt.Printf("error writing %s: %s\n", mf.SVGFile, err.Error())
			os.Exit(1)
		}
		if mf.Verbose {
			fmt.Printf("wrote %s\n", mf.SVGFile)
		}
	}
}

func renderPanel(p *render.Panel, spec InputParameters.PanelSpec,
	cmap render.Colormap, opts render.TileOptions) error {
	msh, err := readfiles.ReadMsh(spec.Mesh)
	if err != nil {
		return err
	}
	if msh.Densities == nil {
		return fmt.Errorf("%s has no $ElementData section with the density field", spec.Mesh)
	}
	disp := msh.Displacements
	if len(spec.Displacement) != 0 {
		dmsh, err := readfiles.ReadMsh(spec.Displacement)
		if err != nil {
			return err
		}
		if dmsh.Displacements == nil {
			return fmt.Errorf("%s has no $NodeData section with the displacement field",
				spec.Displacement)
		}
		disp = dmsh.Displacements
	}
	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}
	if disp != nil && scale != 1 {
		disp = geometry2D.ScaleField(disp, scale)
	}
	return render.DrawTiledMesh(p, msh.Nodes, msh.Elements, msh.Densities,
		disp, cmap, opts)
}

// buildColormap converts the YAML hex stops into a colormap, falling back
// to the built in density colormap when no stops are given
func buildColormap(stops []InputParameters.ColorStop) (render.Colormap, error) {
	if len(stops) == 0 {
		return render.NewDensityColormap(), nil
	}
	out := make([]render.ColorStop, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s.Color)
		if err != nil {
			return render.Colormap{}, fmt.Errorf("colormap stop %d (%s): %v", i, s.Color, err)
		}
		out[i] = render.ColorStop{Position: s.Position, Color: c}
	}
	return render.NewColormap(out...), nil
}
