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
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/notargets/gocell/geometry2D"
	"github.com/notargets/gocell/readfiles"
	"github.com/notargets/gocell/render"
)

// ModelTile carries the flag settings for one tile rendering run
type ModelTile struct {
	MeshFile     string
	DispFile     string
	UScale       float64
	ViewScale    float64
	ContextScale float64
	FigureWidth  float64
	FigureHeight float64
	DPI          int
	OutFile      string
	SVGFile      string
	Verbose      bool
	Profile      bool
}

// TileCmd represents the tile command
var TileCmd = &cobra.Command{
	Use:   "tile",
	Short: "Render a unit cell tiled 3x3 from a results file",
	Long: `Reads a Gmsh-style .msh results file carrying the mesh, the element
density field and optionally a nodal displacement field, then renders the
unit cell surrounded by its eight periodic neighbors. Neighbor placement
follows the lattice vectors of the cell, corrected for the displacement
jump across the periodic boundaries when a displacement field is present.
The center cell is drawn at full density, the neighbors at half density,
so the cell under study stands out against its periodic context.`,
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		mt := &ModelTile{}
		if mt.MeshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
			panic(err)
		}
		if mt.DispFile, err = cmd.Flags().GetString("displacementFile"); err != nil {
			panic(err)
		}
		if mt.UScale, err = cmd.Flags().GetFloat64("uscale"); err != nil {
			panic(err)
		}
		if mt.ViewScale, err = cmd.Flags().GetFloat64("viewscale"); err != nil {
			panic(err)
		}
		if mt.ContextScale, err = cmd.Flags().GetFloat64("contextscale"); err != nil {
			panic(err)
		}
		if mt.FigureWidth, err = cmd.Flags().GetFloat64("width"); err != nil {
			panic(err)
		}
		if mt.FigureHeight, err = cmd.Flags().GetFloat64("height"); err != nil {
			panic(err)
		}
		if mt.DPI, err = cmd.Flags().GetInt("dpi"); err != nil {
			panic(err)
		}
		if mt.OutFile, err = cmd.Flags().GetString("outputFile"); err != nil {
			panic(err)
		}
		if mt.SVGFile, err = cmd.Flags().GetString("svg"); err != nil {
			panic(err)
		}
		if mt.Verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
			panic(err)
		}
		if mt.Profile, err = cmd.Flags().GetBool("profile"); err != nil {
			panic(err)
		}
		if mt.Profile {
			defer profile.Start().Stop()
		}
		RunTile(mt)
	},
}

func init() {
	rootCmd.AddCommand(TileCmd)
	TileCmd.Flags().StringP("meshFile", "F", "",
		"results file in .msh format with nodes, elements and density")
	TileCmd.Flags().StringP("displacementFile", "U", "",
		"optional .msh file with the nodal displacement field to apply")
	TileCmd.Flags().Float64P("uscale", "s", 1,
		"scale factor applied to the displacement field")
	TileCmd.Flags().Float64("viewscale", 0,
		"view window size as a multiple of the half cell extents, default 2")
	TileCmd.Flags().Float64("contextscale", 0,
		"density multiplier for the surrounding tiles, default 0.5")
	TileCmd.Flags().Float64("width", 3.2, "figure width in inches")
	TileCmd.Flags().Float64("height", 3.2, "figure height in inches")
	TileCmd.Flags().Int("dpi", 0, "output resolution, default 200")
	TileCmd.Flags().StringP("outputFile", "o", "tile.png", "output PNG file")
	TileCmd.Flags().String("svg", "", "also write an SVG version to this path")
	TileCmd.Flags().BoolP("verbose", "v", false, "print mesh statistics while rendering")
	TileCmd.Flags().Bool("profile", false, "write a profile of the run")
}

// RunTile loads the results files and renders the tiled cell
func RunTile(mt *ModelTile) {
	if len(mt.MeshFile) == 0 {
		err := fmt.Errorf("must supply a results file (-F, --meshFile) in .msh format")
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	msh, err := readfiles.ReadMsh(mt.MeshFile)
	if err != nil {
		fmt.Printf("error reading %s: %s\n", mt.MeshFile, err.Error())
		os.Exit(1)
	}
	if msh.Densities == nil {
		fmt.Printf("error: %s has no $ElementData section with the density field\n", mt.MeshFile)
		os.Exit(1)
	}
	disp := msh.Displacements
	if len(mt.DispFile) != 0 {
		dmsh, err := readfiles.ReadMsh(mt.DispFile)
		if err != nil {
			fmt.Printf("error reading %s: %s\n", mt.DispFile, err.Error())
			os.Exit(1)
		}
		if dmsh.Displacements == nil {
			fmt.Printf("error: %s has no $NodeData section with the displacement field\n", mt.DispFile)
			os.Exit(1)
		}
		disp = dmsh.Displacements
	}
	if disp != nil && mt.UScale != 1 {
		disp = geometry2D.ScaleField(disp, mt.UScale)
	}
	if mt.Verbose {
		printMeshStats(mt.MeshFile, msh, disp)
	}
	fig, err := render.NewFigure(1, 1, mt.FigureWidth, mt.FigureHeight, mt.DPI)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	opts := render.TileOptions{
		ViewScale:    mt.ViewScale,
		ContextScale: mt.ContextScale,
	}
	err = render.DrawTiledMesh(fig.Panel(0, 0), msh.Nodes, msh.Elements,
		msh.Densities, disp, render.NewDensityColormap(), opts)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = fig.WritePNG(mt.OutFile); err != nil {
		fmt.Printf("error writing %s: %s\n", mt.OutFile, err.Error())
		os.Exit(1)
	}
	if mt.Verbose {
		fmt.Printf("wrote %s\n", mt.OutFile)
	}
	if len(mt.SVGFile) != 0 {
		if err = fig.WriteSVG(mt.SVGFile); err != nil {
			fmt.Printf("error writing %s: %s\n", mt.SVGFile, err.Error())
			os.Exit(1)
		}
		if mt.Verbose {
			fmt.Printf("wrote %s\n", mt.SVGFile)
		}
	}
}

func printMeshStats(name string, msh *readfiles.MshFile, disp []r2.Vec) {
	fmt.Printf("%s: %d nodes, %d elements\n", name, len(msh.Nodes), len(msh.Elements))
	bb := geometry2D.NewBoundingBox(msh.Nodes)
	if bb == nil {
		return
	}
	fmt.Printf("cell extents: %8.5f x %8.5f\n", bb.Lx(), bb.Ly())
	lat := geometry2D.NewLattice(msh.Nodes)
	if disp != nil {
		var err error
		lat, err = geometry2D.NewLatticeDeformed(msh.Nodes, disp, geometry2D.DefaultTolerance)
		if err != nil {
			fmt.Printf("lattice: %s\n", err.Error())
			return
		}
	}
	fmt.Printf("lattice vectors: V1 = (%8.5f, %8.5f), V2 = (%8.5f, %8.5f)\n",
		lat.V1.X, lat.V1.Y, lat.V2.X, lat.V2.Y)
}
