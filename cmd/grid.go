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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notargets/gocell/grid"
	"github.com/notargets/gocell/writefiles"
)

type ModelGrid struct {
	Nx, Ny  int
	Lx, Ly  float64
	Density string
	ShiftX  int
	ShiftY  int
	OutFile string
	Verbose bool
}

// GridCmd represents the grid command
var GridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Generate a structured Quad4 unit cell grid as a .msh file",
	Long: `Builds a structured grid of Quad4 elements over a rectangular unit cell
and writes it in Gmsh-style .msh format with a density field attached as
$ElementData. The density source is selected with --density:

	zeros               all elements at the numerical floor
	ones                all elements fully solid
	constant:<v>        all elements at density v
	random[:<seed>]     uniform random densities, reproducible with a seed
	csv:<file>          one row per element row, top row first

The grid can be shifted periodically with --shiftX and --shiftY, which
moves the density pattern by whole cells while the geometry stays put.`,
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		mg := &ModelGrid{}
		if mg.Nx, err = cmd.Flags().GetInt("nx"); err != nil {
			panic(err)
		}
		if mg.Ny, err = cmd.Flags().GetInt("ny"); err != nil {
			panic(err)
		}
		if mg.Lx, err = cmd.Flags().GetFloat64("lx"); err != nil {
			panic(err)
		}
		if mg.Ly, err = cmd.Flags().GetFloat64("ly"); err != nil {
			panic(err)
		}
		if mg.Density, err = cmd.Flags().GetString("density"); err != nil {
			panic(err)
		}
		mg.ShiftX, _ = cmd.Flags().GetInt("shiftX")
		mg.ShiftY, _ = cmd.Flags().GetInt("shiftY")
		if mg.OutFile, err = cmd.Flags().GetString("outputFile"); err != nil {
			panic(err)
		}
		mg.Verbose, _ = cmd.Flags().GetBool("verbose")
		RunGrid(mg)
	},
}

func init() {
	rootCmd.AddCommand(GridCmd)
	GridCmd.Flags().Int("nx", 10, "number of elements along x")
	GridCmd.Flags().Int("ny", 10, "number of elements along y")
	GridCmd.Flags().Float64("lx", 1, "cell length along x")
	GridCmd.Flags().Float64("ly", 1, "cell length along y")
	GridCmd.Flags().StringP("density", "d", "zeros",
		"density source: zeros|ones|constant:<v>|random[:<seed>]|csv:<file>")
	GridCmd.Flags().Int("shiftX", 0, "periodic shift of the density pattern in cells along x")
	GridCmd.Flags().Int("shiftY", 0, "periodic shift of the density pattern in cells along y")
	GridCmd.Flags().StringP("outputFile", "o", "cell.msh", "output .msh file")
	GridCmd.Flags().BoolP("verbose", "v", false, "print grid statistics")
}

// RunGrid builds the grid, fills its density field and writes the .msh file
func RunGrid(mg *ModelGrid) {
	g, err := grid.NewQuad4(mg.Nx, mg.Ny, mg.Lx, mg.Ly)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = applyDensitySpec(g, mg.Density); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if mg.ShiftX != 0 || mg.ShiftY != 0 {
		g.Translate(mg.ShiftX, mg.ShiftY)
	}
	if err = writefiles.SaveGrid(g, mg.OutFile, true); err != nil {
		fmt.Printf("error writing %s: %s\n", mg.OutFile, err.Error())
		os.Exit(1)
	}
	if mg.Verbose {
		fmt.Printf("%d x %d grid, %d nodes, %d elements\n",
			mg.Nx, mg.Ny, g.NumNodes(), g.NumElements())
		fmt.Printf("wrote %s\n", mg.OutFile)
	}
}

// applyDensitySpec fills the grid density field from a source spec of the
// form "zeros", "ones", "constant:0.5", "random", "random:42" or "csv:rho.csv"
func applyDensitySpec(g *grid.Quad4, spec string) error {
	name, arg := spec, ""
	if i := strings.IndexByte(spec, ':'); i >= 0 {
		name, arg = spec[:i], spec[i+1:]
	}
	switch name {
	case "zeros":
		g.SetDensitiesZeros()
		return nil
	case "ones":
		g.SetDensitiesOnes()
		return nil
	case "constant":
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("bad constant density %q: %v", arg, err)
		}
		return g.SetDensitiesConstant(v)
	case "random":
		seed := int64(-1)
		if len(arg) != 0 {
			s, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("bad random seed %q: %v", arg, err)
			}
			seed = s
		}
		g.SetDensitiesRandom(seed)
		return nil
	case "csv":
		if len(arg) == 0 {
			return fmt.Errorf("csv density source needs a file, use csv:<file>")
		}
		return g.SetDensitiesCSV(arg)
	}
	return fmt.Errorf("unknown density source %q", spec)
}
