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

	"github.com/spf13/cobra"

	"github.com/notargets/gocell/render"
)

// MontageCmd represents the montage command
var MontageCmd = &cobra.Command{
	Use:   "montage <left.png> <right.png> [bottomRight.png]",
	Short: "Compose rendered panels into a single image",
	Long: `Joins two rendered PNG panels side by side, or three panels into a grid
with the first panel filling the left half and the other two stacked on the
right. All inputs must share the same pixel size.`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		out, err := cmd.Flags().GetString("outputFile")
		if err != nil {
			panic(err)
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		switch len(args) {
		case 2:
			err = render.SideBySide(out, args[0], args[1])
		case 3:
			err = render.TripleGrid(out, args[0], args[1], args[2])
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if verbose {
			fmt.Printf("wrote %s\n", out)
		}
	},
}

func init() {
	rootCmd.AddCommand(MontageCmd)
	MontageCmd.Flags().StringP("outputFile", "o", "montage.png", "output PNG file")
	MontageCmd.Flags().BoolP("verbose", "v", false, "print the output file name")
}
