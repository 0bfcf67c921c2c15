package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kompost"
	"kompost/internal/grid"
)

// loadGrid reads the grid at path, or returns the 3×3 example grid when path
// is empty.
func (a *app) loadGrid(path string) ([][]int, error) {
	if path == "" {
		return grid.Square(3), nil
	}
	rows, err := grid.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("path", path).Int("rows", len(rows)).Msg("grid loaded")
	return rows, nil
}

func (a *app) transposeCmd() *cobra.Command {
	var input string
	var flat bool

	cmd := &cobra.Command{
		Use:   "transpose",
		Short: "Print the transpose of a grid",
		Long: "Print the columns of the grid in --input (a YAML or JSON file with a rows list),\n" +
			"or of a 3×3 example grid. Rows may have different lengths.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.loadGrid(input)
			if err != nil {
				return err
			}

			if flat {
				values := kompost.TransposeFlat(rows).Collect()
				return a.render(values, func() error {
					_, err := fmt.Fprintln(a.out, values)
					return err
				})
			}

			return a.printRows(kompost.CollectNested(kompost.TransposeSlices(rows)))
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Grid file (.yaml, .yml or .json)")
	cmd.Flags().BoolVar(&flat, "flat", false, "Print the transpose as a single column-major row")

	return cmd
}
