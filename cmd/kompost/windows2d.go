package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kompost"
)

type blockOutput struct {
	Row  int     `json:"row"`
	Col  int     `json:"col"`
	Rows [][]int `json:"rows"`
}

func (a *app) windows2dCmd() *cobra.Command {
	var input string
	var sizeM, sizeN, limit int

	cmd := &cobra.Command{
		Use:   "windows2d",
		Short: "Print the periodic 2D windows of a grid",
		Long: "Print the --rows × --cols block anchored at every cell of the grid in --input,\n" +
			"or of a 3×3 example grid, wrapping around in both dimensions.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSize("rows", sizeM, true); err != nil {
				return err
			}
			if err := checkSize("cols", sizeN, true); err != nil {
				return err
			}
			rows, err := a.loadGrid(input)
			if err != nil {
				return err
			}

			blocks := kompost.Compose(rows, kompost.Windows2DStage[int](sizeM, sizeN)).Blocks()
			if limit > 0 {
				blocks = kompost.Take(blocks, limit)
			}

			out := make([]blockOutput, 0)
			for block := range blocks.Values() {
				values := make([][]int, 0, sizeM)
				for row := range block.Rows().Values() {
					values = append(values, kompost.Deref(row).Collect())
				}
				out = append(out, blockOutput{Row: block.Row, Col: block.Col, Rows: values})
			}
			a.log.Debug().Int("blocks", len(out)).Int("rows", sizeM).Int("cols", sizeN).Msg("windowed")

			return a.render(out, func() error {
				for _, b := range out {
					if _, err := fmt.Fprintf(a.out, "(%d,%d) %v\n", b.Row, b.Col, b.Rows); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Grid file (.yaml, .yml or .json)")
	cmd.Flags().IntVarP(&sizeM, "rows", "m", 2, "Rows per block")
	cmd.Flags().IntVarP(&sizeN, "cols", "n", 2, "Columns per block")
	cmd.Flags().IntVar(&limit, "limit", 0, "Print at most this many blocks (0 for all)")

	return cmd
}
