package main

import (
	"github.com/spf13/cobra"

	"kompost"
	"kompost/internal/iterx"
)

func (a *app) chunksCmd() *cobra.Command {
	var width, limit int

	cmd := &cobra.Command{
		Use:   "chunks [values...]",
		Short: "Print values split into rows of a fixed width",
		Long:  "Print values (1 to 9 when none are given) split into rows of --width values.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSize("width", width, false); err != nil {
				return err
			}
			values, err := parseValues(args, seq(9))
			if err != nil {
				return err
			}

			var drawn int
			src := kompost.From(iterx.Counting(iterx.FromSlice(values), &drawn))
			chunks := kompost.Compose(src, kompost.ChunkStage[int](width))
			if limit > 0 {
				chunks = kompost.Take(chunks, limit)
			}

			rows := chunks.Collect()
			a.log.Debug().Int("chunks", len(rows)).Int("drawn", drawn).Int("values", len(values)).Msg("chunked")

			return a.printRows(rows)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 3, "Values per row")
	cmd.Flags().IntVar(&limit, "limit", 0, "Print at most this many rows (0 for all)")

	return cmd
}
