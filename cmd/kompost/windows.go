package main

import (
	"github.com/spf13/cobra"

	"kompost"
)

func (a *app) windowsCmd() *cobra.Command {
	var size, limit int

	cmd := &cobra.Command{
		Use:   "windows [values...]",
		Short: "Print the periodic windows of a sequence",
		Long: "Print one window of --size values for every value (1 to 4 when none are given),\n" +
			"wrapping around to the start of the sequence.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSize("size", size, true); err != nil {
				return err
			}
			values, err := parseValues(args, seq(4))
			if err != nil {
				return err
			}

			windows := kompost.Compose(values, kompost.WindowsStage[int](size))
			if limit > 0 {
				windows = kompost.Take(windows, limit)
			}

			rows := kompost.CollectNested(windows)
			a.log.Debug().Int("windows", len(rows)).Int("size", size).Msg("windowed")

			return a.printRows(rows)
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 3, "Window size")
	cmd.Flags().IntVar(&limit, "limit", 0, "Print at most this many windows (0 for all)")

	return cmd
}
