package main

import (
	"fmt"

	"github.com/goccy/go-json"

	"kompost/internal/config"
)

// render writes v as indented JSON when JSON output is selected, or calls
// text otherwise.
func (a *app) render(v any, text func() error) error {
	if a.cfg.Output != config.OutputJSON {
		return text()
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func (a *app) printRows(rows [][]int) error {
	return a.render(rows, func() error {
		for _, row := range rows {
			if _, err := fmt.Fprintln(a.out, row); err != nil {
				return err
			}
		}
		return nil
	})
}
