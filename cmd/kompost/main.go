package main

import (
	"os"
)

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := a.rootCmd().Execute(); err != nil {
		a.log.Error().Err(err).Msg("kompost failed")
		os.Exit(1)
	}
}
