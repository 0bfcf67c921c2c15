package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"kompost/internal/config"
	"kompost/internal/logging"
)

var errInvalidSize = errors.New("invalid size")

type app struct {
	out    io.Writer
	errOut io.Writer

	cfg config.Config
	log zerolog.Logger

	configPath string
	global     *pflag.FlagSet
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:    out,
		errOut: errOut,
		log:    logging.New(logging.Config{}, errOut),
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kompost",
		Short:         "Lazy windows and transposes over sequences and grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath, a.global)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.New(cfg.Log, a.errOut).With().Str("command", cmd.Name()).Logger()
			a.log.Debug().Str("output", cfg.Output).Msg("configuration loaded")
			return nil
		},
	}

	a.global = pflag.NewFlagSet("global", pflag.ContinueOnError)
	a.global.StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	a.global.String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
	a.global.String("log-format", logging.FormatConsole, "Log format (console, json)")
	a.global.Bool("no-color", false, "Disable coloured logs")
	a.global.StringP("output", "o", config.OutputText, "Output format (text, json)")
	cmd.PersistentFlags().AddFlagSet(a.global)

	cmd.AddCommand(
		a.chunksCmd(),
		a.windowsCmd(),
		a.transposeCmd(),
		a.windows2dCmd(),
	)

	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	return cmd
}

// parseValues parses integer arguments, falling back to def when there are
// none.
func parseValues(args []string, def []int) ([]int, error) {
	if len(args) == 0 {
		return def, nil
	}
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func checkSize(name string, size int, allowZero bool) error {
	if size < 0 || (size == 0 && !allowZero) {
		return fmt.Errorf("%w: --%s=%d", errInvalidSize, name, size)
	}
	return nil
}

func seq(n int) []int {
	values := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		values = append(values, i)
	}
	return values
}
