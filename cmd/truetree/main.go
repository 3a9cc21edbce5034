// Command truetree builds AVL trees from the command line, dumps them and
// measures how their height grows.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type baseConfiguration struct {
	logLevel string
	log      zerolog.Logger
}

func newBaseCmd() *cobra.Command {
	config := &baseConfiguration{}
	baseCmd := &cobra.Command{
		Use:           "truetree",
		Short:         "Build, dump and measure AVL trees",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(config.logLevel)
			if err != nil {
				return fmt.Errorf("failed to parse log level: %w", err)
			}
			config.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.TimeOnly, NoColor: true}).
				Level(lvl).With().Timestamp().Logger()
			return nil
		},
	}
	baseCmd.PersistentFlags().StringVar(&config.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	baseCmd.AddCommand(newDumpCmd(), newMeasureCmd(config))
	return baseCmd
}

func main() {
	if err := newBaseCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
