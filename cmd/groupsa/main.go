// Command groupsa is a thin CLI over the optimization core: it loads a
// Project document, runs the multi-restart driver, reports progress, and
// writes the result back out. It is explicitly outside the optimization
// core — every decision it makes is a formatting or I/O concern, never an
// algorithmic one.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	appName = "groupsa"
	version = "0.1.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	root := &cobra.Command{
		Use:     appName,
		Short:   "Partition students into groups by simulated annealing",
		Version: version,
	}

	root.AddCommand(newRunCmd(), newCheckCmd(), newVersionCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("groupsa: command failed")
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build info",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New().String()[:8]
			fmt.Printf("%s %s (run %s)\n", appName, version, runID)
			return nil
		},
	}
}
