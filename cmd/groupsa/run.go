package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/groupsa/groupsa/config"
	"github.com/groupsa/groupsa/driver"
	"github.com/groupsa/groupsa/persist"
	"github.com/groupsa/groupsa/progress"
)

func newRunCmd() *cobra.Command {
	var (
		projectPath string
		configPath  string
		all         bool
		seed        int64
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the SA driver over a project document",
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New().String()[:8]
			logger := log.With().Str("run_id", runID).Logger()

			f, err := os.Open(projectPath)
			if err != nil {
				return fmt.Errorf("groupsa run: opening project: %w", err)
			}
			defer f.Close()

			project, err := persist.Load(f)
			if err != nil {
				return fmt.Errorf("groupsa run: %w", err)
			}

			cfg := config.Default()
			if configPath != "" {
				cfg, err = config.Load(configPath)
				if err != nil {
					return fmt.Errorf("groupsa run: %w", err)
				}
			}

			params := cfg.ToDriverParams()
			if cmd.Flags().Changed("all") {
				params.ReturnAllResults = all
			}
			if cmd.Flags().Changed("seed") {
				params.Seed = seed
			}

			reporter := progress.Reporter(func(e progress.Event) {
				logger.Debug().
					Int("restart", e.Restart).
					Int("iteration", e.Iteration).
					Float64("temperature", e.Temperature).
					Float64("best_score", e.BestScore).
					Msg("driver progress")
			})

			var cancel progress.Flag
			logger.Info().Str("project", projectPath).Int("num_restarts", params.NumRestarts).Msg("starting run")

			outcome := driver.Run(&project, params, reporter, &cancel)

			logger.Info().Float64("best_score", outcome.BestScore).Int("restarts_run", outcome.RestartsRun).Msg("run complete")

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("groupsa run: creating output: %w", err)
				}
				defer f.Close()
				out = f
			}

			if params.ReturnAllResults && len(outcome.All) > 0 {
				for _, rr := range outcome.All {
					if err := persist.Save(out, *rr.Project); err != nil {
						return err
					}
				}
				return nil
			}

			return persist.Save(out, *outcome.Best)
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "path to the project JSON document")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML SA configuration file")
	cmd.Flags().BoolVar(&all, "all", false, "return every restart's result, sorted by score")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed override")
	cmd.Flags().StringVar(&outPath, "out", "", "write the result here instead of stdout")
	cmd.MarkFlagRequired("project")

	return cmd
}
