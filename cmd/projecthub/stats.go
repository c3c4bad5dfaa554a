package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nhle/projecthub/internal/insight"
	"github.com/nhle/projecthub/internal/scope"
)

var statsProject string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the productivity dashboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		st, err := openStore(cfg.Database)
		if err != nil {
			return err
		}
		defer st.Close()

		return printStats(cmd, logger, insight.NewStatsEngine(st), scope.Resolve(statsProject))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsProject, "project", "p", "", "Restrict statistics to one project ID")
}

// printStats computes the dashboard and writes it to cmd's output.
func printStats(cmd *cobra.Command, logger zerolog.Logger, engine *insight.StatsEngine, sc scope.Scope) error {
	summary, err := engine.Compute(cmd.Context(), sc)
	if err != nil {
		return commandError(logger, err, "failed to fetch statistics")
	}
	return printJSON(cmd, summary)
}
