package main

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nhle/projecthub/internal/insight"
	"github.com/nhle/projecthub/internal/scope"
)

var searchProject string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks, ideas, notes, resources and projects",
	Long: `Run a cross-entity text search and print the result as JSON.
With --project only that project's children are searched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchProject, "project", "p", "", "Restrict the search to one project ID")
}

func runSearch(cmd *cobra.Command, args []string) error {
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

	query := strings.Join(args, " ")
	return printSearch(cmd, logger, insight.NewSearcher(st), query, scope.Resolve(searchProject))
}

// printSearch runs one search and writes the response to cmd's output.
func printSearch(
	cmd *cobra.Command,
	logger zerolog.Logger,
	searcher *insight.Searcher,
	query string,
	sc scope.Scope,
) error {
	resp, err := searcher.Search(cmd.Context(), query, sc)
	if err != nil {
		return commandError(logger, err, "search failed")
	}
	return printJSON(cmd, resp)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
