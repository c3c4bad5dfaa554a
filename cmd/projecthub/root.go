package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nhle/projecthub/internal/insight"
	"github.com/nhle/projecthub/internal/model"
	"github.com/nhle/projecthub/internal/store"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "projecthub",
	Short: "Projects, tasks, ideas, notes and resources in one place",
	Long: `projecthub tracks projects together with the tasks, ideas, notes and
resources that belong to them. It serves a JSON HTTP API with cross-entity
search and a productivity dashboard, and can run both views from the shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", model.DefaultConfigPath(), "Path to the YAML config file")
	flags.String("db", "", "SQLite database path (overrides database.path)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides log.level)")
}

// loadConfig resolves the configuration for cmd from file, environment and flags.
func loadConfig(cmd *cobra.Command) (*model.AppConfig, error) {
	cfg, err := model.LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the process logger from cfg. Format "console" writes
// human-readable lines; anything else writes JSON.
func newLogger(cfg model.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// commandError keeps validation messages for the user and replaces any
// other failure with msg once its detail is logged.
func commandError(logger zerolog.Logger, err error, msg string) error {
	var verr *insight.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	logger.Error().Err(err).Msg(msg)
	return errors.New(msg)
}

// openStore opens the configured database, creating its directory if needed.
func openStore(cfg model.DatabaseConfig) (*store.SQLiteStore, error) {
	if cfg.Path != ":memory:" {
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
	}
	st, err := store.NewSQLiteStore(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", cfg.Path, err)
	}
	return st, nil
}

func ensureDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", dir, err)
	}
	return nil
}
