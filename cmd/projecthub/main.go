package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("command execution failed")
		os.Exit(1)
	}
}
