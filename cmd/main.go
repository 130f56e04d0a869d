package main

import (
	"os"

	"github.com/lshigami/skillgate/internal/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const appName = "skillgate"

var (
	logLevel  string
	logPretty bool

	rootCmd = &cobra.Command{
		Use:           appName,
		Short:         "skillgate gates technical assessments on resume skill matches and grades the answers with an LLM",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(logLevel, logPretty)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logPretty, "pretty", false, "human readable console logs")

	rootCmd.AddCommand(serveCmd, normalizeCmd, checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
