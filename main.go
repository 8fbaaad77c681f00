package main

import (
	"fmt"
	"os"

	"writings-api/config"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "writings",
	Short:         "Writings blog API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found")
	}

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

// bootstrap loads configuration and sets up logging for a subcommand.
func bootstrap() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	config.InitLogger(cfg)

	if !cfg.IsDevelopment() && cfg.SecretKey == "" {
		log.Warn().Msg("SECRET_KEY is not set")
	}
	return cfg, nil
}
