package main

import (
	"fmt"
	"os"

	"github.com/Kartikpatidar0006/Staffy/internal/pkg/config"
	"github.com/Kartikpatidar0006/Staffy/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string

	// cfg and log are populated by PersistentPreRunE and shared with all subcommands.
	cfg *config.RestConfig
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "staffy-api",
	Short: "Staffy - lightweight Human Resource Management API",
	Long: `staffy-api serves the Staffy HR REST API: employees, daily attendance
and a dashboard summary, backed by SQLite or PostgreSQL.

Configuration is read from an optional YAML file (--config or CONFIG_PATH),
a .env file in the working directory and STAFFY_* environment variables.
PORT, DATABASE_URL and CORS_ORIGINS are honoured as well.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Without a subcommand the server is started.
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (YAML)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// A missing .env file is not an error.
		_ = godotenv.Load()

		path := cfgFile
		if path == "" {
			path = os.Getenv("CONFIG_PATH")
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		log, err = logger.NewLogger(&cfg.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// Execute is the entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}
