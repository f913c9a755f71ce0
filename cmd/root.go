package cmd

import (
	"fmt"
	"os"

	intconfig "globetrotter/internal/config"
	"globetrotter/internal/utils"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "globetrotter",
	Short: "Trip planning API: users, trips, city stops, activities and budgets",
	Long: `GlobeTrotter serves the trip planning REST API backed by MySQL.

Configuration is read from the environment and an optional .env file:
  DATABASE_URL                 MySQL DSN, e.g. user:pass@tcp(localhost:3306)/globetrotter
  SECRET_KEY                   HMAC key for access tokens
  APP_ADDR                     listen address (default :8080)
  API_V1_STR                   API prefix (default /api/v1)
  ACCESS_TOKEN_EXPIRE_MINUTES  token lifetime (default 30)
  BACKEND_CORS_ORIGINS         comma separated allowed origins
  LOG_LEVEL, LOG_FORMAT        zerolog level, console|json

Commands:
  globetrotter migrate   # create missing tables
  globetrotter serve     # start the HTTP server`,
	SilenceUsage: true,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadEnv reads configuration and installs the process logger.
func loadEnv() intconfig.Env {
	env := intconfig.LoadEnv()
	utils.SetupLogger(env.LogLevel, env.LogFormat)
	return env
}
