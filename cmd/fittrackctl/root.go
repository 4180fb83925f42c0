package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/users"
)

var (
	envName    string
	configPath string

	dbPool *pgxpool.Pool
)

var rootCmd = &cobra.Command{
	Use:   "fittrackctl",
	Short: "FitTrack admin tool",
	Long: `fittrackctl works directly against the FitTrack database.

EXAMPLES:

  fittrackctl migrate                              # create missing tables
  fittrackctl history --email jane@example.com     # last training days
  fittrackctl mcp --email jane@example.com         # MCP server over stdio

The database password is read from FITTRACK_DB_PASSWORD (a .env file in the
working directory is loaded when present).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}
		_ = godotenv.Load()

		cfg, err := config.Load(envName, configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPool, err = db.NewDBPool(cmd.Context(), db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBUser:     cfg.PostgresUser,
			DBPassword: os.Getenv("FITTRACK_DB_PASSWORD"),
		})
		if err != nil {
			return fmt.Errorf("db pool: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if dbPool != nil {
			dbPool.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envName, "env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path to TOML config file")
}

// resolveUserID looks up the user owning email.
func resolveUserID(ctx context.Context, email string) (int, error) {
	if email == "" {
		return 0, fmt.Errorf("--email is required")
	}
	user, err := users.NewRepo(dbPool).GetByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("find user [%s]: %w", email, err)
	}
	return user.ID, nil
}
