package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/2beens/fittrack/internal/history"
	"github.com/2beens/fittrack/internal/mcptools"
	"github.com/2beens/fittrack/internal/workouts"
)

var mcpEmail string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server over stdio",
	Long: `Start a Model Context Protocol server exposing one user's training data
as read-only tools: get_schema, get_dashboard, get_history,
get_workout_on_date and get_exercise_history.

  {
    "mcpServers": {
      "fittrack": {
        "command": "fittrackctl",
        "args": ["mcp", "--email", "jane@example.com"]
      }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		userID, err := resolveUserID(ctx, mcpEmail)
		if err != nil {
			return err
		}

		historyService := history.NewService(history.NewRepo(dbPool), workouts.NewRepo(dbPool))
		server := mcptools.NewServer(mcptools.NewPoolSchemaRepo(dbPool), historyService, userID)

		return server.Run(ctx, &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpEmail, "email", "", "email of the user whose data is exposed")
	rootCmd.AddCommand(mcpCmd)
}
