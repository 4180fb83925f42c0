package mcptools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with read-only training tools scoped to one
// user: schema, dashboard, history, workout on a date, exercise history.
// Served over stdio by `fittrackctl mcp`.
func NewServer(schemaRepo SchemaRepo, historyReader historyReader, userID int) *mcp.Server {
	h := NewHandler(NewContextService(schemaRepo, historyReader, userID))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fittrack-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_schema",
		Description: "Returns the FitTrack DB schema (app_user, workout, exercise, training_day, record): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Returns the user's workouts, the number of training days this month, training dates of the last 180 days and the 3 most recent training days.",
	}, h.GetDashboardTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_history",
		Description: "Returns training days newest first, each with the exercises done (sets, reps, weight). Optional: limit.",
	}, h.GetHistoryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_on_date",
		Description: "Returns the workout done on a date (YYYY-MM-DD) with its exercises. When several workouts were done that day, the latest one.",
	}, h.GetWorkoutOnDateTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_history",
		Description: "Returns every record (date, sets, reps, weight) of one exercise, newest first. Use to see progression.",
	}, h.GetExerciseHistoryTool())

	return s
}
