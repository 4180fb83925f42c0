package mcptools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/fittrack/internal/history"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

// Handler turns tool calls into service calls and formats MCP results.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return textResult(text), nil, nil
	}
}

func (h *Handler) GetDashboardTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		dashboard, err := h.service.GetDashboard(ctx)
		if err != nil {
			return errorResult("Error fetching dashboard: " + err.Error()), nil, nil
		}
		return jsonResult(dashboard), nil, nil
	}
}

// HistoryInput is the input for get_history.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max number of training days, newest first (0 = all)"`
}

func (h *Handler) GetHistoryTool() func(context.Context, *mcp.CallToolRequest, HistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in HistoryInput) (*mcp.CallToolResult, any, error) {
		if in.Limit < 0 {
			return errorResult("Invalid limit: must not be negative"), nil, nil
		}
		days, err := h.service.GetHistory(ctx, in.Limit)
		if err != nil {
			return errorResult("Error fetching history: " + err.Error()), nil, nil
		}
		return jsonResult(days), nil, nil
	}
}

// WorkoutOnDateInput is the input for get_workout_on_date.
type WorkoutOnDateInput struct {
	Date string `json:"date" jsonschema:"Training date (YYYY-MM-DD)"`
}

func (h *Handler) GetWorkoutOnDateTool() func(context.Context, *mcp.CallToolRequest, WorkoutOnDateInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutOnDateInput) (*mcp.CallToolResult, any, error) {
		details, err := h.service.GetWorkoutOnDate(ctx, in.Date)
		if err != nil {
			switch {
			case errors.Is(err, pkg.ErrValidation):
				return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
			case errors.Is(err, history.ErrTrainingDayNotFound):
				return errorResult("No workout found on " + in.Date), nil, nil
			}
			return errorResult("Error fetching workout: " + err.Error()), nil, nil
		}
		return jsonResult(details), nil, nil
	}
}

// ExerciseHistoryInput is the input for get_exercise_history.
type ExerciseHistoryInput struct {
	ExerciseID int `json:"exercise_id" jsonschema:"Exercise id, as listed by get_history or get_dashboard"`
}

func (h *Handler) GetExerciseHistoryTool() func(context.Context, *mcp.CallToolRequest, ExerciseHistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseHistoryInput) (*mcp.CallToolResult, any, error) {
		if in.ExerciseID <= 0 {
			return errorResult("Invalid exercise_id: must be positive"), nil, nil
		}
		eh, err := h.service.GetExerciseHistory(ctx, in.ExerciseID)
		if err != nil {
			if errors.Is(err, workouts.ErrExerciseNotFound) {
				return errorResult("Exercise not found"), nil, nil
			}
			return errorResult("Error fetching exercise history: " + err.Error()), nil, nil
		}
		return jsonResult(eh), nil, nil
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return textResult(string(raw))
}
