package mcptools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/fittrack/internal/history"
)

// historyReader is the read side the tools expose, implemented by history.Service.
type historyReader interface {
	Dashboard(ctx context.Context, userID int) (*history.Dashboard, error)
	History(ctx context.Context, userID int) ([]history.HistoryDay, error)
	DayDetails(ctx context.Context, userID int, date string) (*history.DayDetails, error)
	ExerciseHistory(ctx context.Context, userID, exerciseID int) (*history.ExerciseHistory, error)
}

// contextService is what Handler needs, kept small for tests.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetDashboard(ctx context.Context) (*history.Dashboard, error)
	GetHistory(ctx context.Context, limit int) ([]history.HistoryDay, error)
	GetWorkoutOnDate(ctx context.Context, date string) (*history.DayDetails, error)
	GetExerciseHistory(ctx context.Context, exerciseID int) (*history.ExerciseHistory, error)
}

// ContextService answers tool calls for exactly one user.
type ContextService struct {
	schema  SchemaRepo
	history historyReader
	userID  int
}

func NewContextService(schemaRepo SchemaRepo, historyReader historyReader, userID int) *ContextService {
	return &ContextService{
		schema:  schemaRepo,
		history: historyReader,
		userID:  userID,
	}
}

func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func (s *ContextService) GetDashboard(ctx context.Context) (*history.Dashboard, error) {
	return s.history.Dashboard(ctx, s.userID)
}

// GetHistory returns the newest limit training days, all of them when limit <= 0.
func (s *ContextService) GetHistory(ctx context.Context, limit int) ([]history.HistoryDay, error) {
	days, err := s.history.History(ctx, s.userID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(days) > limit {
		days = days[:limit]
	}
	return days, nil
}

func (s *ContextService) GetWorkoutOnDate(ctx context.Context, date string) (*history.DayDetails, error) {
	return s.history.DayDetails(ctx, s.userID, date)
}

func (s *ContextService) GetExerciseHistory(ctx context.Context, exerciseID int) (*history.ExerciseHistory, error) {
	return s.history.ExerciseHistory(ctx, s.userID, exerciseID)
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# FitTrack DB Schema\n\nNo tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# FitTrack DB Schema\n\n")
	b.WriteString("Tables: " + strings.Join(tableOrder, ", ") + " (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}
