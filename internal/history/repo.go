package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/training"
	"github.com/2beens/fittrack/internal/workouts"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// CountTrainingDays counts training days with from <= date < to.
func (r *Repo) CountTrainingDays(ctx context.Context, userID int, from, to string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.countTrainingDays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(
		ctx,
		`SELECT count(*) FROM training_day WHERE user_id = $1 AND date >= $2 AND date < $3`,
		userID, from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count training days: %w", err)
	}

	return count, nil
}

func (r *Repo) TrainingDates(ctx context.Context, userID int, since string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.trainingDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT date FROM training_day WHERE user_id = $1 AND date >= $2 ORDER BY date DESC`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query training dates: %w", err)
	}

	dates, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect training dates: %w", err)
	}

	return dates, nil
}

func (r *Repo) RecentTrainings(ctx context.Context, userID, limit int) (_ []RecentTraining, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.recentTrainings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT td.id, td.date, COALESCE(w.name, ''), COUNT(DISTINCT r.exercise_id)
			FROM training_day td
			LEFT JOIN workout w ON w.id = td.workout_id
			LEFT JOIN record r ON r.training_day_id = td.id
			WHERE td.user_id = $1
			GROUP BY td.id, td.date, w.name
			ORDER BY td.date DESC, td.id DESC
			LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent trainings: %w", err)
	}
	defer rows.Close()

	recent := make([]RecentTraining, 0, limit)
	for rows.Next() {
		var rt RecentTraining
		if err := rows.Scan(&rt.TrainingDayID, &rt.Date, &rt.WorkoutName, &rt.ExerciseCount); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		recent = append(recent, rt)
	}

	return recent, rows.Err()
}

// DayDetails returns the latest training day of the user on date.
func (r *Repo) DayDetails(ctx context.Context, userID int, date string) (_ *DayDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.dayDetails")
	defer func() {
		if errors.Is(err, ErrTrainingDayNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	details := DayDetails{Date: date}
	var trainingDayID int
	err = r.db.QueryRow(
		ctx,
		`SELECT td.id, COALESCE(w.name, '')
			FROM training_day td
			LEFT JOIN workout w ON w.id = td.workout_id
			WHERE td.user_id = $1 AND td.date = $2
			ORDER BY td.id DESC
			LIMIT 1`,
		userID, date,
	).Scan(&trainingDayID, &details.WorkoutName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTrainingDayNotFound
		}
		return nil, fmt.Errorf("get training day: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT e.name, e.muscle_group, COALESCE(r.sets, 0), COALESCE(r.reps, 0), COALESCE(r.weight, 0)
			FROM record r
			JOIN exercise e ON e.id = r.exercise_id
			WHERE r.training_day_id = $1
			ORDER BY e.id, r.id`,
		trainingDayID,
	)
	if err != nil {
		return nil, fmt.Errorf("query day records: %w", err)
	}
	defer rows.Close()

	details.Exercises = make([]PerformedExercise, 0)
	for rows.Next() {
		var pe PerformedExercise
		if err := rows.Scan(&pe.Name, &pe.MuscleGroup, &pe.Sets, &pe.Reps, &pe.Weight); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		details.Exercises = append(details.Exercises, pe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return &details, nil
}

// History returns every training day of the user, newest first, each with its records.
func (r *Repo) History(ctx context.Context, userID int) (_ []HistoryDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT td.id, td.date, COALESCE(td.workout_id, 0), COALESCE(w.name, '')
			FROM training_day td
			LEFT JOIN workout w ON w.id = td.workout_id
			WHERE td.user_id = $1
			ORDER BY td.date DESC, td.id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query training days: %w", err)
	}
	defer rows.Close()

	days := make([]HistoryDay, 0)
	dayIndex := make(map[int]int)
	for rows.Next() {
		d := HistoryDay{Records: make([]PerformedExercise, 0)}
		if err := rows.Scan(&d.TrainingDayID, &d.Date, &d.WorkoutID, &d.WorkoutName); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		dayIndex[d.TrainingDayID] = len(days)
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	rows.Close()

	if len(days) == 0 {
		return days, nil
	}

	recordRows, err := r.db.Query(
		ctx,
		`SELECT r.training_day_id, e.name, e.muscle_group,
				COALESCE(r.sets, 0), COALESCE(r.reps, 0), COALESCE(r.weight, 0)
			FROM record r
			JOIN exercise e ON e.id = r.exercise_id
			JOIN training_day td ON td.id = r.training_day_id
			WHERE td.user_id = $1
			ORDER BY r.training_day_id, e.id, r.id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer recordRows.Close()

	for recordRows.Next() {
		var (
			trainingDayID int
			pe            PerformedExercise
		)
		if err := recordRows.Scan(&trainingDayID, &pe.Name, &pe.MuscleGroup, &pe.Sets, &pe.Reps, &pe.Weight); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if i, ok := dayIndex[trainingDayID]; ok {
			days[i].Records = append(days[i].Records, pe)
		}
	}

	return days, recordRows.Err()
}

// ExerciseHistory returns all records of an exercise owned by the user, newest first.
func (r *Repo) ExerciseHistory(ctx context.Context, userID, exerciseID int) (_ *ExerciseHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.exerciseHistory")
	defer func() {
		if errors.Is(err, workouts.ErrExerciseNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	var eh ExerciseHistory
	err = r.db.QueryRow(
		ctx,
		`SELECT e.id, e.name, e.muscle_group, w.id, w.name
			FROM exercise e
			JOIN workout w ON w.id = e.workout_id
			WHERE e.id = $1 AND w.user_id = $2`,
		exerciseID, userID,
	).Scan(&eh.ExerciseID, &eh.ExerciseName, &eh.MuscleGroup, &eh.WorkoutID, &eh.WorkoutName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, workouts.ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT date, COALESCE(sets, 0), COALESCE(reps, 0), COALESCE(weight, 0)
			FROM record
			WHERE exercise_id = $1
			ORDER BY date DESC, id DESC`,
		exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercise records: %w", err)
	}
	defer rows.Close()

	eh.Records = make([]training.RecordEntry, 0)
	for rows.Next() {
		var re training.RecordEntry
		if err := rows.Scan(&re.Date, &re.Sets, &re.Reps, &re.Weight); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		eh.Records = append(eh.Records, re)
	}

	return &eh, rows.Err()
}
