package training

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// LoadSession returns the owned workout with every exercise and its last
// HistoryDepth records, newest first.
func (r *Repo) LoadSession(ctx context.Context, userID, workoutID int) (_ *SessionView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.loadSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	view := SessionView{WorkoutID: workoutID}
	err = r.db.QueryRow(
		ctx,
		`SELECT name FROM workout WHERE id = $1 AND user_id = $2`,
		workoutID, userID,
	).Scan(&view.WorkoutName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, workouts.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT e.id, e.name, e.muscle_group, r.date, r.sets, r.reps, r.weight
			FROM exercise e
			LEFT JOIN (
				SELECT exercise_id, date,
					COALESCE(sets, 0) AS sets, COALESCE(reps, 0) AS reps, COALESCE(weight, 0) AS weight,
					ROW_NUMBER() OVER (PARTITION BY exercise_id ORDER BY date DESC, id DESC) AS rn
				FROM record
				WHERE exercise_id IN (SELECT id FROM exercise WHERE workout_id = $1)
			) r ON r.exercise_id = e.id AND r.rn <= $2
			WHERE e.workout_id = $1
			ORDER BY e.id, r.rn`,
		workoutID, HistoryDepth,
	)
	if err != nil {
		return nil, fmt.Errorf("query session exercises: %w", err)
	}
	defer rows.Close()

	view.Exercises = make([]SessionExercise, 0)
	for rows.Next() {
		var (
			e      SessionExercise
			date   *string
			sets   *int
			reps   *int
			weight *float64
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &date, &sets, &reps, &weight); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		last := len(view.Exercises) - 1
		if last < 0 || view.Exercises[last].ID != e.ID {
			e.History = make([]RecordEntry, 0, HistoryDepth)
			view.Exercises = append(view.Exercises, e)
			last++
		}
		if date != nil {
			view.Exercises[last].History = append(view.Exercises[last].History, RecordEntry{
				Date:   *date,
				Sets:   *sets,
				Reps:   *reps,
				Weight: *weight,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return &view, nil
}

// SaveSession writes one training day and its records in a single transaction.
// Every entry must reference an exercise of the owned workout.
func (r *Repo) SaveSession(ctx context.Context, userID, workoutID int, date string, entries []CompletedExercise) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.saveSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("workout.id", workoutID),
		attribute.Int("records", len(entries)),
	)

	var trainingDayID int
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var id int
		err := tx.QueryRow(
			ctx,
			`SELECT id FROM workout WHERE id = $1 AND user_id = $2 FOR SHARE`,
			workoutID, userID,
		).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return workouts.ErrWorkoutNotFound
			}
			return fmt.Errorf("lock workout: %w", err)
		}

		if err := checkExercisesBelong(ctx, tx, workoutID, entries); err != nil {
			return err
		}

		err = tx.QueryRow(
			ctx,
			`INSERT INTO training_day (user_id, date, workout_id, completed) VALUES ($1, $2, $3, 1) RETURNING id`,
			userID, date, workoutID,
		).Scan(&trainingDayID)
		if err != nil {
			return fmt.Errorf("insert training day: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, e := range entries {
			batch.Queue(
				`INSERT INTO record (exercise_id, training_day_id, date, sets, reps, weight) VALUES ($1, $2, $3, $4, $5, $6)`,
				e.ID, trainingDayID, date, e.Sets, e.Reps, e.Weight,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return recordsInsertError(err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int("training_day.id", trainingDayID))
	return trainingDayID, nil
}

// recordsInsertError maps a foreign key violation, raised when an exercise is
// deleted after checkExercisesBelong passed, to ErrExerciseNotInWorkout.
func recordsInsertError(err error) error {
	if pkg.IsForeignKeyViolationError(err) {
		return fmt.Errorf("%w: %w", ErrExerciseNotInWorkout, err)
	}
	return fmt.Errorf("insert records: %w", err)
}

func checkExercisesBelong(ctx context.Context, tx pgx.Tx, workoutID int, entries []CompletedExercise) error {
	if len(entries) == 0 {
		return nil
	}

	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	rows, err := tx.Query(
		ctx,
		`SELECT id FROM exercise WHERE workout_id = $1 AND id = ANY($2)`,
		workoutID, ids,
	)
	if err != nil {
		return fmt.Errorf("query workout exercises: %w", err)
	}
	owned, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return fmt.Errorf("collect workout exercises: %w", err)
	}

	belongs := make(map[int]bool, len(owned))
	for _, id := range owned {
		belongs[id] = true
	}
	for _, id := range ids {
		if !belongs[id] {
			return fmt.Errorf("%w: exercise %d", ErrExerciseNotInWorkout, id)
		}
	}

	return nil
}
