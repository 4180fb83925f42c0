package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
	// afterStep runs after each statement of a cascading delete, tests use it to inject failures
	afterStep func(step string) error
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreateWorkout(ctx context.Context, userID int, name string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	w := Workout{UserID: userID, Name: name}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout (user_id, name) VALUES ($1, $2) RETURNING id`,
		userID, name,
	).Scan(&w.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", w.ID))
	return &w, nil
}

// GetWorkout returns the workout only when it belongs to userID.
func (r *Repo) GetWorkout(ctx context.Context, userID, workoutID int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	w := Workout{UserID: userID}
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name FROM workout WHERE id = $1 AND user_id = $2`,
		workoutID, userID,
	).Scan(&w.ID, &w.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}

	return &w, nil
}

func (r *Repo) ListWorkouts(ctx context.Context, userID int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name FROM workout WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	workouts := make([]Workout, 0)
	for rows.Next() {
		w := Workout{UserID: userID}
		if err := rows.Scan(&w.ID, &w.Name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}

func (r *Repo) ListExercises(ctx context.Context, workoutID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, name, muscle_group FROM exercise WHERE workout_id = $1 ORDER BY id`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.WorkoutID, &e.Name, &e.MuscleGroup); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}

	return exercises, rows.Err()
}

// AddExercise inserts the exercise only if the workout belongs to userID,
// the ownership check and the insert are a single statement.
func (r *Repo) AddExercise(ctx context.Context, userID int, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", exercise.WorkoutID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise (workout_id, name, muscle_group)
			SELECT w.id, $2, $3 FROM workout w WHERE w.id = $1 AND w.user_id = $4
			RETURNING id`,
		exercise.WorkoutID, exercise.Name, exercise.MuscleGroup, userID,
	).Scan(&exercise.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	return &exercise, nil
}

// DeleteExercise removes the exercise and its records, and returns the id of
// the parent workout.
func (r *Repo) DeleteExercise(ctx context.Context, userID, exerciseID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	var workoutID int
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(
			ctx,
			`SELECT e.workout_id FROM exercise e
				JOIN workout w ON w.id = e.workout_id
				WHERE e.id = $1 AND w.user_id = $2
				FOR UPDATE OF e`,
			exerciseID, userID,
		).Scan(&workoutID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrExerciseNotFound
			}
			return fmt.Errorf("lock exercise: %w", err)
		}

		return r.execSteps(ctx, tx, []cascadeStep{
			{"records", `DELETE FROM record WHERE exercise_id = $1`},
			{"exercise", `DELETE FROM exercise WHERE id = $1`},
		}, exerciseID)
	})
	if err != nil {
		return 0, err
	}

	return workoutID, nil
}

// DeleteWorkout removes the workout together with its exercises, training
// days and every record tied to either of them. All or nothing.
func (r *Repo) DeleteWorkout(ctx context.Context, userID, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var id int
		err := tx.QueryRow(
			ctx,
			`SELECT id FROM workout WHERE id = $1 AND user_id = $2 FOR UPDATE`,
			workoutID, userID,
		).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrWorkoutNotFound
			}
			return fmt.Errorf("lock workout: %w", err)
		}

		return r.execSteps(ctx, tx, []cascadeStep{
			{"records", `DELETE FROM record
				WHERE exercise_id IN (SELECT id FROM exercise WHERE workout_id = $1)
				OR training_day_id IN (SELECT id FROM training_day WHERE workout_id = $1)`},
			{"training days", `DELETE FROM training_day WHERE workout_id = $1`},
			{"exercises", `DELETE FROM exercise WHERE workout_id = $1`},
			{"workout", `DELETE FROM workout WHERE id = $1`},
		}, workoutID)
	})
}

type cascadeStep struct {
	name  string
	query string
}

func (r *Repo) execSteps(ctx context.Context, tx pgx.Tx, steps []cascadeStep, id int) error {
	for _, step := range steps {
		if _, err := tx.Exec(ctx, step.query, id); err != nil {
			return fmt.Errorf("delete %s: %w", step.name, err)
		}
		if r.afterStep != nil {
			if err := r.afterStep(step.name); err != nil {
				return fmt.Errorf("delete %s: %w", step.name, err)
			}
		}
	}
	return nil
}
