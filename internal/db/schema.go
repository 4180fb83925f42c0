package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Tables in dependency order, parents first.
var Tables = []string{"app_user", "workout", "exercise", "training_day", "record"}

const schema = `
CREATE TABLE IF NOT EXISTS app_user (
	id            SERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS workout (
	id      SERIAL PRIMARY KEY,
	user_id INT NOT NULL REFERENCES app_user(id),
	name    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS exercise (
	id           SERIAL PRIMARY KEY,
	workout_id   INT NOT NULL REFERENCES workout(id),
	name         TEXT NOT NULL,
	muscle_group TEXT
);

CREATE TABLE IF NOT EXISTS training_day (
	id         SERIAL PRIMARY KEY,
	user_id    INT NOT NULL REFERENCES app_user(id),
	date       TEXT NOT NULL CHECK (date ~ '^\d{4}-\d{2}-\d{2}$'),
	workout_id INT REFERENCES workout(id),
	completed  INT NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS record (
	id              SERIAL PRIMARY KEY,
	exercise_id     INT NOT NULL REFERENCES exercise(id),
	training_day_id INT REFERENCES training_day(id),
	date            TEXT NOT NULL CHECK (date ~ '^\d{4}-\d{2}-\d{2}$'),
	sets            INT,
	reps            INT,
	weight          DOUBLE PRECISION
);

CREATE INDEX IF NOT EXISTS idx_workout_user_id ON workout(user_id);
CREATE INDEX IF NOT EXISTS idx_exercise_workout_id ON exercise(workout_id);
CREATE INDEX IF NOT EXISTS idx_record_exercise_date ON record(exercise_id, date DESC);
CREATE INDEX IF NOT EXISTS idx_record_training_day_id ON record(training_day_id);
CREATE INDEX IF NOT EXISTS idx_training_day_user_date ON training_day(user_id, date DESC);
`

type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Migrate creates the schema if it does not exist. Safe to run on every start.
func Migrate(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
