// Package testinternals holds helpers shared by the database backed tests.
package testinternals

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/pkg"
)

const TestDBName = "fittrack_test"

// NewTestDBPool connects to the test database (POSTGRES_HOST, defaults to
// localhost), migrates the schema and wipes all rows.
func NewTestDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postgres host: %s", host)

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     host,
		DBPort:     "5432",
		DBName:     TestDBName,
		DBPassword: os.Getenv("POSTGRES_PASSWORD"),
	})
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	require.NoError(t, db.Migrate(ctx, dbPool))
	Truncate(t, dbPool)

	return dbPool
}

func Truncate(t *testing.T, dbPool *pgxpool.Pool) {
	t.Helper()
	_, err := dbPool.Exec(
		context.Background(),
		fmt.Sprintf("TRUNCATE %s RESTART IDENTITY", strings.Join(db.Tables, ", ")),
	)
	require.NoError(t, err)
}

type FakeUser struct {
	ID       int
	Name     string
	Email    string
	Password string
}

func CreateUser(t *testing.T, dbPool *pgxpool.Pool) FakeUser {
	t.Helper()

	u := FakeUser{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}

	pkg.PasswordHashCost = 4
	hash, err := pkg.HashPassword(u.Password)
	require.NoError(t, err)

	err = dbPool.QueryRow(
		context.Background(),
		`INSERT INTO app_user (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id`,
		u.Name, u.Email, hash,
	).Scan(&u.ID)
	require.NoError(t, err)

	return u
}

func CreateWorkout(t *testing.T, dbPool *pgxpool.Pool, userID int, name string) int {
	t.Helper()
	var id int
	err := dbPool.QueryRow(
		context.Background(),
		`INSERT INTO workout (user_id, name) VALUES ($1, $2) RETURNING id`,
		userID, name,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateExercise(t *testing.T, dbPool *pgxpool.Pool, workoutID int, name, muscleGroup string) int {
	t.Helper()
	var mg *string
	if muscleGroup != "" {
		mg = &muscleGroup
	}
	var id int
	err := dbPool.QueryRow(
		context.Background(),
		`INSERT INTO exercise (workout_id, name, muscle_group) VALUES ($1, $2, $3) RETURNING id`,
		workoutID, name, mg,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTrainingDay(t *testing.T, dbPool *pgxpool.Pool, userID, workoutID int, date string) int {
	t.Helper()
	var id int
	err := dbPool.QueryRow(
		context.Background(),
		`INSERT INTO training_day (user_id, date, workout_id, completed) VALUES ($1, $2, $3, 1) RETURNING id`,
		userID, date, workoutID,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateRecord(t *testing.T, dbPool *pgxpool.Pool, exerciseID, trainingDayID int, date string, sets, reps int, weight float64) int {
	t.Helper()
	var tdID *int
	if trainingDayID > 0 {
		tdID = &trainingDayID
	}
	var id int
	err := dbPool.QueryRow(
		context.Background(),
		`INSERT INTO record (exercise_id, training_day_id, date, sets, reps, weight)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		exerciseID, tdID, date, sets, reps, weight,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func Count(t *testing.T, dbPool *pgxpool.Pool, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, dbPool.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}
