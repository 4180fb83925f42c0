package workouts

import "errors"

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)

type Workout struct {
	ID     int    `json:"id"`
	UserID int    `json:"-"`
	Name   string `json:"name"`
}

type Exercise struct {
	ID          int     `json:"id"`
	WorkoutID   int     `json:"workoutId"`
	Name        string  `json:"name"`
	MuscleGroup *string `json:"muscleGroup"`
}

type WorkoutDetail struct {
	Workout   Workout    `json:"workout"`
	Exercises []Exercise `json:"exercises"`
}

type CreateWorkoutRequest struct {
	Name string `validate:"required"`
}

type AddExerciseRequest struct {
	Name string `validate:"required"`
	// MuscleGroup is optional, empty is stored as NULL
	MuscleGroup string
}
