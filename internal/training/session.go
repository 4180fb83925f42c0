package training

import "errors"

// HistoryDepth is the number of past records shown per exercise when a session starts.
const HistoryDepth = 3

var ErrExerciseNotInWorkout = errors.New("exercise does not belong to workout")

type RecordEntry struct {
	Date   string  `json:"date"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type SessionExercise struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	MuscleGroup *string       `json:"muscleGroup"`
	History     []RecordEntry `json:"history"`
}

// SessionView is what a user sees when starting to train a workout.
type SessionView struct {
	WorkoutID   int               `json:"workoutId"`
	WorkoutName string            `json:"workoutName"`
	Exercises   []SessionExercise `json:"exercises"`
}

type CompletedExercise struct {
	ID     int     `json:"id" validate:"gt=0"`
	Sets   int     `json:"sets" validate:"gte=0"`
	Reps   int     `json:"reps" validate:"gte=0"`
	Weight float64 `json:"weight" validate:"gte=0"`
}

type CompleteRequest struct {
	Exercises []CompletedExercise `json:"exercises" validate:"dive"`
}

type CompleteResponse struct {
	Success       bool `json:"success"`
	TrainingDayID int  `json:"trainingDayId"`
}
