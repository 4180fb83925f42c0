package history

import (
	"errors"

	"github.com/2beens/fittrack/internal/training"
	"github.com/2beens/fittrack/internal/workouts"
)

const (
	// CalendarDays is how far back the dashboard calendar reaches.
	CalendarDays = 180
	// RecentTrainingsLimit is the number of latest training days on the dashboard.
	RecentTrainingsLimit = 3
)

var ErrTrainingDayNotFound = errors.New("no workout found")

type RecentTraining struct {
	TrainingDayID int    `json:"trainingDayId"`
	Date          string `json:"date"`
	WorkoutName   string `json:"workoutName"`
	ExerciseCount int    `json:"exerciseCount"`
}

type Dashboard struct {
	Workouts               []workouts.Workout `json:"workouts"`
	MonthLabel             string             `json:"month"`
	TrainingCountThisMonth int                `json:"trainingCountThisMonth"`
	TrainingDates          []string           `json:"trainingDates"`
	RecentTrainings        []RecentTraining   `json:"recentTrainings"`
}

type PerformedExercise struct {
	Name        string  `json:"name"`
	MuscleGroup *string `json:"muscle_group"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
}

// DayDetails is the training done on one calendar day.
type DayDetails struct {
	WorkoutName string              `json:"workout_name"`
	Date        string              `json:"date"`
	Exercises   []PerformedExercise `json:"exercises"`
}

type HistoryDay struct {
	TrainingDayID int                 `json:"trainingDayId"`
	Date          string              `json:"date"`
	WorkoutID     int                 `json:"workoutId"`
	WorkoutName   string              `json:"workoutName"`
	Records       []PerformedExercise `json:"records"`
}

type ExerciseHistory struct {
	ExerciseID   int                    `json:"exerciseId"`
	ExerciseName string                 `json:"exerciseName"`
	MuscleGroup  *string                `json:"muscleGroup"`
	WorkoutID    int                    `json:"workoutId"`
	WorkoutName  string                 `json:"workoutName"`
	Records      []training.RecordEntry `json:"records"`
}
