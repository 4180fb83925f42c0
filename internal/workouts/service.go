package workouts

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	CreateWorkout(ctx context.Context, userID int, name string) (*Workout, error)
	GetWorkout(ctx context.Context, userID, workoutID int) (*Workout, error)
	ListWorkouts(ctx context.Context, userID int) ([]Workout, error)
	ListExercises(ctx context.Context, workoutID int) ([]Exercise, error)
	AddExercise(ctx context.Context, userID int, exercise Exercise) (*Exercise, error)
	DeleteExercise(ctx context.Context, userID, exerciseID int) (int, error)
	DeleteWorkout(ctx context.Context, userID, workoutID int) error
}

type Service struct {
	repo workoutsRepo
}

func NewService(repo workoutsRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreateWorkout(ctx context.Context, userID int, req CreateWorkoutRequest) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.createWorkout")
	defer func() { endSpan(span, err) }()

	req.Name = strings.TrimSpace(req.Name)
	if err := pkg.Validate(req); err != nil {
		return nil, err
	}

	w, err := s.repo.CreateWorkout(ctx, userID, req.Name)
	if err != nil {
		return nil, err
	}

	log.Debugf("workouts service: user %d created workout %d", userID, w.ID)
	return w, nil
}

func (s *Service) ListWorkouts(ctx context.Context, userID int) ([]Workout, error) {
	return s.repo.ListWorkouts(ctx, userID)
}

// GetWorkoutDetail returns the owned workout with its exercises ordered by id.
func (s *Service) GetWorkoutDetail(ctx context.Context, userID, workoutID int) (_ *WorkoutDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.getWorkoutDetail")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	w, err := s.repo.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	exercises, err := s.repo.ListExercises(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	return &WorkoutDetail{
		Workout:   *w,
		Exercises: exercises,
	}, nil
}

func (s *Service) AddExercise(ctx context.Context, userID, workoutID int, req AddExerciseRequest) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.addExercise")
	defer func() { endSpan(span, err) }()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	req.Name = strings.TrimSpace(req.Name)
	req.MuscleGroup = strings.TrimSpace(req.MuscleGroup)
	if err := pkg.Validate(req); err != nil {
		return nil, err
	}

	exercise := Exercise{
		WorkoutID: workoutID,
		Name:      req.Name,
	}
	if req.MuscleGroup != "" {
		exercise.MuscleGroup = &req.MuscleGroup
	}

	return s.repo.AddExercise(ctx, userID, exercise)
}

func (s *Service) DeleteExercise(ctx context.Context, userID, exerciseID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.deleteExercise")
	defer func() { endSpan(span, err) }()

	workoutID, err := s.repo.DeleteExercise(ctx, userID, exerciseID)
	if err != nil {
		return 0, err
	}

	log.Debugf("workouts service: user %d deleted exercise %d", userID, exerciseID)
	return workoutID, nil
}

func (s *Service) DeleteWorkout(ctx context.Context, userID, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.deleteWorkout")
	defer func() { endSpan(span, err) }()

	if err := s.repo.DeleteWorkout(ctx, userID, workoutID); err != nil {
		return err
	}

	log.Debugf("workouts service: user %d deleted workout %d", userID, workoutID)
	return nil
}

// endSpan does not mark the span as failed for expected outcomes like a
// missing workout or bad input.
func endSpan(span trace.Span, err error) {
	if errors.Is(err, ErrWorkoutNotFound) ||
		errors.Is(err, ErrExerciseNotFound) ||
		errors.Is(err, pkg.ErrValidation) {
		span.End()
		return
	}
	tracing.EndSpanWithErrCheck(span, err)
}
