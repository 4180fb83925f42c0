package training

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=training_test

type sessionsRepo interface {
	LoadSession(ctx context.Context, userID, workoutID int) (*SessionView, error)
	SaveSession(ctx context.Context, userID, workoutID int, date string, entries []CompletedExercise) (int, error)
}

type Service struct {
	repo           sessionsRepo
	metricsManager *metrics.Manager
	// NowFunc gives the session date, in server local time
	NowFunc func() time.Time
}

func NewService(repo sessionsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

func (s *Service) StartSession(ctx context.Context, userID, workoutID int) (_ *SessionView, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.startSession")
	defer func() {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	return s.repo.LoadSession(ctx, userID, workoutID)
}

// CompleteSession records one training day for today with a record per
// entry and returns the new training day id.
func (s *Service) CompleteSession(ctx context.Context, userID, workoutID int, req CompleteRequest) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.completeSession")
	defer func() {
		if errors.Is(err, workouts.ErrWorkoutNotFound) ||
			errors.Is(err, ErrExerciseNotInWorkout) ||
			errors.Is(err, pkg.ErrValidation) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	if err := pkg.Validate(req); err != nil {
		return 0, err
	}

	date := pkg.FormatDate(s.NowFunc())
	trainingDayID, err := s.repo.SaveSession(ctx, userID, workoutID, date, req.Exercises)
	if err != nil {
		return 0, err
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterCompletedSessions.Inc()
		sets := 0
		for _, e := range req.Exercises {
			sets += e.Sets
		}
		s.metricsManager.CounterRecordedSets.Add(float64(sets))
	}
	log.Debugf("training service: user %d completed workout %d on %s, training day %d", userID, workoutID, date, trainingDayID)

	return trainingDayID, nil
}
