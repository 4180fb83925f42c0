package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=history_test

type historyRepo interface {
	CountTrainingDays(ctx context.Context, userID int, from, to string) (int, error)
	TrainingDates(ctx context.Context, userID int, since string) ([]string, error)
	RecentTrainings(ctx context.Context, userID, limit int) ([]RecentTraining, error)
	DayDetails(ctx context.Context, userID int, date string) (*DayDetails, error)
	History(ctx context.Context, userID int) ([]HistoryDay, error)
	ExerciseHistory(ctx context.Context, userID, exerciseID int) (*ExerciseHistory, error)
}

type workoutsLister interface {
	ListWorkouts(ctx context.Context, userID int) ([]workouts.Workout, error)
}

type Service struct {
	repo     historyRepo
	workouts workoutsLister
	NowFunc  func() time.Time
}

func NewService(repo historyRepo, workouts workoutsLister) *Service {
	return &Service{
		repo:     repo,
		workouts: workouts,
		NowFunc:  time.Now,
	}
}

// Dashboard aggregates the owned workouts, this month's training count, the
// training calendar and the most recent training days.
func (s *Service) Dashboard(ctx context.Context, userID int) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.dashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := s.NowFunc()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	calendarStart := now.AddDate(0, 0, -CalendarDays)

	ownedWorkouts, err := s.workouts.ListWorkouts(ctx, userID)
	if err != nil {
		return nil, err
	}

	monthCount, err := s.repo.CountTrainingDays(ctx, userID, pkg.FormatDate(monthStart), pkg.FormatDate(nextMonthStart))
	if err != nil {
		return nil, err
	}

	dates, err := s.repo.TrainingDates(ctx, userID, pkg.FormatDate(calendarStart))
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.RecentTrainings(ctx, userID, RecentTrainingsLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Workouts:               ownedWorkouts,
		MonthLabel:             now.Format("January 2006"),
		TrainingCountThisMonth: monthCount,
		TrainingDates:          dates,
		RecentTrainings:        recent,
	}, nil
}

// DayDetails validates date as YYYY-MM-DD before looking it up.
func (s *Service) DayDetails(ctx context.Context, userID int, date string) (_ *DayDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.dayDetails")
	defer func() {
		if errors.Is(err, ErrTrainingDayNotFound) || errors.Is(err, pkg.ErrValidation) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	day, err := pkg.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", pkg.ErrValidation, date)
	}

	return s.repo.DayDetails(ctx, userID, pkg.FormatDate(day))
}

func (s *Service) History(ctx context.Context, userID int) (_ []HistoryDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.History(ctx, userID)
}

func (s *Service) ExerciseHistory(ctx context.Context, userID, exerciseID int) (_ *ExerciseHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.history.exerciseHistory")
	defer func() {
		if errors.Is(err, workouts.ErrExerciseNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.ExerciseHistory(ctx, userID, exerciseID)
}
