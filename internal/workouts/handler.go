package workouts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/web"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	CreateWorkout(ctx context.Context, userID int, req CreateWorkoutRequest) (*Workout, error)
	GetWorkoutDetail(ctx context.Context, userID, workoutID int) (*WorkoutDetail, error)
	AddExercise(ctx context.Context, userID, workoutID int, req AddExerciseRequest) (*Exercise, error)
	DeleteExercise(ctx context.Context, userID, exerciseID int) (int, error)
	DeleteWorkout(ctx context.Context, userID, workoutID int) error
}

type pageRenderer interface {
	Render(w http.ResponseWriter, name string, page web.Page, status int)
}

type Handler struct {
	service  workoutsService
	renderer pageRenderer
}

func NewHandler(service workoutsService, renderer pageRenderer) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workout/new", handler.HandleNewPage).Methods("GET").Name("workout-new-page")
	router.HandleFunc("/workout/new", handler.HandleCreate).Methods("POST").Name("workout-new")
	router.HandleFunc("/workout/{id:[0-9]+}", handler.HandleDetail).Methods("GET").Name("workout-detail")
	router.HandleFunc("/workout/{id:[0-9]+}/exercise/new", handler.HandleAddExercise).Methods("POST").Name("exercise-new")
	router.HandleFunc("/workout/{id:[0-9]+}/delete", handler.HandleDeleteWorkout).Methods("POST").Name("workout-delete")
	router.HandleFunc("/exercise/{id:[0-9]+}/delete", handler.HandleDeleteExercise).Methods("POST").Name("exercise-delete")
}

func (handler *Handler) HandleNewPage(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	handler.renderer.Render(w, "workout_new.html", web.Page{Title: "New workout", User: &identity}, http.StatusOK)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	workout, err := handler.service.CreateWorkout(ctx, identity.UserID, CreateWorkoutRequest{
		Name: r.PostForm.Get("name"),
	})
	if err != nil {
		handler.handleError(w, r, "create workout", err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/workout/%d", workout.ID), http.StatusFound)
}

func (handler *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.detail")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	workoutID, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	detail, err := handler.service.GetWorkoutDetail(ctx, identity.UserID, workoutID)
	if err != nil {
		handler.handleError(w, r, "workout detail", err)
		return
	}

	handler.renderer.Render(w, "workout_detail.html", web.Page{
		Title: detail.Workout.Name,
		User:  &identity,
		Data:  detail,
	}, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addExercise")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	workoutID, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if _, err := handler.service.AddExercise(ctx, identity.UserID, workoutID, AddExerciseRequest{
		Name:        r.PostForm.Get("name"),
		MuscleGroup: r.PostForm.Get("muscle_group"),
	}); err != nil {
		handler.handleError(w, r, "add exercise", err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/workout/%d", workoutID), http.StatusFound)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteExercise")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	exerciseID, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	workoutID, err := handler.service.DeleteExercise(ctx, identity.UserID, exerciseID)
	if err != nil {
		handler.handleError(w, r, "delete exercise", err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/workout/%d", workoutID), http.StatusFound)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteWorkout")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	workoutID, err := pathID(r)
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	if err := handler.service.DeleteWorkout(ctx, identity.UserID, workoutID); err != nil {
		handler.handleError(w, r, "delete workout", err)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// handleError maps service errors for HTML routes: missing or foreign
// resources go back to the dashboard.
func (handler *Handler) handleError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ErrWorkoutNotFound), errors.Is(err, ErrExerciseNotFound):
		log.Debugf("%s: %s", op, err)
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	case errors.Is(err, pkg.ErrValidation):
		log.Debugf("%s: %s", op, err)
		http.Error(w, "bad request: name is required", http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
