package training

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/web"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=training_test

type trainingService interface {
	StartSession(ctx context.Context, userID, workoutID int) (*SessionView, error)
	CompleteSession(ctx context.Context, userID, workoutID int, req CompleteRequest) (int, error)
}

type pageRenderer interface {
	Render(w http.ResponseWriter, name string, page web.Page, status int)
}

type Handler struct {
	service  trainingService
	renderer pageRenderer
}

func NewHandler(service trainingService, renderer pageRenderer) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/train/{id:[0-9]+}", handler.HandleStart).Methods("GET").Name("train")
	router.HandleFunc("/train/{id:[0-9]+}/complete", handler.HandleComplete).Methods("POST").Name("train-complete")
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.start")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	workoutID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	view, err := handler.service.StartSession(ctx, identity.UserID, workoutID)
	if err != nil {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		log.Errorf("start session for workout %d: %s", workoutID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.renderer.Render(w, "train.html", web.Page{
		Title: "Training: " + view.WorkoutName,
		User:  &identity,
		Data:  view,
	}, http.StatusOK)
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.complete")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	workoutID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, "Invalid workout id", http.StatusBadRequest)
		return
	}

	var req CompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debugf("complete session, decode body: %s", err)
		pkg.WriteJSONError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	trainingDayID, err := handler.service.CompleteSession(ctx, identity.UserID, workoutID, req)
	if err != nil {
		switch {
		case errors.Is(err, workouts.ErrWorkoutNotFound):
			pkg.WriteJSONError(w, "Workout not found", http.StatusNotFound)
		case errors.Is(err, ErrExerciseNotInWorkout):
			pkg.WriteJSONError(w, "Exercise does not belong to workout", http.StatusBadRequest)
		case errors.Is(err, pkg.ErrValidation):
			pkg.WriteJSONError(w, "Sets, reps and weight must be non-negative", http.StatusBadRequest)
		default:
			log.Errorf("complete session for workout %d: %s", workoutID, err)
			pkg.WriteJSONError(w, "Internal error", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, CompleteResponse{Success: true, TrainingDayID: trainingDayID}, http.StatusOK)
}
