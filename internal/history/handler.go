package history

import (
	"context"
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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=history_test

type historyService interface {
	Dashboard(ctx context.Context, userID int) (*Dashboard, error)
	DayDetails(ctx context.Context, userID int, date string) (*DayDetails, error)
	History(ctx context.Context, userID int) ([]HistoryDay, error)
	ExerciseHistory(ctx context.Context, userID, exerciseID int) (*ExerciseHistory, error)
}

type pageRenderer interface {
	Render(w http.ResponseWriter, name string, page web.Page, status int)
}

type Handler struct {
	service  historyService
	renderer pageRenderer
}

func NewHandler(service historyService, renderer pageRenderer) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard", handler.HandleDashboard).Methods("GET").Name("dashboard")
	router.HandleFunc("/history", handler.HandleHistory).Methods("GET").Name("history")
	router.HandleFunc("/exercise/{id:[0-9]+}/history", handler.HandleExerciseHistory).Methods("GET").Name("exercise-history")
	router.HandleFunc("/api/workout-details/{date}", handler.HandleDayDetails).Methods("GET").Name("workout-details")
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.dashboard")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	dashboard, err := handler.service.Dashboard(ctx, identity.UserID)
	if err != nil {
		log.Errorf("dashboard for user %d: %s", identity.UserID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.renderer.Render(w, "dashboard.html", web.Page{
		Title: "Dashboard",
		User:  &identity,
		Data:  dashboard,
	}, http.StatusOK)
}

func (handler *Handler) HandleDayDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.dayDetails")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		pkg.WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	details, err := handler.service.DayDetails(ctx, identity.UserID, mux.Vars(r)["date"])
	if err != nil {
		switch {
		case errors.Is(err, ErrTrainingDayNotFound):
			pkg.WriteJSONError(w, "No workout found", http.StatusNotFound)
		case errors.Is(err, pkg.ErrValidation):
			pkg.WriteJSONError(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		default:
			log.Errorf("day details for user %d: %s", identity.UserID, err)
			pkg.WriteJSONError(w, "Internal error", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, details, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.history")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	days, err := handler.service.History(ctx, identity.UserID)
	if err != nil {
		log.Errorf("history for user %d: %s", identity.UserID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.renderer.Render(w, "history.html", web.Page{
		Title: "History",
		User:  &identity,
		Data:  days,
	}, http.StatusOK)
}

func (handler *Handler) HandleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.history.exerciseHistory")
	defer span.End()

	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	exerciseID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	eh, err := handler.service.ExerciseHistory(ctx, identity.UserID, exerciseID)
	if err != nil {
		if errors.Is(err, workouts.ErrExerciseNotFound) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		log.Errorf("exercise %d history: %s", exerciseID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.renderer.Render(w, "exercise_history.html", web.Page{
		Title: eh.ExerciseName,
		User:  &identity,
		Data:  eh,
	}, http.StatusOK)
}
