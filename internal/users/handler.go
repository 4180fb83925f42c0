package users

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/web"
	"github.com/2beens/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersService interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Authenticate(ctx context.Context, req LoginRequest) (*User, error)
}

type sessionStore interface {
	Create(ctx context.Context, identity auth.Identity) (string, error)
	Destroy(ctx context.Context, token string) error
	TTL() time.Duration
}

type pageRenderer interface {
	Render(w http.ResponseWriter, name string, page web.Page, status int)
}

type Handler struct {
	service       usersService
	sessions      sessionStore
	renderer      pageRenderer
	secureCookies bool
}

func NewHandler(
	service usersService,
	sessions sessionStore,
	renderer pageRenderer,
	secureCookies bool,
) *Handler {
	return &Handler{
		service:       service,
		sessions:      sessions,
		renderer:      renderer,
		secureCookies: secureCookies,
	}
}

func (handler *Handler) SetupRoutes(
	router *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	allowedPerMin int,
	trustProxyHeaders bool,
) {
	router.HandleFunc("/", handler.HandleIndex).Methods("GET").Name("index")
	router.HandleFunc("/logout", handler.HandleLogout).Methods("GET").Name("logout")

	router.HandleFunc("/register", handler.HandleRegisterPage).Methods("GET").Name("register-page")
	router.Handle(
		"/register",
		middleware.RateLimit(rateLimiter, metricsManager, "register", allowedPerMin, trustProxyHeaders)(http.HandlerFunc(handler.HandleRegister)),
	).Methods("POST").Name("register")

	router.HandleFunc("/login", handler.HandleLoginPage).Methods("GET").Name("login-page")
	router.Handle(
		"/login",
		middleware.RateLimit(rateLimiter, metricsManager, "login", allowedPerMin, trustProxyHeaders)(http.HandlerFunc(handler.HandleLogin)),
	).Methods("POST").Name("login")
}

func (handler *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.IdentityFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (handler *Handler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	handler.renderer.Render(w, "register.html", web.Page{Title: "Register"}, http.StatusOK)
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("register, parse form: %s", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	req := RegisterRequest{
		Name:     r.PostForm.Get("name"),
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}

	user, err := handler.service.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			handler.renderer.Render(w, "register.html", web.Page{
				Title: "Register",
				Error: "Email already registered",
				Form:  map[string]string{"name": req.Name, "email": req.Email},
			}, http.StatusOK)
		case errors.Is(err, pkg.ErrValidation):
			log.Debugf("register: %s", err)
			http.Error(w, "name, email and password are required", http.StatusBadRequest)
		default:
			log.Errorf("register: %s", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	log.Printf("new user registered: %d", user.ID)
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (handler *Handler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	handler.renderer.Render(w, "login.html", web.Page{Title: "Log in"}, http.StatusOK)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("login, parse form: %s", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	req := LoginRequest{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}

	user, err := handler.service.Authenticate(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			handler.renderer.Render(w, "login.html", web.Page{
				Title: "Log in",
				Error: "Invalid email or password",
				Form:  map[string]string{"email": req.Email},
			}, http.StatusOK)
		case errors.Is(err, pkg.ErrValidation):
			log.Debugf("login: %s", err)
			http.Error(w, "email and password are required", http.StatusBadRequest)
		default:
			log.Errorf("login: %s", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	token, err := handler.sessions.Create(ctx, auth.Identity{UserID: user.ID, Name: user.Name})
	if err != nil {
		log.Errorf("login, create session for user %d: %s", user.ID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, token, handler.sessions.TTL(), handler.secureCookies)
	log.Debugf("user %d logged in", user.ID)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// HandleLogout always clears the cookie, even when the session is already gone.
func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	if token := auth.TokenFromRequest(r); token != "" {
		if err := handler.sessions.Destroy(ctx, token); err != nil {
			log.Errorf("logout, destroy session: %s", err)
			span.RecordError(err)
		}
	}

	auth.ClearSessionCookie(w, handler.secureCookies)
	http.Redirect(w, r, "/login", http.StatusFound)
}
