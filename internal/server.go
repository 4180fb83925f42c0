package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/history"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/training"
	"github.com/2beens/fittrack/internal/users"
	"github.com/2beens/fittrack/internal/web"
	"github.com/2beens/fittrack/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config   *config.Config
	dbPool   *pgxpool.Pool
	renderer *web.Renderer

	redisClient   *redis.Client
	authService   *auth.Service
	cleanupCancel context.CancelFunc

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(
		params.Config.SessionTTL.Duration,
		rdb,
		auth.NewSessionCache(params.Config.SessionCacheSizeMB, auth.DefaultSessionCacheTTL),
	)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittrack", rdb)
	if err != nil {
		closeStores(dbPool, rdb)
		return nil, err
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		otelShutdown()
		closeStores(dbPool, rdb)
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	cleanupCtx, cleanupCancel := context.WithCancel(ctx)
	go authService.RunCleanup(cleanupCtx, auth.DefaultCleanupPeriod)

	return &Server{
		config:   params.Config,
		dbPool:   dbPool,
		renderer: renderer,

		redisClient:   rdb,
		authService:   authService,
		cleanupCancel: cleanupCancel,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// closeStores releases the db pool and redis client of a server that failed to start.
func closeStores(dbPool *pgxpool.Pool, rdb *redis.Client) {
	if err := rdb.Close(); err != nil {
		log.Errorf("failed to close redis client conn: %s", err)
	}
	dbPool.Close()
}

func (s *Server) routerSetup() *mux.Router {
	return NewRouter(RouterDeps{
		DBPool:         s.dbPool,
		Renderer:       s.renderer,
		Sessions:       s.authService,
		RateLimiter:    redis_rate.NewLimiter(s.redisClient),
		MetricsManager: s.metricsManager,
		Config:         s.config,
	})
}

type RouterDeps struct {
	DBPool         *pgxpool.Pool
	Renderer       *web.Renderer
	Sessions       *auth.Service
	RateLimiter    middleware.RequestRateLimiter
	MetricsManager *metrics.Manager
	Config         *config.Config
}

// NewRouter wires repos, services and handlers of all the app modules.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	workoutsRepo := workouts.NewRepo(deps.DBPool)

	usersHandler := users.NewHandler(
		users.NewService(users.NewRepo(deps.DBPool), deps.MetricsManager),
		deps.Sessions,
		deps.Renderer,
		deps.Config.SecureCookies,
	)
	usersHandler.SetupRoutes(
		r,
		deps.RateLimiter,
		deps.MetricsManager,
		deps.Config.LoginRateLimitAllowedPerMin,
		deps.Config.TrustProxyHeaders,
	)

	workoutsHandler := workouts.NewHandler(workouts.NewService(workoutsRepo), deps.Renderer)
	workoutsHandler.SetupRoutes(r)

	trainingHandler := training.NewHandler(
		training.NewService(training.NewRepo(deps.DBPool), deps.MetricsManager),
		deps.Renderer,
	)
	trainingHandler.SetupRoutes(r)

	historyHandler := history.NewHandler(
		history.NewService(history.NewRepo(deps.DBPool), workoutsRepo),
		deps.Renderer,
	)
	historyHandler.SetupRoutes(r)

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(deps.Sessions)

	r.Use(middleware.PanicRecovery(deps.MetricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(deps.MetricsManager))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.cleanupCancel != nil {
		s.cleanupCancel()
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
