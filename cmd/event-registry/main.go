package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventRegistry/internal/config"
	"eventRegistry/internal/http-server/handlers/attendee/getAttendeeDetails"
	"eventRegistry/internal/http-server/handlers/attendee/getRegDetails"
	"eventRegistry/internal/http-server/handlers/attendee/register"
	"eventRegistry/internal/http-server/handlers/auth/login"
	"eventRegistry/internal/http-server/handlers/auth/signup"
	"eventRegistry/internal/http-server/handlers/event/createEvent"
	"eventRegistry/internal/http-server/handlers/event/getEvents"
	"eventRegistry/internal/http-server/handlers/ticket/generateTicket"
	"eventRegistry/internal/http-server/handlers/ticket/getTicket"
	"eventRegistry/internal/http-server/middleware/mwlogger"
	"eventRegistry/internal/http-server/middleware/mwmetrics"
	"eventRegistry/internal/lib/api/response"
	"eventRegistry/internal/lib/auth"
	"eventRegistry/internal/lib/logger/handlers/slogpretty"
	"eventRegistry/internal/lib/logger/sl"
	"eventRegistry/internal/lib/metrics"
	"eventRegistry/internal/storage"
	"eventRegistry/internal/storage/mongo"
	"eventRegistry/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event registry", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("Debug messages are enabled")

	store, err := openStorage(context.Background(), &cfg.Storage)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	router := newRouter(log, store, services{
		hasher:  auth.NewHasher(cfg.Auth.BcryptCost),
		tokens:  auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		metrics: metrics.New(),
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(ctx); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func openStorage(ctx context.Context, cfg *config.Storage) (storage.Store, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		s, err := mongo.New(ctx, &cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		s, err := postgres.InitDB(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

type services struct {
	hasher  *auth.Hasher
	tokens  *auth.JWTManager
	metrics *metrics.Metrics
}

func newRouter(log *slog.Logger, store storage.Store, svc services) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(mwmetrics.New(svc.metrics))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	router.Post("/create-event", createEvent.New(log, store))
	router.Get("/get-events", getEvents.New(log, store))

	router.Post("/register", register.New(log, store, svc.hasher))
	router.Get("/get-regdetails", getRegDetails.New(log, store))
	router.Post("/get-attendee-details", getAttendeeDetails.New(log, store))

	router.Post("/generate-ticket", generateTicket.New(log, store))
	router.Get("/tickets/{registrationId}", getTicket.New(log, store))

	router.Post("/signup", signup.New(log, store, svc.hasher))
	router.Post("/login", login.New(log, store, svc.hasher, svc.tokens))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK(""))
	})
	router.Handle("/metrics", promhttp.HandlerFor(svc.metrics.Registry, promhttp.HandlerOpts{}))

	return router
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
