package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/leporo/sqlf"
	"golang.org/x/crypto/bcrypt"

	"github.com/ndudarev/go_fitness_backend/internal/adapter/api"
	"github.com/ndudarev/go_fitness_backend/internal/adapter/storage"
	"github.com/ndudarev/go_fitness_backend/internal/app/auth"
	"github.com/ndudarev/go_fitness_backend/internal/app/messagebus"
	"github.com/ndudarev/go_fitness_backend/internal/app/workoutapp"
	"github.com/ndudarev/go_fitness_backend/internal/config"
	"github.com/ndudarev/go_fitness_backend/internal/domain"
	"github.com/ndudarev/go_fitness_backend/internal/domain/athlete"
	"github.com/ndudarev/go_fitness_backend/internal/domain/workout"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger := initLogger(cfg)

	bus := messagebus.New(logger)
	bus.Register(athlete.EventCreated, func(event domain.Event) error {
		logger.Info("athlete signed up")
		return nil
	})
	bus.Register(workout.EventRecorded, func(event domain.Event) error {
		e := event.(workout.RecordedEvent)
		logger.Info("workout recorded", "workout_id", e.WorkoutID, "activity", e.Activity)
		return nil
	})
	defer bus.Close()

	sqlf.SetDialect(sqlf.PostgreSQL)

	db, err := sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}

	authorizer := &auth.Authorizer{
		Cost:           bcrypt.DefaultCost,
		Secret:         cfg.JWT.Secret,
		AccessTokenTTL: cfg.JWT.AccessTokenTTL,
		SessionTTL:     cfg.JWT.SessionTTL,
	}

	server := api.NewServer(
		api.Addr(cfg.Server.Host, cfg.Server.Port),
		api.Logger(logger),
		api.AuthService(auth.NewService(authorizer, logger)),
		api.WorkoutService(workoutapp.New(logger)),
		api.Database(&storage.DB{DB: db}),
		api.MessageBus(bus),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error)

	go func() {
		defer close(errCh)
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server was not shutdown gracefully", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server closed with unexpected error", "error", err)
		}
	}
	logger.Info("server shutdown")
}

func initLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	switch cfg.App.Env {
	case config.Development:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})
	case config.Production:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		})
	default:
		panic("invalid env")
	}

	return slog.New(handler)
}
