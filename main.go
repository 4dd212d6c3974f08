package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timesheet/config"
	"timesheet/database"
	"timesheet/graph"
	"timesheet/handlers"
	"timesheet/middleware"
	"timesheet/repository"
	"timesheet/router"
	"timesheet/service"
	"timesheet/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env)

	db, err := database.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	entryRepo := repository.NewTimeEntryRepository(db)

	tokens := middleware.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiration)
	userService := service.NewUserService(userRepo, projectRepo, cfg.PasswordMinLen)
	projectService := service.NewProjectService(projectRepo)
	entryService := service.NewTimeEntryService(entryRepo, userRepo)
	authService := service.NewAuthService(userService, tokens)

	archive, err := storage.NewStorage(ctx, cfg.Export)
	if err != nil {
		logger.Error("failed to initialize export storage", "error", err)
		os.Exit(1)
	}

	schema, err := graph.NewSchema(graph.NewResolver(userService, projectService, entryService, logger))
	if err != nil {
		logger.Error("failed to parse graphql schema", "error", err)
		os.Exit(1)
	}

	exportHandler := handlers.NewExportHandler(entryService, archive, logger)
	handler := router.New(router.Dependencies{
		Config:  cfg,
		Logger:  logger,
		Tokens:  tokens,
		Users:   userRepo,
		Auth:    handlers.NewAuthHandler(authService, logger),
		Export:  exportHandler,
		GraphQL: graph.NewHandler(schema),
		Ping: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
	})

	srv := newServer(":"+cfg.ServerPort, handler, cfg.RequestTimeout)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "port", cfg.ServerPort, "env", cfg.Env, "export_storage", cfg.Export.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErrors:
		logger.Error("http server stopped unexpectedly", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
	exportHandler.Wait()

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info("http server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env != "prod" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

const (
	serverReadTimeout  = 15 * time.Second
	serverWriteTimeout = 60 * time.Second
)

// newServer sets connection timeouts. The write timeout always outlasts the
// per-request handler budget; a zero requestTimeout means no budget.
func newServer(addr string, handler http.Handler, requestTimeout time.Duration) *http.Server {
	writeTimeout := serverWriteTimeout
	if requestTimeout > 0 && requestTimeout+10*time.Second > writeTimeout {
		writeTimeout = requestTimeout + 10*time.Second
	}
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       serverReadTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}
}
