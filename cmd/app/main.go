package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo_webapp/internal/config"
	"todo_webapp/internal/db"
	httpServer "todo_webapp/internal/http"
	"todo_webapp/internal/http/middleware"
	"todo_webapp/internal/logger"
	"todo_webapp/internal/repository"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	logger.Info("starting todo app", "version", version)

	conns, err := db.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("failed to configure database", "error", err)
	}
	defer conns.Close()

	// failure here is logged and startup continues
	db.EnsureSchema(context.Background(), conns, conns.Dialect())

	redisClient := middleware.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if redisClient != nil {
		defer redisClient.Close()
	}

	repo := repository.NewTaskRepository(conns, conns.Dialect())
	r := httpServer.NewRouter(repo, conns, httpServer.Options{
		Version:         version,
		RateLimit:       cfg.RateLimit,
		RateLimitWindow: cfg.RateLimitWindow,
		Redis:           redisClient,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		logger.Info("server started", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return
	}

	logger.Info("server exited")
}
