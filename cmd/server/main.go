package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"userpanel/internal/app/server/api"
	"userpanel/internal/app/server/config"
	"userpanel/internal/domain/user"
	"userpanel/internal/infrastructure/storage/postgres"
	"userpanel/internal/infrastructure/storage/sqlite"
	"userpanel/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env).With("component", "server")

	var repo user.Repository
	var backend string

	if cfg.UsePostgres() {
		storage, err := postgres.New(cfg)
		if err != nil {
			log.Error("failed to init postgres storage", "error", err)
			os.Exit(1)
		}
		defer storage.Close()
		repo = postgres.NewUserRepository(storage, log)
		backend = "postgres"
	} else {
		storage, err := sqlite.New(cfg.DB.SQLitePath)
		if err != nil {
			log.Error("failed to init sqlite storage", "error", err)
			os.Exit(1)
		}
		defer storage.Close()
		repo = sqlite.NewUserRepository(storage, log)
		backend = "sqlite"
	}

	router := api.New(repo, backend, log)

	server := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: router,
	}

	go func() {
		log.Info("server started", "address", cfg.Server.RunAddress, "backend", backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
