package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mishasvintus/gamenight/internal/config"
	"github.com/mishasvintus/gamenight/internal/handler"
	"github.com/mishasvintus/gamenight/internal/library"
	"github.com/mishasvintus/gamenight/internal/logging"
	"github.com/mishasvintus/gamenight/internal/repository"
	"github.com/mishasvintus/gamenight/internal/repository/store"
	"github.com/mishasvintus/gamenight/internal/router"
	"github.com/mishasvintus/gamenight/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := repository.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	err = repository.Migrate(migrateCtx, db)
	cancelMigrate()
	if err != nil {
		logger.Fatal("Failed to apply schema", zap.Error(err))
	}

	groupStore := store.New(db)
	querier := library.NewQuerier(db, cfg.Library.ShareableTags, cfg.Library.Timeout, logger)
	groupService := service.NewGroupService(
		groupStore,
		groupStore,
		querier,
		querier,
		cfg.Library.MaxConcurrency,
		logger,
	)

	groupHandler := handler.NewGroupHandler(groupService)

	r := router.SetupRoutes(groupHandler, logger)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Server exited")
}
