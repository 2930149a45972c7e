package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-list-web/internal/config"
	"task-list-web/internal/database"
	"task-list-web/internal/flash"
	"task-list-web/internal/logging"
	"task-list-web/internal/realtime"
	"task-list-web/internal/routes"
	"task-list-web/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

func main() {
	conf, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog := logging.New(logging.Options{File: conf.LogFile, Production: conf.IsProduction()})
	defer zlog.Sync()

	sqlLogLevel := logger.Info
	if conf.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		sqlLogLevel = logger.Warn
	}

	// Init database
	db, err := database.Open(database.Options{Path: conf.DatabasePath, LogLevel: sqlLogLevel})
	if err != nil {
		zlog.Fatal("Failed to open database", zap.Error(err))
	}
	defer database.Close(db)
	zlog.Info("Database connected and migrated", zap.String("path", conf.DatabasePath))

	ginRoutes, err := routes.SetupRoutes(routes.Deps{
		Store:   store.NewTaskStore(db),
		Flasher: flash.New(conf.SecretKey),
		Hub:     realtime.NewHub(),
		Logger:  zlog,
	})
	if err != nil {
		zlog.Fatal("Failed to set up routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    conf.Addr(),
		Handler: ginRoutes,
	}

	go func() {
		zlog.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("Server shutdown failed", zap.Error(err))
	}
}
