package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/youcisla/streamsub/internal/config"
	"github.com/youcisla/streamsub/internal/constants"
	"github.com/youcisla/streamsub/internal/middleware"
)

func main() {
	InitializeLogger()

	cfg, err := config.Load()
	if err != nil {
		Logger.Fatalf("failed to load configuration: %v", err)
	}

	InitializeStore(cfg)
	InitializeServices(cfg)

	if strings.ToLower(os.Getenv("LOG_LEVEL")) != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(Logger))
	r.Use(middleware.Gzip())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(corsConfig))

	handler.RegisterRoutes(r)

	if err := serviceContainer.Poller.Start(); err != nil {
		Logger.Fatalf("failed to start poller: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		Logger.Infof("[App] starting HTTP server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			Logger.Fatalf("HTTP server failed: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	Logger.Infof("[App] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		Logger.Errorf("[App] server shutdown failed: %v", err)
	}

	serviceContainer.Poller.Stop()
	if err := Store.Close(); err != nil {
		Logger.Errorf("[App] failed to close store: %v", err)
	}
}
