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

	"github.com/rgayashan/FindAMechanic/config"
	"github.com/rgayashan/FindAMechanic/internal/api"
	"github.com/rgayashan/FindAMechanic/internal/booking"
	"github.com/rgayashan/FindAMechanic/internal/directory"
	"github.com/rgayashan/FindAMechanic/internal/upstream"
)

func main() {
	logger := log.New(os.Stdout, "mechanicd ", log.LstdFlags)

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	if cfg.Upstream.AuthToken == "" {
		logger.Fatalf("upstream.auth_token must be configured")
	}

	client := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.AuthToken, cfg.Upstream.Timeout)
	directorySvc := directory.NewService(client)
	submitter := booking.NewSubmitter(client)

	router := api.NewRouter(directorySvc, submitter, api.RouterConfig{
		RateLimitPerSec: cfg.Server.RateLimitPerSec,
		RateLimitBurst:  cfg.Server.RateLimitBurst,
		DefaultPageSize: cfg.Upstream.PageSize,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
