package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"admindash/api"
	"admindash/apiclient"
	"admindash/config"
	"admindash/logging"
	"admindash/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if err := cfg.ApplyLocation(); err != nil {
		sugar.Fatalf("Failed to apply location: %v", err)
	}

	if cfg.Development() {
		sugar.Info("Running in development environment")
	}

	client, err := apiclient.New(cfg.APIURL, &http.Client{Timeout: cfg.HTTPTimeout})
	if err != nil {
		sugar.Fatalf("Invalid API_URL: %v", err)
	}

	server, err := api.NewServer(cfg, client, session.NewCookieStore(cfg.SessionSecret))
	if err != nil {
		sugar.Fatalf("Failed to build server: %v", err)
	}

	// Configure the server
	srv := &http.Server{
		Handler:      server.Handler(),
		Addr:         cfg.Addr(),
		WriteTimeout: 15*time.Second + cfg.HTTPTimeout,
		ReadTimeout:  15 * time.Second,
	}

	go func() {
		sugar.Infow("Starting server", "addr", srv.Addr, "api", cfg.APIURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		sugar.Errorf("Graceful shutdown failed: %v", err)
	}
	sugar.Info("Server stopped")
}
