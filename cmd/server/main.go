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

	"leetcode_proxy/internal/api"
	"leetcode_proxy/internal/app/service"
	"leetcode_proxy/internal/platform/config"
	"leetcode_proxy/internal/platform/database"
	"leetcode_proxy/internal/platform/leetcode"
	"leetcode_proxy/internal/platform/metrics"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Open the optional database handle. Failure is reported by /test, never fatal.
	dbHandle, dbErr := database.Open(cfg.DatabaseURL, cfg.DatabaseName)
	switch {
	case errors.Is(dbErr, database.ErrNotConfigured):
		log.Println("DATABASE_URL not set, database probe disabled.")
	case dbErr != nil:
		log.Printf("WARN: database handle unavailable: %v", dbErr)
	default:
		defer dbHandle.Close()
		log.Printf("Database handle ready (%s).", dbHandle.Name())
	}

	// 3. Metrics
	var metricsHandler http.Handler
	var upstreamMetrics *metrics.UpstreamMetrics
	if cfg.MetricsEnabled {
		reg := metrics.NewRegistry()
		upstreamMetrics = metrics.NewUpstreamMetrics(reg)
		metricsHandler = metrics.Handler(reg)
	}

	// 4. Initialize Services
	leetcodeClient := leetcode.NewClient(cfg.LeetCodeGraphQLURL, cfg.LeetCodeTimeout, nil, upstreamMetrics)
	profileService := service.NewProfileService(leetcodeClient)
	diagnosticService := service.NewDiagnosticService(dbHandle, dbErr, service.DiagnosticOptions{
		DatabaseURLSet:  cfg.DatabaseURL != "",
		DatabaseNameSet: cfg.DatabaseName != "",
		ProbeTimeout:    cfg.DBProbeTimeout,
	})
	fmt.Printf("LeetCode client ready (%s, operation %s, timeout %s).\n",
		cfg.LeetCodeGraphQLURL, leetcode.OperationName(), cfg.LeetCodeTimeout)

	// 5. Initialize Router & HTTP Server
	router := api.NewRouter(profileService, diagnosticService, metricsHandler)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.LeetCodeTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 6. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
		return
	}

	log.Println("Server stopped gracefully.")
}
