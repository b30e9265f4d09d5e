package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/anashany189-droid/ShareEstate1/insight"
	"github.com/anashany189-droid/ShareEstate1/middleware"
	"github.com/anashany189-droid/ShareEstate1/routes"
	"github.com/anashany189-droid/ShareEstate1/store"
)

func main() {
	// Load .env if present (do not overwrite already-set environment variables).
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	// Seed the in-memory session state: demo catalog plus a mock investor.
	st := store.NewDemoStore()
	log.Printf("Seeded catalog with %d properties", len(st.Catalog.List()))

	// Insight provider with degradation to static text, and the cached
	// market summary refreshed on a schedule.
	ctx := context.Background()
	provider := insight.WithFallback(insight.FromEnv(ctx))
	cache := insight.NewMarketCache(provider)

	cronSpec := os.Getenv("INSIGHT_REFRESH_CRON")
	if cronSpec == "" {
		cronSpec = "@hourly"
	}
	if err := cache.Start(cronSpec); err != nil {
		log.Fatalf("invalid INSIGHT_REFRESH_CRON %q: %v", cronSpec, err)
	}
	defer cache.Stop()

	// Initialize router
	router := routes.InitRouter(st, provider, cache)

	// Wrap router with global middleware in recommended order
	// Logging -> Security headers -> Request ID -> Max Body -> Timeout -> Recovery
	handler := middleware.RequestLogMiddleware(
		middleware.SecurityHeadersMiddleware(
			middleware.RequestIDMiddleware(
				middleware.MaxBodyMiddleware(
					middleware.TimeoutMiddleware(
						middleware.RecoveryMiddleware(router),
					),
				),
			),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
