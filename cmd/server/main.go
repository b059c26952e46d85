package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skyfare/flight-booking-backend/internal/booking"
	"github.com/skyfare/flight-booking-backend/internal/cache"
	"github.com/skyfare/flight-booking-backend/internal/catalog"
	"github.com/skyfare/flight-booking-backend/internal/config"
	"github.com/skyfare/flight-booking-backend/internal/handlers"
	"github.com/skyfare/flight-booking-backend/internal/router"
	"github.com/skyfare/flight-booking-backend/internal/rng"
	"github.com/skyfare/flight-booking-backend/internal/service"
	"github.com/skyfare/flight-booking-backend/internal/store"
	"github.com/skyfare/flight-booking-backend/internal/websocket"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Pick the persistence collaborator
	var persister store.Persister
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPGStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer pg.Close()
		persister = pg
		log.Println("Persisting snapshots to Postgres")
	} else {
		persister = store.NewFileStore(cfg.DataFile)
		log.Printf("Persisting snapshots to %s", cfg.DataFile)
	}

	randSource := rng.NewTimeSeeded()

	// Load prior state, or generate a fresh catalog
	st := store.New()
	snap, err := persister.Load(ctx)
	if err != nil {
		log.Printf("Failed to load prior state, regenerating: %v", err)
		snap = nil
	}
	if snap != nil {
		st.Restore(snap)
		log.Printf("Restored %d flights and %d bookings", len(snap.Flights), len(snap.Bookings))
	} else {
		flights := catalog.NewGenerator(randSource).Generate(cfg.CatalogSize)
		st.SetFlights(flights)
		log.Printf("Generated catalog of %d flights", len(flights))
		if err := persister.Save(ctx, st.Snapshot()); err != nil {
			log.Printf("Failed to persist initial catalog: %v", err)
		}
	}

	// Optional search cache
	var searchCache *cache.Cache
	if cfg.RedisAddr != "" {
		if searchCache = cache.New(cfg.RedisAddr); searchCache == nil {
			log.Printf("Redis unreachable at %s, search caching disabled", cfg.RedisAddr)
		}
	}

	// Booking event hub
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize services
	manager := booking.NewManager(st, persister, randSource)
	bookingService := service.NewBookingService(st, manager, randSource, service.Options{
		SimulateLatency: cfg.SimulateLatency,
		Cache:           searchCache,
		Hub:             hub,
	})

	// Initialize handlers and router
	h := handlers.NewHandler(bookingService, hub)
	r := router.SetupRouter(h)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("API Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
