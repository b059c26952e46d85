package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skyfare/flight-booking-backend/internal/handlers"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(h *handlers.Handler) *mux.Router {
	r := mux.NewRouter()

	// CORS middleware
	r.Use(corsMiddleware)

	// API routes
	api := r.PathPrefix("/api").Subrouter()

	// Flights
	api.HandleFunc("/flights/search", h.SearchFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/flights/{id}", h.GetFlight).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/segments/{id}/seats", h.GetSegmentSeats).Methods(http.MethodGet, http.MethodOptions)

	// Bookings
	api.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/bookings/reference/{reference}", h.GetBookingByReference).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bookings/{id}", h.GetBooking).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bookings/{id}", h.UpdateBooking).Methods(http.MethodPatch, http.MethodOptions)
	api.HandleFunc("/bookings/{id}", h.CancelBooking).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/bookings/{id}/payment", h.ProcessPayment).Methods(http.MethodPost, http.MethodOptions)

	// Reference data
	api.HandleFunc("/destinations/popular", h.GetPopularDestinations).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/airlines", h.GetAirlines).Methods(http.MethodGet, http.MethodOptions)

	// WebSocket for booking lifecycle events
	api.HandleFunc("/bookings/{id}/ws", h.BookingEvents)

	// Health check and metrics
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
