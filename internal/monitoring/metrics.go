package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flight_searches_total",
			Help: "Total flight searches by route",
		},
		[]string{"origin", "destination"},
	)

	searchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flight_search_duration_seconds",
			Help:    "Duration of flight searches including simulated latency",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 8),
		},
	)

	searchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flight_search_results",
			Help:    "Number of flights returned per search",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		},
	)

	bookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total bookings created",
		},
	)

	bookingsCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_cancelled_total",
			Help: "Total booking cancellations",
		},
	)

	paymentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_processed_total",
			Help: "Total payment attempts by outcome",
		},
		[]string{"status"},
	)
)

// TrackSearch records one search with its duration and result count
func TrackSearch(origin, destination string, duration time.Duration, results int) {
	searchesTotal.WithLabelValues(origin, destination).Inc()
	searchDuration.Observe(duration.Seconds())
	searchResults.Observe(float64(results))
}

// TrackBookingCreated records one new booking
func TrackBookingCreated() {
	bookingsCreated.Inc()
}

// TrackBookingCancelled records one cancellation
func TrackBookingCancelled() {
	bookingsCancelled.Inc()
}

// TrackPayment records one payment attempt outcome
func TrackPayment(status string) {
	paymentsProcessed.WithLabelValues(status).Inc()
}
