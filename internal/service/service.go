package service

import (
	"context"
	"time"

	"github.com/skyfare/flight-booking-backend/internal/booking"
	"github.com/skyfare/flight-booking-backend/internal/cache"
	"github.com/skyfare/flight-booking-backend/internal/models"
	"github.com/skyfare/flight-booking-backend/internal/monitoring"
	"github.com/skyfare/flight-booking-backend/internal/refdata"
	"github.com/skyfare/flight-booking-backend/internal/rng"
	"github.com/skyfare/flight-booking-backend/internal/search"
	"github.com/skyfare/flight-booking-backend/internal/seatmap"
	"github.com/skyfare/flight-booking-backend/internal/store"
	"github.com/skyfare/flight-booking-backend/internal/websocket"
)

// BookingService is the operation surface the core exposes to its
// callers. Lookups report "not found" as a nil result with a nil error;
// ProcessPayment is the only operation that returns an error for an
// unknown booking.
type BookingService interface {
	SearchFlights(ctx context.Context, params models.SearchParams) ([]models.Flight, error)
	GetFlightDetails(ctx context.Context, flightID string) (*models.Flight, error)
	GetAvailableSeats(ctx context.Context, segmentID string, cabin models.CabinClass) ([]models.Seat, error)
	CreateBooking(ctx context.Context, flight models.Flight, passengers []models.Passenger, cabin models.CabinClass, contact models.ContactInfo) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, bookingID string, update models.BookingUpdate) (*models.Booking, error)
	ProcessPayment(ctx context.Context, bookingID string, method models.PaymentMethod, amount float64) (*models.Payment, error)
	CancelBooking(ctx context.Context, bookingID string) (bool, error)
	GetPopularDestinations(ctx context.Context, limit int) ([]models.Airport, error)
	GetAirlines(ctx context.Context) ([]models.Airline, error)
}

// Options tunes the optional collaborators of the service
type Options struct {
	// SimulateLatency enables the fixed per-operation delays of the
	// original backend. Off in tests.
	SimulateLatency bool
	// Cache enables Redis-backed search caching when non-nil
	Cache *cache.Cache
	// Hub receives booking lifecycle events when non-nil
	Hub *websocket.Hub
}

// bookingServiceImpl implements BookingService
type bookingServiceImpl struct {
	store    *store.Store
	bookings *booking.Manager
	rand     rng.Source
	opts     Options
}

// NewBookingService creates a new BookingService
func NewBookingService(st *store.Store, mgr *booking.Manager, r rng.Source, opts Options) BookingService {
	return &bookingServiceImpl{
		store:    st,
		bookings: mgr,
		rand:     r,
		opts:     opts,
	}
}

// delay sleeps for a uniformly random duration in [min, max] ms when
// latency simulation is on. The sleeps are fixed delays, not
// interruptible; callers wrap with their own timeout if they need one.
func (s *bookingServiceImpl) delay(minMs, maxMs int) {
	if !s.opts.SimulateLatency {
		return
	}
	time.Sleep(time.Duration(rng.IntBetween(s.rand, minMs, maxMs)) * time.Millisecond)
}

func (s *bookingServiceImpl) SearchFlights(ctx context.Context, params models.SearchParams) ([]models.Flight, error) {
	started := time.Now()
	s.delay(500, 1000)

	key := cache.SearchKey(params)
	if flights, ok := s.opts.Cache.GetSearch(ctx, key); ok {
		monitoring.TrackSearch(params.Origin, params.Destination, time.Since(started), len(flights))
		return flights, nil
	}

	flights := search.Filter(s.store.Flights(), search.FromParams(params))
	s.opts.Cache.SetSearch(ctx, key, flights)

	monitoring.TrackSearch(params.Origin, params.Destination, time.Since(started), len(flights))
	return flights, nil
}

func (s *bookingServiceImpl) GetFlightDetails(ctx context.Context, flightID string) (*models.Flight, error) {
	s.delay(150, 250)

	f, ok := s.store.Flight(flightID)
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (s *bookingServiceImpl) GetAvailableSeats(ctx context.Context, segmentID string, cabin models.CabinClass) ([]models.Seat, error) {
	s.delay(300, 500)
	return seatmap.Generate(segmentID, cabin, s.rand), nil
}

func (s *bookingServiceImpl) CreateBooking(ctx context.Context, flight models.Flight, passengers []models.Passenger, cabin models.CabinClass, contact models.ContactInfo) (*models.Booking, error) {
	s.delay(400, 600)

	b := s.bookings.Create(ctx, flight, passengers, cabin, contact)
	monitoring.TrackBookingCreated()
	s.opts.Hub.BroadcastBookingCreated(b)
	return b, nil
}

func (s *bookingServiceImpl) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	s.delay(200, 300)
	return s.bookings.Get(ctx, bookingID), nil
}

func (s *bookingServiceImpl) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	s.delay(200, 300)
	return s.bookings.GetByReference(ctx, reference), nil
}

func (s *bookingServiceImpl) UpdateBooking(ctx context.Context, bookingID string, update models.BookingUpdate) (*models.Booking, error) {
	s.delay(300, 500)
	return s.bookings.Update(ctx, bookingID, update), nil
}

func (s *bookingServiceImpl) ProcessPayment(ctx context.Context, bookingID string, method models.PaymentMethod, amount float64) (*models.Payment, error) {
	s.delay(1000, 1500)

	p, err := s.bookings.ProcessPayment(ctx, bookingID, method, amount)
	if err != nil {
		return nil, err
	}

	monitoring.TrackPayment(string(p.Status))
	s.opts.Hub.BroadcastPaymentResult(bookingID, p)
	return p, nil
}

func (s *bookingServiceImpl) CancelBooking(ctx context.Context, bookingID string) (bool, error) {
	s.delay(200, 300)

	ok := s.bookings.Cancel(ctx, bookingID)
	monitoring.TrackBookingCancelled()
	s.opts.Hub.BroadcastBookingCancelled(bookingID)
	return ok, nil
}

func (s *bookingServiceImpl) GetPopularDestinations(ctx context.Context, limit int) ([]models.Airport, error) {
	s.delay(2500, 5000)

	airports := refdata.Airports()
	if limit <= 0 || limit > len(airports) {
		limit = len(airports)
	}
	return airports[:limit], nil
}

func (s *bookingServiceImpl) GetAirlines(ctx context.Context) ([]models.Airline, error) {
	s.delay(150, 250)
	return refdata.Airlines(), nil
}
