package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfare/flight-booking-backend/internal/booking"
	"github.com/skyfare/flight-booking-backend/internal/catalog"
	"github.com/skyfare/flight-booking-backend/internal/models"
	"github.com/skyfare/flight-booking-backend/internal/refdata"
	"github.com/skyfare/flight-booking-backend/internal/rng"
	"github.com/skyfare/flight-booking-backend/internal/store"
)

// fixedSource keeps booking and payment outcomes deterministic
type fixedSource struct {
	f float64
}

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) Intn(n int) int   { return int(s.f*float64(n)) % n }

// newService seeds a store with a generated catalog and stands up the
// full service with latency simulation off
func newService(t *testing.T) (BookingService, *store.Store) {
	t.Helper()

	st := store.New()
	st.SetFlights(catalog.NewGenerator(rng.New(42)).Generate(30))

	mgr := booking.NewManager(st, nil, fixedSource{f: 0.5})
	svc := NewBookingService(st, mgr, fixedSource{f: 0.5}, Options{})
	return svc, st
}

func passengers(n int) []models.Passenger {
	out := make([]models.Passenger, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Passenger{
			ID:        string(rune('A' + i)),
			Type:      models.PassengerAdult,
			FirstName: "Pat",
			LastName:  "Smith",
		})
	}
	return out
}

func TestSearchFlights_FiltersByRouteAndAvailability(t *testing.T) {
	svc, st := newService(t)

	results, err := svc.SearchFlights(context.Background(), models.SearchParams{
		Origin:      "jfk",
		Destination: "lax",
		CabinClass:  models.CabinEconomy,
		Passengers:  models.PassengerCounts{Adults: 1},
	})
	require.NoError(t, err)

	// Airport pairing is cyclic, so the JFK-LAX slots are every sixth flight
	want := 0
	for _, f := range st.Flights() {
		if f.Segments[0].Departure.Airport.Code == "JFK" &&
			f.Segments[0].Arrival.Airport.Code == "LAX" &&
			f.Segments[0].AvailableSeats[models.CabinEconomy] > 0 {
			want++
		}
	}
	require.Positive(t, want)
	assert.Len(t, results, want)

	for _, f := range results {
		assert.Equal(t, "JFK", f.Segments[0].Departure.Airport.Code)
		assert.Equal(t, "LAX", f.Segments[0].Arrival.Airport.Code)
		assert.Positive(t, f.Segments[0].AvailableSeats[models.CabinEconomy])
	}
}

func TestSearchFlights_NoMatches(t *testing.T) {
	svc, _ := newService(t)

	results, err := svc.SearchFlights(context.Background(), models.SearchParams{
		Origin:      "JFK",
		Destination: "NRT", // pairing never produces this route
		CabinClass:  models.CabinEconomy,
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGetFlightDetails(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	f, err := svc.GetFlightDetails(ctx, "FLT-5")
	require.NoError(t, err)
	require.NotNil(t, f)

	want, ok := st.Flight("FLT-5")
	require.True(t, ok)
	assert.Equal(t, want.Segments[0].FlightNumber, f.Segments[0].FlightNumber)

	missing, err := svc.GetFlightDetails(ctx, "FLT-9999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetAvailableSeats(t *testing.T) {
	svc, _ := newService(t)

	seats, err := svc.GetAvailableSeats(context.Background(), "SEG-0", models.CabinEconomy)
	require.NoError(t, err)
	assert.Len(t, seats, 180)
	for _, s := range seats {
		assert.Equal(t, models.CabinEconomy, s.Class)
		assert.True(t, strings.HasPrefix(s.ID, "SEG-0-"))
	}
}

func TestBookingLifecycle(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	flight, ok := st.Flight("FLT-0")
	require.True(t, ok)

	b, err := svc.CreateBooking(ctx, flight, passengers(2), models.CabinEconomy,
		models.ContactInfo{Email: "pat@example.com", Phone: "+15550100"})
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, flight.Prices[models.CabinEconomy]*2, b.TotalPrice)

	// Lookup by id and by reference agree
	byID, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	byRef, err := svc.GetBookingByReference(ctx, b.BookingReference)
	require.NoError(t, err)
	require.NotNil(t, byRef)
	assert.Equal(t, byID.ID, byRef.ID)

	payment, err := svc.ProcessPayment(ctx, b.ID, models.PaymentCreditCard, b.TotalPrice)
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, models.PaymentCompleted, payment.Status)

	confirmed, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, confirmed)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.Payment)
	assert.Equal(t, payment.TransactionID, confirmed.Payment.TransactionID)

	cancelled, err := svc.CancelBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, cancelled)

	after, err := svc.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, models.BookingCancelled, after.Status)
}

func TestBookingDoesNotConsumeSeats(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	flight, ok := st.Flight("FLT-0")
	require.True(t, ok)
	before := flight.Segments[0].AvailableSeats[models.CabinEconomy]

	_, err := svc.CreateBooking(ctx, flight, passengers(3), models.CabinEconomy, models.ContactInfo{})
	require.NoError(t, err)

	refetched, ok := st.Flight("FLT-0")
	require.True(t, ok)
	assert.Equal(t, before, refetched.Segments[0].AvailableSeats[models.CabinEconomy])
}

func TestUpdateBooking(t *testing.T) {
	svc, st := newService(t)
	ctx := context.Background()

	flight, _ := st.Flight("FLT-0")
	b, err := svc.CreateBooking(ctx, flight, passengers(1), models.CabinEconomy, models.ContactInfo{})
	require.NoError(t, err)

	completed := models.BookingCompleted
	updated, err := svc.UpdateBooking(ctx, b.ID, models.BookingUpdate{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.BookingCompleted, updated.Status)

	missing, err := svc.UpdateBooking(ctx, "missing", models.BookingUpdate{Status: &completed})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProcessPayment_UnknownBooking(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.ProcessPayment(context.Background(), "missing", models.PaymentCreditCard, 100)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestGetPopularDestinations(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	all := refdata.Airports()

	top, err := svc.GetPopularDestinations(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, all[:3], top)

	// A limit past the registry size falls back to everything
	everything, err := svc.GetPopularDestinations(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, all, everything)

	defaulted, err := svc.GetPopularDestinations(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, all, defaulted)
}

func TestGetAirlines(t *testing.T) {
	svc, _ := newService(t)

	airlines, err := svc.GetAirlines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, refdata.Airlines(), airlines)

	codes := make([]string, 0, len(airlines))
	for _, a := range airlines {
		codes = append(codes, a.Code)
	}
	assert.Contains(t, codes, "AA")
	assert.Contains(t, codes, "EK")
}
