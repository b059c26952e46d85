// Package booking owns the booking lifecycle: creation, lookup, partial
// update, payment and cancellation.
//
// State machine: bookings start pending; a successful payment moves them
// to confirmed; cancel moves any booking to cancelled unconditionally.
// The completed state exists in the model but is only reachable through
// an external update call. Creating a booking never decrements catalog
// seat availability, so the same flight stays bookable indefinitely; this
// matches the original behavior and is deliberate.
package booking

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skyfare/flight-booking-backend/internal/models"
	"github.com/skyfare/flight-booking-backend/internal/rng"
	"github.com/skyfare/flight-booking-backend/internal/store"
)

// ErrBookingNotFound is returned by ProcessPayment for an unknown booking
// id. Payment is the only operation that treats a missing booking as a
// hard error; lookups and updates report absence with a nil result.
var ErrBookingNotFound = errors.New("booking not found")

const (
	defaultCurrency = "USD"

	// probability a simulated payment attempt succeeds
	paymentSuccessRate = 0.9

	referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Manager is the booking lifecycle manager. Every mutating operation
// persists the full store afterward; persistence failures are logged and
// swallowed, leaving the in-memory state authoritative.
type Manager struct {
	store     *store.Store
	persister store.Persister
	rand      rng.Source
	now       func() time.Time
}

// NewManager creates a Manager over the given store and persister
func NewManager(st *store.Store, p store.Persister, r rng.Source) *Manager {
	return &Manager{
		store:     st,
		persister: p,
		rand:      r,
		now:       time.Now,
	}
}

// WithClock overrides the manager's clock, for deterministic timestamps
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Create opens a new pending booking for the given flight. The total is
// the flight's cabin fare times the passenger count; no seats are
// assigned at creation time.
func (m *Manager) Create(ctx context.Context, flight models.Flight, passengers []models.Passenger, cabin models.CabinClass, contact models.ContactInfo) *models.Booking {
	now := m.now()
	b := models.Booking{
		ID:               uuid.New().String(),
		BookingReference: "BK" + m.token(8),
		Flight:           flight,
		Passengers:       passengers,
		SeatAssignments:  make(map[string][]models.Seat),
		TotalPrice:       flight.Prices[cabin] * float64(len(passengers)),
		Currency:         defaultCurrency,
		Status:           models.BookingPending,
		CreatedAt:        now,
		UpdatedAt:        now,
		ContactInfo:      contact,
		AddOns:           models.AddOns{},
	}

	m.store.PutBooking(b)
	m.persist(ctx)
	return &b
}

// Get returns the booking with the given id, or nil if unknown
func (m *Manager) Get(ctx context.Context, id string) *models.Booking {
	b, ok := m.store.Booking(id)
	if !ok {
		return nil
	}
	return &b
}

// GetByReference returns the booking with the given reference code, or
// nil if unknown
func (m *Manager) GetByReference(ctx context.Context, ref string) *models.Booking {
	b, ok := m.store.BookingByReference(ref)
	if !ok {
		return nil
	}
	return &b
}

// Update applies the set fields of the update to the booking and
// refreshes its UpdatedAt. An unknown id yields nil, not an error.
func (m *Manager) Update(ctx context.Context, id string, update models.BookingUpdate) *models.Booking {
	b, ok := m.store.Booking(id)
	if !ok {
		return nil
	}

	if update.Status != nil {
		b.Status = *update.Status
	}
	if update.Payment != nil {
		b.Payment = update.Payment
	}
	if update.Passengers != nil {
		b.Passengers = update.Passengers
	}
	if update.SeatAssignments != nil {
		b.SeatAssignments = update.SeatAssignments
	}
	if update.ContactInfo != nil {
		b.ContactInfo = *update.ContactInfo
	}
	if update.AddOns != nil {
		b.AddOns = *update.AddOns
	}
	b.UpdatedAt = m.now()

	m.store.PutBooking(b)
	m.persist(ctx)
	return &b
}

// ProcessPayment runs one simulated payment attempt against the booking.
// On success the payment is attached and the booking moves to confirmed;
// on failure the payment record is still returned (status failed) and the
// booking is left untouched in pending. Attempts are never retried here.
func (m *Manager) ProcessPayment(ctx context.Context, id string, method models.PaymentMethod, amount float64) (*models.Payment, error) {
	b, ok := m.store.Booking(id)
	if !ok {
		return nil, ErrBookingNotFound
	}

	status := models.PaymentFailed
	if m.rand.Float64() < paymentSuccessRate {
		status = models.PaymentCompleted
	}

	payment := &models.Payment{
		ID:            uuid.New().String(),
		Method:        method,
		Amount:        amount,
		Currency:      b.Currency,
		Status:        status,
		Timestamp:     m.now(),
		TransactionID: "TXN-" + m.token(12),
	}

	if status == models.PaymentCompleted {
		confirmed := models.BookingConfirmed
		m.Update(ctx, id, models.BookingUpdate{
			Status:  &confirmed,
			Payment: payment,
		})
	}

	return payment, nil
}

// Cancel moves the booking to cancelled, whatever state it is in.
// Idempotent: cancelling an unknown or already-cancelled booking still
// reports success. There is no cancellation window or refund logic.
func (m *Manager) Cancel(ctx context.Context, id string) bool {
	if _, ok := m.store.Booking(id); !ok {
		return true
	}

	cancelled := models.BookingCancelled
	m.Update(ctx, id, models.BookingUpdate{Status: &cancelled})
	return true
}

func (m *Manager) token(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(referenceAlphabet[m.rand.Intn(len(referenceAlphabet))])
	}
	return sb.String()
}

// persist saves the whole store. Failures degrade to in-memory-only
// durability and are logged, never propagated.
func (m *Manager) persist(ctx context.Context) {
	if m.persister == nil {
		return
	}
	if err := m.persister.Save(ctx, m.store.Snapshot()); err != nil {
		log.Printf("booking: failed to persist store: %v", err)
	}
}
