// Package store holds the process-wide catalog and booking state behind
// an explicitly constructed object, plus the persistence collaborator
// used to load and save it.
package store

import (
	"context"
	"sync"

	"github.com/skyfare/flight-booking-backend/internal/models"
)

// Snapshot is the explicit schema of persisted state. Load/save always
// move the whole snapshot; there is no per-record persistence.
type Snapshot struct {
	Flights  []models.Flight  `json:"flights"`
	Bookings []models.Booking `json:"bookings"`
}

// Persister is the external persistence collaborator. Load returning
// (nil, nil) means "no prior state" and triggers catalog regeneration;
// unreadable or schema-mismatched payloads are reported the same way
// rather than as errors. Save overwrites prior state wholesale.
type Persister interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// Store is the in-memory state: the ordered flight catalog and the
// booking table keyed by booking id. Constructed once at startup and
// injected into every component that needs it. Booking writes replace
// the whole record, so two concurrent updates to the same id resolve as
// last-writer-wins.
type Store struct {
	mu          sync.RWMutex
	flights     []models.Flight
	flightsByID map[string]models.Flight
	bookings    map[string]models.Booking
}

// New returns an empty Store
func New() *Store {
	return &Store{
		flightsByID: make(map[string]models.Flight),
		bookings:    make(map[string]models.Booking),
	}
}

// SetFlights replaces the catalog
func (s *Store) SetFlights(flights []models.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = make([]models.Flight, len(flights))
	copy(s.flights, flights)
	s.flightsByID = make(map[string]models.Flight, len(flights))
	for _, f := range flights {
		s.flightsByID[f.ID] = f
	}
}

// Flights returns the catalog in insertion order
func (s *Store) Flights() []models.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Flight, len(s.flights))
	copy(out, s.flights)
	return out
}

// Flight looks up a catalog entry by id
func (s *Store) Flight(id string) (models.Flight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.flightsByID[id]
	return f, ok
}

// PutBooking inserts or replaces a booking record
func (s *Store) PutBooking(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID] = b
}

// Booking looks up a booking by id
func (s *Store) Booking(id string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	return b, ok
}

// BookingByReference looks up a booking by its human-facing reference
// code. A linear scan, acceptable at this scale.
func (s *Store) BookingByReference(ref string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.BookingReference == ref {
			return b, true
		}
	}
	return models.Booking{}, false
}

// Bookings returns all booking records
func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b)
	}
	return out
}

// Snapshot captures the full state for persistence
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := &Snapshot{
		Flights:  make([]models.Flight, len(s.flights)),
		Bookings: make([]models.Booking, 0, len(s.bookings)),
	}
	copy(snap.Flights, s.flights)
	for _, b := range s.bookings {
		snap.Bookings = append(snap.Bookings, b)
	}
	return snap
}

// Restore replaces the full state from a snapshot
func (s *Store) Restore(snap *Snapshot) {
	s.SetFlights(snap.Flights)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = make(map[string]models.Booking, len(snap.Bookings))
	for _, b := range snap.Bookings {
		s.bookings[b.ID] = b
	}
}
