// Package search filters the flight catalog. Filtering is pure and
// preserves catalog insertion order; the simulated lookup latency lives
// in the service layer, not here.
package search

import (
	"strings"
	"time"

	"github.com/skyfare/flight-booking-backend/internal/models"
)

// Criteria is the set of predicates applied to each catalog entry.
// Route matching is case-insensitive and looks at the first segment only,
// so multi-segment itineraries would not be matched correctly.
type Criteria struct {
	Origin        string
	Destination   string
	DepartureDate string // YYYY-MM-DD prefix of the departure timestamp
	CabinClass    models.CabinClass
	DirectOnly    bool
}

// FromParams derives filter criteria from a search request
func FromParams(p models.SearchParams) Criteria {
	return Criteria{
		Origin:        p.Origin,
		Destination:   p.Destination,
		DepartureDate: p.DepartureDate,
		CabinClass:    p.CabinClass,
		DirectOnly:    p.DirectOnly,
	}
}

// Filter returns the flights passing every predicate, in input order
func Filter(flights []models.Flight, c Criteria) []models.Flight {
	matched := make([]models.Flight, 0)
	for _, f := range flights {
		if matches(f, c) {
			matched = append(matched, f)
		}
	}
	return matched
}

func matches(f models.Flight, c Criteria) bool {
	if len(f.Segments) == 0 {
		return false
	}
	segment := f.Segments[0]

	if !strings.EqualFold(segment.Departure.Airport.Code, c.Origin) ||
		!strings.EqualFold(segment.Arrival.Airport.Code, c.Destination) {
		return false
	}

	if c.DepartureDate != "" &&
		!strings.HasPrefix(segment.Departure.DateTime.Format(time.RFC3339), c.DepartureDate) {
		return false
	}

	if segment.AvailableSeats[c.CabinClass] <= 0 {
		return false
	}

	if c.DirectOnly && f.Stops != 0 {
		return false
	}

	return true
}
