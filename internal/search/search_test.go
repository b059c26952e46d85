package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfare/flight-booking-backend/internal/models"
)

func makeFlight(id, origin, destination string, departure time.Time, economySeats, stops int) models.Flight {
	return models.Flight{
		ID:    id,
		Stops: stops,
		Segments: []models.FlightSegment{{
			ID:        "seg-" + id,
			Departure: models.Endpoint{Airport: models.Airport{Code: origin}, DateTime: departure},
			Arrival:   models.Endpoint{Airport: models.Airport{Code: destination}, DateTime: departure.Add(6 * time.Hour)},
			AvailableSeats: map[models.CabinClass]int{
				models.CabinEconomy:  economySeats,
				models.CabinBusiness: 5,
			},
		}},
	}
}

func fixtures() []models.Flight {
	day1 := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)

	return []models.Flight{
		makeFlight("f1", "JFK", "LAX", day1, 12, 0),
		makeFlight("f2", "JFK", "LAX", day2, 3, 0),
		makeFlight("f3", "JFK", "LAX", day1, 0, 0),  // sold out in economy
		makeFlight("f4", "JFK", "LHR", day1, 20, 0), // different route
		makeFlight("f5", "JFK", "LAX", day1, 8, 1),  // one stop
	}
}

func ids(flights []models.Flight) []string {
	out := make([]string, 0, len(flights))
	for _, f := range flights {
		out = append(out, f.ID)
	}
	return out
}

func TestFilter_Route(t *testing.T) {
	got := Filter(fixtures(), Criteria{
		Origin:      "JFK",
		Destination: "LAX",
		CabinClass:  models.CabinEconomy,
	})
	assert.Equal(t, []string{"f1", "f2", "f5"}, ids(got))
}

func TestFilter_RouteIsCaseInsensitive(t *testing.T) {
	got := Filter(fixtures(), Criteria{
		Origin:      "jfk",
		Destination: "lax",
		CabinClass:  models.CabinEconomy,
	})
	assert.Equal(t, []string{"f1", "f2", "f5"}, ids(got))
}

func TestFilter_DepartureDatePrefix(t *testing.T) {
	got := Filter(fixtures(), Criteria{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2026-09-02",
		CabinClass:    models.CabinEconomy,
	})
	assert.Equal(t, []string{"f2"}, ids(got))
}

func TestFilter_CabinAvailability(t *testing.T) {
	// f3 sells zero economy seats but still has business availability
	got := Filter(fixtures(), Criteria{
		Origin:      "JFK",
		Destination: "LAX",
		CabinClass:  models.CabinBusiness,
	})
	assert.Contains(t, ids(got), "f3")

	got = Filter(fixtures(), Criteria{
		Origin:      "JFK",
		Destination: "LAX",
		CabinClass:  models.CabinEconomy,
	})
	assert.NotContains(t, ids(got), "f3")
}

func TestFilter_NegativeAvailabilityExcluded(t *testing.T) {
	day := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	flights := []models.Flight{makeFlight("f1", "JFK", "LAX", day, -4, 0)}

	got := Filter(flights, Criteria{
		Origin:      "JFK",
		Destination: "LAX",
		CabinClass:  models.CabinEconomy,
	})
	assert.Empty(t, got)
}

func TestFilter_DirectOnly(t *testing.T) {
	got := Filter(fixtures(), Criteria{
		Origin:      "JFK",
		Destination: "LAX",
		CabinClass:  models.CabinEconomy,
		DirectOnly:  true,
	})

	require.NotEmpty(t, got)
	for _, f := range got {
		assert.Zero(t, f.Stops)
	}
	assert.NotContains(t, ids(got), "f5")
}

func TestFilter_PreservesInsertionOrder(t *testing.T) {
	got := Filter(fixtures(), Criteria{
		Origin:      "JFK",
		Destination: "LAX",
		CabinClass:  models.CabinEconomy,
	})
	assert.Equal(t, []string{"f1", "f2", "f5"}, ids(got))
}

func TestFilter_EmptySegmentsSkipped(t *testing.T) {
	got := Filter([]models.Flight{{ID: "broken"}}, Criteria{
		Origin:      "JFK",
		Destination: "LAX",
		CabinClass:  models.CabinEconomy,
	})
	assert.Empty(t, got)
}
