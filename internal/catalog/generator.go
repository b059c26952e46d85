// Package catalog synthesizes the flight catalog from the reference
// registries. Generation is deterministic in shape (route pairing,
// schedule slots, id sequence) and randomized in value (durations,
// availability deficits, prices), driven by an injected rng.Source.
package catalog

import (
	"fmt"
	"math"
	"time"

	"github.com/skyfare/flight-booking-backend/internal/models"
	"github.com/skyfare/flight-booking-backend/internal/pricing"
	"github.com/skyfare/flight-booking-backend/internal/refdata"
	"github.com/skyfare/flight-booking-backend/internal/rng"
)

var amenities = []string{"WiFi", "Power Outlets", "Entertainment System", "Meal Service"}

// Generator builds synthetic flights from reference data
type Generator struct {
	airports []models.Airport
	airlines []models.Airline
	aircraft []models.Aircraft
	rand     rng.Source
	now      func() time.Time
}

// NewGenerator returns a Generator over the standard reference registries
func NewGenerator(r rng.Source) *Generator {
	return &Generator{
		airports: refdata.Airports(),
		airlines: refdata.Airlines(),
		aircraft: refdata.AircraftTypes(),
		rand:     r,
		now:      time.Now,
	}
}

// WithClock overrides the generator's clock, for reproducible schedules
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate produces count flights. Routes cycle through the airport
// registry pairwise, so consecutive indices share airports and the same
// route repeats every len(airports) flights.
func (g *Generator) Generate(count int) []models.Flight {
	flights := make([]models.Flight, 0, count)
	for i := 0; i < count; i++ {
		flights = append(flights, g.flight(i))
	}
	return flights
}

func (g *Generator) flight(index int) models.Flight {
	origin := g.airports[index%len(g.airports)]
	destination := g.airports[(index+1)%len(g.airports)]
	airline := g.airlines[index%len(g.airlines)]
	aircraft := g.aircraft[index%len(g.aircraft)]

	distance := pricing.Distance(
		origin.Coordinates.Latitude, origin.Coordinates.Longitude,
		destination.Coordinates.Latitude, destination.Coordinates.Longitude,
	)

	now := g.now()
	departure := time.Date(now.Year(), now.Month(), now.Day(),
		8+(index%15), 0, 0, 0, now.Location()).AddDate(0, 0, index/3)

	duration := pricing.FlightDuration(distance, g.rand)
	arrival := departure.Add(time.Duration(duration) * time.Minute)

	cfg := aircraft.Configuration
	segment := models.FlightSegment{
		ID:           fmt.Sprintf("SEG-%d", index),
		FlightNumber: fmt.Sprintf("%s%d", airline.Code, 1000+index),
		Airline:      airline,
		Aircraft:     aircraft,
		Departure: models.Endpoint{
			Airport:  origin,
			DateTime: departure,
			Terminal: g.terminal(),
			Gate:     g.gate(),
		},
		Arrival: models.Endpoint{
			Airport:  destination,
			DateTime: arrival,
			Terminal: g.terminal(),
			Gate:     g.gate(),
		},
		Duration: duration,
		Status:   models.FlightStatusScheduled,
		// Deficits are deliberately not clamped at zero: a cabin with no
		// capacity (or heavy demand) reports non-positive availability.
		AvailableSeats: map[models.CabinClass]int{
			models.CabinEconomy:        cfg.Economy - g.rand.Intn(50),
			models.CabinPremiumEconomy: cfg.PremiumEconomy - g.rand.Intn(10),
			models.CabinBusiness:       cfg.Business - g.rand.Intn(5),
			models.CabinFirst:          cfg.First - g.rand.Intn(2),
		},
		Amenities: amenities,
	}

	basePrice := pricing.Price(distance, departure, airline.Rating, now, g.rand)

	return models.Flight{
		ID:            fmt.Sprintf("FLT-%d", index),
		Segments:      []models.FlightSegment{segment},
		TotalDuration: duration,
		Stops:         0,
		Prices: map[models.CabinClass]float64{
			models.CabinEconomy:        roundPrice(basePrice),
			models.CabinPremiumEconomy: roundPrice(basePrice * 1.5),
			models.CabinBusiness:       roundPrice(basePrice * 3),
			models.CabinFirst:          roundPrice(basePrice * 5),
		},
		BaggageAllowance: models.BaggageAllowance{
			Cabin:   models.Allowance{Weight: 10, Pieces: 1},
			Checked: models.Allowance{Weight: 23, Pieces: 2},
		},
		Refundable: g.rand.Float64() > 0.5,
		Changeable: true,
	}
}

func (g *Generator) terminal() string {
	return fmt.Sprintf("%d", g.rand.Intn(5)+1)
}

func (g *Generator) gate() string {
	return fmt.Sprintf("%c%d", 'A'+rune(g.rand.Intn(10)), g.rand.Intn(20)+1)
}

func roundPrice(p float64) float64 {
	return math.Round(p)
}
