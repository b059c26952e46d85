// Package pricing holds the pure fare and routing math: great-circle
// distance, flight duration and demand-sensitive cabin pricing.
package pricing

import (
	"math"
	"time"

	"github.com/skyfare/flight-booking-backend/internal/rng"
)

const (
	earthRadiusKm = 6371

	// cruise speed assumed for duration estimates, km/h
	cruiseSpeedKmh = 800

	// fare base rate, currency units per km
	ratePerKm = 0.15
)

// Distance returns the great-circle distance in km between two
// coordinates using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// FlightDuration estimates the duration in minutes for a leg of the given
// distance: cruise time plus 30-45 minutes of taxi/takeoff/landing and a
// ±10 minute jitter. Not monotonic in distance because of the jitter.
func FlightDuration(distanceKm float64, r rng.Source) int {
	flightTime := distanceKm / cruiseSpeedKmh * 60
	groundTime := 30 + r.Float64()*15
	variation := (r.Float64() - 0.5) * 20
	return int(math.Round(flightTime + groundTime + variation))
}

// Price computes the economy base fare for a leg. Four multiplicative
// factors: distance at the base rate, a days-until-departure band, the
// airline's rating, and a random ±20% market swing. The market factor
// makes repeated calls for the same flight return different prices.
func Price(distanceKm float64, departure time.Time, airlineRating float64, now time.Time, r rng.Source) float64 {
	distancePrice := distanceKm * ratePerKm

	// First matching band wins: [0,3) [3,7) [7,14) [14,30) [30,∞)
	daysUntil := int(math.Floor(departure.Sub(now).Hours() / 24))
	dateMultiplier := 1.0
	switch {
	case daysUntil < 3:
		dateMultiplier = 2.5
	case daysUntil < 7:
		dateMultiplier = 1.8
	case daysUntil < 14:
		dateMultiplier = 1.4
	case daysUntil < 30:
		dateMultiplier = 1.1
	}

	airlineMultiplier := 0.7 + (airlineRating/5)*0.6
	marketMultiplier := 0.8 + r.Float64()*0.4

	return math.Round(distancePrice * dateMultiplier * airlineMultiplier * marketMultiplier)
}
