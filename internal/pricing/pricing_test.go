package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedSource always returns the same float, pinning every random factor
type fixedSource struct {
	f float64
}

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) Intn(n int) int   { return int(s.f*float64(n)) % n }

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][4]float64{
		{40.6413, -73.7781, 33.9416, -118.4085}, // JFK-LAX
		{51.47, -0.4543, 35.7647, 140.3864},     // LHR-NRT
		{25.2532, 55.3657, 49.0097, 2.5479},     // DXB-CDG
		{0, 0, 0, 180},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1], p[2], p[3])
		ba := Distance(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistance_KnownRoutes(t *testing.T) {
	// JFK to LAX is roughly 3980 km great-circle
	d := Distance(40.6413, -73.7781, 33.9416, -118.4085)
	assert.InDelta(t, 3980, d, 50)

	// Antipodal-ish sanity: half circumference is ~20015 km
	d = Distance(0, 0, 0, 180)
	assert.InDelta(t, 20015, d, 10)

	assert.Zero(t, Distance(51.47, -0.4543, 51.47, -0.4543))
}

func TestFlightDuration(t *testing.T) {
	// Pinned randomness: ground time 37.5 min, zero jitter
	r := fixedSource{f: 0.5}

	// 800 km at 800 km/h cruise: 60 min + 37.5 ground
	assert.Equal(t, 98, FlightDuration(800, r))

	// Zero distance still carries ground time
	assert.Equal(t, 38, FlightDuration(0, r))
}

func TestFlightDuration_Bounds(t *testing.T) {
	for _, f := range []float64{0, 0.25, 0.5, 0.75, 0.999} {
		d := FlightDuration(1600, fixedSource{f: f})
		// 120 min cruise + [30,45) ground + ±10 jitter
		assert.GreaterOrEqual(t, d, 140)
		assert.Less(t, d, 176)
	}
}

func TestPrice_DateBands(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := fixedSource{f: 0.5} // market multiplier pinned to 1.0

	price := func(days int) float64 {
		return Price(2000, now.AddDate(0, 0, days), 4.0, now, r)
	}

	// First matching band wins: closer departures always cost more
	assert.Greater(t, price(1), price(5))
	assert.Greater(t, price(5), price(10))
	assert.Greater(t, price(10), price(20))
	assert.Greater(t, price(20), price(45))

	// Beyond 30 days the band multiplier is neutral
	assert.Equal(t, price(45), price(90))

	// 2000 km * 0.15 * 2.5 * (0.7 + 4/5*0.6) * 1.0
	assert.InDelta(t, 885, price(1), 1)
}

func TestPrice_AirlineMultiplier(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	departure := now.AddDate(0, 0, 60)
	r := fixedSource{f: 0.5}

	budget := Price(2000, departure, 0, now, r)
	premium := Price(2000, departure, 5, now, r)

	// rating 0 → ×0.7, rating 5 → ×1.3
	assert.Greater(t, premium, budget)
	assert.InDelta(t, 210, budget, 1)
	assert.InDelta(t, 390, premium, 1)
}

func TestPrice_MarketSwingBounds(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	departure := now.AddDate(0, 0, 60)

	base := 2000 * 0.15 * 1.0 * (0.7 + 4.5/5*0.6)
	for _, f := range []float64{0, 0.3, 0.7, 0.999} {
		p := Price(2000, departure, 4.5, now, fixedSource{f: f})
		assert.GreaterOrEqual(t, p, base*0.8-1)
		assert.LessOrEqual(t, p, base*1.2+1)
	}
}
