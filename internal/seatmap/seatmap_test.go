package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyfare/flight-booking-backend/internal/models"
	"github.com/skyfare/flight-booking-backend/internal/rng"
)

type fixedSource struct {
	f float64
}

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) Intn(n int) int   { return int(s.f*float64(n)) % n }

func TestGenerate_SeatCounts(t *testing.T) {
	r := rng.New(1)

	assert.Len(t, Generate("SEG-0", models.CabinEconomy, r), 180)
	assert.Len(t, Generate("SEG-0", models.CabinBusiness, r), 48)
	assert.Len(t, Generate("SEG-0", models.CabinPremiumEconomy, r), 24)
	assert.Len(t, Generate("SEG-0", models.CabinFirst, r), 24)
}

func TestGenerate_SeatAttributes(t *testing.T) {
	seats := Generate("SEG-3", models.CabinBusiness, rng.New(1))
	require.Len(t, seats, 48)

	for _, s := range seats {
		assert.Equal(t, models.CabinBusiness, s.Class)
		assert.GreaterOrEqual(t, s.Row, 1)
		assert.LessOrEqual(t, s.Row, 8)

		switch s.Column {
		case "A", "F":
			assert.Equal(t, models.SeatWindow, s.Type)
			assert.Equal(t, []string{"Extra legroom"}, s.Features)
			assert.Equal(t, 25.0, s.Price)
		case "C", "D":
			assert.Equal(t, models.SeatAisle, s.Type)
			assert.Empty(t, s.Features)
			assert.Equal(t, 25.0, s.Price)
		case "B", "E":
			assert.Equal(t, models.SeatMiddle, s.Type)
			assert.Empty(t, s.Features)
			assert.Equal(t, 15.0, s.Price)
		default:
			t.Fatalf("unexpected column %q", s.Column)
		}
	}

	// Ids embed segment, row and column
	assert.Equal(t, "SEG-3-1A", seats[0].ID)
	assert.Equal(t, "SEG-3-8F", seats[47].ID)
}

func TestGenerate_AvailabilityIsRandomPerSeat(t *testing.T) {
	// Draw below the availability threshold: every seat shows available
	seats := Generate("SEG-0", models.CabinFirst, fixedSource{f: 0.5})
	for _, s := range seats {
		assert.True(t, s.Available)
	}

	// Draw above it: every seat shows taken
	seats = Generate("SEG-0", models.CabinFirst, fixedSource{f: 0.9})
	for _, s := range seats {
		assert.False(t, s.Available)
	}
}

func TestGenerate_RegeneratedEachCall(t *testing.T) {
	// Same source, consecutive calls: maps are independent draws, so at
	// least one of 180 seats should differ
	r := rng.New(99)
	a := Generate("SEG-0", models.CabinEconomy, r)
	b := Generate("SEG-0", models.CabinEconomy, r)

	different := false
	for i := range a {
		if a[i].Available != b[i].Available {
			different = true
			break
		}
	}
	assert.True(t, different)
}
