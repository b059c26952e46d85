// Package seatmap generates seat maps on demand. Maps are a display
// simulation only: availability is an independent random draw per seat,
// regenerated on every call, and nothing is ever held or reserved against
// them.
package seatmap

import (
	"fmt"

	"github.com/skyfare/flight-booking-backend/internal/models"
	"github.com/skyfare/flight-booking-backend/internal/rng"
)

var columns = []string{"A", "B", "C", "D", "E", "F"}

const (
	windowAisleSurcharge = 25
	middleSurcharge      = 15

	// probability a generated seat shows as available
	availabilityRate = 0.7
)

// Generate builds the seat map for one segment and cabin class
func Generate(segmentID string, cabin models.CabinClass, r rng.Source) []models.Seat {
	rows := rowsFor(cabin)
	seats := make([]models.Seat, 0, rows*len(columns))

	for row := 1; row <= rows; row++ {
		for _, col := range columns {
			seatType := typeFor(col)

			var features []string
			price := float64(middleSurcharge)
			if seatType == models.SeatWindow {
				features = []string{"Extra legroom"}
			}
			if seatType == models.SeatWindow || seatType == models.SeatAisle {
				price = windowAisleSurcharge
			}

			seats = append(seats, models.Seat{
				ID:        fmt.Sprintf("%s-%d%s", segmentID, row, col),
				Row:       row,
				Column:    col,
				Class:     cabin,
				Type:      seatType,
				Features:  features,
				Available: r.Float64() < availabilityRate,
				Price:     price,
			})
		}
	}

	return seats
}

func rowsFor(cabin models.CabinClass) int {
	switch cabin {
	case models.CabinEconomy:
		return 30
	case models.CabinBusiness:
		return 8
	default:
		return 4
	}
}

func typeFor(column string) models.SeatType {
	switch column {
	case "A", "F":
		return models.SeatWindow
	case "C", "D":
		return models.SeatAisle
	default:
		return models.SeatMiddle
	}
}
