// Package refdata holds the static airport, airline and aircraft
// registries that seed catalog generation. The data is read-only; the
// accessors return copies so callers cannot mutate the registries.
package refdata

import "github.com/skyfare/flight-booking-backend/internal/models"

var airports = []models.Airport{
	{
		Code:        "JFK",
		Name:        "John F. Kennedy International Airport",
		City:        "New York",
		Country:     "United States",
		Timezone:    "America/New_York",
		Coordinates: models.Coordinates{Latitude: 40.6413, Longitude: -73.7781},
	},
	{
		Code:        "LAX",
		Name:        "Los Angeles International Airport",
		City:        "Los Angeles",
		Country:     "United States",
		Timezone:    "America/Los_Angeles",
		Coordinates: models.Coordinates{Latitude: 33.9416, Longitude: -118.4085},
	},
	{
		Code:        "LHR",
		Name:        "London Heathrow Airport",
		City:        "London",
		Country:     "United Kingdom",
		Timezone:    "Europe/London",
		Coordinates: models.Coordinates{Latitude: 51.47, Longitude: -0.4543},
	},
	{
		Code:        "CDG",
		Name:        "Charles de Gaulle Airport",
		City:        "Paris",
		Country:     "France",
		Timezone:    "Europe/Paris",
		Coordinates: models.Coordinates{Latitude: 49.0097, Longitude: 2.5479},
	},
	{
		Code:        "DXB",
		Name:        "Dubai International Airport",
		City:        "Dubai",
		Country:     "United Arab Emirates",
		Timezone:    "Asia/Dubai",
		Coordinates: models.Coordinates{Latitude: 25.2532, Longitude: 55.3657},
	},
	{
		Code:        "NRT",
		Name:        "Narita International Airport",
		City:        "Tokyo",
		Country:     "Japan",
		Timezone:    "Asia/Tokyo",
		Coordinates: models.Coordinates{Latitude: 35.7647, Longitude: 140.3864},
	},
}

var airlines = []models.Airline{
	{Code: "AA", Name: "American Airlines", Logo: "🛫", Rating: 4.2},
	{Code: "BA", Name: "British Airways", Logo: "✈️", Rating: 4.5},
	{Code: "EK", Name: "Emirates", Logo: "🦅", Rating: 4.8},
	{Code: "UA", Name: "United Airlines", Logo: "🌐", Rating: 4.1},
	{Code: "LH", Name: "Lufthansa", Logo: "🦅", Rating: 4.6},
	{Code: "AF", Name: "Air France", Logo: "🇫🇷", Rating: 4.4},
}

var aircraft = []models.Aircraft{
	{
		Model:        "Boeing 787-9",
		Manufacturer: "Boeing",
		Capacity:     296,
		Configuration: models.CabinConfiguration{
			Economy:        224,
			PremiumEconomy: 48,
			Business:       24,
			First:          0,
		},
	},
	{
		Model:        "Airbus A350-900",
		Manufacturer: "Airbus",
		Capacity:     325,
		Configuration: models.CabinConfiguration{
			Economy:        250,
			PremiumEconomy: 40,
			Business:       30,
			First:          5,
		},
	},
	{
		Model:        "Boeing 777-300ER",
		Manufacturer: "Boeing",
		Capacity:     396,
		Configuration: models.CabinConfiguration{
			Economy:        310,
			PremiumEconomy: 44,
			Business:       34,
			First:          8,
		},
	},
}

// Airports returns the airport registry
func Airports() []models.Airport {
	out := make([]models.Airport, len(airports))
	copy(out, airports)
	return out
}

// Airlines returns the airline registry
func Airlines() []models.Airline {
	out := make([]models.Airline, len(airlines))
	copy(out, airlines)
	return out
}

// AircraftTypes returns the aircraft registry
func AircraftTypes() []models.Aircraft {
	out := make([]models.Aircraft, len(aircraft))
	copy(out, aircraft)
	return out
}
