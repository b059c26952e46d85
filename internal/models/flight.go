package models

import "time"

// CabinClass is a service tier with its own pricing and seat pool
type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium-economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

// CabinClasses returns all cabin classes in fare order
func CabinClasses() []CabinClass {
	return []CabinClass{CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst}
}

// Valid reports whether c is a known cabin class
func (c CabinClass) Valid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	}
	return false
}

// FlightStatus represents the lifecycle status of a flight segment
type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "scheduled"
	FlightStatusBoarding  FlightStatus = "boarding"
	FlightStatusDeparted  FlightStatus = "departed"
	FlightStatusInFlight  FlightStatus = "in-flight"
	FlightStatusLanded    FlightStatus = "landed"
	FlightStatusDelayed   FlightStatus = "delayed"
	FlightStatusCancelled FlightStatus = "cancelled"
)

// Coordinates is a geographic position in decimal degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Airport is an immutable reference entity identified by its IATA code
type Airport struct {
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Timezone    string      `json:"timezone"`
	Coordinates Coordinates `json:"coordinates"`
}

// Airline is an immutable reference entity identified by its IATA code
type Airline struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Logo   string  `json:"logo"`
	Rating float64 `json:"rating"`
}

// CabinConfiguration holds per-cabin seat counts for an aircraft type
type CabinConfiguration struct {
	Economy        int `json:"economy"`
	PremiumEconomy int `json:"premiumEconomy"`
	Business       int `json:"business"`
	First          int `json:"first"`
}

// Seats returns the configured seat count for a cabin class
func (c CabinConfiguration) Seats(class CabinClass) int {
	switch class {
	case CabinEconomy:
		return c.Economy
	case CabinPremiumEconomy:
		return c.PremiumEconomy
	case CabinBusiness:
		return c.Business
	case CabinFirst:
		return c.First
	}
	return 0
}

// Aircraft is an immutable reference entity describing an equipment type
type Aircraft struct {
	Model         string             `json:"model"`
	Manufacturer  string             `json:"manufacturer"`
	Capacity      int                `json:"capacity"`
	Configuration CabinConfiguration `json:"configuration"`
}

// Endpoint is one end of a flight segment
type Endpoint struct {
	Airport  Airport   `json:"airport"`
	DateTime time.Time `json:"dateTime"`
	Terminal string    `json:"terminal,omitempty"`
	Gate     string    `json:"gate,omitempty"`
}

// FlightSegment is one scheduled flight leg between two airports.
// AvailableSeats counts are generated with a random deficit and are not
// clamped at zero, so a cabin can report negative availability.
type FlightSegment struct {
	ID             string             `json:"id"`
	FlightNumber   string             `json:"flightNumber"`
	Airline        Airline            `json:"airline"`
	Aircraft       Aircraft           `json:"aircraft"`
	Departure      Endpoint           `json:"departure"`
	Arrival        Endpoint           `json:"arrival"`
	Duration       int                `json:"duration"` // minutes
	Status         FlightStatus       `json:"status"`
	AvailableSeats map[CabinClass]int `json:"availableSeats"`
	Amenities      []string           `json:"amenities"`
}

// Allowance is a weight/piece baggage limit
type Allowance struct {
	Weight int `json:"weight"` // kg
	Pieces int `json:"pieces"`
}

// BaggageAllowance holds cabin and checked baggage limits
type BaggageAllowance struct {
	Cabin   Allowance `json:"cabin"`
	Checked Allowance `json:"checked"`
}

// Flight is a bookable itinerary of one or more segments. The generator
// only ever produces single-segment flights.
type Flight struct {
	ID               string                 `json:"id"`
	Segments         []FlightSegment        `json:"segments"`
	TotalDuration    int                    `json:"totalDuration"` // minutes
	Stops            int                    `json:"stops"`
	Prices           map[CabinClass]float64 `json:"prices"`
	BaggageAllowance BaggageAllowance       `json:"baggageAllowance"`
	Refundable       bool                   `json:"refundable"`
	Changeable       bool                   `json:"changeable"`
}
