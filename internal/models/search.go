package models

// PassengerCounts is the traveler breakdown of a search request
type PassengerCounts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// SearchParams describes a flight search request. Origin, destination and
// cabin class are required; the rest narrow the result set.
type SearchParams struct {
	Origin            string          `json:"origin"`
	Destination       string          `json:"destination"`
	DepartureDate     string          `json:"departureDate,omitempty"` // YYYY-MM-DD
	ReturnDate        string          `json:"returnDate,omitempty"`
	Passengers        PassengerCounts `json:"passengers"`
	CabinClass        CabinClass      `json:"cabinClass"`
	DirectOnly        bool            `json:"directOnly,omitempty"`
	MaxStops          *int            `json:"maxStops,omitempty"`
	PreferredAirlines []string        `json:"preferredAirlines,omitempty"`
}
