package models

import "time"

// PassengerType classifies a traveler for fare purposes
type PassengerType string

const (
	PassengerAdult  PassengerType = "adult"
	PassengerChild  PassengerType = "child"
	PassengerInfant PassengerType = "infant"
)

// Passenger holds traveler identity and travel-document data. Passengers
// are supplied by the caller at booking time, never generated.
type Passenger struct {
	ID                  string        `json:"id"`
	Type                PassengerType `json:"type"`
	Title               string        `json:"title"`
	FirstName           string        `json:"firstName"`
	LastName            string        `json:"lastName"`
	DateOfBirth         string        `json:"dateOfBirth"`
	Nationality         string        `json:"nationality"`
	PassportNumber      string        `json:"passportNumber,omitempty"`
	PassportExpiry      string        `json:"passportExpiry,omitempty"`
	Email               string        `json:"email,omitempty"`
	Phone               string        `json:"phone,omitempty"`
	FrequentFlyerNumber string        `json:"frequentFlyerNumber,omitempty"`
	SpecialRequests     []string      `json:"specialRequests,omitempty"`
}

// SeatType is the physical position of a seat, derived from its column
type SeatType string

const (
	SeatWindow SeatType = "window"
	SeatMiddle SeatType = "middle"
	SeatAisle  SeatType = "aisle"
)

// Seat is a single position in a generated seat map. Seat maps are a
// display simulation: availability is randomized per request and nothing
// is ever reserved.
type Seat struct {
	ID        string     `json:"id"`
	Row       int        `json:"row"`
	Column    string     `json:"column"`
	Class     CabinClass `json:"class"`
	Type      SeatType   `json:"type"`
	Features  []string   `json:"features"`
	Available bool       `json:"available"`
	Price     float64    `json:"price"` // surcharge, not fare
}

// PaymentMethod is the instrument used to pay for a booking
type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit-card"
	PaymentDebitCard    PaymentMethod = "debit-card"
	PaymentPayPal       PaymentMethod = "paypal"
	PaymentBankTransfer PaymentMethod = "bank-transfer"
)

// PaymentStatus is the outcome of a payment attempt
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment records a single payment attempt against a booking
type Payment struct {
	ID            string        `json:"id"`
	Method        PaymentMethod `json:"method"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	Timestamp     time.Time     `json:"timestamp"`
	TransactionID string        `json:"transactionId"`
}

// BookingStatus is the lifecycle state of a booking.
// Terminal states are cancelled and completed; completed is only ever
// reached through an external update, never by the lifecycle manager.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ContactInfo is how the airline reaches the booker
type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AddOns are optional booking extras
type AddOns struct {
	ExtraBaggage     int      `json:"extraBaggage,omitempty"`
	Meals            []string `json:"meals,omitempty"`
	Insurance        bool     `json:"insurance,omitempty"`
	PriorityBoarding bool     `json:"priorityBoarding,omitempty"`
}

// Booking is the sole long-lived mutable entity in the core. The selected
// flight is embedded by value; seat assignments are keyed by passenger id.
type Booking struct {
	ID               string            `json:"id"`
	BookingReference string            `json:"bookingReference"`
	Flight           Flight            `json:"flight"`
	Passengers       []Passenger       `json:"passengers"`
	SeatAssignments  map[string][]Seat `json:"seatAssignments"`
	TotalPrice       float64           `json:"totalPrice"`
	Currency         string            `json:"currency"`
	Status           BookingStatus     `json:"status"`
	Payment          *Payment          `json:"payment,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
	ContactInfo      ContactInfo       `json:"contactInfo"`
	AddOns           AddOns            `json:"addOns"`
}

// BookingUpdate is an explicit field mask for partial booking updates.
// Nil fields are left untouched; set fields replace the booking's value
// wholesale, matching the record-level last-writer-wins semantics of the
// update operation.
type BookingUpdate struct {
	Status          *BookingStatus    `json:"status,omitempty"`
	Payment         *Payment          `json:"payment,omitempty"`
	Passengers      []Passenger       `json:"passengers,omitempty"`
	SeatAssignments map[string][]Seat `json:"seatAssignments,omitempty"`
	ContactInfo     *ContactInfo      `json:"contactInfo,omitempty"`
	AddOns          *AddOns           `json:"addOns,omitempty"`
}
