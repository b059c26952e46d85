package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/skyfare/flight-booking-backend/internal/booking"
	"github.com/skyfare/flight-booking-backend/internal/models"
	"github.com/skyfare/flight-booking-backend/internal/service"
	"github.com/skyfare/flight-booking-backend/internal/websocket"
)

// Handler contains HTTP handlers for the API
type Handler struct {
	bookingService service.BookingService
	hub            *websocket.Hub
}

// NewHandler creates a new Handler instance
func NewHandler(bookingService service.BookingService, hub *websocket.Hub) *Handler {
	return &Handler{
		bookingService: bookingService,
		hub:            hub,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// SearchFlights handles GET /api/flights/search
func (h *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := models.SearchParams{
		Origin:        q.Get("origin"),
		Destination:   q.Get("destination"),
		DepartureDate: q.Get("departureDate"),
		CabinClass:    models.CabinClass(q.Get("cabinClass")),
		DirectOnly:    q.Get("directOnly") == "true",
	}
	params.Passengers.Adults, _ = strconv.Atoi(q.Get("adults"))
	params.Passengers.Children, _ = strconv.Atoi(q.Get("children"))
	params.Passengers.Infants, _ = strconv.Atoi(q.Get("infants"))

	if params.Origin == "" {
		respondError(w, http.StatusBadRequest, "Origin is required")
		return
	}
	if params.Destination == "" {
		respondError(w, http.StatusBadRequest, "Destination is required")
		return
	}
	if params.CabinClass == "" {
		params.CabinClass = models.CabinEconomy
	}
	if !params.CabinClass.Valid() {
		respondError(w, http.StatusBadRequest, "Unknown cabin class")
		return
	}

	flights, err := h.bookingService.SearchFlights(r.Context(), params)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, flights)
}

// GetFlight handles GET /api/flights/{id}
func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	flightID := mux.Vars(r)["id"]

	flight, err := h.bookingService.GetFlightDetails(r.Context(), flightID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if flight == nil {
		respondError(w, http.StatusNotFound, "Flight not found")
		return
	}
	respondJSON(w, http.StatusOK, flight)
}

// GetSegmentSeats handles GET /api/segments/{id}/seats
func (h *Handler) GetSegmentSeats(w http.ResponseWriter, r *http.Request) {
	segmentID := mux.Vars(r)["id"]

	cabin := models.CabinClass(r.URL.Query().Get("cabinClass"))
	if cabin == "" {
		cabin = models.CabinEconomy
	}
	if !cabin.Valid() {
		respondError(w, http.StatusBadRequest, "Unknown cabin class")
		return
	}

	seats, err := h.bookingService.GetAvailableSeats(r.Context(), segmentID, cabin)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, seats)
}

// CreateBookingRequest represents a request to create a new booking
type CreateBookingRequest struct {
	FlightID    string             `json:"flightId"`
	Passengers  []models.Passenger `json:"passengers"`
	CabinClass  models.CabinClass  `json:"cabinClass"`
	ContactInfo models.ContactInfo `json:"contactInfo"`
}

// CreateBooking handles POST /api/bookings
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.FlightID == "" {
		respondError(w, http.StatusBadRequest, "Flight ID is required")
		return
	}
	if len(req.Passengers) == 0 {
		respondError(w, http.StatusBadRequest, "At least one passenger is required")
		return
	}
	if !req.CabinClass.Valid() {
		respondError(w, http.StatusBadRequest, "Unknown cabin class")
		return
	}
	if req.ContactInfo.Email == "" {
		respondError(w, http.StatusBadRequest, "Contact email is required")
		return
	}

	flight, err := h.bookingService.GetFlightDetails(r.Context(), req.FlightID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if flight == nil {
		respondError(w, http.StatusNotFound, "Flight not found")
		return
	}

	b, err := h.bookingService.CreateBooking(r.Context(), *flight, req.Passengers, req.CabinClass, req.ContactInfo)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, b)
}

// GetBooking handles GET /api/bookings/{id}
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	b, err := h.bookingService.GetBooking(r.Context(), bookingID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if b == nil {
		respondError(w, http.StatusNotFound, "Booking not found")
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// GetBookingByReference handles GET /api/bookings/reference/{reference}
func (h *Handler) GetBookingByReference(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	b, err := h.bookingService.GetBookingByReference(r.Context(), reference)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if b == nil {
		respondError(w, http.StatusNotFound, "Booking not found")
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// UpdateBooking handles PATCH /api/bookings/{id}
func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	var update models.BookingUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if update.Status != nil {
		switch *update.Status {
		case models.BookingPending, models.BookingConfirmed, models.BookingCancelled, models.BookingCompleted:
		default:
			respondError(w, http.StatusBadRequest, "Unknown booking status")
			return
		}
	}

	b, err := h.bookingService.UpdateBooking(r.Context(), bookingID, update)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if b == nil {
		respondError(w, http.StatusNotFound, "Booking not found")
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// PaymentRequest represents a payment submission
type PaymentRequest struct {
	Method models.PaymentMethod `json:"method"`
	Amount float64              `json:"amount"`
}

// ProcessPayment handles POST /api/bookings/{id}/payment
func (h *Handler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch req.Method {
	case models.PaymentCreditCard, models.PaymentDebitCard, models.PaymentPayPal, models.PaymentBankTransfer:
	default:
		respondError(w, http.StatusBadRequest, "Unknown payment method")
		return
	}
	if req.Amount <= 0 {
		respondError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}

	payment, err := h.bookingService.ProcessPayment(r.Context(), bookingID, req.Method, req.Amount)
	if err != nil {
		if err == booking.ErrBookingNotFound {
			respondError(w, http.StatusNotFound, "Booking not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Failed attempts are still 200s: the payment record carries the outcome
	respondJSON(w, http.StatusOK, payment)
}

// CancelBooking handles DELETE /api/bookings/{id}
func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	cancelled, err := h.bookingService.CancelBooking(r.Context(), bookingID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"cancelled": cancelled})
}

// GetPopularDestinations handles GET /api/destinations/popular
func (h *Handler) GetPopularDestinations(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "Limit must be a positive integer")
			return
		}
		limit = n
	}

	airports, err := h.bookingService.GetPopularDestinations(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, airports)
}

// GetAirlines handles GET /api/airlines
func (h *Handler) GetAirlines(w http.ResponseWriter, r *http.Request) {
	airlines, err := h.bookingService.GetAirlines(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, airlines)
}

// BookingEvents handles GET /api/bookings/{id}/ws
func (h *Handler) BookingEvents(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		respondError(w, http.StatusNotImplemented, "Booking events are not enabled")
		return
	}
	h.hub.ServeWS(w, r, mux.Vars(r)["id"])
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
