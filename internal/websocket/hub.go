// Package websocket pushes booking lifecycle events to connected
// clients. Clients subscribe per booking id and receive a message for
// every transition: creation, payment outcome and cancellation.
package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/skyfare/flight-booking-backend/internal/models"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeBookingCreated   MessageType = "booking_created"
	MessageTypePaymentCompleted MessageType = "payment_completed"
	MessageTypePaymentFailed    MessageType = "payment_failed"
	MessageTypeBookingCancelled MessageType = "booking_cancelled"
)

// Message is one booking event pushed to subscribers
type Message struct {
	Type      MessageType          `json:"type"`
	BookingID string               `json:"bookingId"`
	Status    models.BookingStatus `json:"status,omitempty"`
	Payment   *models.Payment      `json:"payment,omitempty"`
	Message   string               `json:"message,omitempty"`
	Timestamp int64                `json:"timestamp"`
}

// Client is one WebSocket subscriber for a booking
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	bookingID string
}

// Hub manages WebSocket connections per booking
type Hub struct {
	clients    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	mu         sync.RWMutex
}

// NewHub creates a new Hub; call Run in a goroutine to start it
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.bookingID] == nil {
				h.clients[client.bookingID] = make(map[*Client]bool)
			}
			h.clients[client.bookingID][client] = true
			log.Printf("websocket: client registered for booking %s (total: %d)", client.bookingID, len(h.clients[client.bookingID]))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.bookingID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.clients, client.bookingID)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				log.Printf("websocket: failed to marshal message: %v", err)
				continue
			}

			h.mu.RLock()
			clients := h.clients[message.BookingID]
			h.mu.RUnlock()

			for client := range clients {
				select {
				case client.send <- data:
				default:
					h.mu.Lock()
					delete(h.clients[message.BookingID], client)
					close(client.send)
					h.mu.Unlock()
				}
			}
		}
	}
}

// BroadcastBookingCreated notifies subscribers that a booking was opened
func (h *Hub) BroadcastBookingCreated(b *models.Booking) {
	if h == nil {
		return
	}
	h.broadcast <- &Message{
		Type:      MessageTypeBookingCreated,
		BookingID: b.ID,
		Status:    b.Status,
		Timestamp: time.Now().UnixMilli(),
	}
}

// BroadcastPaymentResult notifies subscribers of a payment outcome
func (h *Hub) BroadcastPaymentResult(bookingID string, p *models.Payment) {
	if h == nil {
		return
	}
	msgType := MessageTypePaymentCompleted
	status := models.BookingConfirmed
	text := "Payment completed, booking confirmed"
	if p.Status != models.PaymentCompleted {
		msgType = MessageTypePaymentFailed
		status = models.BookingPending
		text = "Payment failed, booking still pending"
	}
	h.broadcast <- &Message{
		Type:      msgType,
		BookingID: bookingID,
		Status:    status,
		Payment:   p,
		Message:   text,
		Timestamp: time.Now().UnixMilli(),
	}
}

// BroadcastBookingCancelled notifies subscribers of a cancellation
func (h *Hub) BroadcastBookingCancelled(bookingID string) {
	if h == nil {
		return
	}
	h.broadcast <- &Message{
		Type:      MessageTypeBookingCancelled,
		BookingID: bookingID,
		Status:    models.BookingCancelled,
		Timestamp: time.Now().UnixMilli(),
	}
}

// GetClientCount returns the number of clients watching a booking
func (h *Hub) GetClientCount(bookingID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[bookingID])
}
