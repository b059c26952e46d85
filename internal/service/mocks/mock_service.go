package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/skyfare/flight-booking-backend/internal/models"
)

// MockBookingService is a mock implementation of service.BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) SearchFlights(ctx context.Context, params models.SearchParams) ([]models.Flight, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockBookingService) GetFlightDetails(ctx context.Context, flightID string) (*models.Flight, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockBookingService) GetAvailableSeats(ctx context.Context, segmentID string, cabin models.CabinClass) ([]models.Seat, error) {
	args := m.Called(ctx, segmentID, cabin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Seat), args.Error(1)
}

func (m *MockBookingService) CreateBooking(ctx context.Context, flight models.Flight, passengers []models.Passenger, cabin models.CabinClass, contact models.ContactInfo) (*models.Booking, error) {
	args := m.Called(ctx, flight, passengers, cabin, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) GetBookingByReference(ctx context.Context, reference string) (*models.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) UpdateBooking(ctx context.Context, bookingID string, update models.BookingUpdate) (*models.Booking, error) {
	args := m.Called(ctx, bookingID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) ProcessPayment(ctx context.Context, bookingID string, method models.PaymentMethod, amount float64) (*models.Payment, error) {
	args := m.Called(ctx, bookingID, method, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockBookingService) CancelBooking(ctx context.Context, bookingID string) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingService) GetPopularDestinations(ctx context.Context, limit int) ([]models.Airport, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Airport), args.Error(1)
}

func (m *MockBookingService) GetAirlines(ctx context.Context) ([]models.Airline, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Airline), args.Error(1)
}
