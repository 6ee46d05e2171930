package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/kafka"
	"github.com/Domenick1991/skybooking/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, input CancelBookingInput) (*domain.Booking, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type CreateBookingInput struct {
	AgencyID       string
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	PassportNumber string   `json:"passport_number"`
	FlightIDs      []string `json:"flight_ids"`
}

type CancelBookingInput struct {
	AgencyID         string
	LastName         string `json:"last_name"`
	BookingReference string `json:"booking_reference"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	cache Cache,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking reserves one seat on every requested flight and records the
// booking, all or nothing. Validation runs against a single snapshot of the
// requested flights; the store re-checks availability at commit time, so a
// lost race surfaces as domain.ErrSeatConflict with no partial decrements.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	flights, err := s.flights.GetByIDs(ctx, input.FlightIDs)
	if err != nil {
		return nil, storeFailure(err)
	}

	if err := validateItinerary(flights, len(input.FlightIDs)); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:             uuid.NewString(),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PassportNumber: input.PassportNumber,
		AgencyID:       input.AgencyID,
		Flights:        flights,
	}

	if err := s.bookings.CreateConfirmed(ctx, booking); err != nil {
		return nil, storeFailure(err)
	}

	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	if err := s.publish(ctx, "booking_confirmed", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_confirmed event for booking %s: %v", booking.ID, err)
	}
	return booking, nil
}

// CancelBooking flips the matching confirmed booking to CANCELLED and
// releases its seats in one transaction. A second cancel of the same booking
// finds no CONFIRMED match and fails with domain.ErrBookingNotFound, so seats
// are never released twice.
func (s *BookingService) CancelBooking(ctx context.Context, input CancelBookingInput) (*domain.Booking, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	booking, err := s.bookings.CancelConfirmed(ctx, input.AgencyID, input.LastName, strings.ToLower(input.BookingReference))
	if err != nil {
		return nil, storeFailure(err)
	}

	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
	if err := s.publish(ctx, "booking_cancelled", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_cancelled event for booking %s: %v", booking.ID, err)
	}
	return booking, nil
}

func (in CreateBookingInput) validate() error {
	if len(in.FlightIDs) == 0 {
		return fmt.Errorf("%w: flight ids are required", domain.ErrInvalidRequest)
	}
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return fmt.Errorf("%w: first name, last name and email are required", domain.ErrInvalidRequest)
	}
	if len(in.PassportNumber) < domain.MinPassportNumberLength {
		return fmt.Errorf("%w: passport number must be at least %d characters", domain.ErrInvalidRequest, domain.MinPassportNumberLength)
	}
	return nil
}

func (in CancelBookingInput) validate() error {
	if in.LastName == "" || in.BookingReference == "" {
		return fmt.Errorf("%w: last name and booking reference are required", domain.ErrInvalidRequest)
	}
	return nil
}

// storeFailure keeps the domain verdicts intact and wraps everything else as
// an internal failure; the transaction has already been rolled back below.
func storeFailure(err error) error {
	switch {
	case errors.Is(err, domain.ErrSeatConflict),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrFlightNotFound):
		return err
	default:
		return fmt.Errorf("%w: %s", domain.ErrInternal, err)
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	flightIDs := make([]string, 0, len(booking.Flights))
	for _, f := range booking.Flights {
		flightIDs = append(flightIDs, f.ID)
	}
	event := kafka.BookingEvent{
		Type:             eventType,
		BookingReference: booking.ID,
		AgencyID:         booking.AgencyID,
		FirstName:        booking.FirstName,
		LastName:         booking.LastName,
		Email:            booking.Email,
		Status:           string(booking.Status),
		FlightIDs:        flightIDs,
		OccurredAt:       time.Now(),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
