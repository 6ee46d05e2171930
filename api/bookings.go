package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/Domenick1991/skybooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	PassportNumber string   `json:"passport_number"`
	FlightIDs      []string `json:"flight_ids"`
}

type cancelBookingRequest struct {
	LastName         string `json:"last_name"`
	BookingReference string `json:"booking_reference"`
}

type bookingResponse struct {
	BookingReference string           `json:"booking_reference"`
	Status           string           `json:"status"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email"`
	PassportNumber   string           `json:"passport_number"`
	AgencyID         string           `json:"agency_id"`
	Flights          []flightResponse `json:"flights"`
}

type flightResponse struct {
	ID             string `json:"id"`
	FlightNumber   string `json:"flight_number"`
	FromAirport    string `json:"from_airport"`
	ToAirport      string `json:"to_airport"`
	DepartureTime  string `json:"departure_time"`
	ArrivalTime    string `json:"arrival_time"`
	AvailableSeats int    `json:"available_seats"`
	Status         string `json:"status"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.POST("/cancel", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		AgencyID:       agencyID(c),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PassportNumber: req.PassportNumber,
		FlightIDs:      req.FlightIDs,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	var req cancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cancelled, err := h.service.CancelBooking(c.Request.Context(), booking.CancelBookingInput{
		AgencyID:         agencyID(c),
		LastName:         req.LastName,
		BookingReference: req.BookingReference,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(cancelled))
}

// writeError maps the domain error kinds onto HTTP status codes. Unknown
// errors never leak their message to the caller.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrFlightUnavailable),
		errors.Is(err, domain.ErrNonConsecutiveItinerary):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSeatConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred while processing your booking"})
	}
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	flights := make([]flightResponse, 0, len(b.Flights))
	for _, f := range b.Flights {
		flights = append(flights, flightResponse{
			ID:             f.ID,
			FlightNumber:   f.FlightNumber,
			FromAirport:    f.FromAirport,
			ToAirport:      f.ToAirport,
			DepartureTime:  f.DepartureTime.Format(time.RFC3339),
			ArrivalTime:    f.ArrivalTime.Format(time.RFC3339),
			AvailableSeats: f.AvailableSeats,
			Status:         string(f.Status),
		})
	}
	return bookingResponse{
		BookingReference: b.ID,
		Status:           string(b.Status),
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		Email:            b.Email,
		PassportNumber:   b.PassportNumber,
		AgencyID:         b.AgencyID,
		Flights:          flights,
	}
}
