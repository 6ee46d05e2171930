package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// MinPassportNumberLength is the shortest travel document number accepted
// on a reservation request.
const MinPassportNumberLength = 9

// Booking holds a confirmed multi-leg reservation. Flights are kept in
// itinerary order (ascending departure time). A CONFIRMED booking holds
// exactly one seat on every flight in Flights; a CANCELLED booking holds none.
type Booking struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	PassportNumber string
	AgencyID       string
	Status         BookingStatus
	Flights        []Flight
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
