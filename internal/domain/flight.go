package domain

import "time"

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "SCHEDULED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
	FlightStatusDeparted  FlightStatus = "DEPARTED"
	FlightStatusLanded    FlightStatus = "LANDED"
)

type Flight struct {
	ID             string
	FlightNumber   string
	FromAirport    string
	ToAirport      string
	DepartureTime  time.Time
	ArrivalTime    time.Time
	TotalSeats     int
	AvailableSeats int
	Status         FlightStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Bookable reports whether one more seat can be reserved on the flight.
func (f Flight) Bookable() bool {
	return f.Status == FlightStatusScheduled && f.AvailableSeats >= 1
}
