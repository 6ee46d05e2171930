package domain

import "errors"

// Reservation and cancellation failure kinds. Services wrap these with
// fmt.Errorf("%w: ...") to attach detail; the transport layer matches with
// errors.Is to pick a status code.
var (
	// ErrInvalidRequest: malformed or incomplete input, detected before any
	// store access.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrFlightNotFound: one or more requested flights do not exist.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrFlightUnavailable: a flight is not SCHEDULED or has no seats left.
	ErrFlightUnavailable = errors.New("no available seats on flight")

	// ErrNonConsecutiveItinerary: legs overlap or are out of sequence.
	ErrNonConsecutiveItinerary = errors.New("flights are not consecutive in sequence")

	// ErrSeatConflict: a concurrent writer took the seat between the
	// availability snapshot and the commit. Retryable.
	ErrSeatConflict = errors.New("seat no longer available")

	// ErrBookingNotFound: no confirmed booking matches the cancellation lookup.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAgencyNotFound: unknown or inactive API key.
	ErrAgencyNotFound = errors.New("agency not found")

	// ErrInternal: unexpected store failure, transaction rolled back.
	ErrInternal = errors.New("internal error")
)
