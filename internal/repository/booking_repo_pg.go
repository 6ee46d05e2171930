package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// CreateConfirmed reserves one seat on every flight of the booking and
	// inserts the booking row in a single transaction. Each decrement is
	// re-checked at commit time; if any flight lost its last seat (or left
	// SCHEDULED) since the snapshot, nothing is persisted and the error wraps
	// domain.ErrSeatConflict.
	CreateConfirmed(ctx context.Context, booking *domain.Booking) error

	// CancelConfirmed finds the agency's confirmed booking whose last name
	// matches case-insensitively and whose id starts with referencePrefix,
	// flips it to CANCELLED and releases one seat per leg, all in one
	// transaction. Ambiguous prefixes resolve to the lowest booking id.
	CancelConfirmed(ctx context.Context, agencyID, lastName, referencePrefix string) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) CreateConfirmed(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range booking.Flights {
		f := &booking.Flights[i]
		err := tx.QueryRow(ctx, `UPDATE flights SET available_seats = available_seats - 1, updated_at = now()
			WHERE id=$1 AND status=$2 AND available_seats >= 1
			RETURNING available_seats, updated_at`, f.ID, domain.FlightStatusScheduled).
			Scan(&f.AvailableSeats, &f.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: flight %s", domain.ErrSeatConflict, f.ID)
		}
		if err != nil {
			return err
		}
	}

	booking.Status = domain.BookingStatusConfirmed
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (id, first_name, last_name, email, passport_number, agency_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		booking.ID, booking.FirstName, booking.LastName, booking.Email, booking.PassportNumber, booking.AgencyID, booking.Status).
		Scan(&booking.CreatedAt, &booking.UpdatedAt); err != nil {
		return err
	}

	for i, f := range booking.Flights {
		if _, err := tx.Exec(ctx, `INSERT INTO booking_flights (booking_id, flight_id, leg) VALUES ($1, $2, $3)`, booking.ID, f.ID, i); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) CancelConfirmed(ctx context.Context, agencyID, lastName, referencePrefix string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Row lock so a racing cancel of the same booking waits here and then
	// misses on the status filter instead of releasing the seats twice.
	row := tx.QueryRow(ctx, `SELECT id, first_name, last_name, email, passport_number, agency_id, status, created_at, updated_at
		FROM bookings
		WHERE agency_id=$1 AND lower(last_name)=lower($2) AND starts_with(id, lower($3)) AND status=$4
		ORDER BY id
		LIMIT 1
		FOR UPDATE`, agencyID, lastName, referencePrefix, domain.BookingStatusConfirmed)

	var b domain.Booking
	if err := row.Scan(&b.ID, &b.FirstName, &b.LastName, &b.Email, &b.PassportNumber, &b.AgencyID, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	if err := tx.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2 RETURNING updated_at`,
		domain.BookingStatusCancelled, b.ID).Scan(&b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Status = domain.BookingStatusCancelled

	if _, err := tx.Exec(ctx, `UPDATE flights SET available_seats = available_seats + 1, updated_at = now()
		WHERE id IN (SELECT flight_id FROM booking_flights WHERE booking_id=$1)`, b.ID); err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT f.id, f.flight_number, f.from_airport, f.to_airport, f.departure_time, f.arrival_time, f.total_seats, f.available_seats, f.status, f.created_at, f.updated_at
		FROM flights f
		JOIN booking_flights bf ON bf.flight_id = f.id
		WHERE bf.booking_id=$1
		ORDER BY bf.leg`, b.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		b.Flights = append(b.Flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
