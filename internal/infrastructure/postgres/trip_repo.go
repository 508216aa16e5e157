package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/example/dats-assistant/internal/domain/trip"
	"github.com/example/dats-assistant/internal/internaltypes"
	"github.com/example/dats-assistant/internal/temporal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TripRepo records every booking and cancellation the assistant performs,
// so trip history survives the remote service being unreachable. Dates and
// times are stored in their canonical string forms; the civil model parses
// them back on read.
type TripRepo struct{ pool *pgxpool.Pool }

func NewTripRepo(pool *pgxpool.Pool) *TripRepo { return &TripRepo{pool: pool} }

func (r *TripRepo) Record(ctx context.Context, t trip.Trip) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO trips (booking_id, trip_date, pickup_time, window_start, window_end, pickup_address, dropoff_address, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (booking_id) DO UPDATE
		SET trip_date=$2, pickup_time=$3, window_start=$4, window_end=$5,
		    pickup_address=$6, dropoff_address=$7, status=$8, updated_at=$9
	`, t.BookingID, t.Date.String(), t.Pickup.String(),
		clockOrEmpty(t.WindowStart), clockOrEmpty(t.WindowEnd),
		t.PickupAddress, t.DropoffAddress, string(t.Status), time.Now().UTC())
	return err
}

func (r *TripRepo) MarkCancelled(ctx context.Context, bookingID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE trips SET status=$2, updated_at=$3 WHERE booking_id=$1`,
		bookingID, string(trip.StatusCancelled), time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return internaltypes.ErrNotFound
	}
	return nil
}

func (r *TripRepo) Get(ctx context.Context, bookingID string) (trip.Trip, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT booking_id, trip_date, pickup_time, window_start, window_end, pickup_address, dropoff_address, status
		FROM trips WHERE booking_id=$1
	`, bookingID)
	t, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trip.Trip{}, internaltypes.ErrNotFound
		}
		return trip.Trip{}, err
	}
	return t, nil
}

func (r *TripRepo) List(ctx context.Context) ([]trip.Trip, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT booking_id, trip_date, pickup_time, window_start, window_end, pickup_address, dropoff_address, status
		FROM trips ORDER BY trip_date, pickup_time
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var trips []trip.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

type scannable interface{ Scan(dest ...any) error }

func scanTrip(row scannable) (trip.Trip, error) {
	var t trip.Trip
	var date, pickup, wStart, wEnd, status string
	if err := row.Scan(&t.BookingID, &date, &pickup, &wStart, &wEnd,
		&t.PickupAddress, &t.DropoffAddress, &status); err != nil {
		return trip.Trip{}, err
	}
	if d, ok := temporal.ResolveFlexibleDate(date, time.Time{}, temporal.Location()); ok {
		t.Date = d
	}
	if ct, ok := temporal.ParseClockTime(pickup); ok {
		t.Pickup = ct
	}
	if ct, ok := temporal.ParseClockTime(wStart); ok {
		t.WindowStart = ct
	}
	if ct, ok := temporal.ParseClockTime(wEnd); ok {
		t.WindowEnd = ct
	}
	t.Status = trip.Status(status)
	return t, nil
}

func clockOrEmpty(t temporal.ClockTime) string {
	if t == (temporal.ClockTime{}) {
		return ""
	}
	return t.String()
}
