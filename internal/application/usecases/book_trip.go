package usecases

import (
	"context"
	"fmt"

	"github.com/example/dats-assistant/internal/booking"
	"github.com/example/dats-assistant/internal/domain/trip"
	"github.com/example/dats-assistant/internal/infrastructure/postgres"
	"github.com/example/dats-assistant/internal/temporal"
)

// BookTrip resolves the rider's date expression, gates the request through
// the booking-window rules, and only then submits it to DATS. A failed
// verdict never reaches the remote service.
type BookTrip struct {
	Service   trip.BookingService
	Validator booking.Validator
	Trips     *postgres.TripRepo // nil disables the local log
}

type BookTripParams struct {
	Date           string   `json:"date"` // flexible: "tomorrow", "friday", "2026-01-13", ...
	Time           string   `json:"time"` // "09:30" or "9:30 AM"
	PickupAddress  string   `json:"pickup_address"`
	DropoffAddress string   `json:"dropoff_address"`
	Purpose        string   `json:"purpose,omitempty"`
	MobilityAids   []string `json:"mobility_aids,omitempty"`
}

type BookTripResult struct {
	Valid        bool   `json:"valid"`
	Error        string `json:"error,omitempty"`
	Warning      string `json:"warning,omitempty"`
	Confirmation string `json:"confirmation,omitempty"`
	WindowStart  string `json:"window_start,omitempty"`
	WindowEnd    string `json:"window_end,omitempty"`
	Message      string `json:"message,omitempty"`
}

func (u BookTrip) Execute(ctx context.Context, p BookTripParams) (BookTripResult, error) {
	verdict := u.Validator.ValidateBooking(p.Date, p.Time)
	if !verdict.Valid {
		return BookTripResult{Valid: false, Error: verdict.Error, Message: verdict.Error}, nil
	}

	loc := u.Validator.Location()
	date, _ := temporal.ResolveFlexibleDate(p.Date, u.Validator.Now(), loc)
	clock, _ := temporal.ParseClockTime(p.Time)

	conf, err := u.Service.Book(ctx, trip.Request{
		Date:           date,
		Pickup:         clock,
		PickupAddress:  p.PickupAddress,
		DropoffAddress: p.DropoffAddress,
		Purpose:        p.Purpose,
		MobilityAids:   p.MobilityAids,
	})
	if err != nil {
		return BookTripResult{}, fmt.Errorf("booking trip: %w", err)
	}

	if u.Trips != nil {
		_ = u.Trips.Record(ctx, trip.Trip{
			BookingID:      conf.BookingID,
			Date:           date,
			Pickup:         clock,
			WindowStart:    conf.WindowStart,
			WindowEnd:      conf.WindowEnd,
			PickupAddress:  p.PickupAddress,
			DropoffAddress: p.DropoffAddress,
			Status:         trip.StatusScheduled,
		})
	}

	res := BookTripResult{
		Valid:        true,
		Warning:      verdict.Warning,
		Confirmation: conf.BookingID,
		WindowStart:  conf.WindowStart.String(),
		WindowEnd:    conf.WindowEnd.String(),
	}
	res.Message = fmt.Sprintf("Your ride is booked for %s. Confirmation number %s. Be ready between %s and %s.",
		date, conf.BookingID, conf.WindowStart, conf.WindowEnd)
	if verdict.Warning != "" {
		res.Message += " Please note: " + verdict.Warning + "."
	}
	return res, nil
}
