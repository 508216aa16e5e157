package usecases

import (
	"context"
	"fmt"

	"github.com/example/dats-assistant/internal/booking"
	"github.com/example/dats-assistant/internal/domain/trip"
	"github.com/example/dats-assistant/internal/infrastructure/postgres"
)

// CancelTrip gates a cancellation through the notice rules and submits it.
// The date/time here is the trip's scheduled pickup, quoted back by the
// rider or read from the trip list; parsing fails open (see Validator).
type CancelTrip struct {
	Service   trip.BookingService
	Validator booking.Validator
	Trips     *postgres.TripRepo // nil disables the local log
}

type CancelTripParams struct {
	BookingID string `json:"booking_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

type CancelTripResult struct {
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
	Message string `json:"message,omitempty"`
}

func (u CancelTrip) Execute(ctx context.Context, p CancelTripParams) (CancelTripResult, error) {
	if p.BookingID == "" {
		return CancelTripResult{Valid: false, Error: "a booking ID is required to cancel a trip"}, nil
	}
	verdict := u.Validator.ValidateCancellation(p.Date, p.Time)
	if !verdict.Valid {
		return CancelTripResult{Valid: false, Error: verdict.Error, Message: verdict.Error}, nil
	}

	if err := u.Service.Cancel(ctx, p.BookingID); err != nil {
		return CancelTripResult{}, fmt.Errorf("cancelling trip %s: %w", p.BookingID, err)
	}
	if u.Trips != nil {
		_ = u.Trips.MarkCancelled(ctx, p.BookingID)
	}

	res := CancelTripResult{
		Valid:   true,
		Warning: verdict.Warning,
		Message: fmt.Sprintf("Ride %s is cancelled.", p.BookingID),
	}
	if verdict.Warning != "" {
		res.Message += " Please note: " + verdict.Warning + "."
	}
	return res, nil
}
