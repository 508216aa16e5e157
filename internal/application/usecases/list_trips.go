package usecases

import (
	"context"
	"log"

	"github.com/example/dats-assistant/internal/domain/trip"
	"github.com/example/dats-assistant/internal/infrastructure/postgres"
)

// ListTrips asks DATS for the rider's scheduled trips, falling back to the
// local log when the remote service is unreachable.
type ListTrips struct {
	Service trip.BookingService
	Trips   *postgres.TripRepo // nil disables the fallback
}

type ListTripsResult struct {
	Trips []trip.Trip `json:"trips"`

	// Stale is set when the list came from the local log instead of DATS
	// and may be out of date.
	Stale   bool   `json:"stale,omitempty"`
	Message string `json:"message,omitempty"`
}

func (u ListTrips) Execute(ctx context.Context) (ListTripsResult, error) {
	trips, err := u.Service.Trips(ctx)
	if err != nil {
		if u.Trips == nil {
			return ListTripsResult{}, err
		}
		log.Printf("trips: remote list failed, using local log: %v", err)
		local, lerr := u.Trips.List(ctx)
		if lerr != nil {
			return ListTripsResult{}, err
		}
		return ListTripsResult{
			Trips:   local,
			Stale:   true,
			Message: "DATS could not be reached. This list comes from the assistant's own records and may be out of date.",
		}, nil
	}
	res := ListTripsResult{Trips: trips}
	if len(trips) == 0 {
		res.Message = "You have no rides booked."
	}
	return res, nil
}
