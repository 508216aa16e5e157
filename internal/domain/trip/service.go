package trip

import "context"

// BookingService is the remote DATS booking interface. Implementations own
// transport and session details; callers never see SOAP.
type BookingService interface {
	Name() string
	Login(ctx context.Context) error
	Book(ctx context.Context, req Request) (Confirmation, error)
	Cancel(ctx context.Context, bookingID string) error
	Trips(ctx context.Context) ([]Trip, error)
}
