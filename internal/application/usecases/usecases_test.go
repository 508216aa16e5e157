package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/dats-assistant/internal/booking"
	"github.com/example/dats-assistant/internal/domain/trip"
	"github.com/example/dats-assistant/internal/temporal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	bookCalls   int
	booked      []trip.Request
	conf        trip.Confirmation
	bookErr     error
	cancelled   []string
	cancelErr   error
	trips       []trip.Trip
	tripsErr    error
	loginCalled bool
}

func (f *fakeService) Name() string { return "fake" }

func (f *fakeService) Login(ctx context.Context) error {
	f.loginCalled = true
	return nil
}

func (f *fakeService) Cancel(ctx context.Context, id string) error {
	f.cancelled = append(f.cancelled, id)
	return f.cancelErr
}
func (f *fakeService) Trips(ctx context.Context) ([]trip.Trip, error) {
	return f.trips, f.tripsErr
}
func (f *fakeService) Book(ctx context.Context, req trip.Request) (trip.Confirmation, error) {
	f.bookCalls++
	f.booked = append(f.booked, req)
	return f.conf, f.bookErr
}

func fixedValidator() booking.Validator {
	v := booking.New()
	now := time.Date(2026, time.January, 11, 10, 0, 0, 0, temporal.Location())
	v.Clock = func() time.Time { return now }
	return v
}

func TestBookTripBlockedVerdictNeverReachesService(t *testing.T) {
	svc := &fakeService{}
	uc := BookTrip{Service: svc, Validator: fixedValidator()}

	res, err := uc.Execute(context.Background(), BookTripParams{
		Date: "2026-01-20", Time: "10:00",
		PickupAddress: "a", DropoffAddress: "b",
	})
	require.NoError(t, err, "a blocked booking is an outcome, not an error")
	assert.False(t, res.Valid)
	assert.Contains(t, res.Error, "3 days in advance")
	assert.Zero(t, svc.bookCalls, "rejected requests must not hit the remote service")
}

func TestBookTripSuccess(t *testing.T) {
	svc := &fakeService{conf: trip.Confirmation{
		BookingID:   "DATS42",
		WindowStart: temporal.ClockTime{Hour: 8, Minute: 45},
		WindowEnd:   temporal.ClockTime{Hour: 9, Minute: 15},
	}}
	uc := BookTrip{Service: svc, Validator: fixedValidator()}

	res, err := uc.Execute(context.Background(), BookTripParams{
		Date: "tomorrow", Time: "9:00 AM",
		PickupAddress: "10111 104 Ave NW", DropoffAddress: "8440 112 St NW",
	})
	require.NoError(t, err)
	require.True(t, res.Valid)
	assert.Equal(t, "DATS42", res.Confirmation)
	assert.Contains(t, res.Message, "DATS42")
	assert.Contains(t, res.Message, "2026-01-12")
	assert.Contains(t, res.Message, "between 08:45 and 09:15")

	// The service gets canonical forms, not the rider's expressions.
	require.Len(t, svc.booked, 1)
	assert.Equal(t, "2026-01-12", svc.booked[0].Date.String())
	assert.Equal(t, "09:00", svc.booked[0].Pickup.String())
}

func TestBookTripWarningPropagates(t *testing.T) {
	svc := &fakeService{conf: trip.Confirmation{BookingID: "DATS43"}}
	uc := BookTrip{Service: svc, Validator: fixedValidator()}

	// Same-day booking with enough notice: allowed but never guaranteed.
	res, err := uc.Execute(context.Background(), BookTripParams{
		Date: "today", Time: "14:00",
		PickupAddress: "a", DropoffAddress: "b",
	})
	require.NoError(t, err)
	require.True(t, res.Valid)
	assert.Contains(t, res.Warning, "not guaranteed")
	assert.Contains(t, res.Message, "not guaranteed")
}

func TestBookTripRemoteFailure(t *testing.T) {
	svc := &fakeService{bookErr: errors.New("boom")}
	uc := BookTrip{Service: svc, Validator: fixedValidator()}

	_, err := uc.Execute(context.Background(), BookTripParams{
		Date: "tomorrow", Time: "09:00",
		PickupAddress: "a", DropoffAddress: "b",
	})
	require.Error(t, err)
}

func TestCancelTrip(t *testing.T) {
	svc := &fakeService{}
	uc := CancelTrip{Service: svc, Validator: fixedValidator()}

	res, err := uc.Execute(context.Background(), CancelTripParams{
		BookingID: "DATS42", Date: "2026-01-11", Time: "2:00 PM",
	})
	require.NoError(t, err)
	require.True(t, res.Valid)
	assert.Equal(t, []string{"DATS42"}, svc.cancelled)
	assert.Contains(t, res.Message, "cancelled")
}

func TestCancelTripTooLateBlocks(t *testing.T) {
	svc := &fakeService{}
	uc := CancelTrip{Service: svc, Validator: fixedValidator()}

	res, err := uc.Execute(context.Background(), CancelTripParams{
		BookingID: "DATS42", Date: "2026-01-11", Time: "11:00 AM",
	})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Error, booking.DefaultPolicy.SupportPhone)
	assert.Empty(t, svc.cancelled)
}

func TestCancelTripUnparseableDateFailsOpen(t *testing.T) {
	svc := &fakeService{}
	uc := CancelTrip{Service: svc, Validator: fixedValidator()}

	res, err := uc.Execute(context.Background(), CancelTripParams{
		BookingID: "DATS42", Date: "garbage", Time: "10:00 AM",
	})
	require.NoError(t, err)
	require.True(t, res.Valid, "unverifiable trips still cancel")
	assert.Contains(t, res.Warning, "verify")
	assert.Equal(t, []string{"DATS42"}, svc.cancelled)
}

func TestCancelTripRequiresBookingID(t *testing.T) {
	svc := &fakeService{}
	uc := CancelTrip{Service: svc, Validator: fixedValidator()}

	res, err := uc.Execute(context.Background(), CancelTripParams{Date: "2026-01-11", Time: "2:00 PM"})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Empty(t, svc.cancelled)
}

func TestListTrips(t *testing.T) {
	svc := &fakeService{trips: []trip.Trip{{BookingID: "A1"}}}
	uc := ListTrips{Service: svc}

	res, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Trips, 1)
	assert.False(t, res.Stale)
}

func TestListTripsRemoteErrorWithoutLog(t *testing.T) {
	svc := &fakeService{tripsErr: errors.New("down")}
	uc := ListTrips{Service: svc}

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
}
